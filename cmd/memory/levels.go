package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty tiers",
	Long: `Show each difficulty tier with its board size and time budget.

Examples:
  memory levels
  memory levels --config ./my-memory.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Memory Match levels:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  KEY\tLEVEL\tBOARD\tPAIRS\tTIME")
	for i, t := range config.Tiers {
		lvl := cfg.Level(t)
		cards := lvl.Columns * memory.Rows
		fmt.Fprintf(w, "  %d\t%s\t%dx%d\t%d\t%s\n",
			i+1, lvl.Name, lvl.Columns, memory.Rows, cards/2, memory.FormatClock(lvl.Budget()))
	}
	_ = w.Flush()

	fmt.Println()
	fmt.Println("Start a level with: memory play --level <name>")
}
