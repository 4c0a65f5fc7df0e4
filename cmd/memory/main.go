// memory is a terminal memory-matching game: flip cards, find the pairs,
// beat the clock.
//
// Usage:
//
//	memory play              - Play (pick a level from the menu)
//	memory play --level hard - Skip the menu
//	memory levels            - Show the difficulty tiers
//	memory config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for a reproducible deal
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory Match - find the pairs before the clock runs out",
	Long: `Memory Match is a terminal card game. Flip two cards at a time and
find every pair before the timer reaches zero.

Matches add time, mismatches cost time. Match streaks unlock bonuses:
extra time, a clock freeze and a hint that reveals a pair.

Available commands:
  play     - Start the game
  levels   - Show the difficulty tiers
  config   - Print the default configuration

Examples:
  memory play
  memory play --level medium
  memory play --config ./memory.yaml --mute
  memory levels`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a logger writing to --log-file, or a discarding one.
// The terminal belongs to the game, so logs never go to stdout or stderr.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "memory",
	})
	logger.SetLevel(log.DebugLevel)
	return logger, f, nil
}
