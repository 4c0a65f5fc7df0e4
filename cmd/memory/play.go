package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/audio"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
)

// Lines below the board used by the timer bar and help.
const hudLines = 2

var (
	flagConfig string
	flagLevel  string
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Memory Match",
	Long: `Start the game. Pick a level with the mouse or with 1/2/3.

Controls:
  Mouse      - Flip cards, press bonus buttons, pick a level
  1/2/3      - Easy / Medium / Hard
  R          - Back to the level menu
  ?          - Toggle help
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  memory play
  memory play --level hard
  memory play --config ./my-memory.yaml
  memory play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start directly on a level: easy, medium, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Sound volume (0 to 1)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  max(height-hudLines, 0),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []memory.Option{memory.WithConfig(cfg), memory.WithLogger(logger)}
	if flagLevel != "" {
		tier, tierErr := config.ParseTier(flagLevel)
		if tierErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", tierErr)
			os.Exit(1)
		}
		opts = append(opts, memory.WithLevel(tier))
	}
	game := memory.New(opts...)

	player := audio.NewPlayer(flagVolume, flagMute, logger)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	defer player.Close()

	logger.Info("starting", "fps", rt.TickRate, "screen", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH))
	if err := tui.Run(game, player, rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
