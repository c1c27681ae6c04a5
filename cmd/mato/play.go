package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mato/internal/config"
	"github.com/vovakirdan/mato/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play right away",
	Long: `Start a game without the difficulty picker.

Controls:
  Any key          - Start (on the title screen)
  Arrows/WASD/hjkl - Steer
  Esc              - Give up / back to title / quit from title
  Ctrl+L           - Repaint
  Ctrl+S           - Save a screenshot to ~/.mato/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, slower speed-up
  normal - The loaded configuration as is
  hard   - Faster start, faster speed-up
  fixed  - No speed-up at all

Examples:
  mato play
  mato play --difficulty hard
  mato play --config ./my-mato.yaml
  mato play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset := loadSettings()
	config.ApplyPreset(&cfg, preset)

	store := openStore()

	runErr := tui.Run(tui.Options{
		Game:    cfg,
		Mode:    preset,
		Runtime: runtimeConfig(),
		Store:   store,
		Logger:  log.Default(),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
