package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mato/internal/config"
	"github.com/vovakirdan/mato/internal/platform/tui"
)

func runMenu(_ *cobra.Command, _ []string) {
	base, preset := loadSettings()
	store := openStore()
	rt := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, base, rt, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rt = result.Config

		if result.Quit {
			break
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH, preset)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		preset = result.Preset
		cfg := base
		config.ApplyPreset(&cfg, preset)

		// A fixed --seed replays the same apples every game
		if flagSeed == 0 {
			rt.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(tui.Options{
			Game:    cfg,
			Mode:    preset,
			Runtime: rt,
			Store:   store,
			Logger:  log.Default(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
