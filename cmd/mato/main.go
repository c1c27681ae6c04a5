// mato is a worm game for the terminal.
//
// Usage:
//
//	mato                  - Pick a difficulty and play
//	mato play             - Play right away
//	mato scores [mode]    - Show high scores
//	mato serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible apple placement
//	--db <path>           - Set database path (default: ~/.mato/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mato/internal/config"
	"github.com/vovakirdan/mato/internal/core"
	"github.com/vovakirdan/mato/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mato",
	Short: "Mato - a worm game for your terminal",
	Long: `Mato is a classic worm game: eat apples, grow longer and faster,
and do not hit the walls or yourself.

Without a subcommand, mato starts with a difficulty picker and returns
to it after every game.

Available commands:
  play     - Play right away
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  mato
  mato play --difficulty hard
  mato scores normal
  mato serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mato/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings loads the game configuration and difficulty preset from flags.
// The returned config has no preset applied.
func loadSettings() (config.Config, config.DifficultyPreset) {
	cfg, skipped, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	for _, s := range skipped {
		log.Warn("ignoring broken config file", "path", s.Path, "error", s.Err)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return cfg, preset
}

// runtimeConfig returns the host settings for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FrameRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
