package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mato/internal/config"
	"github.com/vovakirdan/mato/internal/platform/tui"
	"github.com/vovakirdan/mato/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top runs for a difficulty mode.

Without a mode, shows a summary of every mode that has been played.

Examples:
  mato scores
  mato scores normal
  mato scores hard --limit 20
  mato scores --interactive
  mato scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the given mode")
}

func runScores(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mode = string(preset)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if mode == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
			os.Exit(1)
		}
		if err := store.ClearScores(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %s scores.\n", mode)

	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		initial := config.DifficultyPreset(mode)
		if initial == "" {
			initial = config.DifficultyNormal
		}
		if _, err := tui.RunScoreboard(store, width, height, initial); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case mode == "":
		printSummary(store)

	default:
		printTopRuns(store, mode)
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.GetAllModeStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mato play' to set the first high score!")
		return
	}

	fmt.Printf("  %-8s  %-5s  %-6s  %-8s  %-7s  %s\n", "Mode", "Runs", "Best", "Average", "Longest", "Last played")
	fmt.Printf("  %-8s  %-5s  %-6s  %-8s  %-7s  %s\n", "----", "----", "----", "-------", "-------", "-----------")
	for _, preset := range config.Presets {
		s, ok := stats[string(preset)]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-6d  %-8.1f  %-7d  %s\n",
			s.Mode, s.RunsCount, s.HighScore, s.AvgScore, s.LongestWorm, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printTopRuns(store *storage.Store, mode string) {
	runs, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mato play --difficulty %s' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Length", "Apples", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "------", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %s\n", i+1, r.Score, r.Length, r.Apples, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(mode); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
