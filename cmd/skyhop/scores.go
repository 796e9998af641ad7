package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/games/flappy"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	flagPlain      bool
	flagClear      bool
	flagScoreLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display high scores grouped by difficulty.

In a terminal the scoreboard is interactive; use --plain for a text table
(the default when output is redirected).

Examples:
  skyhop scores
  skyhop scores --plain --difficulty hard
  skyhop scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	scoresCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Only show this difficulty (classic, easy, normal, hard, fixed)")
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Scores per difficulty in the plain table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every saved score for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := requireGame(args, flappy.ID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		w, h, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			w, h = 80, 24
		}
		_, err := tui.RunScoreboard(gameID, store, w, h)
		return err
	}

	return printScores(store, gameID)
}

// difficultyLabels returns the score groups to print.
func difficultyLabels() ([]string, error) {
	if flagDifficulty == "" {
		labels := make([]string, 0, len(config.Presets))
		for _, p := range config.Presets {
			labels = append(labels, p.Label())
		}
		return labels, nil
	}
	if flagDifficulty == config.DifficultyDefault.Label() {
		return []string{flagDifficulty}, nil
	}
	p, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	return []string{p.Label()}, nil
}

func printScores(store *storage.Store, gameID string) error {
	labels, err := difficultyLabels()
	if err != nil {
		return err
	}

	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	byDifficulty := make(map[string]storage.DifficultyStats, len(stats))
	for _, st := range stats {
		byDifficulty[st.Difficulty] = st
	}

	fmt.Printf("High Scores - %s\n", title)

	printed := 0
	for _, label := range labels {
		scores, err := store.TopScores(gameID, label, flagScoreLimit)
		if err != nil {
			return fmt.Errorf("retrieving scores: %w", err)
		}
		if len(scores) == 0 {
			continue
		}
		printed++

		fmt.Println()
		st := byDifficulty[label]
		fmt.Printf("[%s]  runs: %d  best: %d  avg: %.1f\n", label, st.Runs, st.HighScore, st.AvgScore)
		fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
		fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "-----", "------", "----")

		for i, entry := range scores {
			player := entry.Player
			if player == "" {
				player = "-"
			}
			fmt.Printf("  %-4d  %-8d  %-12s  %s\n", i+1, entry.Score, player, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if printed == 0 {
		fmt.Println()
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyhop play' to set the first high score!")
	}
	return nil
}
