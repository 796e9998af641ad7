package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/games/flappy"
	"github.com/vovakirdan/skyhop/internal/launch"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets with their tuning and best scores",
	Long: `Shows every difficulty preset: how fast and how wide the first obstacle
pair is, whether the game ramps up during a run, and the best saved score.

The tuning comes from --config (or the usual config search path).`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// presetRow describes one preset as the first pair of a run sees it.
type presetRow struct {
	Label       string
	Speed       float64 // px/s
	Gap         float64 // px
	Progression string
	Best        int
}

// presetRows applies each preset to base. best may be nil.
func presetRows(base config.FlappyConfig, best func(label string) int) []presetRow {
	rows := make([]presetRow, 0, len(config.Presets))
	for _, p := range config.Presets {
		cfg := base
		config.ApplyFlappyPreset(&cfg, p)
		dm := config.NewDifficultyManager(cfg.Difficulty)

		row := presetRow{
			Label:       p.Label(),
			Speed:       dm.Speed(cfg.Obstacles.Speed, 0, 0),
			Gap:         dm.GapSize(cfg.Obstacles.Gap, cfg.Obstacles.MinGap, 0, 0),
			Progression: "none",
		}
		if dm.IsEnabled() {
			prog := cfg.Difficulty.Progression
			unit := "points"
			if prog.Type == "time" {
				unit = "s"
			}
			row.Progression = fmt.Sprintf("max at %g %s", prog.MaxAt, unit)
		}
		if best != nil {
			row.Best = best(row.Label)
		}
		rows = append(rows, row)
	}
	return rows
}

func runList(_ *cobra.Command, _ []string) error {
	tuning, _, err := launch.LoadTuning(flagConfig, "")
	if err != nil {
		return err
	}

	var best func(string) int
	if store, err := storage.Open(flagDBPath); err == nil {
		defer store.Close()
		best = func(label string) int {
			score, err := store.HighScore(flappy.ID, label)
			if err != nil {
				return 0
			}
			return score
		}
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %9s  %6s  %-18s  %s\n", "Preset", "Speed", "Gap", "Progression", "Best")
	fmt.Printf("  %-8s  %9s  %6s  %-18s  %s\n", "------", "-----", "---", "-----------", "----")
	for _, r := range presetRows(tuning, best) {
		bestText := "-"
		if r.Best > 0 {
			bestText = fmt.Sprint(r.Best)
		}
		fmt.Printf("  %-8s  %5.0f px/s  %3.0f px  %-18s  %s\n", r.Label, r.Speed, r.Gap, r.Progression, bestText)
	}

	fmt.Println()
	fmt.Println("Run 'skyhop play --difficulty <preset>' to play one.")
	return nil
}
