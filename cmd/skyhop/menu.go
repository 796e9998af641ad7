package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/games/flappy"
	"github.com/vovakirdan/skyhop/internal/launch"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a round.
Esc leaves a round and returns to the menu; Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start a round
  Tab          - High scores
  Q            - Quit

Examples:
  skyhop menu
  skyhop menu --fps 30
  skyhop menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := launch.FileLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// presets are chosen in the menu
	tuning, _, err := launch.LoadTuning(flagConfig, "")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := tui.NewAssetLoader(launch.AssetFS(flagAssets), false, logger)
	loader.Start(ctx)

	store := launch.OpenStore(flagDBPath, logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:   store,
		Sprites: tui.LoaderSprites(loader),
		Player:  launch.PlayerName(),
		Logger:  logger,
	}
	newGame := gameFactory(flappy.ID, tuning, loader)

	if err := tui.RunSession(flappy.ID, newGame, store, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
