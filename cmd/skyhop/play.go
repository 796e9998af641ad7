package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/games/flappy"
	"github.com/vovakirdan/skyhop/internal/launch"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round",
	Long: `Start playing immediately.

Controls:
  Space/Up/W - Flap (starts the round on the title screen)
  P          - Pause
  R/Enter    - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.skyhop/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, constant speed and gap
  (none) - Use the config file as is

Examples:
  skyhop play
  skyhop play --difficulty hard
  skyhop play --sound
  skyhop play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := requireGame(args, flappy.ID)
	if err != nil {
		return err
	}

	logger, closeLog, err := launch.FileLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, preset, err := launch.LoadTuning(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := tui.NewAssetLoader(launch.AssetFS(flagAssets), flagSound, logger)
	loader.Start(ctx)

	game, err := registry.Create(gameID, registry.Env{Config: &tuning, Assets: loader})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	opts := tui.Options{
		Sprites:    tui.LoaderSprites(loader),
		Difficulty: preset,
		Player:     launch.PlayerName(),
		Logger:     logger,
	}

	if store := launch.OpenStore(flagDBPath, logger); store != nil {
		defer store.Close()
		opts.Store = store
	}

	if flagSound {
		if player := launch.StartSound(ctx, loader, logger); player != nil {
			defer player.Close()
			opts.Audio = player
		}
	}

	rc := runtimeConfig()
	logger.Info("starting game", "game", gameID, "difficulty", preset.Label(), "seed", rc.Seed)
	if _, err := tui.Run(game, rc, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
