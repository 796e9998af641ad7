// skyhop-desktop plays skyhop in a desktop window with bitmap sprites and sound.
//
// Usage:
//
//	skyhop-desktop [--difficulty hard] [--sound] [--scale 1.5]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/audio"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/flappy"
	"github.com/vovakirdan/skyhop/internal/launch"
	"github.com/vovakirdan/skyhop/internal/platform/desktop"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagScale      float64
	flagShowFPS    bool
	flagAssets     string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop-desktop",
	Short: "Skyhop in a desktop window",
	Long: `Open a window and play skyhop with bitmap sprites.

Controls:
  Space/Up/W/Left click - Flap (starts the round on the title screen)
  P                     - Pause
  R/Enter               - Restart (after game over)
  Esc/Q                 - Quit

Examples:
  skyhop-desktop
  skyhop-desktop --difficulty hard --sound
  skyhop-desktop --scale 1.5 --show-fps`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagFPS, "fps", 60, "Updates per second")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.BoolVar(&flagSound, "sound", true, "Play sound effects")
	f.Float64Var(&flagScale, "scale", 1, "Window size multiplier")
	f.BoolVar(&flagShowFPS, "show-fps", false, "Show frame and tick rates")
	f.StringVar(&flagAssets, "assets", "", "Directory replacing the embedded images and sounds")
	f.BoolVar(&flagVerbose, "verbose", false, "Log resource loading and scores to stderr")
}

func run(_ *cobra.Command, _ []string) error {
	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := launch.NewLogger(os.Stderr, level)

	tuning, preset, err := launch.LoadTuning(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := assets.NewLoader(launch.AssetFS(flagAssets), assets.Manifest(assets.VariantDesktop, flagSound), logger).
		Use(assets.KindImage, assets.DecodePNG).
		Use(assets.KindSound, audio.Decode)
	loader.Start(ctx)

	game, err := registry.Create(flappy.ID, registry.Env{Config: &tuning, Assets: loader})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: launch.Seed(flagSeed)})

	opts := desktop.Options{
		Images:     desktop.LoaderImages(loader),
		Difficulty: preset,
		Player:     launch.PlayerName(),
		Logger:     logger,
		ShowFPS:    flagShowFPS,
		Scale:      flagScale,
	}

	if store := launch.OpenStore(flagDBPath, logger); store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing scores database", "error", err)
			}
		}()
		opts.Store = store
	}

	if flagSound {
		if player := launch.StartSound(ctx, loader, logger); player != nil {
			defer player.Close()
			opts.Audio = player
		}
	}

	return desktop.Run(game, flagFPS, opts)
}
