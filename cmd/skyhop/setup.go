package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/launch"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// runtimeConfig builds the platform config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     launch.Seed(flagSeed),
	}
}

// gameFactory returns a builder for gameID at any preset, sharing one loader.
func gameFactory(gameID string, base config.FlappyConfig, loader *assets.Loader) tui.GameFactory {
	return func(preset config.DifficultyPreset) (registry.Game, error) {
		cfg := base
		config.ApplyFlappyPreset(&cfg, preset)
		return registry.Create(gameID, registry.Env{Config: &cfg, Assets: loader})
	}
}

// requireGame validates an optional game argument.
func requireGame(args []string, fallback string) (string, error) {
	gameID := fallback
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		var ids []string
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
		return "", fmt.Errorf("unknown game %q (available: %s)", gameID, strings.Join(ids, ", "))
	}
	return gameID, nil
}
