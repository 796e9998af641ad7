// Package launch holds the start-up wiring shared by the skyhop binaries:
// logging, tuning, assets, the score store, sound and the player's identity.
package launch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/audio"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// NewLogger returns a timestamped logger writing to w at level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyhop",
		Level:           level,
	})
}

// FileLogger opens path for appending and logs to it at the named level.
// An empty path discards everything. The returned func closes the file.
func FileLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(f, lvl), func() { f.Close() }, nil
}

// LoadTuning reads the game config, applies the difficulty preset on top
// and validates the result.
func LoadTuning(path, difficulty string) (config.FlappyConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.FlappyConfig{}, preset, err
	}
	cfg, err := config.LoadFlappy(path)
	if err != nil {
		return config.FlappyConfig{}, preset, err
	}
	config.ApplyFlappyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, preset, err
	}
	return cfg, preset, nil
}

// AssetFS returns dir as a file system, or the embedded resources when dir is empty.
func AssetFS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return assets.Embedded()
}

// OpenStore opens the score table. Without it the game still runs, so a
// failure is logged and nil returned.
func OpenStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("scores disabled", "path", path, "error", err)
		return nil
	}
	return store
}

// StartSound opens the speaker and binds the loader's sounds as they finish
// loading. It returns nil when no audio device is available.
func StartSound(ctx context.Context, loader *assets.Loader, logger *log.Logger) *audio.Player {
	player := audio.NewPlayer()
	if err := player.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	player.BindLoader(ctx, loader)
	return player
}

// Seed returns flag, or a time-based seed when flag is 0.
func Seed(flag int64) int64 {
	if flag != 0 {
		return flag
	}
	return time.Now().UnixNano()
}

// PlayerName is recorded with local scores.
func PlayerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
