package launch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
)

func TestLoadTuning(t *testing.T) {
	cfg, preset, err := LoadTuning("", "hard")
	if err != nil {
		t.Fatal(err)
	}
	if preset != config.DifficultyHard {
		t.Errorf("preset = %q, want hard", preset)
	}
	if !cfg.Difficulty.Enabled {
		t.Error("hard preset should enable progression")
	}

	if _, _, err := LoadTuning("", "impossible"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
	if _, _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Error("expected error for missing explicit config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics:\n  max_frame_step: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadTuning(bad, "easy"); err == nil {
		t.Error("expected validation error for a zero frame step")
	}
}

func TestFileLogger(t *testing.T) {
	logger, closeLog, err := FileLogger("", "debug")
	if err != nil || logger == nil {
		t.Fatalf("FileLogger(\"\") = %v, %v", logger, err)
	}
	closeLog()

	if _, _, err := FileLogger(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Error("expected error for unknown level")
	}

	path := filepath.Join(t.TempDir(), "skyhop.log")
	logger, closeLog, err = FileLogger(path, "warn")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Errorf("log file = %q, want only the warning", data)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, log.WarnLevel)
	logger.Debug("quiet")
	logger.Error("loud")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestAssetFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "flyer.txt"), []byte("@\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := AssetFS(dir).Open("flyer.txt"); err != nil {
		t.Errorf("AssetFS(dir) cannot open flyer.txt: %v", err)
	}
	if err := fstest.TestFS(AssetFS(dir), "flyer.txt"); err != nil {
		t.Error(err)
	}
	if AssetFS("") == nil {
		t.Error("AssetFS(\"\") should return the embedded set")
	}
}

func TestOpenStore(t *testing.T) {
	logger := log.New(&bytes.Buffer{})

	store := OpenStore(filepath.Join(t.TempDir(), "scores.db"), logger)
	if store == nil {
		t.Fatal("OpenStore returned nil for a writable path")
	}
	store.Close()

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if store := OpenStore(filepath.Join(blocker, "scores.db"), logger); store != nil {
		store.Close()
		t.Error("OpenStore should return nil when the path cannot be created")
	}
}

func TestSeed(t *testing.T) {
	if got := Seed(42); got != 42 {
		t.Errorf("Seed(42) = %d", got)
	}
	if Seed(0) == 0 {
		t.Error("Seed(0) should pick a time-based seed")
	}
}
