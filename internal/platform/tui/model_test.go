package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/flappy"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newGame(preset config.DifficultyPreset) (registry.Game, error) {
	cfg := config.DefaultFlappyConfig()
	config.ApplyFlappyPreset(&cfg, preset)
	return flappy.New(&cfg, nil), nil
}

func testModel(t *testing.T, opts Options) Model {
	t.Helper()
	g, _ := newGame(config.DifficultyDefault)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, opts)
	m.Init()
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	if next == nil {
		t.Fatal("Update returned nil model")
	}
	return next, cmd
}

func tickAt(t *testing.T, m Model, at time.Duration) Model {
	t.Helper()
	next, cmd := update(t, m, TickMsg(epoch.Add(at)))
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := update(t, m, msg)
	return next.(Model), cmd
}

func TestModelStartsOnJump(t *testing.T) {
	m := testModel(t, Options{})

	m = tickAt(t, m, 0)
	if m.State().Started {
		t.Fatal("run started without input")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tickAt(t, m, 16*time.Millisecond)
	if !m.State().Started {
		t.Fatal("space did not start the run")
	}
}

func TestModelCrashEndsRun(t *testing.T) {
	m := testModel(t, Options{Store: openStore(t)})

	m = tickAt(t, m, 0)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 1; i <= 30 && !m.State().GameOver; i++ {
		m = tickAt(t, m, time.Duration(i)*100*time.Millisecond)
	}

	if !m.State().GameOver {
		t.Fatal("falling flyer never crashed")
	}

	m, _ = press(t, m, runeKey('r'))
	m = tickAt(t, m, 4*time.Second)
	if m.State().GameOver {
		t.Error("restart did not leave game over")
	}
}

func TestModelSaveScore(t *testing.T) {
	store := openStore(t)
	m := testModel(t, Options{Store: store, Difficulty: config.DifficultyHard, Player: "ada"})

	m.saveScore(0)
	m.saveScore(12)

	scores, err := store.TopScores(flappy.ID, "hard", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 12 || scores[0].Player != "ada" {
		t.Errorf("saved %+v", scores[0])
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := testModel(t, Options{})
	m = tickAt(t, m, 0)
	m, _ = press(t, m, runeKey('w'))
	m = tickAt(t, m, 16*time.Millisecond)

	next, _ := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if !m.State().Started {
		t.Error("resize reset the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBack(t *testing.T) {
	m := testModel(t, Options{})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() || cmd != nil {
		t.Error("back honoured without AllowBack")
	}

	m = testModel(t, Options{AllowBack: true})
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("back ignored with AllowBack")
	}
	if m.View() != "" {
		t.Error("view after leaving should be empty")
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(t, Options{})
	m, cmd := press(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
}

func TestModelView(t *testing.T) {
	m := testModel(t, Options{})
	m = tickAt(t, m, 0)
	if !strings.Contains(m.View(), "Press SPACE to start") {
		t.Error("ready prompt missing from view")
	}
}

func TestSessionModelFlow(t *testing.T) {
	store := openStore(t)
	var s tea.Model = NewSessionModel(flappy.ID, newGame, store,
		core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}, Options{Store: store})

	screen := func() sessionScreen { return s.(SessionModel).screen }

	s, _ = update(t, s, tea.KeyMsg{Type: tea.KeyDown})
	s, _ = update(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if screen() != screenGame {
		t.Fatal("selecting a difficulty did not start a game")
	}
	if got := s.(SessionModel).gameModel.opts.Difficulty; got != config.DifficultyEasy {
		t.Errorf("difficulty = %q, want easy", got)
	}

	s, _ = update(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if screen() != screenMenu {
		t.Fatal("esc did not return to the menu")
	}

	s, _ = update(t, s, tea.KeyMsg{Type: tea.KeyTab})
	if screen() != screenScores {
		t.Fatal("tab did not open the scoreboard")
	}
	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	s, _ = update(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if screen() != screenMenu {
		t.Fatal("esc did not leave the scoreboard")
	}

	s, cmd := update(t, s, runeKey('q'))
	if !s.(SessionModel).quitting || cmd == nil {
		t.Error("q did not quit the session")
	}
}
