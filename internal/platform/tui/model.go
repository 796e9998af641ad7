package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/audio"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// Options are the collaborators of a terminal game session. Every field is optional.
type Options struct {
	Store      *storage.Store          // Final scores are saved here
	Audio      *audio.Player           // Plays step events
	Sprites    SpriteLookup            // Resolves images to text sprites
	Difficulty config.DifficultyPreset // Recorded with saved scores
	Player     string                  // Recorded with saved scores
	Logger     *log.Logger
	Renderer   *lipgloss.Renderer // Output color profile; nil uses stdout
	AllowBack  bool               // Back leaves the game instead of being ignored
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	surface    *ScreenSurface
	cells      *CellRenderer
	opts       Options
	config     core.RuntimeConfig
	clock      *core.FrameClock
	inputFrame *core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	worldW, worldH := game.WorldSize()

	return Model{
		game:       game,
		screen:     screen,
		surface:    NewScreenSurface(screen, worldW, worldH, opts.Sprites),
		cells:      NewCellRenderer(opts.Renderer),
		opts:       opts,
		config:     cfg,
		clock:      &core.FrameClock{},
		inputFrame: &core.InputFrame{},
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.opts.AllowBack {
			m.backToMenu = true
			return m, tea.Quit
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The world is scaled to the
// screen, so the run continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by the wall time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)

	result := m.game.Step(*m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.opts.Audio != nil {
		m.opts.Audio.PlayEvents(result.Events)
	}
	if result.Has(core.EventCrash) {
		m.saveScore(result.State.Score)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run. Failures are logged and play continues.
func (m Model) saveScore(score int) {
	if m.opts.Store == nil || score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID:     m.game.ID(),
		Difficulty: m.opts.Difficulty.Label(),
		Player:     m.opts.Player,
		Score:      score,
	}
	if _, err := m.opts.Store.SaveScore(entry); err != nil {
		m.opts.Logger.Error("saving score", "game", entry.GameID, "score", score, "error", err)
		return
	}
	m.opts.Logger.Info("score saved", "game", entry.GameID, "difficulty", entry.Difficulty, "score", score)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(m.surface)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".skyhop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.surface)
	return m.cells.Render(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a game and blocks until it exits.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
