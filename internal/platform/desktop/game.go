package desktop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyhop/internal/audio"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// Options are the collaborators of a desktop session. Every field is optional.
type Options struct {
	Store      *storage.Store
	Audio      *audio.Player
	Images     ImageLookup
	Difficulty config.DifficultyPreset
	Player     string
	Logger     *log.Logger
	ShowFPS    bool
	Scale      float64 // Window size multiplier; 0 means 1
}

// keyBindings maps keys to actions. A key fires once per press.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
}

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game    registry.Game
	surface *Surface
	clock   core.FrameClock
	opts    Options
	state   core.GameState
}

// New wraps a game for the window. The game must already be Reset.
func New(game registry.Game, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{
		game:    game,
		surface: NewSurface(opts.Images),
		opts:    opts,
	}
}

// pollInput collects the actions pressed since the previous update.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			in.Set(b.action)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionJump)
	}
	return in
}

// Update advances the game by the wall time since the previous update.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.step(pollInput(), g.clock.Tick(time.Now()))
	return nil
}

// step runs one frame and hands its events to the collaborators.
func (g *Game) step(in core.InputFrame, dt time.Duration) {
	result := g.game.Step(in, dt)
	g.state = result.State

	if g.opts.Audio != nil {
		g.opts.Audio.PlayEvents(result.Events)
	}
	if result.Has(core.EventCrash) {
		g.saveScore(result.State.Score)
	}
}

// saveScore records a finished run. Failures are logged and play continues.
func (g *Game) saveScore(score int) {
	if g.opts.Store == nil || score <= 0 {
		return
	}
	entry := storage.ScoreEntry{
		GameID:     g.game.ID(),
		Difficulty: g.opts.Difficulty.Label(),
		Player:     g.opts.Player,
		Score:      score,
	}
	if _, err := g.opts.Store.SaveScore(entry); err != nil {
		g.opts.Logger.Error("saving score", "game", entry.GameID, "score", score, "error", err)
		return
	}
	g.opts.Logger.Info("score saved", "game", entry.GameID, "difficulty", entry.Difficulty, "score", score)
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.game.Render(g.surface)
	if g.opts.ShowFPS {
		g.surface.Debug(fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout fixes the logical screen to the world size; Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.game.WorldSize()
	return int(w), int(h)
}

// State returns the game state after the last update.
func (g *Game) State() core.GameState {
	return g.state
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, tickRate int, opts Options) error {
	g := New(game, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := game.WorldSize()
	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if tickRate > 0 {
		ebiten.SetTPS(tickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
