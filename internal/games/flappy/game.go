// Package flappy implements the gap-flying game: a flyer falls under
// gravity and must pass through scrolling obstacle pairs by timing impulses.
package flappy

import (
	"time"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "flappy"

// Game adapts a Session to the registry.Game interface.
type Game struct {
	cfg     *config.FlappyConfig
	assets  core.Readiness
	session *Session
}

// New creates a game with the given tuning. A nil readiness skips loading.
func New(cfg *config.FlappyConfig, assets core.Readiness) *Game {
	g := &Game{cfg: cfg, assets: assets}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyhop"
}

// Reset replaces the session with a fresh one seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = NewSession(g.cfg, g.assets, cfg.Seed)
}

// Step maps the frame's actions onto the session and advances it by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	s := g.session

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionJump) {
		s.Activate()
	}
	if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
		switch s.Phase() {
		case PhaseOver:
			s.Restart()
		case PhaseReady:
			s.Activate()
		}
	}

	events := s.Update(dt.Seconds())
	return core.StepResult{State: s.State(), Events: events}
}

// Render draws the current frame.
func (g *Game) Render(dst core.Surface) {
	g.session.Draw(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// WorldSize returns the canvas size.
func (g *Game) WorldSize() (w, h float64) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: "Skyhop"}, func(env registry.Env) (registry.Game, error) {
		cfg := env.Config
		if cfg == nil {
			def := config.DefaultFlappyConfig()
			cfg = &def
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return New(cfg, env.Assets), nil
	})
}
