package flappy

import (
	"fmt"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseLoading Phase = iota // Waiting for assets
	PhaseReady                // Start prompt shown
	PhasePlaying              // Simulation running
	PhaseOver                 // Run ended, final score shown
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Overlay text placement in world pixels.
const (
	scoreY       = 20
	scoreSize    = 30
	messageSize  = 24
	lineSpacing  = 40
	panelWidth   = 420
	panelPadding = 24
)

// Session owns all state of one game: flyer, obstacles, score and phase.
// It is driven by a single frame loop and is not safe for concurrent use.
type Session struct {
	cfg        *config.FlappyConfig
	assets     core.Readiness
	difficulty *config.DifficultyManager

	phase   Phase
	paused  bool
	score   int
	runTime float64 // Seconds of unpaused play in the current run

	flyer      *Flyer
	obstacles  []*Obstacle // Creation order
	spawner    *Spawner
	background *Background

	events []core.Event // Pending until the next Update
}

// NewSession creates a session in the Loading phase. A nil readiness
// means there is nothing to wait for.
func NewSession(cfg *config.FlappyConfig, assets core.Readiness, seed int64) *Session {
	diff := config.NewDifficultyManager(cfg.Difficulty)
	s := &Session{
		cfg:        cfg,
		assets:     assets,
		difficulty: diff,
		phase:      PhaseLoading,
		spawner:    NewSpawner(cfg, diff, seed),
		background: NewBackground(cfg),
	}
	s.resetRun()
	return s
}

func (s *Session) resetRun() {
	s.flyer = NewFlyer(s.cfg)
	s.obstacles = s.obstacles[:0]
	s.score = 0
	s.runTime = 0
	s.paused = false
	s.spawner.Prime()
}

func (s *Session) assetsReady() bool {
	return s.assets == nil || s.assets.Ready()
}

// Activate starts the run from the start prompt, or applies an impulse
// while playing. It does nothing in other phases or while paused.
func (s *Session) Activate() {
	switch s.phase {
	case PhaseReady:
		if !s.assetsReady() {
			return
		}
		s.resetRun()
		s.phase = PhasePlaying
	case PhasePlaying:
		if s.paused {
			return
		}
		s.flyer.Impulse()
		s.events = append(s.events, core.EventFlap)
	}
}

// Restart begins a new run after a game over.
func (s *Session) Restart() {
	if s.phase != PhaseOver {
		return
	}
	s.resetRun()
	s.phase = PhasePlaying
}

// TogglePause pauses or resumes a running game.
func (s *Session) TogglePause() {
	if s.phase == PhasePlaying {
		s.paused = !s.paused
	}
}

// Update advances the session by dt seconds and returns the events
// since the previous call. dt is clamped to the configured maximum step.
func (s *Session) Update(dt float64) []core.Event {
	dt = core.ClampF(dt, 0, s.cfg.Physics.MaxFrameStep)

	if s.phase == PhaseLoading && s.assetsReady() {
		s.phase = PhaseReady
	}

	if !s.paused {
		s.background.Update(dt)
	}
	if s.phase == PhasePlaying && !s.paused {
		s.simulate(dt)
	}

	events := s.events
	s.events = nil
	return events
}

func (s *Session) simulate(dt float64) {
	s.runTime += dt

	if s.flyer.Update(dt) {
		s.end()
		return
	}

	if pair, ok := s.spawner.Tick(dt, s.score, s.runTime); ok {
		s.obstacles = append(s.obstacles, pair.Top, pair.Bottom)
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Update(dt)
		if !o.IsOffscreen() {
			kept = append(kept, o)
		}
	}
	clear(s.obstacles[len(kept):])
	s.obstacles = kept

	hit, scored := CheckCollisions(s.flyer, s.obstacles)
	for i := 0; i < scored; i++ {
		s.score++
		s.events = append(s.events, core.EventScore)
	}
	if hit {
		s.end()
	}
}

func (s *Session) end() {
	s.phase = PhaseOver
	s.paused = false
	s.events = append(s.events, core.EventCrash)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the score of the current or last run.
func (s *Session) Score() int { return s.score }

// Paused reports whether a running game is paused.
func (s *Session) Paused() bool { return s.paused }

// Flyer returns the current flyer.
func (s *Session) Flyer() *Flyer { return s.flyer }

// Obstacles returns the live obstacles in creation order.
func (s *Session) Obstacles() []*Obstacle { return s.obstacles }

// Background returns the parallax background.
func (s *Session) Background() *Background { return s.background }

// State summarizes the session for frontends.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Loading:  s.phase == PhaseLoading,
		Started:  s.phase == PhasePlaying || s.phase == PhaseOver,
		GameOver: s.phase == PhaseOver,
		Paused:   s.paused,
	}
}

// Draw renders the whole frame: background, obstacles, flyer, then the
// overlay for the current phase.
func (s *Session) Draw(dst core.Surface) {
	dst.Clear()
	s.background.Draw(dst)
	for _, o := range s.obstacles {
		o.Draw(dst)
	}
	s.flyer.Draw(dst)

	switch s.phase {
	case PhaseLoading:
		loaded, total := 0, 0
		if s.assets != nil {
			loaded, total = s.assets.Progress()
		}
		s.drawMessage(dst, "Loading resources...", fmt.Sprintf("%d / %d", loaded, total))
	case PhaseReady:
		s.drawMessage(dst, "SKYHOP", "Press SPACE to start")
	case PhasePlaying:
		s.drawScore(dst)
		if s.paused {
			s.drawMessage(dst, "PAUSED", "Press P to resume")
		}
	case PhaseOver:
		s.drawScore(dst)
		s.drawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", s.score), "Press R to restart")
	}
}

func (s *Session) drawScore(dst core.Surface) {
	dst.Text(s.cfg.Canvas.Width/2, scoreY, fmt.Sprintf("Score: %d", s.score), core.TextStyle{
		Size:    scoreSize,
		Align:   core.AlignCenter,
		Fill:    core.ColorWhite,
		Outline: core.ColorBlack,
	})
}

// drawMessage draws centered lines on a panel in the middle of the canvas.
func (s *Session) drawMessage(dst core.Surface, lines ...string) {
	w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height
	panelH := float64(len(lines)*lineSpacing + panelPadding)
	panel := core.NewRect((w-panelWidth)/2, (h-panelH)/2, panelWidth, panelH)
	dst.Panel(panel)

	for i, line := range lines {
		fill := core.ColorWhite
		if i == 0 {
			fill = core.ColorBrightYellow
		}
		dst.Text(w/2, panel.Y+panelPadding/2+float64(i*lineSpacing), line, core.TextStyle{
			Size:  messageSize,
			Align: core.AlignCenter,
			Fill:  fill,
		})
	}
}
