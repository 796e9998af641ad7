package flappy

import (
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/config"
)

// Pair is a top and bottom obstacle sharing one gap.
type Pair struct {
	Top    *Obstacle
	Bottom *Obstacle
}

// Spawner creates obstacle pairs at a fixed interval with a random gap center.
type Spawner struct {
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	elapsed    float64
}

// NewSpawner creates a spawner whose first Tick produces a pair.
func NewSpawner(cfg *config.FlappyConfig, diff *config.DifficultyManager, seed int64) *Spawner {
	s := &Spawner{cfg: cfg, difficulty: diff}
	s.Reset(seed)
	return s
}

// Reset reseeds the RNG and primes the spawner.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.Prime()
}

// Prime makes the next Tick spawn a pair. The RNG sequence continues.
func (s *Spawner) Prime() {
	s.elapsed = s.cfg.Spawner.Interval
}

// Tick accumulates dt and returns a new pair once the interval has passed.
// score and runTime feed difficulty progression.
func (s *Spawner) Tick(dt float64, score int, runTime float64) (Pair, bool) {
	s.elapsed += dt
	interval := s.difficulty.Interval(s.cfg.Spawner.Interval, score, runTime)
	if s.elapsed < interval {
		return Pair{}, false
	}
	s.elapsed = 0

	jitter := s.cfg.Spawner.CenterJitter
	center := s.cfg.Canvas.Height/2 + (s.rng.Float64()*2-1)*jitter
	gap := s.difficulty.GapSize(s.cfg.Obstacles.Gap, s.cfg.Obstacles.MinGap, score, runTime)
	speed := s.difficulty.Speed(s.cfg.Obstacles.Speed, score, runTime)
	return s.SpawnPair(center, gap, speed), true
}

// SpawnPair builds a pair at the right canvas edge around the given gap center.
// The two heights and the gap always add up to the canvas height.
func (s *Spawner) SpawnPair(center, gap, speed float64) Pair {
	h := s.cfg.Canvas.Height
	x := s.cfg.Canvas.Width
	topH := center - gap/2
	bottomH := h - (center + gap/2)

	return Pair{
		Top:    NewObstacle(s.cfg, Top, x, topH, speed),
		Bottom: NewObstacle(s.cfg, Bottom, x, bottomH, speed),
	}
}
