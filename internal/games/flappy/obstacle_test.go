package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

func TestObstacleOrientationRects(t *testing.T) {
	cfg := testConfig()
	top := NewObstacle(cfg, Top, 100, 200, 120)
	bottom := NewObstacle(cfg, Bottom, 100, 250, 120)

	if want := core.NewRect(100, 0, 80, 200); top.Rect() != want {
		t.Errorf("top Rect() = %+v, want %+v", top.Rect(), want)
	}
	if want := core.NewRect(100, 350, 80, 250); bottom.Rect() != want {
		t.Errorf("bottom Rect() = %+v, want %+v", bottom.Rect(), want)
	}
	if want := core.NewRect(104, 354, 72, 242); bottom.Bounds() != want {
		t.Errorf("bottom Bounds() = %+v, want %+v", bottom.Bounds(), want)
	}
}

func TestObstacleUpdate(t *testing.T) {
	o := NewObstacle(testConfig(), Top, 800, 100, 120)
	o.Update(0.5)
	if o.X != 740 {
		t.Errorf("X = %v, want 740", o.X)
	}
}

func TestObstacleIsOffscreen(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{-90, true},  // right edge at -10
		{-80, false}, // right edge at 0
		{-10, false},
		{0, false},
		{800, false},
	}

	for _, tt := range tests {
		o := NewObstacle(testConfig(), Top, tt.x, 100, 120)
		if got := o.IsOffscreen(); got != tt.want {
			t.Errorf("x=%v: IsOffscreen() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSpawnPairHeights(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(cfg, config.NewDifficultyManager(cfg.Difficulty), 1)

	p := s.SpawnPair(300, 200, 120)
	if p.Top.Height != 200 || p.Bottom.Height != 200 {
		t.Errorf("heights = %v/%v, want 200/200", p.Top.Height, p.Bottom.Height)
	}
	if p.Top.X != 800 || p.Bottom.X != 800 {
		t.Errorf("x = %v/%v, want 800", p.Top.X, p.Bottom.X)
	}
	if p.Top.Orientation != Top || p.Bottom.Orientation != Bottom {
		t.Error("pair orientations are wrong")
	}
}

func TestSpawnerPairInvariant(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(cfg, config.NewDifficultyManager(cfg.Difficulty), 99)

	for i := 0; i < 500; i++ {
		p, ok := s.Tick(cfg.Spawner.Interval, 0, 0)
		if !ok {
			t.Fatalf("tick %d: no pair after a full interval", i)
		}
		sum := p.Top.Height + p.Bottom.Height + cfg.Obstacles.Gap
		if math.Abs(sum-cfg.Canvas.Height) > 1e-6 {
			t.Fatalf("tick %d: top+bottom+gap = %v, want %v", i, sum, cfg.Canvas.Height)
		}
		center := p.Top.Height + cfg.Obstacles.Gap/2
		if center < 300-75 || center > 300+75 {
			t.Fatalf("tick %d: gap center %v outside jitter range", i, center)
		}
	}
}

func TestSpawnerInvariantWithDifficulty(t *testing.T) {
	cfg := testConfig()
	config.ApplyFlappyPreset(cfg, config.DifficultyHard)
	s := NewSpawner(cfg, config.NewDifficultyManager(cfg.Difficulty), 5)

	for score := 0; score < 60; score++ {
		p, ok := s.Tick(cfg.Spawner.Interval, score, 0)
		if !ok {
			t.Fatalf("score %d: no pair", score)
		}
		gap := cfg.Canvas.Height - p.Top.Height - p.Bottom.Height
		if gap < cfg.Obstacles.MinGap-1e-6 || gap > cfg.Obstacles.Gap+1e-6 {
			t.Errorf("score %d: gap %v outside [%v, %v]", score, gap, cfg.Obstacles.MinGap, cfg.Obstacles.Gap)
		}
		if p.Top.Speed != p.Bottom.Speed || p.Top.Speed < cfg.Obstacles.Speed {
			t.Errorf("score %d: speeds %v/%v", score, p.Top.Speed, p.Bottom.Speed)
		}
	}
}

func TestSpawnerTiming(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(cfg, config.NewDifficultyManager(cfg.Difficulty), 1)

	if _, ok := s.Tick(0, 0, 0); !ok {
		t.Fatal("first tick should spawn")
	}
	if _, ok := s.Tick(1.0, 0, 0); ok {
		t.Fatal("spawned before the interval elapsed")
	}
	if _, ok := s.Tick(0.5, 0, 0); !ok {
		t.Fatal("no spawn once the interval elapsed")
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	cfg := testConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	a := NewSpawner(cfg, diff, 42)
	b := NewSpawner(cfg, diff, 42)

	for i := 0; i < 20; i++ {
		pa, _ := a.Tick(2, 0, 0)
		pb, _ := b.Tick(2, 0, 0)
		if pa.Top.Height != pb.Top.Height {
			t.Fatalf("pair %d differs: %v vs %v", i, pa.Top.Height, pb.Top.Height)
		}
	}
}

func TestCheckCollisionsEdges(t *testing.T) {
	cfg := testConfig()
	f := NewFlyer(cfg) // bounds x 55..95, y 280..305

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"touching right edge", 91, false}, // bounds start at 95
		{"overlapping by a fraction", 90.9, true},
		{"touching left edge", 55 - 4 - 72, false}, // bounds end at 55
		{"well clear", 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewObstacle(cfg, Top, tt.x, 400, 120)
			hit, _ := CheckCollisions(f, []*Obstacle{o})
			if hit != tt.want {
				t.Errorf("hit = %v, want %v", hit, tt.want)
			}
		})
	}
}

func TestCheckCollisionsVerticalMiss(t *testing.T) {
	cfg := testConfig()
	f := NewFlyer(cfg)
	// horizontally overlapping, but the top half ends above the flyer
	o := NewObstacle(cfg, Top, 50, 200, 120)
	if hit, _ := CheckCollisions(f, []*Obstacle{o}); hit {
		t.Error("obstacle above the flyer reported a hit")
	}
}

func TestScoringCountsPairOnce(t *testing.T) {
	cfg := testConfig()
	f := NewFlyer(cfg)
	s := NewSpawner(cfg, config.NewDifficultyManager(cfg.Difficulty), 1)
	p := s.SpawnPair(300, 200, 120)
	p.Top.X, p.Bottom.X = -30, -30 // right edge 50, left of the flyer bounds
	obstacles := []*Obstacle{p.Top, p.Bottom}

	total := 0
	for frame := 0; frame < 5; frame++ {
		hit, scored := CheckCollisions(f, obstacles)
		if hit {
			t.Fatal("unexpected hit")
		}
		total += scored
	}
	if total != 1 {
		t.Errorf("score = %d, want 1", total)
	}
	if !p.Top.Counted || p.Bottom.Counted {
		t.Errorf("counted top=%v bottom=%v, want true/false", p.Top.Counted, p.Bottom.Counted)
	}
}

func TestScoringStopsAtHit(t *testing.T) {
	cfg := testConfig()
	f := NewFlyer(cfg)
	passed := func() *Obstacle { return NewObstacle(cfg, Top, -30, 100, 120) }
	hitting := func() *Obstacle { return NewObstacle(cfg, Top, 50, 400, 120) }

	hit, scored := CheckCollisions(f, []*Obstacle{hitting(), passed()})
	if !hit || scored != 0 {
		t.Errorf("hit first: hit=%v scored=%d, want true/0", hit, scored)
	}

	hit, scored = CheckCollisions(f, []*Obstacle{passed(), hitting()})
	if !hit || scored != 1 {
		t.Errorf("passed first: hit=%v scored=%d, want true/1", hit, scored)
	}
}

func TestBackgroundLayers(t *testing.T) {
	b := NewBackground(testConfig())
	if len(b.Layers) != 3 {
		t.Fatalf("layers = %d, want 3", len(b.Layers))
	}
	for i := 1; i < len(b.Layers); i++ {
		if b.Layers[i].Speed <= b.Layers[i-1].Speed {
			t.Errorf("layer %d speed %v not faster than layer %d", i, b.Layers[i].Speed, i-1)
		}
	}
}

func TestBackgroundWrap(t *testing.T) {
	b := NewBackground(testConfig())
	b.Layers[0].Offset = -700
	b.Layers[1].Offset = -790

	b.Update(1) // layer 0 moves 30, layer 1 moves 60

	if b.Layers[0].Offset != -730 {
		t.Errorf("layer 0 offset = %v, want -730", b.Layers[0].Offset)
	}
	if b.Layers[1].Offset != 0 {
		t.Errorf("layer 1 offset = %v, want wrapped to 0", b.Layers[1].Offset)
	}
}

func TestBackgroundDrawTwice(t *testing.T) {
	b := NewBackground(testConfig())
	b.Layers = b.Layers[:1]
	b.Layers[0].Offset = -100

	var rec recorder
	b.Draw(&rec)

	if len(rec.blits) != 2 {
		t.Fatalf("blits = %d, want 2", len(rec.blits))
	}
	if rec.blits[0].dst.X != -100 || rec.blits[1].dst.X != 700 {
		t.Errorf("blit x = %v, %v, want -100, 700", rec.blits[0].dst.X, rec.blits[1].dst.X)
	}
}
