package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

const tick = time.Second / 60

func input(actions ...core.Action) core.InputFrame {
	return core.FrameOf(actions...)
}

func TestGameDeterminism(t *testing.T) {
	// same seed and inputs must produce identical runs
	script := make([]core.InputFrame, 600)
	for i := range script {
		script[i] = core.NewInputFrame()
		if i == 1 || i%22 == 0 {
			script[i].Set(core.ActionJump)
		}
	}

	run := func() (core.GameState, []float64, float64) {
		g := New(testConfig(), nil)
		g.Reset(core.RuntimeConfig{Seed: 12345})
		var state core.GameState
		for _, in := range script {
			state = g.Step(in, tick).State
			if state.GameOver {
				break
			}
		}
		var heights []float64
		for _, o := range g.Session().Obstacles() {
			heights = append(heights, o.Height)
		}
		return state, heights, g.Session().Flyer().Y
	}

	s1, h1, y1 := run()
	s2, h2, y2 := run()

	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if y1 != y2 {
		t.Errorf("flyer y differs: %v vs %v", y1, y2)
	}
	if len(h1) != len(h2) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(h1), len(h2))
	}
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Errorf("obstacle %d height differs: %v vs %v", i, h1[i], h2[i])
		}
	}
}

func TestGameInputMapping(t *testing.T) {
	g := New(testConfig(), nil)
	g.Reset(core.RuntimeConfig{Seed: 1})

	res := g.Step(input(), tick)
	if res.State.Started || res.State.Loading {
		t.Fatalf("state = %+v, want ready", res.State)
	}

	res = g.Step(input(core.ActionJump), tick)
	if !res.State.Started {
		t.Fatal("jump did not start the run")
	}
	if res.Has(core.EventFlap) {
		t.Error("starting the run emitted a flap")
	}

	res = g.Step(input(core.ActionJump), tick)
	if !res.Has(core.EventFlap) {
		t.Error("jump while playing did not flap")
	}

	res = g.Step(input(core.ActionPause), tick)
	if !res.State.Paused {
		t.Error("pause action did not pause")
	}
	res = g.Step(input(core.ActionPause), tick)
	if res.State.Paused {
		t.Error("second pause action did not resume")
	}

	for i := 0; i < 600 && !res.State.GameOver; i++ {
		res = g.Step(input(), tick)
	}
	if !res.State.GameOver {
		t.Fatal("run never ended without input")
	}

	res = g.Step(input(core.ActionJump), tick)
	if !res.State.GameOver {
		t.Error("jump restarted a finished run")
	}
	res = g.Step(input(core.ActionRestart), tick)
	if res.State.GameOver || !res.State.Started || res.State.Score != 0 {
		t.Errorf("restart state = %+v", res.State)
	}
}

func TestGameConfirmStartsFromReady(t *testing.T) {
	g := New(testConfig(), nil)
	g.Step(input(), tick)
	res := g.Step(input(core.ActionConfirm), tick)
	if !res.State.Started {
		t.Error("confirm did not start the run")
	}
}

func TestGameLoadingState(t *testing.T) {
	g := New(testConfig(), &fakeAssets{total: 3})
	res := g.Step(input(core.ActionJump), tick)
	if !res.State.Loading || res.State.Started {
		t.Errorf("state = %+v, want loading", res.State)
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatal("flappy is not registered")
	}

	g, err := registry.Create(ID, registry.Env{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if w, h := g.WorldSize(); w != 800 || h != 600 {
		t.Errorf("WorldSize() = %vx%v, want 800x600", w, h)
	}

	bad := testConfig()
	bad.Canvas.Width = 0
	if _, err := registry.Create(ID, registry.Env{Config: bad}); err == nil {
		t.Error("invalid config accepted")
	}
}

func TestGameRender(t *testing.T) {
	g := New(testConfig(), nil)
	g.Step(input(), tick)

	var rec recorder
	g.Render(&rec)
	if rec.clears != 1 || len(rec.panels) != 1 {
		t.Errorf("clears = %d panels = %d, want 1/1", rec.clears, len(rec.panels))
	}
}
