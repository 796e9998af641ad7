package audio

import (
	"bytes"
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/core"
)

func TestDecodeEmbeddedSounds(t *testing.T) {
	tests := []struct {
		name string
		min  time.Duration
		max  time.Duration
	}{
		{assets.SoundFlap, 100 * time.Millisecond, 150 * time.Millisecond},
		{assets.SoundScore, 200 * time.Millisecond, 300 * time.Millisecond},
		{assets.SoundHit, 300 * time.Millisecond, 400 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := fs.ReadFile(assets.Embedded(), "sounds/"+tt.name+".wav")
			if err != nil {
				t.Fatal(err)
			}
			clip, err := DecodeWAV(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if d := clip.Duration(); d < tt.min || d > tt.max {
				t.Errorf("duration = %v, want between %v and %v", d, tt.min, tt.max)
			}
			if clip.SampleRate() != 22050 {
				t.Errorf("sample rate = %d, want 22050", clip.SampleRate())
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not a wav file"))); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer()
	clip := &Clip{}
	p.Bind(core.EventFlap, clip)
	if !p.Bound(core.EventFlap) {
		t.Fatal("flap not bound")
	}

	// not initialized: playing must be a silent no-op
	p.PlayEvents([]core.Event{core.EventFlap, core.EventScore})
	p.Close()

	p.Bind(core.EventFlap, nil)
	if p.Bound(core.EventFlap) {
		t.Error("flap still bound after unbinding")
	}
}

func TestBindLoader(t *testing.T) {
	resources := []assets.Resource{
		{Name: assets.SoundFlap, Kind: assets.KindSound, Path: "sounds/flap.wav"},
		{Name: assets.SoundScore, Kind: assets.KindSound, Path: "sounds/score.wav"},
		{Name: assets.SoundHit, Kind: assets.KindSound, Path: "sounds/missing.wav"},
	}
	l := assets.NewLoader(assets.Embedded(), resources, nil).Use(assets.KindSound, Decode)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	l.Start(ctx)

	p := NewPlayer()
	select {
	case <-p.BindLoader(ctx, l):
	case <-ctx.Done():
		t.Fatal("timed out binding sounds")
	}

	if !p.Bound(core.EventFlap) || !p.Bound(core.EventScore) {
		t.Error("loaded sounds not bound")
	}
	if p.Bound(core.EventCrash) {
		t.Error("failed sound bound")
	}
}
