// Package audio plays the short sound effects tied to game events.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/skyhop/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	// resampleQuality is beep's recommended default.
	resampleQuality = 4
)

// Clip is a fully decoded sound held in memory so it can be replayed.
type Clip struct {
	buf *beep.Buffer
}

// DecodeWAV reads a whole WAV stream into a Clip.
func DecodeWAV(r io.Reader) (*Clip, error) {
	s, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("audio: decode wav: %w", err)
	}
	defer s.Close()

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: read wav: %w", err)
	}
	return &Clip{buf: buf}, nil
}

// Decode is the asset loader decoder for sound resources.
func Decode(r io.Reader) (any, error) {
	return DecodeWAV(r)
}

// Duration returns the clip length.
func (c *Clip) Duration() time.Duration {
	return c.buf.Format().SampleRate.D(c.buf.Len())
}

// SampleRate returns the clip's native sample rate.
func (c *Clip) SampleRate() int {
	return int(c.buf.Format().SampleRate)
}

func (c *Clip) streamer() beep.Streamer {
	s := beep.Streamer(c.buf.Streamer(0, c.buf.Len()))
	if rate := c.buf.Format().SampleRate; rate != sampleRate {
		s = beep.Resample(resampleQuality, rate, sampleRate, s)
	}
	return s
}

// Player mixes event sounds onto the speaker.
// All methods are safe for concurrent use and are no-ops until Initialize succeeds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	clips       map[core.Event]*Clip
	initialized bool
}

// NewPlayer creates a player with no bound sounds.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		clips: make(map[core.Event]*Clip),
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Bind associates a clip with a game event. A nil clip unbinds it.
func (p *Player) Bind(ev core.Event, clip *Clip) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if clip == nil {
		delete(p.clips, ev)
		return
	}
	p.clips[ev] = clip
}

// Bound reports whether an event has a clip.
func (p *Player) Bound(ev core.Event) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.clips[ev]
	return ok
}

// PlayEvents starts the clip of every bound event in order.
func (p *Player) PlayEvents(events []core.Event) {
	for _, ev := range events {
		p.Play(ev)
	}
}

// Play starts the clip bound to ev, mixing it over anything already playing.
func (p *Player) Play(ev core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	clip, ok := p.clips[ev]
	if !p.initialized || !ok {
		return
	}

	speaker.Lock()
	p.mixer.Add(clip.streamer())
	speaker.Unlock()
}

// Close silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	// beep has no speaker shutdown; the mixer stays attached but silent
	p.initialized = false
}
