package audio

import (
	"context"

	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/core"
)

var boundEvents = []core.Event{core.EventFlap, core.EventScore, core.EventCrash}

// BindLoader binds every event sound as soon as the loader resolves it.
// Missing or failed sounds leave their event silent. The returned channel is
// closed once every sound has been handled or ctx is done.
func (p *Player) BindLoader(ctx context.Context, l *assets.Loader) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		for _, ev := range boundEvents {
			name, ok := assets.SoundFor(ev)
			if !ok {
				continue
			}
			fut, ok := l.Future(name)
			if !ok {
				continue
			}
			val, err := fut.Wait(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				continue
			}
			if clip, ok := val.(*Clip); ok {
				p.Bind(ev, clip)
			}
		}
	}()

	return done
}
