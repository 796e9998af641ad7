package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Decoder turns the bytes of one resource into its in-memory form.
type Decoder func(r io.Reader) (any, error)

// Loader loads a fixed set of resources concurrently, one future per resource.
// It is ready once every resource has loaded successfully; a failure is logged
// and leaves the loader permanently not ready.
type Loader struct {
	fsys      fs.FS
	logger    *log.Logger
	resources []Resource
	decoders  map[Kind]Decoder
	futures   map[string]*Future[any]

	loaded   atomic.Int32
	failed   atomic.Int32
	start    sync.Once
	pending  sync.WaitGroup
	finished chan struct{}
}

// NewLoader creates a loader for the given resources read from fsys.
// A nil logger discards log output.
func NewLoader(fsys fs.FS, resources []Resource, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	futures := make(map[string]*Future[any], len(resources))
	for _, res := range resources {
		futures[res.Name] = newFuture[any]()
	}

	return &Loader{
		fsys:      fsys,
		logger:    logger,
		resources: resources,
		decoders:  make(map[Kind]Decoder),
		futures:   futures,
		finished:  make(chan struct{}),
	}
}

// Use registers the decoder for a resource kind. Call before Start.
func (l *Loader) Use(kind Kind, dec Decoder) *Loader {
	l.decoders[kind] = dec
	return l
}

// Start launches one goroutine per resource. Calling it again has no effect.
// Loads still pending when ctx is cancelled resolve with the context error.
func (l *Loader) Start(ctx context.Context) {
	l.start.Do(func() {
		l.pending.Add(len(l.resources))
		for _, res := range l.resources {
			go l.load(ctx, res)
		}
		go func() {
			l.pending.Wait()
			close(l.finished)
		}()
	})
}

func (l *Loader) load(ctx context.Context, res Resource) {
	defer l.pending.Done()
	fut := l.futures[res.Name]

	val, err := l.decode(ctx, res)
	if err != nil {
		fut.resolve(nil, err)
		l.failed.Add(1)
		l.logger.Error("resource failed to load", "name", res.Name, "kind", res.Kind, "path", res.Path, "error", err)
		return
	}

	// Ready counts resolved futures, so a ready loader never misses a Lookup.
	fut.resolve(val, nil)
	n := l.loaded.Add(1)
	l.logger.Debug("resource loaded", "name", res.Name, "progress", fmt.Sprintf("%d/%d", n, len(l.resources)))
	if int(n) == len(l.resources) {
		l.logger.Info("all resources loaded", "count", n)
	}
}

func (l *Loader) decode(ctx context.Context, res Resource) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dec, ok := l.decoders[res.Kind]
	if !ok {
		return nil, fmt.Errorf("assets: no decoder for %s resources", res.Kind)
	}

	f, err := l.fsys.Open(res.Path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", res.Path, err)
	}
	defer f.Close()

	val, err := dec(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", res.Path, err)
	}
	return val, nil
}

// Ready reports whether every resource loaded successfully.
func (l *Loader) Ready() bool {
	return int(l.loaded.Load()) == len(l.resources)
}

// Progress returns how many resources have loaded successfully out of the total.
func (l *Loader) Progress() (loaded, total int) {
	return int(l.loaded.Load()), len(l.resources)
}

// Failed returns how many resources failed to load.
func (l *Loader) Failed() int {
	return int(l.failed.Load())
}

// Future returns the future for a named resource.
func (l *Loader) Future(name string) (*Future[any], bool) {
	f, ok := l.futures[name]
	return f, ok
}

// Wait blocks until every load has finished and been counted, or ctx is done.
// It returns the joined load errors, if any.
func (l *Loader) Wait(ctx context.Context) error {
	var errs []error
	for _, res := range l.resources {
		if _, err := l.futures[res.Name].Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			errs = append(errs, err)
		}
	}

	select {
	case <-l.finished:
	case <-ctx.Done():
		return ctx.Err()
	}
	return errors.Join(errs...)
}

// Lookup returns a successfully loaded resource converted to T.
// It never blocks; ok is false while the resource is pending, failed or of another type.
func Lookup[T any](l *Loader, name string) (T, bool) {
	var zero T
	fut, ok := l.futures[name]
	if !ok {
		return zero, false
	}
	val, done, err := fut.Result()
	if !done || err != nil {
		return zero, false
	}
	typed, ok := val.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
