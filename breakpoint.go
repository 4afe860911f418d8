package breakpoint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/breakpoint/internal/logging"
	"github.com/aretw0/breakpoint/internal/runtime"
	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/ports"
)

// Func is a wrapped step-sequence definition: an ordinary callable. The
// returned value is the partial result carried by the sequence's final
// suspension (or, for sequences that complete without suspending, their own
// completion value).
type Func func(ctx context.Context, args ...any) (any, error)

// Instrument is the transform factory. It validates its configuration once,
// at construction, and then wraps any number of definitions. Immutable after
// New; safe for concurrent use.
type Instrument struct {
	factory   ports.ObserverFactory
	progress  bool
	target    time.Duration
	hasTarget bool
	clock     ports.Clock
	logger    *slog.Logger

	engine *runtime.Engine
}

// Option defines a functional option for configuring the Instrument.
type Option func(*Instrument)

// WithObserver registers an observer factory. The factory is invoked once
// per call to build that call's observer; the instance receives every
// breakpoint of the call and is never shared across calls.
func WithObserver(f ports.ObserverFactory) Option {
	return func(in *Instrument) {
		in.factory = f
	}
}

// WithProgress enables progress tracking: suspension values are decoded as
// (progress, result) pairs and breakpoints carry a remaining-time estimate.
func WithProgress() Option {
	return func(in *Instrument) {
		in.progress = true
	}
}

// WithTargetInterval sets the desired wall-clock interval between
// suspensions. The interval must be strictly positive; New fails with
// domain.ErrInvalidInterval otherwise.
func WithTargetInterval(d time.Duration) Option {
	return func(in *Instrument) {
		in.target = d
		in.hasTarget = true
	}
}

// WithClock injects a custom time source. Intended for simulated time in
// tests; defaults to the process monotonic clock.
func WithClock(c ports.Clock) Option {
	return func(in *Instrument) {
		if c != nil {
			in.clock = c
		}
	}
}

// WithLogger sets a structured logger for the drive loop. Defaults to a
// no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Instrument) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// New builds an Instrument. Configuration is validated here, before any call
// runs: a zero or negative target interval is rejected with
// domain.ErrInvalidInterval and no transform is produced.
func New(opts ...Option) (*Instrument, error) {
	in := &Instrument{
		clock:  systemClock{},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(in)
	}

	if in.hasTarget && in.target <= 0 {
		return nil, fmt.Errorf("%w: got %v", domain.ErrInvalidInterval, in.target)
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithLogger(in.logger),
		runtime.WithObserverFactory(in.factory),
		runtime.WithProgress(in.progress),
	}
	if in.hasTarget {
		engineOpts = append(engineOpts, runtime.WithTargetInterval(in.target))
	}
	in.engine = runtime.NewEngine(in.clock, engineOpts...)

	return in, nil
}

// Wrap turns a step-sequence definition into an ordinary callable with the
// same argument surface. Wrapping is referentially transparent: repeated
// applications produce independent, non-interfering callables, and
// concurrent calls to one callable each instantiate their own sequence.
//
// The returned Func propagates any error from the definition, the sequence,
// or the observer unmodified; there are no retries and no partial-result
// substitution.
func (in *Instrument) Wrap(def ports.Definition) Func {
	engine := in.engine
	return func(ctx context.Context, args ...any) (any, error) {
		seq, err := def(args...)
		if err != nil {
			return nil, fmt.Errorf("build sequence: %w", err)
		}
		return engine.Run(ctx, seq)
	}
}

// systemClock reads the process monotonic clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
