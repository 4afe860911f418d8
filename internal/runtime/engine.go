package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/ports"
)

// Engine is the drive loop. It is immutable after construction and safe for
// concurrent use: all per-call state lives on the stack of Run.
type Engine struct {
	clock    ports.Clock
	logger   *slog.Logger
	factory  ports.ObserverFactory
	progress bool
	target   time.Duration
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger. Breakpoints are logged at Debug.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithObserverFactory sets the per-call observer factory.
func WithObserverFactory(f ports.ObserverFactory) EngineOption {
	return func(e *Engine) {
		e.factory = f
	}
}

// WithProgress enables (progress, result) decoding and remaining-time
// estimation.
func WithProgress(enabled bool) EngineOption {
	return func(e *Engine) {
		e.progress = enabled
	}
}

// WithTargetInterval sets the desired wall-clock interval between
// suspensions. The caller validates it; the engine treats <= 0 as "no
// target".
func WithTargetInterval(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.target = d
	}
}

// NewEngine creates a drive loop bound to the given clock.
func NewEngine(clock ports.Clock, opts ...EngineOption) *Engine {
	e := &Engine{
		clock:  clock,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run drives seq to completion and returns the partial result carried by its
// final suspension.
//
// Per suspension, in order: decode the suspended value, record it as the
// latest result, read the clock once, emit the breakpoint event to the
// observer, compute the pacing signal, and resume the sequence with it.
// Everything is sequential and synchronous; there is no look-ahead or
// buffering of suspension values.
//
// A sequence that completes without ever suspending is a valid degenerate
// call: Run returns the sequence's own completion value and the observer is
// never built.
func (e *Engine) Run(ctx context.Context, seq ports.StepSequence) (result any, err error) {
	var (
		observer    ports.Observer
		first, prev time.Time
		last        any
	)

	defer func() {
		if f, ok := observer.(ports.Finisher); ok {
			f.Finish(ctx, err)
		}
	}()

	value, done, err := seq.Resume(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	if done {
		return value, nil
	}

	for {
		y, err := decode(value, e.progress)
		if err != nil {
			return nil, err
		}
		last = y.Result

		now := e.clock.Now()
		if first.IsZero() {
			first = now
		}

		bp := &domain.Breakpoint{
			Elapsed: now.Sub(first),
			Result:  y.Result,
			Tracked: e.progress,
		}
		if e.progress {
			bp.Progress = y.Progress
			bp.Remaining = remaining(bp.Elapsed, y.Progress)
		}
		e.logger.DebugContext(ctx, "breakpoint",
			"elapsed", bp.Elapsed,
			"progress", bp.Progress,
		)

		if e.factory != nil {
			if observer == nil {
				observer = e.factory()
			}
			if observer != nil {
				if err := observer.Observe(ctx, bp); err != nil {
					return nil, fmt.Errorf("observer: %w", err)
				}
			}
		}

		signal := pacing(e.target, prev, now)
		prev = now

		value, done, err = seq.Resume(ctx, signal)
		if err != nil {
			return nil, fmt.Errorf("resume: %w", err)
		}
		if done {
			return last, nil
		}
	}
}
