// Package seq builds step sequences from generator-style functions.
//
// A Generator runs on its own goroutine and suspends by calling
// Yielder.Yield; the drive loop and the generator rendezvous over two
// unbuffered channels, so resumption is synchronous and exactly one side
// runs at a time. This is the cooperative-task realization of the
// ports.StepSequence contract; explicit state machines implementing the
// interface directly work just as well.
package seq

import (
	"context"
	"fmt"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/ports"
)

// Generator is a generator-style computation. It receives the call's
// arguments, suspends through y, and returns its completion value and error.
// The value returned here only becomes the call result when the generator
// never yields; otherwise the last yield carries the final result.
type Generator func(ctx context.Context, y *Yielder, args ...any) (any, error)

// New returns a definition that starts gen fresh for each call.
func New(gen Generator) ports.Definition {
	return func(args ...any) (ports.StepSequence, error) {
		return &sequence{gen: gen, args: args}, nil
	}
}

// Yielder is the generator's side of the suspension protocol.
type Yielder struct {
	ctx    context.Context
	yields chan<- any
	resume <-chan *float64
}

// errDetached unwinds a generator whose call context ended while it was
// suspended. It is recovered at the goroutine boundary.
type errDetached struct{ cause error }

func (e errDetached) Error() string { return "sequence detached: " + e.cause.Error() }

// Yield suspends the generator with a partial result and blocks until the
// drive loop resumes it, returning the injected pacing signal (nil when none
// is available).
//
// If the call context is cancelled while the generator is suspended, Yield
// unwinds the generator instead of returning; the pending error surfaces on
// the caller's goroutine. Callers that abandon a call mid-flight (for
// example after an observer failure) should cancel the context to release
// the generator goroutine.
func (y *Yielder) Yield(value any) *float64 {
	select {
	case y.yields <- value:
	case <-y.ctx.Done():
		panic(errDetached{cause: y.ctx.Err()})
	}
	select {
	case signal := <-y.resume:
		return signal
	case <-y.ctx.Done():
		panic(errDetached{cause: y.ctx.Err()})
	}
}

// YieldProgress suspends with a (progress, result) pair, the shape expected
// when the instrument has progress tracking enabled.
func (y *Yielder) YieldProgress(progress float64, result any) *float64 {
	return y.Yield(domain.Yield{Progress: progress, Result: result})
}

type outcome struct {
	value any
	err   error
}

type sequence struct {
	gen     Generator
	args    []any
	started bool

	yields chan any
	resume chan *float64
	done   chan outcome
}

func (s *sequence) Resume(ctx context.Context, signal *float64) (any, bool, error) {
	if !s.started {
		s.start(ctx)
	} else {
		select {
		case s.resume <- signal:
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}

	select {
	case value := <-s.yields:
		return value, false, nil
	case out := <-s.done:
		return out.value, true, out.err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

func (s *sequence) start(ctx context.Context) {
	s.started = true
	s.yields = make(chan any)
	s.resume = make(chan *float64)
	s.done = make(chan outcome, 1)

	y := &Yielder{ctx: ctx, yields: s.yields, resume: s.resume}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if det, ok := r.(errDetached); ok {
					s.done <- outcome{err: det.cause}
					return
				}
				s.done <- outcome{err: fmt.Errorf("sequence panic: %v", r)}
			}
		}()
		value, err := s.gen(ctx, y, s.args...)
		s.done <- outcome{value: value, err: err}
	}()
}
