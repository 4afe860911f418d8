package ports

import (
	"context"

	"github.com/aretw0/breakpoint/pkg/domain"
)

// Observer receives breakpoint events for a single call. It is a
// side-effecting sink: its return value is only consulted for failure, never
// as a control input. A non-nil error aborts the call immediately.
//
// Observers are invoked synchronously between suspensions and must return
// before the sequence is resumed.
type Observer interface {
	Observe(ctx context.Context, bp *domain.Breakpoint) error
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx context.Context, bp *domain.Breakpoint) error

func (f ObserverFunc) Observe(ctx context.Context, bp *domain.Breakpoint) error {
	return f(ctx, bp)
}

// ObserverFactory builds one Observer per call. The factory is invoked at
// most once per call, lazily before the first event, and the resulting
// instance receives every event of that call. This keeps observer state
// call-owned instead of shared across concurrent calls.
type ObserverFactory func() Observer

// Finisher is implemented by observers that want to know when their call
// ends. Finish runs after the last event, whether the call completed or
// failed; err is the call's error, nil on success.
type Finisher interface {
	Finish(ctx context.Context, err error)
}
