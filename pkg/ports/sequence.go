package ports

import "context"

// StepSequence is a resumable computation: it runs until it reaches a
// suspension point, hands a value back to the drive loop, and waits to be
// resumed.
//
// The contract, from the drive loop's side:
//
//   - The first Resume call injects a nil signal.
//   - Each later call injects the current pacing signal (nil when no target
//     interval is configured or no interval has been measured yet). The
//     signal is advisory; sequences are free to ignore it.
//   - Resume returns (value, false, nil) at a suspension point and
//     (value, true, nil) on completion. The last suspension must carry the
//     definitive final result of the computation; a completion value is only
//     meaningful for sequences that finish without ever suspending.
//   - Resumption is synchronous: Resume must not return before the sequence
//     has either suspended again or completed.
type StepSequence interface {
	Resume(ctx context.Context, signal *float64) (value any, done bool, err error)
}

// Definition builds a fresh StepSequence for one call, from that call's
// arguments. Concurrent calls to the same wrapped callable each get their
// own sequence; definitions must not share mutable state between the
// sequences they build.
type Definition func(args ...any) (StepSequence, error)
