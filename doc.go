/*
Package breakpoint instruments long-running, stepwise computations.

It wraps a resumable step sequence (a computation that periodically suspends
instead of running to completion in one shot) into an ordinary callable. At
every suspension point a caller-supplied observer receives the elapsed time,
the partial result and, when enabled, the reported progress and an estimated
remaining time. Optionally the drive loop also feeds a pacing multiplier back
into the computation so it can converge on a target wall-clock interval
between suspensions.

# Concept

The hard contract is small: a step sequence suspends with partial results,
its last suspension carries the definitive final result, and the wrapped
callable returns exactly that. The core never enforces pacing, never
parallelizes, and never retains breakpoint history beyond the active call.

# Usage

Build an Instrument once, then wrap as many definitions as needed. Wrapped
callables are independent; concurrent calls each own their state.

	package main

	import (
		"context"
		"fmt"
		"os"
		"time"

		"github.com/aretw0/breakpoint"
		"github.com/aretw0/breakpoint/pkg/observers"
		"github.com/aretw0/breakpoint/pkg/seq"
	)

	func main() {
		inst, err := breakpoint.New(
			breakpoint.WithProgress(),
			breakpoint.WithTargetInterval(2*time.Second),
			breakpoint.WithObserver(observers.Writer(os.Stderr)),
		)
		if err != nil {
			panic(err)
		}

		countTo := inst.Wrap(seq.New(func(ctx context.Context, y *seq.Yielder, args ...any) (any, error) {
			n := args[0].(int)
			for i := 0; i < n; i++ {
				y.YieldProgress(float64(i)/float64(n), i)
				time.Sleep(time.Second)
			}
			y.YieldProgress(1, n)
			return nil, nil
		}))

		result, err := countTo(context.Background(), 3)
		fmt.Println(result, err) // 3 <nil>
	}

Step sequences can also be explicit state machines (implement
ports.StepSequence directly) or external processes speaking NDJSON
(pkg/adapters/process). Sequences that honor the pacing signal usually do so
through pace.Alarm.
*/
package breakpoint
