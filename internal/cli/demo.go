package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/breakpoint"
	"github.com/aretw0/breakpoint/internal/logging"
	"github.com/aretw0/breakpoint/pkg/pace"
	"github.com/aretw0/breakpoint/pkg/seq"
)

// DemoOptions configures the built-in demo computation.
type DemoOptions struct {
	Ticks    int           // work iterations
	TickTime time.Duration // simulated work per iteration
	Interval time.Duration // target interval between suspensions; 0 disables pacing
	Progress bool
	Verbose  bool
	Out      io.Writer
}

// RunDemo executes a counting computation that reports progress, sleeps a
// little per iteration, and adapts its suspension frequency to the pacing
// signal through a pace.Alarm.
func RunDemo(ctx context.Context, opts DemoOptions) error {
	logger := logging.NewNop()
	if opts.Verbose {
		logger = logging.New(slog.LevelDebug)
	}

	bar := NewBar(opts.Out)

	instOpts := []breakpoint.Option{
		breakpoint.WithObserver(bar.Factory()),
		breakpoint.WithLogger(logger),
	}
	if opts.Progress {
		instOpts = append(instOpts, breakpoint.WithProgress())
	}
	if opts.Interval > 0 {
		instOpts = append(instOpts, breakpoint.WithTargetInterval(opts.Interval))
	}

	inst, err := breakpoint.New(instOpts...)
	if err != nil {
		return err
	}

	count := inst.Wrap(seq.New(func(ctx context.Context, y *seq.Yielder, args ...any) (any, error) {
		n := args[0].(int)
		tick := args[1].(time.Duration)
		alarm := pace.New()

		for i := 0; i < n; i++ {
			if alarm.Next() {
				alarm.Update(suspend(y, opts.Progress, float64(i)/float64(n), i))
			}
			time.Sleep(tick)
		}
		suspend(y, opts.Progress, 1, n)
		return nil, nil
	}))

	result, err := count(ctx, opts.Ticks, opts.TickTime)
	bar.Done()
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "result: %v\n", result)
	return nil
}

func suspend(y *seq.Yielder, progress bool, fraction float64, value any) *float64 {
	if progress {
		return y.YieldProgress(fraction, value)
	}
	return y.Yield(value)
}
