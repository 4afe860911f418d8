package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/breakpoint"
	"github.com/aretw0/breakpoint/internal/logging"
	"github.com/aretw0/breakpoint/pkg/adapters/process"
)

// ExecOptions configures wrapping an external NDJSON program.
type ExecOptions struct {
	Command  string
	Args     []string
	Interval time.Duration
	Progress bool
	Verbose  bool
	Out      io.Writer
}

// RunExec wraps the given command as a process-backed step sequence and
// drives it to completion, rendering breakpoints as they arrive.
func RunExec(ctx context.Context, opts ExecOptions) error {
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

	run := inst.Wrap(process.Definition(opts.Command, opts.Args,
		process.WithStderr(os.Stderr),
	))

	result, err := run(ctx)
	bar.Done()
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "result: %v\n", result)
	return nil
}
