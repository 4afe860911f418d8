package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/ports"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const barWidth = 30

// Bar renders breakpoint events as a terminal progress bar. When the writer
// is not a terminal it degrades to one plain line per breakpoint, so piped
// output stays readable.
type Bar struct {
	out   io.Writer
	tty   *termenv.Output
	plain bool
}

// NewBar creates a progress bar writing to w.
func NewBar(w io.Writer) *Bar {
	b := &Bar{out: w, plain: true}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b.tty = termenv.NewOutput(f)
		b.plain = false
	}
	return b
}

// Factory returns an observer factory rendering into this bar. The bar keeps
// no per-call state, so sharing one factory across sequential calls is fine;
// concurrent calls would interleave lines in plain mode and fight over the
// cursor in TTY mode.
func (b *Bar) Factory() ports.ObserverFactory {
	return func() ports.Observer {
		return ports.ObserverFunc(b.render)
	}
}

// Done terminates the in-place bar line after a call finishes.
func (b *Bar) Done() {
	if !b.plain {
		fmt.Fprintln(b.out)
	}
}

func (b *Bar) render(ctx context.Context, bp *domain.Breakpoint) error {
	if b.plain {
		_, err := fmt.Fprintln(b.out, plainLine(bp))
		return err
	}

	filled := 0
	if bp.Tracked {
		filled = int(bp.Progress * barWidth)
		if filled > barWidth {
			filled = barWidth
		}
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	p := b.tty.ColorProfile()
	line := fmt.Sprintf("\r%s %s",
		termenv.String(bar).Foreground(p.Color("#818cf8")).String(),
		plainLine(bp),
	)
	_, err := io.WriteString(b.out, line)
	return err
}

func plainLine(bp *domain.Breakpoint) string {
	if !bp.Tracked {
		return fmt.Sprintf("elapsed %s, result %v", bp.Elapsed, bp.Result)
	}
	remaining := "n/a"
	if !math.IsNaN(bp.Remaining) && !math.IsInf(bp.Remaining, 0) {
		remaining = fmt.Sprintf("%.1fs", bp.Remaining)
	}
	return fmt.Sprintf("%3.0f%% elapsed %s, remaining %s, result %v",
		bp.Progress*100, bp.Elapsed, remaining, bp.Result)
}
