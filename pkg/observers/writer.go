package observers

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/ports"
)

// Writer returns a factory whose observers print one compact line per
// breakpoint to w. Useful for examples and quick CLI output; write errors
// abort the call.
func Writer(w io.Writer) ports.ObserverFactory {
	return func() ports.Observer {
		return ports.ObserverFunc(func(ctx context.Context, bp *domain.Breakpoint) error {
			var err error
			if bp.Tracked {
				_, err = fmt.Fprintf(w, "elapsed=%s progress=%.2f remaining=%.2fs result=%v\n",
					bp.Elapsed, bp.Progress, bp.Remaining, bp.Result)
			} else {
				_, err = fmt.Fprintf(w, "elapsed=%s result=%v\n", bp.Elapsed, bp.Result)
			}
			return err
		})
	}
}
