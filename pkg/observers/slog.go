package observers

import (
	"context"
	"log/slog"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/ports"
)

// Slog returns a factory whose observers log one structured record per
// breakpoint. Progress and remaining attributes appear only when the call
// tracks progress.
func Slog(logger *slog.Logger) ports.ObserverFactory {
	return func() ports.Observer {
		return ports.ObserverFunc(func(ctx context.Context, bp *domain.Breakpoint) error {
			args := []any{
				slog.Duration("elapsed", bp.Elapsed),
				slog.Any("result", bp.Result),
			}
			if bp.Tracked {
				args = append(args,
					slog.Float64("progress", bp.Progress),
					slog.Float64("remaining_seconds", bp.Remaining),
				)
			}
			logger.InfoContext(ctx, "breakpoint", args...)
			return nil
		})
	}
}
