package observers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// redisEvent is the wire shape published per breakpoint. Remaining is
// omitted when the estimate is NaN or infinite, since JSON cannot carry
// those values.
type redisEvent struct {
	ElapsedSeconds float64  `json:"elapsed_seconds"`
	Result         any      `json:"result"`
	Progress       *float64 `json:"progress,omitempty"`
	Remaining      *float64 `json:"remaining_seconds,omitempty"`
}

// Redis returns a factory whose observers publish each breakpoint as JSON on
// a pub/sub channel, for live monitoring of in-flight calls. Nothing is
// retained: subscribers only see events while a call runs.
func Redis(client *backend.Client, channel string) ports.ObserverFactory {
	return func() ports.Observer {
		return ports.ObserverFunc(func(ctx context.Context, bp *domain.Breakpoint) error {
			ev := redisEvent{
				ElapsedSeconds: bp.Elapsed.Seconds(),
				Result:         bp.Result,
			}
			if bp.Tracked {
				p := bp.Progress
				ev.Progress = &p
				if !math.IsNaN(bp.Remaining) && !math.IsInf(bp.Remaining, 0) {
					r := bp.Remaining
					ev.Remaining = &r
				}
			}

			data, err := json.Marshal(ev)
			if err != nil {
				return fmt.Errorf("marshal breakpoint: %w", err)
			}
			if err := client.Publish(ctx, channel, data).Err(); err != nil {
				return fmt.Errorf("publish breakpoint: %w", err)
			}
			return nil
		})
	}
}
