package observers

import (
	"context"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/ports"
)

// Tee combines several factories into one. Each call gets one observer per
// underlying factory; events fan out in argument order and the first error
// aborts the call. Finish is forwarded to every observer that implements
// ports.Finisher.
func Tee(factories ...ports.ObserverFactory) ports.ObserverFactory {
	return func() ports.Observer {
		group := make([]ports.Observer, 0, len(factories))
		for _, f := range factories {
			if f == nil {
				continue
			}
			if o := f(); o != nil {
				group = append(group, o)
			}
		}
		return &tee{group: group}
	}
}

type tee struct {
	group []ports.Observer
}

func (t *tee) Observe(ctx context.Context, bp *domain.Breakpoint) error {
	for _, o := range t.group {
		if err := o.Observe(ctx, bp); err != nil {
			return err
		}
	}
	return nil
}

func (t *tee) Finish(ctx context.Context, err error) {
	for _, o := range t.group {
		if f, ok := o.(ports.Finisher); ok {
			f.Finish(ctx, err)
		}
	}
}
