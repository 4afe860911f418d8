package observers

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/ports"
)

// Snapshot is the latest observed breakpoint of one live call.
type Snapshot struct {
	ID             string    `json:"id"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	Result         any       `json:"result"`
	Progress       *float64  `json:"progress,omitempty"`
	Remaining      *float64  `json:"remaining_seconds,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Tracker retains the latest breakpoint of each in-flight call and forgets
// the call as soon as it ends. It backs the HTTP status surface; it is
// explicitly not a history store.
type Tracker struct {
	mu    sync.RWMutex
	calls map[string]*Snapshot
	next  uint64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{calls: make(map[string]*Snapshot)}
}

// Factory returns an observer factory for a named callable. Each call gets a
// unique id derived from the name; the call appears in Snapshots from its
// first breakpoint until it finishes.
func (t *Tracker) Factory(name string) ports.ObserverFactory {
	return func() ports.Observer {
		t.mu.Lock()
		t.next++
		id := fmt.Sprintf("%s-%d", name, t.next)
		t.mu.Unlock()
		return &trackObserver{tracker: t, id: id}
	}
}

// Snapshots lists the live calls, most recent update last.
func (t *Tracker) Snapshots() []Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Snapshot, 0, len(t.calls))
	for _, s := range t.calls {
		out = append(out, *s)
	}
	return out
}

// Snapshot returns the live snapshot for one call id.
func (t *Tracker) Snapshot(id string) (Snapshot, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.calls[id]
	if !ok {
		return Snapshot{}, false
	}
	return *s, true
}

func (t *Tracker) update(id string, bp *domain.Breakpoint) {
	s := &Snapshot{
		ID:             id,
		ElapsedSeconds: bp.Elapsed.Seconds(),
		Result:         bp.Result,
		UpdatedAt:      time.Now(),
	}
	if bp.Tracked {
		p := bp.Progress
		s.Progress = &p
		if !math.IsNaN(bp.Remaining) && !math.IsInf(bp.Remaining, 0) {
			r := bp.Remaining
			s.Remaining = &r
		}
	}

	t.mu.Lock()
	t.calls[id] = s
	t.mu.Unlock()
}

func (t *Tracker) drop(id string) {
	t.mu.Lock()
	delete(t.calls, id)
	t.mu.Unlock()
}

type trackObserver struct {
	tracker *Tracker
	id      string
}

func (o *trackObserver) Observe(ctx context.Context, bp *domain.Breakpoint) error {
	o.tracker.update(o.id, bp)
	return nil
}

func (o *trackObserver) Finish(ctx context.Context, err error) {
	o.tracker.drop(o.id)
}
