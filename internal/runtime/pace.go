package runtime

import "time"

// pacing computes the feedback multiplier injected at the next resume:
// target interval divided by the interval observed since the previous
// breakpoint. A multiplier above 1 means the sequence suspended too often;
// below 1, too rarely.
//
// It returns nil when no target is configured, or at the first suspension of
// a call (prev unset) when there is no interval to measure yet. The core
// only supplies the signal; whether the sequence acts on it is the
// sequence's business.
func pacing(target time.Duration, prev, now time.Time) *float64 {
	if target <= 0 || prev.IsZero() {
		return nil
	}
	m := target.Seconds() / now.Sub(prev).Seconds()
	return &m
}
