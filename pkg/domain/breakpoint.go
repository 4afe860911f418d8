package domain

import (
	"math"
	"time"
)

// Breakpoint describes one suspension point of an instrumented call.
// It is produced by the drive loop, handed to the call's observer, and
// discarded; nothing is retained across suspensions.
type Breakpoint struct {
	// Elapsed is the time since the call's first suspension. It is zero at
	// the first breakpoint and non-decreasing afterwards.
	Elapsed time.Duration `json:"elapsed"`

	// Result is the partial result carried by this suspension. The Result of
	// the last breakpoint is the return value of the wrapped call.
	Result any `json:"result"`

	// Progress is the caller-reported completion fraction in [0,1].
	// Only meaningful when Tracked is true.
	Progress float64 `json:"progress,omitempty"`

	// Remaining is the estimated remaining time in seconds, extrapolated
	// from Elapsed and Progress. It is NaN when the estimate is
	// indeterminate (no elapsed time and no progress yet).
	// Only meaningful when Tracked is true.
	Remaining float64 `json:"remaining,omitempty"`

	// Tracked reports whether progress tracking was enabled for this call.
	Tracked bool `json:"tracked"`
}

// HasEstimate reports whether Remaining holds a finite, usable estimate.
func (b *Breakpoint) HasEstimate() bool {
	return b.Tracked && !math.IsNaN(b.Remaining) && !math.IsInf(b.Remaining, 0)
}

// Yield is the pair shape a progress-aware step sequence suspends with.
// When progress tracking is disabled, sequences suspend with the bare
// partial result instead.
type Yield struct {
	Progress float64 `json:"progress" mapstructure:"progress"`
	Result   any     `json:"result" mapstructure:"result"`
}
