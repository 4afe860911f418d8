// Package pace helps step sequences honor the pacing signal.
//
// The drive loop only supplies the multiplier; acting on it is the
// sequence's responsibility. Alarm is the standard way to do that: a
// counter/threshold value object that decides, on every iteration of a tight
// loop, whether this is a suspension round, and widens or narrows its
// threshold from the injected multiplier.
package pace

import "math"

// Alarm is a counter/threshold gate for suspension points. The zero value is
// not ready to use; call New.
//
// Typical loop:
//
//	alarm := pace.New()
//	for i := 0; i < n; i++ {
//		if alarm.Next() {
//			signal := y.YieldProgress(float64(i)/float64(n), i)
//			alarm.Update(signal)
//		}
//		work()
//	}
type Alarm struct {
	count     int
	threshold int
}

// New creates an alarm that fires on the first Next call.
func New() *Alarm {
	return &Alarm{threshold: 1}
}

// Next counts one loop iteration and reports whether the sequence should
// suspend now. When it fires, the counter resets.
func (a *Alarm) Next() bool {
	a.count++
	if a.count >= a.threshold {
		a.count = 0
		return true
	}
	return false
}

// Update rescales the threshold by the injected pacing multiplier. A nil
// signal (no target configured, or first suspension) leaves the threshold
// untouched. The threshold never drops below 1, which also caps the effect
// of +Inf multipliers from zero-length measured intervals.
func (a *Alarm) Update(signal *float64) {
	if signal == nil {
		return
	}
	scaled := *signal * float64(a.threshold)
	next := math.Round(scaled)
	if math.IsInf(scaled, 1) || next > math.MaxInt32 {
		next = math.MaxInt32
	}
	if next < 1 {
		next = 1
	}
	a.threshold = int(next)
}

// Threshold returns the current number of iterations between suspensions.
func (a *Alarm) Threshold() int {
	return a.threshold
}
