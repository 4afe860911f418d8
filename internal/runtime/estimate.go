package runtime

import "time"

// remaining estimates the seconds left in a call by linear extrapolation,
// assuming the average rate observed so far holds:
//
//	remaining = elapsed * (1 - progress) / progress
//
// At progress 1 the estimate is 0. At elapsed 0 and progress 0 the float64
// arithmetic yields the NaN sentinel (0/0); with elapsed > 0 and progress 0
// it yields +Inf. Neither zero-progress value is smoothed or substituted.
func remaining(elapsed time.Duration, progress float64) float64 {
	return elapsed.Seconds() * (1 - progress) / progress
}
