package ports

import "time"

// Clock abstracts the time source used to measure elapsed time and
// breakpoint intervals. Readings must be monotonic and consistent within one
// process; wall-clock accuracy is never assumed. The zero time.Time is
// reserved as "unset" by the drive loop and must not be returned.
type Clock interface {
	Now() time.Time
}
