package domain

import "errors"

// ErrInvalidInterval is returned by the transform factory when the target
// interval is zero or negative. It surfaces at construction time, before any
// wrapped call executes.
var ErrInvalidInterval = errors.New("target interval must be a positive duration")

// ErrMalformedYield is returned when progress tracking is enabled but a
// suspension value cannot be interpreted as a (progress, result) pair.
var ErrMalformedYield = errors.New("malformed yield")
