package geometry

import (
	"fmt"
)

// ErrEmptyInput indicates a point sequence with no entries.
// The projection origin is the minimum latitude/longitude over the input,
// which is undefined for an empty sequence.
type ErrEmptyInput struct{}

func (e *ErrEmptyInput) Error() string {
	return "empty point sequence: projection origin is undefined"
}

// ErrInvalidScale indicates a non-positive projection scale.
type ErrInvalidScale struct {
	Scale float64
}

func (e *ErrInvalidScale) Error() string {
	return fmt.Sprintf("invalid projection scale %v: must be > 0", e.Scale)
}

// ErrInsufficientPoints indicates too few distinct points survived
// simplification to form a boundary.
type ErrInsufficientPoints struct {
	Have int
	Need int
}

func (e *ErrInsufficientPoints) Error() string {
	return fmt.Sprintf("insufficient points for a boundary: have %d distinct, need %d",
		e.Have, e.Need)
}

// ErrMalformedRing indicates a ring violating the closure or
// minimum-vertex invariants. Detected when a query or area view is
// constructed, never at query time.
type ErrMalformedRing struct {
	Len    int
	Reason string
}

func (e *ErrMalformedRing) Error() string {
	return fmt.Sprintf("malformed ring (%d vertices): %s", e.Len, e.Reason)
}
