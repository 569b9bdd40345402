package boundary

// Strategy selects how the track is reduced to a closed ring.
type Strategy int

const (
	// StrategyStrideDecimation keeps every k-th track point, preserving
	// the physical path including concavities. The default.
	StrategyStrideDecimation Strategy = iota

	// StrategyConvexHull replaces the track with its convex envelope.
	// A degenerate mode for regions known to be convex: concavities in
	// the real boundary are paved over.
	StrategyConvexHull
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyStrideDecimation:
		return "StrideDecimation"
	case StrategyConvexHull:
		return "ConvexHull"
	default:
		return "Unknown"
	}
}

// BuildOptions configures boundary construction.
type BuildOptions struct {
	// TargetVertexCount is the simplification budget: the ring keeps at
	// most this many vertices plus the closing duplicate.
	TargetVertexCount int

	// ProjectionScale is the number of projected units per degree.
	// At the default of 100, one unit corresponds to 0.01 degree.
	ProjectionScale float64

	// ClosureEpsilon is the coincidence tolerance, in projected units,
	// for treating the first and last ring vertices as equal. A track
	// endpoint within this distance of the start is snapped onto the
	// start; otherwise a closing copy of the start is appended. Zero
	// means the 1e-9 default; exact-match-only is not expressible.
	ClosureEpsilon float64

	// Strategy selects the simplification approach.
	Strategy Strategy

	// DeduplicateConsecutive removes consecutive near-identical points
	// (GPS jitter) before simplification. Off by default so a track
	// that genuinely revisits a location keeps its repeated points.
	DeduplicateConsecutive bool

	// JitterEpsilon is the projected-unit distance below which
	// consecutive points count as jitter. Only used when
	// DeduplicateConsecutive is set.
	JitterEpsilon float64

	// Trace is an optional callback invoked after each pipeline stage
	// with the stage name and the number of points it produced. Nil
	// disables tracing. The library itself never logs.
	//
	// Example:
	//
	//	opts.Trace = func(stage string, points int) {
	//	    log.Printf("%s: %d points", stage, points)
	//	}
	Trace func(stage string, points int)
}

// DefaultBuildOptions returns default options: a 40-vertex budget,
// 100 units per degree, 1e-9 closure epsilon, stride decimation, and no
// jitter removal.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		TargetVertexCount:      40,
		ProjectionScale:        100,
		ClosureEpsilon:         1e-9,
		Strategy:               StrategyStrideDecimation,
		DeduplicateConsecutive: false,
		JitterEpsilon:          1e-6,
	}
}
