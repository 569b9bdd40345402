package geometry

import (
	"sort"
)

const (
	// ClosureEpsilon is the default tolerance for treating the first and
	// last vertices of a ring as coincident, in projected units.
	ClosureEpsilon = 1e-9

	// minDistinctVertices is the smallest number of distinct vertices
	// that can enclose an area.
	minDistinctVertices = 3

	// DefaultTargetVertexCount is the default simplification budget.
	DefaultTargetVertexCount = 40
)

// SimplifyOptions configures ring simplification.
type SimplifyOptions struct {
	// TargetVertexCount is the vertex budget for the simplified ring,
	// excluding the closing duplicate. Values below 1 are treated as 1.
	TargetVertexCount int

	// ClosureEpsilon is the coincidence tolerance for ring closure.
	// Zero means the ClosureEpsilon default (1e-9); an exact-match-only
	// tolerance is not expressible. Endpoints within the tolerance are
	// snapped to a bitwise copy of the first vertex, so rings always
	// close exactly whatever tolerance built them.
	ClosureEpsilon float64

	// DeduplicateConsecutive removes consecutive points closer than
	// JitterEpsilon before decimation. Off by default: a track that
	// genuinely revisits a location keeps its repeated points.
	DeduplicateConsecutive bool

	// JitterEpsilon is the distance below which consecutive points are
	// considered GPS jitter. Only used when DeduplicateConsecutive is set.
	JitterEpsilon float64
}

func (o SimplifyOptions) closureEpsilon() float64 {
	if o.ClosureEpsilon == 0 {
		return ClosureEpsilon
	}
	return o.ClosureEpsilon
}

// SimplificationStrategy reduces an ordered point sequence to a closed
// ring. Implementations must preserve the Ring invariants: explicit
// closing duplicate, at least 3 distinct vertices.
type SimplificationStrategy interface {
	Simplify(points []PlanarPoint, opts SimplifyOptions) (Ring, error)
}

// StrideDecimation keeps every k-th point of the ordered sequence, where
// k = max(1, len(points)/target) capped so at least 3 points survive,
// then forces closure.
//
// Unlike a convex hull, decimation follows the actual physical path, so
// concave boundaries survive simplification. It does not reorder points
// and does not deduplicate interior repeats unless asked to.
type StrideDecimation struct{}

func (StrideDecimation) Simplify(points []PlanarPoint, opts SimplifyOptions) (Ring, error) {
	if opts.DeduplicateConsecutive {
		points = dedupeConsecutive(points, opts.JitterEpsilon)
	}

	target := opts.TargetVertexCount
	if target < 1 {
		target = 1
	}

	stride := len(points) / target
	// Cap the stride so at least 3 points survive; an aggressive budget
	// must still yield a ring when the track itself is long enough.
	if max := len(points) / minDistinctVertices; stride > max {
		stride = max
	}
	if stride < 1 {
		stride = 1
	}

	kept := make(Ring, 0, len(points)/stride+2)
	for i := 0; i < len(points); i += stride {
		kept = append(kept, points[i])
	}
	if len(kept) == 0 {
		return nil, &ErrInsufficientPoints{Have: 0, Need: minDistinctVertices}
	}

	ring := closeRing(kept, opts.closureEpsilon())
	// Exclude the closing duplicate: snapping it onto the first vertex
	// must not count toward the distinct minimum.
	if n := countDistinct(ring[:len(ring)-1]); n < minDistinctVertices {
		return nil, &ErrInsufficientPoints{Have: n, Need: minDistinctVertices}
	}
	return ring, nil
}

// ConvexHull replaces the track with its convex envelope using Andrew's
// monotone chain. Only appropriate for regions known to be convex: any
// concavity in the real boundary is paved over. Retained as a degenerate
// mode, not the default.
type ConvexHull struct{}

func (ConvexHull) Simplify(points []PlanarPoint, opts SimplifyOptions) (Ring, error) {
	if opts.DeduplicateConsecutive {
		points = dedupeConsecutive(points, opts.JitterEpsilon)
	}

	hull := convexHull(points)
	if len(hull) < minDistinctVertices {
		return nil, &ErrInsufficientPoints{Have: len(hull), Need: minDistinctVertices}
	}

	ring := closeRing(hull, opts.closureEpsilon())
	if n := countDistinct(ring[:len(ring)-1]); n < minDistinctVertices {
		return nil, &ErrInsufficientPoints{Have: n, Need: minDistinctVertices}
	}
	return ring, nil
}

// closeRing guarantees an exact closing duplicate. When the last vertex
// already coincides with the first within eps it is snapped to a bitwise
// copy of the first; otherwise a copy of the first is appended. Rings
// therefore close exactly regardless of the epsilon they were built
// with, which is what validation and the len-1 edge iteration rely on.
func closeRing(ring Ring, eps float64) Ring {
	if ring.Closed(eps) {
		ring[len(ring)-1] = ring[0]
		return ring
	}
	return append(ring, ring[0])
}

// dedupeConsecutive drops points within eps of their predecessor on both
// axes. The first point is always kept.
func dedupeConsecutive(points []PlanarPoint, eps float64) []PlanarPoint {
	if len(points) == 0 {
		return points
	}
	out := make([]PlanarPoint, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		prev := out[len(out)-1]
		if near(p.X, prev.X, eps) && near(p.Y, prev.Y, eps) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// countDistinct returns the number of exactly-distinct vertices.
func countDistinct(points []PlanarPoint) int {
	seen := make(map[PlanarPoint]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// convexHull computes the convex hull of a point set using Andrew's
// monotone chain. The result is in counter-clockwise order without a
// closing duplicate. Collinear boundary points are dropped.
func convexHull(points []PlanarPoint) []PlanarPoint {
	n := len(points)
	if n <= 2 {
		hull := make([]PlanarPoint, n)
		copy(hull, points)
		return hull
	}

	sorted := make([]PlanarPoint, n)
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lower []PlanarPoint
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []PlanarPoint
	for i := n - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Drop the last point of each chain; it repeats the other chain's first.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// cross returns the z-component of (b-a) x (c-a): positive when the
// turn a->b->c is counter-clockwise.
func cross(a, b, c PlanarPoint) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
