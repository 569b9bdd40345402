package geometry

// RingQuery answers point-containment questions over one closed ring
// using the ray-casting (even-odd) rule: a horizontal ray from the query
// point to +infinity is intersected against every edge, and the point is
// inside iff the crossing count is odd.
//
// The implementation follows the PNPoly crossing expression:
// https://www.ecse.rpi.edu/Homepages/wrf/Research/Short_Notes/pnpoly.html
//
// Ring structure is validated once at construction; a successfully
// constructed RingQuery can never fail at query time.
type RingQuery struct {
	ring Ring
}

// NewRingQuery builds a containment view over ring.
//
// Returns *ErrMalformedRing if the ring has fewer than 4 vertices or its
// first and last vertices do not coincide.
func NewRingQuery(ring Ring) (*RingQuery, error) {
	if err := validateRing(ring); err != nil {
		return nil, err
	}
	return &RingQuery{ring: ring}, nil
}

// Contains reports whether p is inside the ring.
//
// A point exactly on an edge or vertex classifies by the raw crossing
// expression, which uses strict comparisons: the result is deterministic
// and stable across calls, and for an axis-aligned ring the bottom and
// left edges (including the minimum vertex) classify as inside while the
// top and right edges classify as outside.
func (q *RingQuery) Contains(p PlanarPoint) bool {
	crossings := 0
	// The ring stores an explicit closing duplicate, so iterating
	// len-1 edges walks the full boundary exactly once.
	for i := 0; i < len(q.ring)-1; i++ {
		a, b := q.ring[i], q.ring[i+1]
		if a == b {
			continue // Zero-length edge contributes nothing
		}
		if rayIntersectsSegment(p, a, b) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// ContainsBatch tests every point independently, preserving order.
// The result has the same length as points and ContainsBatch(pts)[i]
// always equals Contains(pts[i]).
func (q *RingQuery) ContainsBatch(points []PlanarPoint) []bool {
	results := make([]bool, len(points))
	for i, p := range points {
		results[i] = q.Contains(p)
	}
	return results
}

// Ring returns the ring this query reads from.
func (q *RingQuery) Ring() Ring {
	return q.ring
}

// rayIntersectsSegment reports whether the horizontal ray from p to
// +infinity crosses segment a-b. The division only executes when the
// segment straddles p's y, which guarantees b.Y != a.Y.
func rayIntersectsSegment(p, a, b PlanarPoint) bool {
	return (a.Y > p.Y) != (b.Y > p.Y) &&
		p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X
}
