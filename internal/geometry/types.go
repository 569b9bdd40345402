package geometry

// GeoPoint is one recorded track sample in geographic coordinates.
// Produced by an external track parser; never mutated here.
type GeoPoint struct {
	Lat float64 // Degrees, positive north
	Lon float64 // Degrees, positive east
}

// PlanarPoint is a point in the local projected Cartesian frame.
type PlanarPoint struct {
	X float64
	Y float64
}

// Ring is a closed polygon boundary: an ordered vertex list whose last
// vertex repeats the first (within the closure epsilon used to build it).
// Rings produced by the simplification strategies always store the explicit
// closing duplicate, so a valid Ring has at least 4 entries for 3 distinct
// vertices.
//
// A Ring is treated as immutable once built. Query and area views hold a
// reference to it and rely on it not changing.
type Ring []PlanarPoint

// Vertices returns the ring's vertex list including the closing duplicate.
// The returned slice is the ring's backing storage and must not be modified.
func (r Ring) Vertices() []PlanarPoint {
	return r
}

// Closed reports whether the first and last vertices coincide within eps.
func (r Ring) Closed(eps float64) bool {
	if len(r) < 2 {
		return false
	}
	first, last := r[0], r[len(r)-1]
	return near(first.X, last.X, eps) && near(first.Y, last.Y, eps)
}

// validateRing checks the structural invariants a query or area view
// depends on: at least 4 vertices and an explicit closing duplicate.
// Returns *ErrMalformedRing describing the first violation found.
func validateRing(r Ring) error {
	if len(r) < 4 {
		return &ErrMalformedRing{Len: len(r), Reason: "fewer than 4 vertices (need 3 distinct plus closing duplicate)"}
	}
	if !r.Closed(ClosureEpsilon) {
		return &ErrMalformedRing{Len: len(r), Reason: "first and last vertices do not coincide"}
	}
	return nil
}

// ScaleFactors converts projected units to meters on each axis.
// Derived once from the source track's mean latitude; never mutated.
type ScaleFactors struct {
	MetersPerX float64
	MetersPerY float64
}

// near reports whether a and b differ by no more than eps.
func near(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
