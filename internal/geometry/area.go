package geometry

import (
	"math"
)

// Unit conversion constants from square meters.
const (
	SquareMetersPerHectare = 10000.0
	SquareMetersPerAcre    = 4046.8564224
)

// AreaCalculator computes planar measurements over one closed ring.
//
// The area comes from the Shoelace formula. Because every Ring stores an
// explicit closing duplicate, the accumulation runs over exactly len-1
// edges; the duplicate vertex contributes no degenerate wrap-around term.
//
// Ring structure is validated once at construction, matching RingQuery.
type AreaCalculator struct {
	ring Ring
}

// NewAreaCalculator builds an area view over ring.
//
// Returns *ErrMalformedRing under the same conditions as NewRingQuery.
func NewAreaCalculator(ring Ring) (*AreaCalculator, error) {
	if err := validateRing(ring); err != nil {
		return nil, err
	}
	return &AreaCalculator{ring: ring}, nil
}

// AreaProjected returns the enclosed area in squared projected units.
//
// Always >= 0: traversal direction is discarded by taking the absolute
// value. A degenerate (collinear) ring yields exactly 0, never NaN.
func (a *AreaCalculator) AreaProjected() float64 {
	var doubled float64
	for i := 0; i < len(a.ring)-1; i++ {
		p, q := a.ring[i], a.ring[i+1]
		doubled += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(doubled) / 2
}

// AreaSquareMeters converts the projected area to square meters using
// per-axis scale factors.
func (a *AreaCalculator) AreaSquareMeters(sf ScaleFactors) float64 {
	return a.AreaProjected() * sf.MetersPerX * sf.MetersPerY
}

// AreaHectares returns the enclosed area in hectares.
func (a *AreaCalculator) AreaHectares(sf ScaleFactors) float64 {
	return a.AreaSquareMeters(sf) / SquareMetersPerHectare
}

// AreaAcres returns the enclosed area in acres.
func (a *AreaCalculator) AreaAcres(sf ScaleFactors) float64 {
	return a.AreaSquareMeters(sf) / SquareMetersPerAcre
}

// Perimeter returns the boundary length in projected units.
func (a *AreaCalculator) Perimeter() float64 {
	var total float64
	for i := 0; i < len(a.ring)-1; i++ {
		dx := a.ring[i+1].X - a.ring[i].X
		dy := a.ring[i+1].Y - a.ring[i].Y
		total += math.Hypot(dx, dy)
	}
	return total
}

// PerimeterMeters returns the boundary length in meters, applying the
// per-axis scale to each segment before measuring it.
func (a *AreaCalculator) PerimeterMeters(sf ScaleFactors) float64 {
	var total float64
	for i := 0; i < len(a.ring)-1; i++ {
		dx := (a.ring[i+1].X - a.ring[i].X) * sf.MetersPerX
		dy := (a.ring[i+1].Y - a.ring[i].Y) * sf.MetersPerY
		total += math.Hypot(dx, dy)
	}
	return total
}

// Centroid returns the area-weighted centroid of the ring in projected
// coordinates. For a degenerate ring with zero enclosed area it falls
// back to the arithmetic mean of the distinct vertices.
func (a *AreaCalculator) Centroid() PlanarPoint {
	var cx, cy, signed float64
	for i := 0; i < len(a.ring)-1; i++ {
		p, q := a.ring[i], a.ring[i+1]
		w := p.X*q.Y - q.X*p.Y
		signed += w
		cx += (p.X + q.X) * w
		cy += (p.Y + q.Y) * w
	}

	if signed == 0 {
		// Collinear ring: average the vertices, skipping the duplicate.
		n := float64(len(a.ring) - 1)
		var sx, sy float64
		for i := 0; i < len(a.ring)-1; i++ {
			sx += a.ring[i].X
			sy += a.ring[i].Y
		}
		return PlanarPoint{X: sx / n, Y: sy / n}
	}

	return PlanarPoint{X: cx / (3 * signed), Y: cy / (3 * signed)}
}

// Ring returns the ring this calculator reads from.
func (a *AreaCalculator) Ring() Ring {
	return a.ring
}
