package boundary

import (
	"math"
)

// metersPerDegreeLat is the approximate length of one degree of latitude.
// One degree of longitude shrinks by cos(latitude) away from the equator.
const metersPerDegreeLat = 111320.0

// ScaleFactors converts projected units to meters on each axis.
//
// MetersPerY is constant over a track; MetersPerX carries the
// cos(latitude) longitude convergence at the track's mean latitude.
// Derived once per build and never mutated.
type ScaleFactors struct {
	MetersPerX float64
	MetersPerY float64
}

// DeriveScaleFactors computes per-axis meter conversions for a track at
// meanLat, for a frame with projectionScale units per degree.
//
// The meters-per-degree constant is divided by the projection scale so
// the factors apply to projected units directly: multiplying a projected
// area by MetersPerX*MetersPerY yields physical square meters.
func DeriveScaleFactors(meanLat, projectionScale float64) ScaleFactors {
	perDegreeY := metersPerDegreeLat
	perDegreeX := perDegreeY * math.Cos(meanLat*math.Pi/180)
	return ScaleFactors{
		MetersPerX: perDegreeX / projectionScale,
		MetersPerY: perDegreeY / projectionScale,
	}
}

// meanLatitude returns the arithmetic mean latitude of a track.
// Callers guarantee points is non-empty.
func meanLatitude(points []TrackPoint) float64 {
	var sum float64
	for _, p := range points {
		sum += p.Lat
	}
	return sum / float64(len(points))
}
