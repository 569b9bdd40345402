package geometry

// DefaultProjectionScale is the default number of projected units per
// degree. At 100, one projected unit corresponds to 0.01 degree.
const DefaultProjectionScale = 100.0

// Projection maps geographic coordinates into a local planar frame via a
// fixed affine transform: translation to an origin at the minimum
// latitude/longitude of the source track, then a uniform scale.
//
// With the origin at the track's minimum corner, every projected
// coordinate is non-negative and the minimum x and y over the projected
// track are exactly 0.
type Projection struct {
	OriginLat float64
	OriginLon float64
	Scale     float64 // Projected units per degree, always > 0
}

// NewProjection derives a projection from a track: the origin is the
// minimum latitude and minimum longitude over the points.
//
// Returns *ErrEmptyInput if points is empty and *ErrInvalidScale if
// scale is not positive.
func NewProjection(points []GeoPoint, scale float64) (Projection, error) {
	if len(points) == 0 {
		return Projection{}, &ErrEmptyInput{}
	}
	if scale <= 0 {
		return Projection{}, &ErrInvalidScale{Scale: scale}
	}

	minLat, minLon := points[0].Lat, points[0].Lon
	for _, p := range points[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lon < minLon {
			minLon = p.Lon
		}
	}

	return Projection{OriginLat: minLat, OriginLon: minLon, Scale: scale}, nil
}

// Project maps one geographic point into the planar frame.
func (p Projection) Project(pt GeoPoint) PlanarPoint {
	return PlanarPoint{
		X: p.Scale * (pt.Lon - p.OriginLon),
		Y: p.Scale * (pt.Lat - p.OriginLat),
	}
}

// ProjectAll maps a point sequence into the planar frame, preserving
// input order. Pure function of its input.
func (p Projection) ProjectAll(points []GeoPoint) []PlanarPoint {
	projected := make([]PlanarPoint, len(points))
	for i, pt := range points {
		projected[i] = p.Project(pt)
	}
	return projected
}

// Unproject maps a planar point back to geographic coordinates.
// Exact inverse of Project up to floating point rounding.
func (p Projection) Unproject(pt PlanarPoint) GeoPoint {
	return GeoPoint{
		Lat: pt.Y/p.Scale + p.OriginLat,
		Lon: pt.X/p.Scale + p.OriginLon,
	}
}
