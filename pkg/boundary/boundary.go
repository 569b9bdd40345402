package boundary

import (
	"github.com/fieldtrace/boundary/internal/geometry"
)

// TrackPoint is one recorded geographic sample from a GPS track log.
// Supplied by an external track parser; never mutated here.
type TrackPoint struct {
	Lat float64 // Degrees, positive north
	Lon float64 // Degrees, positive east
}

// Point is a point in a boundary's local projected frame.
type Point struct {
	X float64
	Y float64
}

// Projection describes the affine transform from geographic coordinates
// into a boundary's planar frame: translation to the track's minimum
// latitude/longitude, then a uniform scale in units per degree.
type Projection struct {
	OriginLat float64
	OriginLon float64
	Scale     float64
}

// Builder constructs field boundaries from raw track point sequences.
//
// Create a builder with NewBuilder and use Build or BuildWithOptions to
// turn a track into a queryable Boundary.
type Builder interface {
	// Build constructs a boundary with default options.
	//
	// The track must contain enough points to enclose an area: at least
	// 3 distinct points must survive simplification.
	Build(points []TrackPoint) (*Boundary, error)

	// BuildWithOptions constructs a boundary with custom options.
	//
	// Use BuildOptions to control the vertex budget, projection scale,
	// simplification strategy, and jitter handling.
	BuildWithOptions(points []TrackPoint, opts BuildOptions) (*Boundary, error)
}

// NewBuilder creates a boundary builder with default settings.
//
// Example:
//
//	builder := boundary.NewBuilder()
//	field, err := builder.Build(trackPoints)
func NewBuilder() Builder {
	return &builder{}
}

// builder wraps the internal geometry pipeline and converts types.
type builder struct{}

func (b *builder) Build(points []TrackPoint) (*Boundary, error) {
	return b.BuildWithOptions(points, DefaultBuildOptions())
}

func (b *builder) BuildWithOptions(points []TrackPoint, opts BuildOptions) (*Boundary, error) {
	geoPoints := make([]geometry.GeoPoint, len(points))
	for i, p := range points {
		geoPoints[i] = geometry.GeoPoint{Lat: p.Lat, Lon: p.Lon}
	}

	// Project into the local planar frame. Errors from each stage
	// propagate unchanged; there is no recovery path here.
	proj, err := geometry.NewProjection(geoPoints, opts.ProjectionScale)
	if err != nil {
		return nil, err
	}
	planar := proj.ProjectAll(geoPoints)
	if opts.Trace != nil {
		opts.Trace("project", len(planar))
	}

	ring, err := b.strategy(opts).Simplify(planar, geometry.SimplifyOptions{
		TargetVertexCount:      opts.TargetVertexCount,
		ClosureEpsilon:         opts.ClosureEpsilon,
		DeduplicateConsecutive: opts.DeduplicateConsecutive,
		JitterEpsilon:          opts.JitterEpsilon,
	})
	if err != nil {
		return nil, err
	}
	if opts.Trace != nil {
		opts.Trace("simplify", len(ring))
	}

	query, err := geometry.NewRingQuery(ring)
	if err != nil {
		return nil, err
	}
	area, err := geometry.NewAreaCalculator(ring)
	if err != nil {
		return nil, err
	}

	scale := DeriveScaleFactors(meanLatitude(points), opts.ProjectionScale)

	return &Boundary{
		ring:   ring,
		query:  query,
		area:   area,
		proj:   proj,
		scale:  scale,
		bounds: ringBounds(ring, proj),
	}, nil
}

func (b *builder) strategy(opts BuildOptions) geometry.SimplificationStrategy {
	if opts.Strategy == StrategyConvexHull {
		return geometry.ConvexHull{}
	}
	return geometry.StrideDecimation{}
}

// Boundary is a closed field boundary derived from one track run.
//
// The ring is the source of truth; the containment and area views read
// from it and are constructed together with it, so a Boundary that was
// built successfully can never fail at query time for structural
// reasons. All fields are immutable after construction, making a
// Boundary safe for concurrent readers.
type Boundary struct {
	ring   geometry.Ring
	query  *geometry.RingQuery
	area   *geometry.AreaCalculator
	proj   geometry.Projection
	scale  ScaleFactors
	bounds Bounds
}

// Ring returns the boundary's vertices in the projected frame,
// including the explicit closing duplicate. The returned slice is a
// copy; the boundary itself is immutable.
func (b *Boundary) Ring() []Point {
	ring := make([]Point, len(b.ring))
	for i, v := range b.ring {
		ring[i] = Point{X: v.X, Y: v.Y}
	}
	return ring
}

// RingGeo returns the boundary's vertices in geographic coordinates,
// including the closing duplicate.
func (b *Boundary) RingGeo() []TrackPoint {
	ring := make([]TrackPoint, len(b.ring))
	for i, v := range b.ring {
		g := b.proj.Unproject(v)
		ring[i] = TrackPoint{Lat: g.Lat, Lon: g.Lon}
	}
	return ring
}

// VertexCount returns the number of ring vertices including the closing
// duplicate.
func (b *Boundary) VertexCount() int {
	return len(b.ring)
}

// Contains reports whether a projected point is inside the boundary.
//
// Points exactly on an edge or vertex classify deterministically: for an
// axis-aligned ring the bottom and left edges (including the minimum
// vertex) are inside, the top and right edges outside.
func (b *Boundary) Contains(p Point) bool {
	return b.query.Contains(geometry.PlanarPoint{X: p.X, Y: p.Y})
}

// ContainsBatch tests every point independently, preserving order.
// The result length equals the input length and each entry equals the
// corresponding single Contains call.
func (b *Boundary) ContainsBatch(points []Point) []bool {
	planar := make([]geometry.PlanarPoint, len(points))
	for i, p := range points {
		planar[i] = geometry.PlanarPoint{X: p.X, Y: p.Y}
	}
	return b.query.ContainsBatch(planar)
}

// ContainsTrackPoint projects a geographic point into the boundary's
// frame and tests containment.
func (b *Boundary) ContainsTrackPoint(pt TrackPoint) bool {
	planar := b.proj.Project(geometry.GeoPoint{Lat: pt.Lat, Lon: pt.Lon})
	return b.query.Contains(planar)
}

// AreaProjected returns the enclosed area in squared projected units.
// Always >= 0; exactly 0 for a degenerate ring.
func (b *Boundary) AreaProjected() float64 {
	return b.area.AreaProjected()
}

// AreaSquareMeters returns the enclosed area in square meters, using the
// scale factors derived from the track's mean latitude.
func (b *Boundary) AreaSquareMeters() float64 {
	return b.area.AreaSquareMeters(b.internalScale())
}

// AreaHectares returns the enclosed area in hectares (1 ha = 10,000 m²).
func (b *Boundary) AreaHectares() float64 {
	return b.area.AreaHectares(b.internalScale())
}

// AreaAcres returns the enclosed area in acres (1 acre = 4046.8564224 m²).
func (b *Boundary) AreaAcres() float64 {
	return b.area.AreaAcres(b.internalScale())
}

// Perimeter returns the boundary length in projected units.
func (b *Boundary) Perimeter() float64 {
	return b.area.Perimeter()
}

// PerimeterMeters returns the boundary length in meters.
func (b *Boundary) PerimeterMeters() float64 {
	return b.area.PerimeterMeters(b.internalScale())
}

// Centroid returns the area-weighted centroid in the projected frame.
func (b *Boundary) Centroid() Point {
	c := b.area.Centroid()
	return Point{X: c.X, Y: c.Y}
}

// CentroidGeo returns the area-weighted centroid in geographic
// coordinates.
func (b *Boundary) CentroidGeo() TrackPoint {
	g := b.proj.Unproject(b.area.Centroid())
	return TrackPoint{Lat: g.Lat, Lon: g.Lon}
}

// Scale returns the per-axis meter conversion factors for this boundary.
func (b *Boundary) Scale() ScaleFactors {
	return b.scale
}

// Projection returns the transform that maps track points into this
// boundary's planar frame.
func (b *Boundary) Projection() Projection {
	return Projection{
		OriginLat: b.proj.OriginLat,
		OriginLon: b.proj.OriginLon,
		Scale:     b.proj.Scale,
	}
}

// Bounds returns the geographic bounding box of the boundary ring.
func (b *Boundary) Bounds() Bounds {
	return b.bounds
}

func (b *Boundary) internalScale() geometry.ScaleFactors {
	return geometry.ScaleFactors{
		MetersPerX: b.scale.MetersPerX,
		MetersPerY: b.scale.MetersPerY,
	}
}

// ringBounds computes the geographic bounding box of a projected ring.
func ringBounds(ring geometry.Ring, proj geometry.Projection) Bounds {
	first := proj.Unproject(ring[0])
	bounds := Bounds{
		MinLat: first.Lat, MaxLat: first.Lat,
		MinLon: first.Lon, MaxLon: first.Lon,
	}
	for _, v := range ring[1:] {
		g := proj.Unproject(v)
		if g.Lat < bounds.MinLat {
			bounds.MinLat = g.Lat
		}
		if g.Lat > bounds.MaxLat {
			bounds.MaxLat = g.Lat
		}
		if g.Lon < bounds.MinLon {
			bounds.MinLon = g.Lon
		}
		if g.Lon > bounds.MaxLon {
			bounds.MaxLon = g.Lon
		}
	}
	return bounds
}
