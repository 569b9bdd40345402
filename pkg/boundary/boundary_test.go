package boundary

import (
	"errors"
	"math"
	"testing"

	"github.com/fieldtrace/boundary/internal/geometry"
)

// squareTrack is the documented reference scenario: four corner points
// at 0.01 degree spacing near Southampton.
func squareTrack() []TrackPoint {
	return []TrackPoint{
		{Lat: 50.90, Lon: -1.40},
		{Lat: 50.91, Lon: -1.40},
		{Lat: 50.91, Lon: -1.39},
		{Lat: 50.90, Lon: -1.39},
	}
}

// circularTrack generates n samples on a circle of the given radius in
// degrees around a center point, the shape of a lap around a field.
func circularTrack(n int, centerLat, centerLon, radius float64) []TrackPoint {
	points := make([]TrackPoint, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = TrackPoint{
			Lat: centerLat + radius*math.Sin(angle),
			Lon: centerLon + radius*math.Cos(angle),
		}
	}
	return points
}

// TestBuildSquare tests the full pipeline on the documented square track
func TestBuildSquare(t *testing.T) {
	field, err := NewBuilder().Build(squareTrack())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := field.VertexCount(); got != 5 {
		t.Errorf("VertexCount() = %d, want 5 (4 corners plus closing duplicate)", got)
	}
	if got := field.AreaProjected(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("AreaProjected() = %v, want 1.0", got)
	}

	proj := field.Projection()
	if proj.OriginLat != 50.90 || proj.OriginLon != -1.40 || proj.Scale != 100 {
		t.Errorf("Projection() = %+v, want origin (50.90, -1.40) scale 100", proj)
	}

	ring := field.Ring()
	want := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	if len(ring) != len(want) {
		t.Fatalf("Ring() has %d vertices, want %d", len(ring), len(want))
	}
	for i := range want {
		if math.Abs(ring[i].X-want[i].X) > 1e-9 || math.Abs(ring[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("Ring()[%d] = %v, want %v", i, ring[i], want[i])
		}
	}
}

// TestBoundaryContains tests containment queries on the built square,
// including the documented on-boundary convention.
func TestBoundaryContains(t *testing.T) {
	field, err := NewBuilder().Build(squareTrack())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"center", Point{0.5, 0.5}, true},
		{"outside", Point{2, 2}, false},
		{"origin vertex", Point{0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := field.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}

	t.Run("batch agrees with single calls", func(t *testing.T) {
		points := []Point{{0.5, 0.5}, {2, 2}, {0, 0}, {-1, 0.5}, {0.9, 0.1}}
		results := field.ContainsBatch(points)
		if len(results) != len(points) {
			t.Fatalf("ContainsBatch() returned %d results, want %d", len(results), len(points))
		}
		for i, p := range points {
			if results[i] != field.Contains(p) {
				t.Errorf("ContainsBatch()[%d] = %v, Contains(%v) = %v; must agree",
					i, results[i], p, field.Contains(p))
			}
		}
	})

	t.Run("geographic point", func(t *testing.T) {
		if !field.ContainsTrackPoint(TrackPoint{Lat: 50.905, Lon: -1.395}) {
			t.Error("ContainsTrackPoint(center) = false, want true")
		}
		if field.ContainsTrackPoint(TrackPoint{Lat: 51.0, Lon: -1.0}) {
			t.Error("ContainsTrackPoint(far away) = true, want false")
		}
	})
}

// TestBuildCircularTrack tests simplification behavior on a long track
func TestBuildCircularTrack(t *testing.T) {
	track := circularTrack(336, 50.905, -1.395, 0.005)

	field, err := NewBuilder().Build(track)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// 336 points with a budget of 40 decimate at stride 8: 42 vertices
	// plus the closing duplicate.
	if got := field.VertexCount(); got > 43 {
		t.Errorf("VertexCount() = %d, want at most 43", got)
	}

	// The simplified ring must still approximate the circle: the center
	// is inside, points beyond the radius are outside, and the area is
	// close to pi*r^2 in projected units (r = 0.005 deg * 100 = 0.5).
	if !field.ContainsTrackPoint(TrackPoint{Lat: 50.905, Lon: -1.395}) {
		t.Error("ContainsTrackPoint(center) = false, want true")
	}
	if field.ContainsTrackPoint(TrackPoint{Lat: 50.905 + 0.006, Lon: -1.395}) {
		t.Error("ContainsTrackPoint(outside radius) = true, want false")
	}

	wantArea := math.Pi * 0.5 * 0.5
	if got := field.AreaProjected(); math.Abs(got-wantArea)/wantArea > 0.05 {
		t.Errorf("AreaProjected() = %v, want within 5%% of %v", got, wantArea)
	}
}

// TestBuildErrors tests that construction failures propagate unchanged
func TestBuildErrors(t *testing.T) {
	builder := NewBuilder()

	t.Run("empty track", func(t *testing.T) {
		_, err := builder.Build(nil)
		var emptyErr *geometry.ErrEmptyInput
		if !errors.As(err, &emptyErr) {
			t.Errorf("Build() error = %v, want *geometry.ErrEmptyInput", err)
		}
	})

	t.Run("too few distinct points", func(t *testing.T) {
		_, err := builder.Build([]TrackPoint{
			{Lat: 50.90, Lon: -1.40},
			{Lat: 50.91, Lon: -1.39},
		})
		var insufficientErr *geometry.ErrInsufficientPoints
		if !errors.As(err, &insufficientErr) {
			t.Errorf("Build() error = %v, want *geometry.ErrInsufficientPoints", err)
		}
	})

	t.Run("invalid projection scale", func(t *testing.T) {
		opts := DefaultBuildOptions()
		opts.ProjectionScale = -1
		_, err := builder.BuildWithOptions(squareTrack(), opts)
		var scaleErr *geometry.ErrInvalidScale
		if !errors.As(err, &scaleErr) {
			t.Errorf("BuildWithOptions() error = %v, want *geometry.ErrInvalidScale", err)
		}
	})
}

// TestConvexHullStrategy tests the alternative simplification mode
func TestConvexHullStrategy(t *testing.T) {
	// An L-shaped track: concave at the inner corner.
	track := []TrackPoint{
		{Lat: 50.90, Lon: -1.40},
		{Lat: 50.90, Lon: -1.38},
		{Lat: 50.91, Lon: -1.38},
		{Lat: 50.91, Lon: -1.39},
		{Lat: 50.92, Lon: -1.39},
		{Lat: 50.92, Lon: -1.40},
	}
	// Inside the notch the L leaves open, outside the L itself.
	notch := TrackPoint{Lat: 50.914, Lon: -1.386}

	stride, err := NewBuilder().Build(track)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if stride.ContainsTrackPoint(notch) {
		t.Error("stride decimation: notch point inside, want outside (path followed)")
	}

	opts := DefaultBuildOptions()
	opts.Strategy = StrategyConvexHull
	hull, err := NewBuilder().BuildWithOptions(track, opts)
	if err != nil {
		t.Fatalf("BuildWithOptions() error = %v", err)
	}
	if !hull.ContainsTrackPoint(notch) {
		t.Error("convex hull: notch point outside, want inside (concavity paved over)")
	}
	if hull.AreaProjected() <= stride.AreaProjected() {
		t.Errorf("hull area %v not greater than stride area %v",
			hull.AreaProjected(), stride.AreaProjected())
	}
}

// TestDeriveScaleFactors tests longitude convergence handling
func TestDeriveScaleFactors(t *testing.T) {
	tests := []struct {
		name    string
		meanLat float64
	}{
		{"equator", 0},
		{"mid latitude", 50.905},
		{"sixty degrees", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := DeriveScaleFactors(tt.meanLat, 100)

			wantY := 111320.0 / 100
			if sf.MetersPerY != wantY {
				t.Errorf("MetersPerY = %v, want %v", sf.MetersPerY, wantY)
			}

			wantX := wantY * math.Cos(tt.meanLat*math.Pi/180)
			if math.Abs(sf.MetersPerX-wantX) > 1e-9 {
				t.Errorf("MetersPerX = %v, want %v", sf.MetersPerX, wantX)
			}
		})
	}

	t.Run("sixty degrees halves longitude meters", func(t *testing.T) {
		sf := DeriveScaleFactors(60, 100)
		if math.Abs(sf.MetersPerX-sf.MetersPerY/2) > 1e-6 {
			t.Errorf("MetersPerX = %v, want half of MetersPerY (%v)", sf.MetersPerX, sf.MetersPerY/2)
		}
	})
}

// TestAreaUnits tests the exact unit relationships on a built boundary
func TestAreaUnits(t *testing.T) {
	field, err := NewBuilder().Build(squareTrack())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	sqm := field.AreaSquareMeters()
	if sqm <= 0 {
		t.Fatalf("AreaSquareMeters() = %v, want > 0", sqm)
	}
	if got := field.AreaHectares(); got != sqm/10000 {
		t.Errorf("AreaHectares() = %v, want exactly AreaSquareMeters()/10000 = %v", got, sqm/10000)
	}
	if got := field.AreaAcres(); got != sqm/4046.8564224 {
		t.Errorf("AreaAcres() = %v, want exactly AreaSquareMeters()/4046.8564224 = %v",
			got, sqm/4046.8564224)
	}

	// A 0.01 x 0.01 degree square at ~51N is roughly 1113 m tall and
	// 1113*cos(50.905) m wide; sanity-check the magnitude.
	wantSqm := 1113.2 * 1113.2 * math.Cos(50.905*math.Pi/180)
	if math.Abs(sqm-wantSqm)/wantSqm > 0.01 {
		t.Errorf("AreaSquareMeters() = %v, want within 1%% of %v", sqm, wantSqm)
	}
}

// TestBoundaryBounds tests the geographic bounding box of a built ring
func TestBoundaryBounds(t *testing.T) {
	field, err := NewBuilder().Build(squareTrack())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	bounds := field.Bounds()
	want := Bounds{MinLat: 50.90, MinLon: -1.40, MaxLat: 50.91, MaxLon: -1.39}

	const eps = 1e-9
	if math.Abs(bounds.MinLat-want.MinLat) > eps || math.Abs(bounds.MaxLat-want.MaxLat) > eps ||
		math.Abs(bounds.MinLon-want.MinLon) > eps || math.Abs(bounds.MaxLon-want.MaxLon) > eps {
		t.Errorf("Bounds() = %+v, want %+v", bounds, want)
	}
}

// TestCentroidGeo tests the centroid mapped back to geographic space
func TestCentroidGeo(t *testing.T) {
	field, err := NewBuilder().Build(squareTrack())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	c := field.CentroidGeo()
	if math.Abs(c.Lat-50.905) > 1e-9 || math.Abs(c.Lon+1.395) > 1e-9 {
		t.Errorf("CentroidGeo() = %+v, want (50.905, -1.395)", c)
	}
}

func TestBuildTrace(t *testing.T) {
	type call struct {
		stage  string
		points int
	}
	var calls []call

	opts := DefaultBuildOptions()
	opts.Trace = func(stage string, points int) {
		calls = append(calls, call{stage, points})
	}

	if _, err := NewBuilder().BuildWithOptions(squareTrack(), opts); err != nil {
		t.Fatalf("BuildWithOptions() error = %v", err)
	}

	want := []call{
		{"project", 4},
		{"simplify", 5},
	}
	if len(calls) != len(want) {
		t.Fatalf("Trace called %d times, want %d", len(calls), len(want))
	}
	for i, c := range calls {
		if c != want[i] {
			t.Errorf("Trace call %d = %+v, want %+v", i, c, want[i])
		}
	}
}

func TestBuildCustomClosureEpsilon(t *testing.T) {
	// A lap that ends a few centimeters from its start: closed under a
	// widened tolerance, open under the default one.
	track := append(squareTrack(), TrackPoint{Lat: 50.9000001, Lon: -1.3999999})

	opts := DefaultBuildOptions()
	opts.ClosureEpsilon = 1e-3

	field, err := NewBuilder().BuildWithOptions(track, opts)
	if err != nil {
		t.Fatalf("BuildWithOptions() error = %v", err)
	}

	// The near-coincident endpoint is snapped onto the start so the
	// ring closes exactly, rather than gaining a sixth vertex.
	if got := field.VertexCount(); got != 5 {
		t.Errorf("VertexCount() = %d, want 5", got)
	}
	ring := field.Ring()
	if ring[len(ring)-1] != ring[0] {
		t.Errorf("closing vertex = %v, want exact copy of first vertex %v", ring[len(ring)-1], ring[0])
	}
	if !field.Contains(Point{X: 0.5, Y: 0.5}) {
		t.Error("Contains() = false for the field center, want true")
	}
}
