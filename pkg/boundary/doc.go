// Package boundary turns a recorded GPS track into a usable field
// boundary and answers containment and area queries against it.
//
// This package is designed for single-run track analysis. It projects a
// noisy, possibly non-convex sequence of track points into a local planar
// frame, simplifies it into a closed simple polygon, and exposes fast
// point-in-polygon tests and real-world area measurement over the result.
//
// # Basic Usage
//
//	builder := boundary.NewBuilder()
//	field, err := builder.Build(trackPoints)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Boundary: %d vertices, %.2f ha\n",
//	    field.VertexCount(), field.AreaHectares())
//
// # Containment Queries
//
// A built boundary answers single and batched point tests. Batched
// results are always per-point equivalent to single calls:
//
//	inside := field.Contains(boundary.Point{X: 0.5, Y: 0.5})
//	results := field.ContainsBatch(samplePoints)
//
// Geographic points can be tested directly; they are projected into the
// boundary's frame first:
//
//	inside := field.ContainsTrackPoint(boundary.TrackPoint{Lat: 50.905, Lon: -1.395})
//
// # Multiple Boundaries
//
// When a run produces several boundaries, BoundaryIndex answers "which
// field contains this point" using an R-tree over boundary bounds with
// exact ray-cast refinement:
//
//	idx := boundary.NewBoundaryIndex()
//	idx.Add("north-field", northField)
//	idx.Add("south-field", southField)
//	matches := idx.QueryPoint(samplePoint)
//
// # Simplification Strategies
//
// The default strategy is stride decimation, which follows the physical
// track and preserves concave boundaries. A convex-hull strategy is
// available for regions known to be convex:
//
//	opts := boundary.DefaultBuildOptions()
//	opts.Strategy = boundary.StrategyConvexHull
//	field, err := builder.BuildWithOptions(trackPoints, opts)
//
// All values are immutable after construction: a Boundary and its views
// are safe for concurrent readers without locking.
package boundary
