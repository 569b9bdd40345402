package boundary

import (
	"github.com/dhconnelly/rtreego"
)

// BoundaryIndex answers "which boundary contains this point" over a
// collection of built boundaries.
//
// Each boundary is indexed by its geographic bounding box in an R-tree;
// point queries prefilter by box and refine with the exact ray-cast test
// in each candidate's own projected frame. Spatial queries are O(log N)
// with the R-tree, compared to O(N) with linear scan.
//
// Example:
//
//	idx := boundary.NewBoundaryIndex()
//	idx.Add("north-field", northField)
//	idx.Add("south-field", southField)
//
//	matches := idx.QueryPoint(boundary.TrackPoint{Lat: 50.905, Lon: -1.395})
//	for _, m := range matches {
//	    fmt.Printf("%s contains the point (%.2f ha)\n", m.Name, m.Boundary.AreaHectares())
//	}
type BoundaryIndex struct {
	entries []*IndexEntry
	rtree   *rtreego.Rtree
}

// IndexEntry is one indexed boundary with its lookup name.
type IndexEntry struct {
	Name     string
	Boundary *Boundary
	bounds   Bounds
}

// Bounds method for the rtreego.Spatial interface.
// Converts the geographic bounding box to an R-tree rectangle.
func (e *IndexEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.bounds.MinLon, e.bounds.MinLat}

	// R-tree rectangles need non-zero extents; a degenerate boundary
	// box gets a small epsilon (~11 meters at the equator).
	const epsilon = 0.0001
	lonLength := e.bounds.MaxLon - e.bounds.MinLon
	latLength := e.bounds.MaxLat - e.bounds.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// NewBoundaryIndex creates an empty index.
func NewBoundaryIndex() *BoundaryIndex {
	return &BoundaryIndex{
		rtree: rtreego.NewTree(2, 25, 50),
	}
}

// Add indexes a built boundary under a name. Names are labels, not keys:
// adding the same name twice indexes two entries.
func (idx *BoundaryIndex) Add(name string, b *Boundary) {
	entry := &IndexEntry{
		Name:     name,
		Boundary: b,
		bounds:   b.Bounds(),
	}
	idx.entries = append(idx.entries, entry)
	if idx.rtree != nil {
		idx.rtree.Insert(entry)
	}
}

// QueryPoint returns every indexed boundary whose ring contains the
// geographic point. Candidates come from the R-tree bounding-box
// prefilter; each is confirmed with the exact ray-cast test.
func (idx *BoundaryIndex) QueryPoint(pt TrackPoint) []*IndexEntry {
	var result []*IndexEntry

	if idx.rtree != nil {
		const epsilon = 1e-9
		queryRect, _ := rtreego.NewRect(
			rtreego.Point{pt.Lon, pt.Lat},
			[]float64{epsilon, epsilon},
		)

		for _, spatial := range idx.rtree.SearchIntersect(queryRect) {
			entry := spatial.(*IndexEntry)
			if entry.Boundary.ContainsTrackPoint(pt) {
				result = append(result, entry)
			}
		}
		return result
	}

	// Fallback to linear scan if no R-tree (shouldn't happen).
	for _, entry := range idx.entries {
		if !entry.bounds.Contains(pt) {
			continue
		}
		if entry.Boundary.ContainsTrackPoint(pt) {
			result = append(result, entry)
		}
	}
	return result
}

// QueryBounds returns every indexed boundary whose bounding box
// intersects the given box. This is a coarse box query; it does not
// refine against the rings.
func (idx *BoundaryIndex) QueryBounds(bounds Bounds) []*IndexEntry {
	var result []*IndexEntry

	if idx.rtree != nil {
		const epsilon = 1e-9
		lonLength := bounds.MaxLon - bounds.MinLon
		latLength := bounds.MaxLat - bounds.MinLat
		if lonLength < epsilon {
			lonLength = epsilon
		}
		if latLength < epsilon {
			latLength = epsilon
		}
		queryRect, _ := rtreego.NewRect(
			rtreego.Point{bounds.MinLon, bounds.MinLat},
			[]float64{lonLength, latLength},
		)
		for _, spatial := range idx.rtree.SearchIntersect(queryRect) {
			result = append(result, spatial.(*IndexEntry))
		}
		return result
	}

	for _, entry := range idx.entries {
		if bounds.Intersects(entry.bounds) {
			result = append(result, entry)
		}
	}
	return result
}

// Count returns the number of indexed boundaries.
func (idx *BoundaryIndex) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of all indexed boundary boxes.
func (idx *BoundaryIndex) Bounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}
	bounds := idx.entries[0].bounds
	for _, entry := range idx.entries[1:] {
		bounds = bounds.Union(entry.bounds)
	}
	return bounds
}

// All returns every entry in the index.
func (idx *BoundaryIndex) All() []*IndexEntry {
	return idx.entries
}
