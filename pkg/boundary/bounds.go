package boundary

// Bounds is a geographic bounding box.
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// Intersects reports whether two bounding boxes overlap.
func (b Bounds) Intersects(other Bounds) bool {
	return b.MinLon <= other.MaxLon && b.MaxLon >= other.MinLon &&
		b.MinLat <= other.MaxLat && b.MaxLat >= other.MinLat
}

// Union returns the smallest bounding box covering both boxes.
func (b Bounds) Union(other Bounds) Bounds {
	u := b
	if other.MinLat < u.MinLat {
		u.MinLat = other.MinLat
	}
	if other.MinLon < u.MinLon {
		u.MinLon = other.MinLon
	}
	if other.MaxLat > u.MaxLat {
		u.MaxLat = other.MaxLat
	}
	if other.MaxLon > u.MaxLon {
		u.MaxLon = other.MaxLon
	}
	return u
}

// Contains reports whether a track point lies within the box,
// boundaries included. This is a coarse box test, not a polygon test.
func (b Bounds) Contains(pt TrackPoint) bool {
	return pt.Lat >= b.MinLat && pt.Lat <= b.MaxLat &&
		pt.Lon >= b.MinLon && pt.Lon <= b.MaxLon
}
