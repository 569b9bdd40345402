package boundary

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON returns the boundary as a GeoJSON Feature: a Polygon in
// geographic coordinates with area and perimeter properties. This is the
// interchange surface for downstream reporting and visualization layers.
func (b *Boundary) GeoJSON(name string) *geojson.Feature {
	geo := b.RingGeo()
	ring := make(orb.Ring, len(geo))
	for i, pt := range geo {
		ring[i] = orb.Point{pt.Lon, pt.Lat}
	}

	feature := geojson.NewFeature(orb.Polygon{ring})
	feature.Properties["name"] = name
	feature.Properties["vertex_count"] = b.VertexCount()
	feature.Properties["area_m2"] = b.AreaSquareMeters()
	feature.Properties["area_ha"] = b.AreaHectares()
	feature.Properties["perimeter_m"] = b.PerimeterMeters()
	return feature
}

// MarshalGeoJSON serializes the boundary as a GeoJSON Feature document.
func (b *Boundary) MarshalGeoJSON(name string) ([]byte, error) {
	return b.GeoJSON(name).MarshalJSON()
}

// TrackFromGeoJSON extracts the outer ring of a GeoJSON Polygon feature
// as a track point sequence. Useful for cross-checking a boundary
// against one produced by another tool: feed the result back through a
// Builder.
func TrackFromGeoJSON(data []byte) ([]TrackPoint, error) {
	feature, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal feature: %w", err)
	}
	if feature.Geometry == nil {
		return nil, fmt.Errorf("feature has no geometry")
	}

	polygon, ok := feature.Geometry.(orb.Polygon)
	if !ok {
		return nil, fmt.Errorf("feature geometry is %s, want Polygon", feature.Geometry.GeoJSONType())
	}
	if len(polygon) == 0 {
		return nil, fmt.Errorf("polygon has no rings")
	}

	outer := polygon[0]
	points := make([]TrackPoint, len(outer))
	for i, pt := range outer {
		points[i] = TrackPoint{Lat: pt.Lat(), Lon: pt.Lon()}
	}
	return points, nil
}
