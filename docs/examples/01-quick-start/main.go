package main

import (
	"fmt"
	"log"
	"math"

	"github.com/fieldtrace/boundary/pkg/boundary"
)

// recordedTrack simulates what an external GPX/CSV parser would hand
// over: one lap driven around a roughly circular field.
func recordedTrack() []boundary.TrackPoint {
	const samples = 336
	points := make([]boundary.TrackPoint, samples)
	for i := 0; i < samples; i++ {
		angle := 2 * math.Pi * float64(i) / samples
		points[i] = boundary.TrackPoint{
			Lat: 50.905 + 0.005*math.Sin(angle),
			Lon: -1.395 + 0.005*math.Cos(angle),
		}
	}
	return points
}

func main() {
	builder := boundary.NewBuilder()

	field, err := builder.Build(recordedTrack())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Boundary: %d vertices\n", field.VertexCount())
	fmt.Printf("Area:      %.2f ha (%.2f acres)\n", field.AreaHectares(), field.AreaAcres())
	fmt.Printf("Perimeter: %.0f m\n", field.PerimeterMeters())

	centroid := field.CentroidGeo()
	fmt.Printf("Centroid:  %.5f, %.5f\n", centroid.Lat, centroid.Lon)

	// Export for the mapping layer.
	doc, err := field.MarshalGeoJSON("demo-field")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("GeoJSON:   %d bytes\n", len(doc))
}
