package main

import (
	"fmt"
	"log"

	"github.com/fieldtrace/boundary/pkg/boundary"
)

// plot builds a square field with its southwest corner at (lat, lon).
func plot(builder boundary.Builder, lat, lon float64) *boundary.Boundary {
	field, err := builder.Build([]boundary.TrackPoint{
		{Lat: lat, Lon: lon},
		{Lat: lat + 0.01, Lon: lon},
		{Lat: lat + 0.01, Lon: lon + 0.01},
		{Lat: lat, Lon: lon + 0.01},
	})
	if err != nil {
		log.Fatal(err)
	}
	return field
}

func main() {
	builder := boundary.NewBuilder()

	idx := boundary.NewBoundaryIndex()
	idx.Add("north-field", plot(builder, 50.92, -1.40))
	idx.Add("south-field", plot(builder, 50.90, -1.40))
	idx.Add("east-field", plot(builder, 50.91, -1.38))

	union := idx.Bounds()
	fmt.Printf("%d fields covering (%.2f, %.2f) to (%.2f, %.2f)\n",
		idx.Count(), union.MinLat, union.MinLon, union.MaxLat, union.MaxLon)

	probes := []boundary.TrackPoint{
		{Lat: 50.925, Lon: -1.395},
		{Lat: 50.905, Lon: -1.395},
		{Lat: 50.915, Lon: -1.375},
		{Lat: 50.95, Lon: -1.40}, // outside every field
	}

	for _, p := range probes {
		matches := idx.QueryPoint(p)
		if len(matches) == 0 {
			fmt.Printf("(%.3f, %.3f): no field\n", p.Lat, p.Lon)
			continue
		}
		for _, m := range matches {
			fmt.Printf("(%.3f, %.3f): %s (%.1f ha)\n",
				p.Lat, p.Lon, m.Name, m.Boundary.AreaHectares())
		}
	}
}
