package main

import (
	"fmt"
	"log"

	"github.com/fieldtrace/boundary/pkg/boundary"
)

func main() {
	// A small square plot, 0.01 degree on each side.
	track := []boundary.TrackPoint{
		{Lat: 50.90, Lon: -1.40},
		{Lat: 50.91, Lon: -1.40},
		{Lat: 50.91, Lon: -1.39},
		{Lat: 50.90, Lon: -1.39},
	}

	field, err := boundary.NewBuilder().Build(track)
	if err != nil {
		log.Fatal(err)
	}

	// Geographic samples, e.g. sensor readings to classify.
	samples := []boundary.TrackPoint{
		{Lat: 50.905, Lon: -1.395}, // middle of the plot
		{Lat: 50.9199, Lon: -1.395},
		{Lat: 50.9005, Lon: -1.3905},
	}

	for _, s := range samples {
		fmt.Printf("(%.4f, %.4f) inside: %v\n", s.Lat, s.Lon, field.ContainsTrackPoint(s))
	}

	// Batched queries in the projected frame give the same per-point
	// answers as single calls.
	grid := make([]boundary.Point, 0, 25)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			grid = append(grid, boundary.Point{X: float64(x) * 0.3, Y: float64(y) * 0.3})
		}
	}

	inside := 0
	for _, hit := range field.ContainsBatch(grid) {
		if hit {
			inside++
		}
	}
	fmt.Printf("grid: %d of %d points inside\n", inside, len(grid))
}
