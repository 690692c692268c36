// gridgen emits a synthetic grid.json so the viewer and tools can run
// without the GeoTIFF preprocessing pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"floodview/internal/dem"
	"floodview/pkg/terrain"
)

func main() {
	p := terrain.DefaultParams()
	out := flag.String("out", "data/grid.json", "output path")
	bbox := flag.String("bbox", "", "bounding box as minLon,minLat,maxLon,maxLat")
	flag.IntVar(&p.NCols, "ncols", p.NCols, "grid columns")
	flag.IntVar(&p.NRows, "nrows", p.NRows, "grid rows")
	flag.Int64Var(&p.Seed, "seed", p.Seed, "terrain seed")
	flag.IntVar(&p.Hills, "hills", p.Hills, "hill count")
	flag.Float64Var(&p.PeakHeight, "peak", p.PeakHeight, "tallest hill height")
	flag.Float64Var(&p.Nodata, "nodata", p.Nodata, "per-sample nodata chance")
	flag.Parse()

	if *bbox != "" {
		b, err := parseBBox(*bbox)
		if err != nil {
			log.Fatalf("parse bbox: %v", err)
		}
		p.Bounds = b
	}

	grid, err := terrain.Synthesize(p)
	if err != nil {
		log.Fatalf("synthesize: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()
	if err := dem.Write(f, grid); err != nil {
		log.Fatalf("write grid: %v", err)
	}
	log.Printf("wrote %s: %dx%d, elev %.1f..%.1f, %d missing",
		*out, grid.NCols, grid.NRows, grid.Stats.Min, grid.Stats.Max, grid.Stats.Missing)
}

func parseBBox(s string) (dem.BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return dem.BBox{}, fmt.Errorf("want 4 comma-separated values, got %d", len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return dem.BBox{}, err
		}
		vals[i] = v
	}
	return dem.BBox{MinLon: vals[0], MinLat: vals[1], MaxLon: vals[2], MaxLat: vals[3]}, nil
}
