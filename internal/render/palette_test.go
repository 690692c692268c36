package render

import (
	"math"
	"testing"
)

func TestTerrainColorEndpoints(t *testing.T) {
	lo := TerrainColor(0, 0, 100)
	if lo != terrainStops[0].c {
		t.Fatalf("minimum elevation = %v, want lowest stop %v", lo, terrainStops[0].c)
	}
	hi := TerrainColor(100, 0, 100)
	if hi != terrainStops[len(terrainStops)-1].c {
		t.Fatalf("maximum elevation = %v, want highest stop %v", hi, terrainStops[len(terrainStops)-1].c)
	}
}

func TestTerrainColorUnknown(t *testing.T) {
	if got := TerrainColor(math.NaN(), 0, 100); got != UnknownColor {
		t.Fatalf("missing sample = %v, want %v", got, UnknownColor)
	}
}

func TestTerrainColorFlatGrid(t *testing.T) {
	// min == max must not divide by zero.
	if got := TerrainColor(7, 7, 7); got != terrainStops[0].c {
		t.Fatalf("flat grid = %v, want lowest stop", got)
	}
}

func TestTerrainColorOpaque(t *testing.T) {
	for e := 0.0; e <= 100; e += 12.5 {
		if c := TerrainColor(e, 0, 100); c.A != 255 {
			t.Fatalf("base layer at %v has alpha %d, want opaque", e, c.A)
		}
	}
}
