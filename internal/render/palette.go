// Package render draws the terrain base layer and the flood overlay. The
// ebiten-backed painter lives behind the 'ebiten' build tag; the palette is
// pure and headless.
package render

import (
	"image/color"
	"math"
)

// UnknownColor marks cells whose elevation sample is missing.
var UnknownColor = color.NRGBA{R: 38, G: 38, B: 44, A: 255}

// hypsometric tint stops, low to high ground.
var terrainStops = []struct {
	t float64
	c color.NRGBA
}{
	{0.00, color.NRGBA{R: 22, G: 86, B: 46, A: 255}},
	{0.25, color.NRGBA{R: 64, G: 130, B: 56, A: 255}},
	{0.50, color.NRGBA{R: 150, G: 142, B: 70, A: 255}},
	{0.75, color.NRGBA{R: 132, G: 98, B: 68, A: 255}},
	{1.00, color.NRGBA{R: 226, G: 226, B: 226, A: 255}},
}

// TerrainColor maps an elevation sample to its base-layer tint. Missing
// samples get UnknownColor; min == max grids collapse to the lowest stop.
func TerrainColor(elev, min, max float64) color.NRGBA {
	if math.IsNaN(elev) {
		return UnknownColor
	}
	t := 0.0
	if max > min {
		t = (elev - min) / (max - min)
	}
	if t <= 0 {
		return terrainStops[0].c
	}
	if t >= 1 {
		return terrainStops[len(terrainStops)-1].c
	}
	for i := 1; i < len(terrainStops); i++ {
		if t <= terrainStops[i].t {
			lo, hi := terrainStops[i-1], terrainStops[i]
			f := (t - lo.t) / (hi.t - lo.t)
			return blend(lo.c, hi.c, f)
		}
	}
	return terrainStops[len(terrainStops)-1].c
}

func blend(a, b color.NRGBA, f float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + f*(float64(y)-float64(x))))
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}
