// Package terrain synthesizes elevation grids for demos and tests, standing
// in for the GeoTIFF downsampling pipeline when no real DEM is at hand.
package terrain

import (
	"fmt"
	"math"
	"math/rand/v2"

	"floodview/internal/dem"
)

// Params controls the synthesized landscape. Zero dimensions, bounds, and
// heights fall back to the values in DefaultParams; Nodata is taken as given.
type Params struct {
	NCols int
	NRows int

	Bounds dem.BBox
	Seed   int64

	Hills      int     // gaussian hill count
	PeakHeight float64 // tallest hill, length-units
	SeaDepth   float64 // depth of the western basin
	Nodata     float64 // chance in [0,1) that a sample is dropped
}

// DefaultParams matches the scale of the real downsampled grids.
func DefaultParams() Params {
	return Params{
		NCols:      150,
		NRows:      100,
		Bounds:     dem.BBox{MinLon: 24.0, MinLat: 59.0, MaxLon: 25.5, MaxLat: 60.0},
		Seed:       1337,
		Hills:      14,
		PeakHeight: 120,
		SeaDepth:   20,
		Nodata:     0.01,
	}
}

// Synthesize builds a deterministic grid: a west-to-east ramp out of a
// shallow sea, gaussian hills on top, and a sprinkle of nodata holes. The
// same params always produce the same grid.
func Synthesize(p Params) (*dem.Grid, error) {
	d := DefaultParams()
	if p.NCols == 0 {
		p.NCols = d.NCols
	}
	if p.NRows == 0 {
		p.NRows = d.NRows
	}
	if p.Bounds == (dem.BBox{}) {
		p.Bounds = d.Bounds
	}
	if p.Hills == 0 {
		p.Hills = d.Hills
	}
	if p.PeakHeight == 0 {
		p.PeakHeight = d.PeakHeight
	}
	if p.SeaDepth == 0 {
		p.SeaDepth = d.SeaDepth
	}
	if p.NCols < 2 || p.NRows < 2 {
		return nil, fmt.Errorf("terrain: grid must be at least 2x2, got %dx%d", p.NCols, p.NRows)
	}

	rng := rand.New(rand.NewPCG(uint64(p.Seed), 0))

	lons := linspace(p.Bounds.MinLon, p.Bounds.MaxLon, p.NCols)
	lats := linspace(p.Bounds.MaxLat, p.Bounds.MinLat, p.NRows) // north to south

	type hill struct{ cx, cy, height, radius float64 }
	hills := make([]hill, p.Hills)
	for i := range hills {
		hills[i] = hill{
			cx:     0.2 + 0.8*rng.Float64(), // keep peaks off the western sea
			cy:     rng.Float64(),
			height: p.PeakHeight * (0.3 + 0.7*rng.Float64()),
			radius: 0.05 + 0.15*rng.Float64(),
		}
	}

	elev := make([]float64, p.NRows*p.NCols)
	for r := 0; r < p.NRows; r++ {
		for c := 0; c < p.NCols; c++ {
			x := float64(c) / float64(p.NCols-1)
			y := float64(r) / float64(p.NRows-1)

			// Coastal ramp: below sea level at the western edge, rising inland.
			v := -p.SeaDepth + (p.SeaDepth+0.25*p.PeakHeight)*x
			for _, h := range hills {
				dx, dy := x-h.cx, y-h.cy
				v += h.height * math.Exp(-(dx*dx+dy*dy)/(2*h.radius*h.radius))
			}
			if p.Nodata > 0 && rng.Float64() < p.Nodata {
				v = math.NaN()
			}
			elev[r*p.NCols+c] = v
		}
	}

	return dem.New(p.NCols, p.NRows, p.Bounds, lons, lats, elev)
}

func linspace(from, to float64, n int) []float64 {
	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	out[n-1] = to
	return out
}
