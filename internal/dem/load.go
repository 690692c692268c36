package dem

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// gridFile mirrors the grid.json layout emitted by the DEM downsampling
// pipeline. Elevation entries are nullable: null marks a nodata sample.
type gridFile struct {
	BBox  []float64    `json:"bbox"`
	NCols int          `json:"ncols"`
	NRows int          `json:"nrows"`
	Lons  []float64    `json:"lons"`
	Lats  []float64    `json:"lats"`
	Elev  [][]*float64 `json:"elev"`
}

// Load parses and validates a grid resource. Any structural violation yields
// a *FormatError; decode failures are wrapped as-is. Either way no Grid is
// returned, so callers can never render from a half-loaded resource.
func Load(r io.Reader) (*Grid, error) {
	var f gridFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode grid: %w", err)
	}

	if len(f.BBox) != 4 {
		return nil, formatErr("bbox", "want 4 values, got %d", len(f.BBox))
	}
	bounds := BBox{MinLon: f.BBox[0], MinLat: f.BBox[1], MaxLon: f.BBox[2], MaxLat: f.BBox[3]}

	if len(f.Elev) != f.NRows {
		return nil, formatErr("elev", "row count %d, want nrows %d", len(f.Elev), f.NRows)
	}
	elev := make([]float64, 0, f.NRows*f.NCols)
	for r, row := range f.Elev {
		if len(row) != f.NCols {
			return nil, formatErr("elev", "row %d has %d columns, want ncols %d", r, len(row), f.NCols)
		}
		for _, v := range row {
			if v == nil {
				elev = append(elev, math.NaN())
				continue
			}
			elev = append(elev, *v)
		}
	}

	return New(f.NCols, f.NRows, bounds, f.Lons, f.Lats, elev)
}

// LoadFile loads a grid resource from disk.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()
	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Write serializes a Grid back into the grid.json layout, with NaN samples
// emitted as null. It is the inverse of Load and exists for the synthetic
// grid generator.
func Write(w io.Writer, g *Grid) error {
	f := gridFile{
		BBox:  []float64{g.Bounds.MinLon, g.Bounds.MinLat, g.Bounds.MaxLon, g.Bounds.MaxLat},
		NCols: g.NCols,
		NRows: g.NRows,
		Lons:  g.Lons,
		Lats:  g.Lats,
		Elev:  make([][]*float64, g.NRows),
	}
	for r := 0; r < g.NRows; r++ {
		row := make([]*float64, g.NCols)
		for c := 0; c < g.NCols; c++ {
			v := g.Elevation(r, c)
			if !math.IsNaN(v) {
				row[c] = &v
			}
		}
		f.Elev[r] = row
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode grid: %w", err)
	}
	return nil
}
