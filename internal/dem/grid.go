// Package dem holds the elevation grid consumed by the flood viewer: loading,
// structural validation, and the derived level bounds and summary statistics.
// A Grid is immutable once built; every downstream component treats it as
// read-only session input.
package dem

import (
	"fmt"
	"math"
)

// LevelStep is the granularity of the water-level slider.
const LevelStep = 0.5

// BBox is a geographic bounding box in degrees.
type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// Grid is a rectangular elevation raster with geographic axes. Rows run
// north to south, columns west to east. Missing samples are stored as NaN.
type Grid struct {
	NCols  int
	NRows  int
	Bounds BBox

	// Lons has NCols strictly increasing values; Lats has NRows strictly
	// decreasing values (row 0 is the northern edge).
	Lons []float64
	Lats []float64

	Stats Summary

	elev []float64 // NRows*NCols, row-major, NaN = missing
}

// FormatError reports a structural problem in a grid resource. The grid is
// rejected wholesale; no partially valid Grid is ever returned.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed grid: %s: %s", e.Field, e.Reason)
}

func formatErr(field, format string, args ...any) error {
	return &FormatError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// New validates the raw grid components and builds a Grid. The elevation
// slice is row-major with NRows*NCols entries; NaN marks missing samples
// and non-finite values are normalized to NaN here, once.
func New(ncols, nrows int, bounds BBox, lons, lats, elev []float64) (*Grid, error) {
	if ncols <= 0 {
		return nil, formatErr("ncols", "must be positive, got %d", ncols)
	}
	if nrows <= 0 {
		return nil, formatErr("nrows", "must be positive, got %d", nrows)
	}
	for _, v := range []float64{bounds.MinLon, bounds.MinLat, bounds.MaxLon, bounds.MaxLat} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, formatErr("bbox", "non-finite bound %v", v)
		}
	}
	if bounds.MinLon >= bounds.MaxLon {
		return nil, formatErr("bbox", "minLon %v >= maxLon %v", bounds.MinLon, bounds.MaxLon)
	}
	if bounds.MinLat >= bounds.MaxLat {
		return nil, formatErr("bbox", "minLat %v >= maxLat %v", bounds.MinLat, bounds.MaxLat)
	}
	if len(lons) != ncols {
		return nil, formatErr("lons", "length %d, want ncols %d", len(lons), ncols)
	}
	if len(lats) != nrows {
		return nil, formatErr("lats", "length %d, want nrows %d", len(lats), nrows)
	}
	for i, v := range lons {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, formatErr("lons", "non-finite value at index %d", i)
		}
		if i > 0 && lons[i-1] >= v {
			return nil, formatErr("lons", "not strictly increasing at index %d", i)
		}
	}
	for i, v := range lats {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, formatErr("lats", "non-finite value at index %d", i)
		}
		if i > 0 && lats[i-1] <= v {
			return nil, formatErr("lats", "not strictly decreasing at index %d", i)
		}
	}
	if len(elev) != nrows*ncols {
		return nil, formatErr("elev", "length %d, want nrows*ncols %d", len(elev), nrows*ncols)
	}

	norm := make([]float64, len(elev))
	for i, v := range elev {
		if math.IsInf(v, 0) {
			v = math.NaN()
		}
		norm[i] = v
	}

	stats, err := summarize(norm)
	if err != nil {
		return nil, err
	}

	return &Grid{
		NCols:  ncols,
		NRows:  nrows,
		Bounds: bounds,
		Lons:   append([]float64(nil), lons...),
		Lats:   append([]float64(nil), lats...),
		Stats:  stats,
		elev:   norm,
	}, nil
}

// Elevation returns the sample at row r, column c, NaN when missing.
func (g *Grid) Elevation(r, c int) float64 {
	return g.elev[r*g.NCols+c]
}

// Elevations exposes the row-major sample slice. Callers must not mutate it.
func (g *Grid) Elevations() []float64 { return g.elev }

// LevelBounds returns the slider range for this grid: the finite elevation
// extremes padded down by 5 and up by 10, snapped to whole units.
func (g *Grid) LevelBounds() (min, max float64) {
	return math.Floor(g.Stats.Min - 5), math.Ceil(g.Stats.Max + 10)
}
