package flood

import (
	"math"
	"testing"

	"floodview/internal/dem"
)

func mustGrid(t *testing.T, ncols, nrows int, elev []float64) *dem.Grid {
	t.Helper()
	lons := make([]float64, ncols)
	for i := range lons {
		lons[i] = 24 + 0.5*float64(i)
	}
	lats := make([]float64, nrows)
	for i := range lats {
		lats[i] = 60 - 0.5*float64(i)
	}
	b := dem.BBox{MinLon: lons[0], MinLat: lats[nrows-1], MaxLon: lons[ncols-1] + 0.1, MaxLat: lats[0] + 0.1}
	g, err := dem.New(ncols, nrows, b, lons, lats, elev)
	if err != nil {
		t.Fatalf("build grid: %v", err)
	}
	return g
}

func TestBuildCellsCount(t *testing.T) {
	g := mustGrid(t, 4, 3, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	cells := BuildCells(g)
	if want := (3 - 1) * (4 - 1); len(cells) != want {
		t.Fatalf("cell count = %d, want %d", len(cells), want)
	}
}

func TestBuildCellsGeometryAndElevation(t *testing.T) {
	// Single-cell grid from the two-by-two corner samples; the cell takes
	// the north-west corner's elevation, not an average.
	g := mustGrid(t, 2, 2, []float64{10, 20, math.NaN(), 5})
	cells := BuildCells(g)
	if len(cells) != 1 {
		t.Fatalf("cell count = %d, want 1", len(cells))
	}

	c := cells[0]
	if c.Elevation != 10 {
		t.Fatalf("cell elevation = %v, want corner sample 10", c.Elevation)
	}
	if c.West != g.Lons[0] || c.East != g.Lons[1] {
		t.Fatalf("cell lon span (%v, %v), want (%v, %v)", c.West, c.East, g.Lons[0], g.Lons[1])
	}
	if c.North != g.Lats[0] || c.South != g.Lats[1] {
		t.Fatalf("cell lat span (%v, %v), want (%v, %v)", c.South, c.North, g.Lats[1], g.Lats[0])
	}

	if got := Evaluate(c.Elevation, 5); got != Dry {
		t.Fatalf("state at level 5 = %v, want dry", got)
	}
	if got := Evaluate(c.Elevation, 15); got != Flooded {
		t.Fatalf("state at level 15 = %v, want flooded", got)
	}
}

func TestBuildCellsRowMajorOrder(t *testing.T) {
	g := mustGrid(t, 3, 3, []float64{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	})
	cells := BuildCells(g)
	// Row-major, row outer: cell i carries elev[r][c] for (r, c) = CellRowCol(i).
	for i, c := range cells {
		r, col := CellRowCol(i, g.NCols)
		if want := g.Elevation(r, col); c.Elevation != want {
			t.Fatalf("cell %d elevation = %v, want %v at (%d,%d)", i, c.Elevation, want, r, col)
		}
	}
}

func TestCellIndexRoundTrip(t *testing.T) {
	const ncols = 7
	for r := 0; r < 5; r++ {
		for c := 0; c < ncols-1; c++ {
			i := CellIndex(r, c, ncols)
			gr, gc := CellRowCol(i, ncols)
			if gr != r || gc != c {
				t.Fatalf("round trip (%d,%d) -> %d -> (%d,%d)", r, c, i, gr, gc)
			}
		}
	}
}

func TestBuildCellsDegenerateGrid(t *testing.T) {
	g := mustGrid(t, 2, 1, []float64{1, 2})
	if cells := BuildCells(g); cells != nil {
		t.Fatalf("single-row grid built %d cells, want none", len(cells))
	}
}
