// Package flood derives renderable cells from an elevation grid and
// classifies them against a water level.
package flood

import (
	"floodview/internal/dem"
)

// Cell is one renderable quad between four adjacent grid corners. Its
// representative elevation is the quad's north-west corner sample
// (elev[r][c]), NaN when that sample is missing.
type Cell struct {
	West  float64
	South float64
	East  float64
	North float64

	Elevation float64
}

// BuildCells produces the (nrows-1)*(ncols-1) cells of a grid in row-major
// order, row outer. This ordering is a contract: render handle i corresponds
// to CellRowCol(i, g.NCols).
func BuildCells(g *dem.Grid) []Cell {
	rows, cols := g.NRows-1, g.NCols-1
	if rows <= 0 || cols <= 0 {
		return nil
	}
	cells := make([]Cell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, Cell{
				West:      g.Lons[c],
				South:     g.Lats[r+1],
				East:      g.Lons[c+1],
				North:     g.Lats[r],
				Elevation: g.Elevation(r, c),
			})
		}
	}
	return cells
}

// CellIndex maps a cell's grid coordinates to its position in the BuildCells
// order.
func CellIndex(r, c, ncols int) int {
	return r*(ncols-1) + c
}

// CellRowCol inverts CellIndex.
func CellRowCol(i, ncols int) (r, c int) {
	w := ncols - 1
	return i / w, i % w
}
