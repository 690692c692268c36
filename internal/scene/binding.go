package scene

import (
	"floodview/internal/dem"
	"floodview/internal/flood"
)

// Binding pushes flood states for a fixed cell list through a Renderer.
// Handles are allocated once per Bind and reused by every Apply pass, so
// applying the same level twice is free of renderer-side churn.
type Binding struct {
	r       Renderer
	cells   []flood.Cell
	outline bool
	bound   bool
}

// NewBinding wraps a renderer. Bind must be called before Apply.
func NewBinding(r Renderer) *Binding {
	return &Binding{r: r}
}

// Bind installs the cell list for a freshly loaded grid. Any handles from a
// previous grid are released before the new ones are allocated, and the
// renderer is asked to frame the grid's bounding box once.
func (b *Binding) Bind(g *dem.Grid, cells []flood.Cell) {
	if b.bound {
		b.r.Release()
	}
	b.cells = cells
	b.r.Allocate(len(cells))
	b.r.Frame(g.Bounds)
	b.bound = true
}

// Release drops all render handles. The binding can be reused via Bind.
func (b *Binding) Release() {
	if !b.bound {
		return
	}
	b.r.Release()
	b.cells = nil
	b.bound = false
}

// SetOutline toggles the debug outline on subsequently applied directives.
func (b *Binding) SetOutline(on bool) { b.outline = on }

// CellCount reports the number of bound cells.
func (b *Binding) CellCount() int { return len(b.cells) }

// Apply evaluates every cell at the given level and pushes one directive per
// cell, in cell order. It is idempotent: the same level always produces the
// same directives. With no cells bound it is a no-op.
func (b *Binding) Apply(level float64) {
	for i := range b.cells {
		b.r.Apply(i, b.directive(b.cells[i].Elevation, level))
	}
}

func (b *Binding) directive(elev, level float64) Directive {
	if flood.Evaluate(elev, level) != flood.Flooded {
		// Hidden, transparent, height collapsed to zero.
		return Directive{}
	}
	low, high := flood.Extent(level)
	return Directive{
		Visible: true,
		Fill:    FloodFill,
		Low:     low,
		High:    high,
		Outline: b.outline,
	}
}
