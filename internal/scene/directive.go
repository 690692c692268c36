// Package scene maps per-cell flood states onto declarative draw directives
// and owns the render-handle table tied 1:1 to the cell list. The renderer
// behind the Renderer interface is opaque; scene never reaches past it.
package scene

import (
	"image/color"

	"floodview/internal/dem"
)

// FloodFill is the fixed translucent color of the water surface. Opacity is
// carried in the alpha channel.
var FloodFill = color.NRGBA{R: 30, G: 120, B: 220, A: 140}

// OutlineColor tints cells when the debug outline is enabled.
var OutlineColor = color.NRGBA{R: 240, G: 240, B: 255, A: 200}

// Directive is the full renderer-visible state of one cell. The zero value
// is a hidden, fully transparent, zero-height cell, which is exactly what
// dry and unknown cells emit.
type Directive struct {
	Visible bool
	Fill    color.NRGBA

	// Low and High bound the vertical water slab for visible cells.
	Low  float64
	High float64

	Outline bool
}

// Renderer is the boundary to the drawing engine. Allocate creates n cell
// handles (any previous handles are discarded first), Apply updates one
// handle, Frame requests an initial camera framing of the grid's bounding
// box, and Release drops all handles.
type Renderer interface {
	Allocate(n int)
	Apply(i int, d Directive)
	Frame(b dem.BBox)
	Release()
}
