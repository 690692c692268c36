//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"floodview/internal/dem"
	"floodview/internal/scene"
)

// Painter is the ebiten implementation of scene.Renderer. Each cell handle
// is one pixel of the overlay image; the terrain base layer is painted once
// from the grid and never changes.
type Painter struct {
	cols, rows int

	terrain *ebiten.Image
	overlay *ebiten.Image
	buf     []byte
	dirty   bool
	framed  dem.BBox
}

// NewPainter builds the terrain base layer for a loaded grid.
func NewPainter(g *dem.Grid) *Painter {
	p := &Painter{cols: g.NCols - 1, rows: g.NRows - 1}
	if p.cols <= 0 || p.rows <= 0 {
		return p
	}
	p.terrain = ebiten.NewImage(p.cols, p.rows)
	buf := make([]byte, 4*p.cols*p.rows)
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			col := TerrainColor(g.Elevation(r, c), g.Stats.Min, g.Stats.Max)
			base := 4 * (r*p.cols + c)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
	p.terrain.WritePixels(buf)
	return p
}

// Size returns the overlay dimensions in cells.
func (p *Painter) Size() (w, h int) { return p.cols, p.rows }

// Framed returns the bounding box requested via Frame.
func (p *Painter) Framed() dem.BBox { return p.framed }

// Allocate creates the per-cell overlay handles. The overlay starts fully
// transparent.
func (p *Painter) Allocate(n int) {
	p.Release()
	if n != p.cols*p.rows {
		// A foreign cell list cannot be mapped onto this grid's pixels.
		return
	}
	p.overlay = ebiten.NewImage(p.cols, p.rows)
	p.buf = make([]byte, 4*n)
	p.dirty = true
}

// Apply updates one cell handle from its directive.
func (p *Painter) Apply(i int, d scene.Directive) {
	base := 4 * i
	if base < 0 || base+3 >= len(p.buf) {
		return
	}
	if !d.Visible {
		p.buf[base+0] = 0
		p.buf[base+1] = 0
		p.buf[base+2] = 0
		p.buf[base+3] = 0
		p.dirty = true
		return
	}
	fill := d.Fill
	if d.Outline {
		fill = blend(fill, scene.OutlineColor, 0.5)
	}
	p.buf[base+0] = fill.R
	p.buf[base+1] = fill.G
	p.buf[base+2] = fill.B
	p.buf[base+3] = fill.A
	p.dirty = true
}

// Frame records the camera framing request. The desktop viewport always
// shows the full grid, so framing only pins the geographic extent for
// readouts.
func (p *Painter) Frame(b dem.BBox) {
	p.framed = b
}

// Release drops the overlay handles. The terrain base layer survives; it
// belongs to the grid, not to the cell list.
func (p *Painter) Release() {
	if p.overlay != nil {
		p.overlay.Dispose()
		p.overlay = nil
	}
	p.buf = nil
	p.dirty = false
}

// Draw paints terrain then flood overlay into dst at the given pixel scale.
func (p *Painter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	if p.terrain != nil {
		dst.DrawImage(p.terrain, op)
	}
	if p.overlay == nil {
		return
	}
	if p.dirty {
		p.overlay.WritePixels(p.buf)
		p.dirty = false
	}
	dst.DrawImage(p.overlay, op)
}
