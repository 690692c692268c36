//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"floodview/internal/dem"
)

// Height is the pixel height of the HUD panel below the terrain view.
const Height = 52

const trackMargin = 14

// HUD draws the water-level slider and status line and reports slider drags
// back through a callback.
type HUD struct {
	min, max float64
	level    float64
	status   string
	caption  string

	onLevel  func(float64)
	dragging bool

	pixel *ebiten.Image
}

// NewHUD creates a HUD for the given level bounds. onLevel fires on every
// slider movement with the quantized level.
func NewHUD(min, max float64, onLevel func(float64)) *HUD {
	h := &HUD{min: min, max: max, onLevel: onLevel}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// SetLevel mirrors the controller's current level into the slider.
func (h *HUD) SetLevel(v float64) { h.level = v }

// SetStatus sets the phase readout ("idle", "running", "paused").
func (h *HUD) SetStatus(s string) { h.status = s }

// SetCaption sets the secondary info line (grid stats, key hints).
func (h *HUD) SetCaption(s string) { h.caption = s }

// Update processes slider input. panelY is the top of the HUD panel and
// width its pixel width.
func (h *HUD) Update(panelY, width int) {
	x0, x1 := trackMargin, width-trackMargin
	trackY := panelY + 14

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if my >= trackY-8 && my <= trackY+8 && mx >= x0-6 && mx <= x1+6 {
			h.dragging = true
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		h.dragging = false
	}
	if h.dragging && h.onLevel != nil {
		h.onLevel(LevelForX(mx, x0, x1, h.min, h.max, dem.LevelStep))
	}
}

// Draw paints the panel anchored at panelY.
func (h *HUD) Draw(screen *ebiten.Image, panelY, width int) {
	h.fillRect(screen, 0, panelY, width, Height, color.RGBA{R: 16, G: 16, B: 20, A: 255})

	x0, x1 := trackMargin, width-trackMargin
	trackY := panelY + 14
	h.fillRect(screen, x0, trackY-1, x1-x0, 2, color.RGBA{R: 90, G: 90, B: 100, A: 255})

	hx := XForLevel(h.level, x0, x1, h.min, h.max)
	h.fillRect(screen, hx-3, trackY-7, 6, 14, color.RGBA{R: 70, G: 150, B: 235, A: 255})

	line := fmt.Sprintf("level %.1f  [%s]", h.level, h.status)
	text.Draw(screen, line, basicfont.Face7x13, trackMargin, panelY+36, color.White)
	if h.caption != "" {
		text.Draw(screen, h.caption, basicfont.Face7x13, trackMargin, panelY+48,
			color.RGBA{R: 150, G: 150, B: 160, A: 255})
	}
}

func (h *HUD) fillRect(dst *ebiten.Image, x, y, w, hh int, c color.Color) {
	if w <= 0 || hh <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(hh))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(h.pixel, op)
}
