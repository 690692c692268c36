//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"floodview/internal/dem"
	"floodview/internal/render"
	"floodview/internal/ui"
)

// Game adapts a flood session to the ebiten.Game interface. A nil session
// (grid not yet loaded) leaves every control inert.
type Game struct {
	session *Session
	painter *render.Painter
	hud     *ui.HUD
	scale   int
	outline bool
}

// New constructs a Game for the provided session and painter.
func New(session *Session, painter *render.Painter, cfg *Config) *Game {
	g := &Game{session: session, painter: painter, scale: cfg.Scale, outline: cfg.Outline}
	if g.scale <= 0 {
		g.scale = 1
	}
	if session != nil {
		min, max := session.Controller.Bounds()
		g.hud = ui.NewHUD(min, max, func(v float64) {
			g.session.Controller.SetLevel(v)
		})
		st := session.Grid.Stats
		g.hud.SetCaption(fmt.Sprintf("%dx%d cells  elev %.0f..%.0f  space=play r=reset o=outline",
			session.Grid.NCols-1, session.Grid.NRows-1, st.Min, st.Max))
	}
	return g
}

// Update handles input, advances the animation, and refreshes the HUD.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.session == nil {
		return nil
	}
	ctrl := g.session.Controller

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ctrl.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.outline = !g.outline
		g.session.Binding.SetOutline(g.outline)
		ctrl.SetLevel(ctrl.Level())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		ctrl.SetLevel(ctrl.Level() + dem.LevelStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		ctrl.SetLevel(ctrl.Level() - dem.LevelStep)
	}

	w, h := g.painter.Size()
	g.hud.Update(h*g.scale, w*g.scale)

	ctrl.Advance(time.Now())

	g.hud.SetLevel(ctrl.Level())
	g.hud.SetStatus(ctrl.Phase().String())
	return nil
}

// Draw renders the terrain, the flood overlay, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	if g.hud != nil {
		w, h := g.painter.Size()
		g.hud.Draw(screen, h*g.scale, w*g.scale)
	}
}

// Layout returns the logical screen size: the cell view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h*g.scale + ui.Height
}
