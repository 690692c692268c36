package app

import (
	"floodview/internal/anim"
	"floodview/internal/dem"
	"floodview/internal/flood"
	"floodview/internal/scene"
)

// Session is the explicit context object for one loaded grid: the grid, its
// derived cell list, the render binding, and the animation controller. All
// flood state for a session lives here; there is no package-level state, so
// independent sessions can coexist.
type Session struct {
	Grid       *dem.Grid
	Cells      []flood.Cell
	Binding    *scene.Binding
	Controller *anim.Controller
}

// NewSession wires grid → cells → binding → controller and runs the initial
// evaluate/apply pass at the baseline level. The renderer receives exactly
// one Allocate and one Frame call here; every later level change reuses the
// same handles.
func NewSession(g *dem.Grid, r scene.Renderer, cfg *Config) (*Session, error) {
	cells := flood.BuildCells(g)
	binding := scene.NewBinding(r)
	binding.SetOutline(cfg.Outline)
	binding.Bind(g, cells)

	min, max := g.LevelBounds()
	ctrl, err := anim.New(anim.Config{
		Min:      min,
		Max:      max,
		Baseline: cfg.Baseline,
		Rate:     cfg.Rate,
		Period:   cfg.Period,
	}, binding.Apply)
	if err != nil {
		binding.Release()
		return nil, err
	}
	ctrl.Reset()

	return &Session{Grid: g, Cells: cells, Binding: binding, Controller: ctrl}, nil
}

// Close releases the session's render handles. The session must not be used
// afterwards.
func (s *Session) Close() {
	s.Binding.Release()
}
