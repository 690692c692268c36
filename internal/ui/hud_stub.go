//go:build !ebiten

package ui

// Height matches the GUI build's panel height.
const Height = 52

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(float64, float64, func(float64)) *HUD { return nil }

// SetLevel is a no-op in the headless build.
func (h *HUD) SetLevel(float64) {}

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string) {}

// SetCaption is a no-op in the headless build.
func (h *HUD) SetCaption(string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int, int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
