//go:build !ebiten

package ui

import "sandfall/internal/sims/sandbox"

// Status mirrors the GUI status block in headless builds.
type Status struct {
	Selected sandbox.Type
	Brush    int
	Tick     int
	Paused   bool
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*sandbox.World, int) *HUD { return nil }

// Height is zero in the headless build.
func (h *HUD) Height() int { return 0 }

// Update never reports a selection in the headless build.
func (h *HUD) Update(int) (sandbox.Type, bool) { return sandbox.TypeEmpty, false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Status) {}
