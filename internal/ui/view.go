package ui

import "github.com/gogpu/gg"

// View maps between world space (origin at the window center, y up) and
// screen space (origin top-left, y down).
type View struct {
	toScreen gg.Matrix
	toWorld  gg.Matrix
}

// NewView returns the view for a window of the given size.
func NewView(width, height float64) View {
	m := gg.Translate(width/2, height/2).Multiply(gg.Scale(1, -1))
	return View{toScreen: m, toWorld: m.Invert()}
}

// Screen converts a world point to screen pixels.
func (v View) Screen(p gg.Point) gg.Point { return v.toScreen.TransformPoint(p) }

// World converts a screen position to world space.
func (v View) World(p gg.Point) gg.Point { return v.toWorld.TransformPoint(p) }
