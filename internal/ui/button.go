// Package ui holds the presentation logic that does not depend on the
// rendering backend: the pause button, the view transform, window size
// tracking and colors.
package ui

import "image"

// ButtonState is the visual state of a Button.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonHovered:
		return "hovered"
	case ButtonPressed:
		return "pressed"
	default:
		return "normal"
	}
}

// Button is a rectangular toggle control anchored to the top-right corner
// of the window.
type Button struct {
	Width, Height int
	Inset         int // distance from the top and right edges

	hovered bool
	pressed bool
	// armed is set while a press that began over the button is held.
	armed bool
}

// Rect returns the button bounds in a window of the given width.
func (b *Button) Rect(windowWidth int) image.Rectangle {
	x := windowWidth - b.Inset - b.Width
	return image.Rect(x, b.Inset, x+b.Width, b.Inset+b.Height)
}

// Update feeds one frame of pointer input to the button and reports
// whether it was clicked. A click is a primary-button press that starts
// while the pointer is over the button. Only such a press shows the
// pressed state; dragging onto the button with the button held does not.
func (b *Button) Update(windowWidth, x, y int, justPressed, held bool) bool {
	b.hovered = image.Pt(x, y).In(b.Rect(windowWidth))
	clicked := b.hovered && justPressed
	switch {
	case clicked:
		b.armed = true
	case !held:
		b.armed = false
	}
	b.pressed = b.armed && b.hovered && held
	return clicked
}

// Hovered reports whether the pointer was over the button on the last
// Update.
func (b *Button) Hovered() bool { return b.hovered }

// State returns the state to draw.
func (b *Button) State() ButtonState {
	switch {
	case b.pressed:
		return ButtonPressed
	case b.hovered:
		return ButtonHovered
	default:
		return ButtonNormal
	}
}

// PauseLabel returns the pause button caption.
func PauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}
