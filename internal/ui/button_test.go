package ui

import (
	"image"
	"testing"
)

func newPauseButton() *Button {
	return &Button{Width: 100, Height: 42, Inset: 10}
}

func TestButtonRect(t *testing.T) {
	b := newPauseButton()
	if got, want := b.Rect(720), image.Rect(610, 10, 710, 52); got != want {
		t.Errorf("Rect(720) = %v, want %v", got, want)
	}
}

func TestButtonStates(t *testing.T) {
	tests := []struct {
		name              string
		x, y              int
		justPressed, held bool
		wantClick         bool
		wantState         ButtonState
	}{
		{"outside", 100, 100, false, false, false, ButtonNormal},
		{"outside pressed", 100, 100, true, true, false, ButtonNormal},
		{"hover", 650, 30, false, false, false, ButtonHovered},
		{"press", 650, 30, true, true, true, ButtonPressed},
		{"drag onto button", 650, 30, false, true, false, ButtonHovered},
		{"right edge is outside", 710, 30, false, false, false, ButtonNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newPauseButton()
			clicked := b.Update(720, tt.x, tt.y, tt.justPressed, tt.held)
			if clicked != tt.wantClick {
				t.Errorf("clicked = %v, want %v", clicked, tt.wantClick)
			}
			if got := b.State(); got != tt.wantState {
				t.Errorf("state = %v, want %v", got, tt.wantState)
			}
			if hov := tt.wantState != ButtonNormal; b.Hovered() != hov {
				t.Errorf("hovered = %v, want %v", b.Hovered(), hov)
			}
		})
	}
}

func TestButtonDragOntoButton(t *testing.T) {
	b := newPauseButton()
	// Press starts away from the button, then the held pointer moves over it.
	if b.Update(720, 100, 100, true, true) {
		t.Fatal("press outside the button reported a click")
	}
	if b.Update(720, 650, 30, false, true) {
		t.Error("dragging onto the button reported a click")
	}
	if got := b.State(); got != ButtonHovered {
		t.Errorf("state after drag onto button = %v, want %v", got, ButtonHovered)
	}

	// Release and press again over it: now it is pressed.
	b.Update(720, 650, 30, false, false)
	if !b.Update(720, 650, 30, true, true) {
		t.Error("press over the button did not click")
	}
	if got := b.State(); got != ButtonPressed {
		t.Errorf("state = %v, want %v", got, ButtonPressed)
	}

	// Leaving and coming back while held keeps the press armed.
	b.Update(720, 100, 100, false, true)
	b.Update(720, 650, 30, false, true)
	if got := b.State(); got != ButtonPressed {
		t.Errorf("state after returning while held = %v, want %v", got, ButtonPressed)
	}
}

func TestButtonFollowsWindowWidth(t *testing.T) {
	b := newPauseButton()
	if b.Update(400, 650, 30, false, false); b.Hovered() {
		t.Error("button hovered at a position outside the narrower window's button")
	}
	if b.Update(400, 350, 30, false, false); !b.Hovered() {
		t.Error("button not hovered after the window shrank")
	}
}

func TestPauseLabel(t *testing.T) {
	if PauseLabel(false) != "Pause" || PauseLabel(true) != "Resume" {
		t.Errorf("labels = %q/%q", PauseLabel(false), PauseLabel(true))
	}
}
