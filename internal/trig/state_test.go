package trig

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func newTestState() *State {
	return NewState(DefaultRate, DefaultMaxRadius, DefaultMargin, Limit)
}

func TestAdvance(t *testing.T) {
	s := newTestState()
	s.Advance(2)
	if s.Theta != 1.0 {
		t.Errorf("theta after 2s = %v, want 1.0", s.Theta)
	}
	if want := ThetaLabel(0); s.ThetaText != want {
		t.Errorf("theta text = %q, want the pre-advance value %q", s.ThetaText, want)
	}
}

func TestAdvanceWraps(t *testing.T) {
	s := newTestState()
	s.Theta = 2*math.Pi - 0.1
	s.Advance(1)
	if math.Abs(s.Theta-0.4) > 1e-9 {
		t.Errorf("theta = %v, want 0.4", s.Theta)
	}
}

func TestAdvanceWrapsPointerAngle(t *testing.T) {
	s := newTestState()
	s.Theta = -math.Pi / 2
	s.Advance(0)
	if math.Abs(s.Theta-3*math.Pi/2) > 1e-9 {
		t.Errorf("theta = %v, want 3π/2", s.Theta)
	}
}

func TestPausedAdvance(t *testing.T) {
	s := newTestState()
	s.Theta = 1.25
	s.TogglePause()
	for _, dt := range []float64{0.016, 1, 100} {
		s.Advance(dt)
	}
	if s.Theta != 1.25 {
		t.Errorf("theta changed while paused: %v", s.Theta)
	}
	if s.ThetaText != ThetaLabel(0) {
		t.Errorf("theta text changed while paused: %q", s.ThetaText)
	}

	s.TogglePause()
	s.Advance(2)
	if s.Theta != 2.25 {
		t.Errorf("theta after resume = %v, want 2.25", s.Theta)
	}
}

func TestPoint(t *testing.T) {
	tests := []struct {
		name        string
		cursor      gg.Point
		pressed     bool
		overControl bool
		want        float64
	}{
		{"released", gg.Pt(0, 100), false, false, 1},
		{"pressed", gg.Pt(0, 100), true, false, math.Pi / 2},
		{"pressed lower left", gg.Pt(-10, -10), true, false, -3 * math.Pi / 4},
		{"pressed over control", gg.Pt(0, 100), true, true, 1},
		{"negative x axis", gg.Pt(-5, 0), true, false, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			s.Theta = 1
			s.OverControl = tt.overControl
			s.Point(tt.cursor, tt.pressed)
			if math.Abs(s.Theta-tt.want) > 1e-12 {
				t.Errorf("theta = %v, want %v", s.Theta, tt.want)
			}
		})
	}
}

func TestRescale(t *testing.T) {
	tests := []struct {
		width, want float64
	}{
		{720, 200},
		{500, 200},
		{440, 200},
		{300, 130},
		{40, 0},
		{10, 0},
	}
	for _, tt := range tests {
		s := newTestState()
		s.Rescale(tt.width)
		if s.Radius != tt.want {
			t.Errorf("Rescale(%v) radius = %v, want %v", tt.width, s.Radius, tt.want)
		}
	}
}

func TestStepOrder(t *testing.T) {
	s := newTestState()
	f := s.Step(Input{
		Elapsed: 2,
		Cursor:  gg.Pt(0, -50),
		Pressed: true,
		Width:   300,
	})
	// The pointer overrides the animated angle in the same frame.
	if s.Theta != -math.Pi/2 || f.Theta != -math.Pi/2 {
		t.Errorf("theta = %v (frame %v), want -π/2", s.Theta, f.Theta)
	}
	// Geometry uses the radius in effect before this frame's rescale.
	if f.Circle.Radius != 200 {
		t.Errorf("frame radius = %v, want 200", f.Circle.Radius)
	}
	if s.Radius != 130 {
		t.Errorf("state radius = %v, want 130", s.Radius)
	}

	f = s.Step(Input{Elapsed: 0, Width: 300})
	if f.Circle.Radius != 130 {
		t.Errorf("next frame radius = %v, want 130", f.Circle.Radius)
	}
}

func TestStepPausedStillFollowsPointer(t *testing.T) {
	s := newTestState()
	s.TogglePause()
	f := s.Step(Input{Elapsed: 1, Cursor: gg.Pt(3, 3), Pressed: true, Width: 720})
	if want := math.Pi / 4; math.Abs(f.Theta-want) > 1e-12 {
		t.Errorf("theta = %v, want %v", f.Theta, want)
	}
	if s.ThetaText != ThetaLabel(0) {
		t.Errorf("theta text updated while paused: %q", s.ThetaText)
	}
}

func TestStepUsesStateLimit(t *testing.T) {
	s := NewState(DefaultRate, DefaultMaxRadius, DefaultMargin, 500)
	s.TogglePause()
	s.Theta = math.Pi / 2
	f := s.Step(Input{Width: 720})
	if got := f.Tan.To; got != gg.Pt(500, 0) {
		t.Errorf("tan endpoint = %v, want clamped to (500, 0)", got)
	}

	s.Theta = 0
	f = s.Step(Input{Width: 720})
	if got := f.Cot.To; got != gg.Pt(0, 500) {
		t.Errorf("cot endpoint = %v, want clamped to (0, 500)", got)
	}
}
