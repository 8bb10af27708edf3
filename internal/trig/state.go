package trig

import (
	"math"

	"github.com/gogpu/gg"
)

// Defaults for a State built with NewState.
const (
	DefaultRate      = 0.5 // rad/s
	DefaultMaxRadius = 200
	DefaultMargin    = 20
)

// State is everything that survives from one frame to the next. All
// derived geometry is rebuilt from it by Derive.
type State struct {
	Theta  float64
	Radius float64
	Paused bool
	// OverControl is set while the pointer is over the pause control, so
	// clicks on it do not also drag the angle.
	OverControl bool
	// ThetaText is the angle readout. It is refreshed only while running.
	ThetaText string

	Rate      float64
	MaxRadius float64
	Margin    float64
	// Limit bounds the tangent and cotangent endpoints.
	Limit float64
}

// NewState returns a running state at theta 0 with the maximum radius.
func NewState(rate, maxRadius, margin, limit float64) *State {
	return &State{
		Radius:    maxRadius,
		ThetaText: ThetaLabel(0),
		Rate:      rate,
		MaxRadius: maxRadius,
		Margin:    margin,
		Limit:     limit,
	}
}

// Frame derives the geometry for the current theta and radius.
func (s *State) Frame() Frame {
	return DeriveWithin(s.Theta, s.Radius, s.Limit)
}

// TogglePause switches between running and paused.
func (s *State) TogglePause() {
	s.Paused = !s.Paused
}

// Advance moves theta forward by elapsed seconds at s.Rate and wraps it
// into [0, 2π). It does nothing while paused.
func (s *State) Advance(elapsed float64) {
	if s.Paused {
		return
	}
	s.ThetaText = ThetaLabel(s.Theta)
	s.Theta = Wrap(s.Theta+elapsed*s.Rate, 0, 2*math.Pi)
}

// Point sets theta to the direction of cursor when the primary button is
// held and the pointer is not over the pause control. cursor is relative
// to the circle center with y up. The result lies in (-π, π] and is not
// wrapped.
func (s *State) Point(cursor gg.Point, pressed bool) {
	if !pressed || s.OverControl {
		return
	}
	s.Theta = math.Atan2(cursor.Y, cursor.X)
}

// Rescale fits the radius to a window of the given width, capped at
// s.MaxRadius and floored at zero.
func (s *State) Rescale(width float64) {
	r := width/2 - s.Margin
	if r > s.MaxRadius {
		r = s.MaxRadius
	}
	if r < 0 {
		r = 0
	}
	s.Radius = r
}

// Input is what the host samples once per frame.
type Input struct {
	Elapsed float64  // seconds since the previous frame
	Cursor  gg.Point // centered, y up
	Pressed bool     // primary button held
	Width   float64  // current window width
}

// Step runs one frame: animation, then pointer override, then geometry,
// then radius rescale. The returned Frame reflects the (theta, radius)
// pair seen after the pointer step.
func (s *State) Step(in Input) Frame {
	s.Advance(in.Elapsed)
	s.Point(in.Cursor, in.Pressed)
	f := s.Frame()
	s.Rescale(in.Width)
	return f
}
