package trig

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Limit bounds the far endpoints of the tangent and cotangent segments,
// which diverge near the quarter turns.
const Limit = 9000

// Segment is a line between two points in world space (origin at the
// circle center, y up).
type Segment struct {
	From, To gg.Point
}

// Finite reports whether both endpoints are finite numbers.
func (s Segment) Finite() bool {
	for _, v := range [...]float64{s.From.X, s.From.Y, s.To.X, s.To.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Circle is the outline the radius vector sweeps.
type Circle struct {
	Center gg.Point
	Radius float64
}

// Labels holds the readout text for the four functions.
type Labels struct {
	Cos, Sin, Tan, Cot string
}

// Frame is the geometry of one rendered frame. It is derived from
// (theta, radius) alone and never mutated after Derive returns it.
type Frame struct {
	Theta  float64
	Circle Circle
	Vector Segment
	Cos    Segment
	Sin    Segment
	Tan    Segment
	Cot    Segment
	Labels Labels
}

// End returns the tip of the radius vector.
func (f Frame) End() gg.Point { return f.Vector.To }

// Derive computes the frame geometry for angle theta on a circle of the
// given radius, bounding the tangent and cotangent endpoints at ±Limit.
func Derive(theta, radius float64) Frame {
	return DeriveWithin(theta, radius, Limit)
}

// DeriveWithin is Derive with the endpoint bound given by limit.
func DeriveWithin(theta, radius, limit float64) Frame {
	sin, cos := math.Sincos(theta)
	// cos is width, sin is height
	x := radius * cos
	y := radius * sin
	end := gg.Pt(x, y)

	// The tangent and cotangent endpoints come from the secant and
	// cosecant; division by zero yields ±Inf, which Clamp bounds.
	secant := 1 / cos
	cosecant := 1 / sin
	tanX := Clamp(secant*radius, -limit, limit)
	cotY := Clamp(cosecant*radius, -limit, limit)

	return Frame{
		Theta:  theta,
		Circle: Circle{Center: gg.Pt(0, 0), Radius: radius},
		Vector: Segment{From: gg.Pt(0, 0), To: end},
		Cos:    Segment{From: gg.Pt(0, y), To: end},
		Sin:    Segment{From: gg.Pt(x, 0), To: end},
		Tan:    Segment{From: end, To: gg.Pt(tanX, 0)},
		Cot:    Segment{From: end, To: gg.Pt(0, cotY)},
		Labels: labels(theta),
	}
}

func labels(theta float64) Labels {
	tan := math.Tan(theta)
	return Labels{
		Cos: fmt.Sprintf("cos θ = %.5f", math.Cos(theta)),
		Sin: fmt.Sprintf("sin θ = %.5f", math.Sin(theta)),
		Tan: fmt.Sprintf("tan θ = %-12s", fmt.Sprintf("%.5f", tan)),
		Cot: fmt.Sprintf("cot θ = %-12s", fmt.Sprintf("%.5f", 1/tan)),
	}
}

// ThetaLabel formats theta in radians and degrees.
func ThetaLabel(theta float64) string {
	return fmt.Sprintf("θ = %.3f = %.1f°", theta, Degrees(theta))
}
