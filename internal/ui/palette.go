package ui

import (
	"image/color"
	"math"
)

// Linear converts linear RGB components in [0, 1] to an sRGB color with
// premultiplied alpha, as color.RGBA expects.
func Linear(r, g, b, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(srgb(r)*a*255 + 0.5),
		G: uint8(srgb(g)*a*255 + 0.5),
		B: uint8(srgb(b)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Gray returns an opaque sRGB gray of level v in [0, 1].
func Gray(v float64) color.RGBA {
	c := uint8(clamp01(v)*255 + 0.5)
	return color.RGBA{R: c, G: c, B: c, A: 255}
}

// srgb applies the sRGB transfer function to a linear component.
func srgb(v float64) float64 {
	v = clamp01(v)
	switch {
	case v <= 0.0031308:
		return v * 12.92
	case v == 1:
		return 1
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette colors.
var (
	Background = Linear(0.01, 0.01, 0.01, 1)
	CosColor   = Linear(0.8, 0.1, 0.1, 1)
	SinColor   = Linear(0.1, 0.2, 0.9, 1)
	TanColor   = Linear(0.1, 0.6, 0.1, 1)
	CotColor   = Linear(0.6, 0.6, 0.1, 1)
	AxisColor  = Linear(0.3, 0.3, 0.3, 1)
	RingColor  = Linear(0.5, 0.5, 0.5, 1)
	VectorGray = Gray(0.5)
	TextColor  = Linear(0.7, 0.7, 0.7, 1)

	ReadoutBackground = Linear(0.1, 0.1, 0.1, 0.5)
	HelpBorder        = Linear(0.5, 0.5, 0.5, 0.5)
	HelpBackground    = Linear(0.02, 0.02, 0.02, 0.75)
	ButtonText        = Gray(0.9)
)

// ButtonFill returns the pause button fill for a state.
func ButtonFill(s ButtonState) color.RGBA {
	switch s {
	case ButtonPressed:
		return Gray(0.45)
	case ButtonHovered:
		return Gray(0.35)
	default:
		return Gray(0.25)
	}
}
