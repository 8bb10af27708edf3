// Package snapshot renders a frame offscreen and encodes it as PNG.
package snapshot

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/trig-visualization/internal/trig"
	"github.com/iburimskiy/trig-visualization/internal/ui"
)

// ErrEmptyImage is returned for a non-positive image size.
var ErrEmptyImage = errors.New("snapshot: image size must be positive")

// Renderer draws frames with a shared font.
type Renderer struct {
	font *text.FontSource
}

// NewRenderer parses the embedded label font.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load snapshot font: %w", err)
	}
	return &Renderer{font: src}, nil
}

// Render draws f on a width×height canvas and writes it to w as PNG.
// thetaText is the angle readout as shown on screen.
func (r *Renderer) Render(w io.Writer, f trig.Frame, thetaText string, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrEmptyImage
	}
	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(ui.Background))
	view := ui.NewView(float64(width), float64(height))

	line := func(s trig.Segment, c color.Color, lw float64) error {
		if !s.Finite() {
			return nil
		}
		a, b := view.Screen(s.From), view.Screen(s.To)
		dc.SetColor(c)
		dc.SetLineWidth(lw)
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		return dc.Stroke()
	}

	axes := []trig.Segment{
		{From: gg.Pt(-1000, 0), To: gg.Pt(1000, 0)},
		{From: gg.Pt(0, -1000), To: gg.Pt(0, 1000)},
	}
	for _, s := range axes {
		if err := line(s, ui.AxisColor, 1); err != nil {
			return fmt.Errorf("draw axis: %w", err)
		}
	}

	if f.Circle.Radius > 0 {
		c := view.Screen(f.Circle.Center)
		dc.SetColor(ui.RingColor)
		dc.SetLineWidth(2)
		dc.DrawCircle(c.X, c.Y, f.Circle.Radius)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("draw circle: %w", err)
		}
	}

	segs := []struct {
		s  trig.Segment
		c  color.Color
		lw float64
	}{
		{f.Vector, ui.VectorGray, 1},
		{f.Cos, ui.CosColor, 2},
		{f.Sin, ui.SinColor, 2},
		{f.Tan, ui.TanColor, 2},
		{f.Cot, ui.CotColor, 2},
	}
	for _, s := range segs {
		if err := line(s.s, s.c, s.lw); err != nil {
			return fmt.Errorf("draw segment: %w", err)
		}
	}

	dc.SetFont(r.font.Face(16))
	labels := []struct {
		s string
		c color.Color
	}{
		{thetaText, ui.TextColor},
		{f.Labels.Cos, ui.CosColor},
		{f.Labels.Sin, ui.SinColor},
		{f.Labels.Tan, ui.TanColor},
		{f.Labels.Cot, ui.CotColor},
	}
	for i, l := range labels {
		dc.SetColor(l.c)
		dc.DrawString(l.s, 16, 28+float64(i)*22)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
