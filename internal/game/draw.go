package game

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/trig-visualization/internal/trig"
	"github.com/iburimskiy/trig-visualization/internal/ui"
)

var axes = [...]trig.Segment{
	{From: gg.Pt(-1000, 0), To: gg.Pt(1000, 0)},
	{From: gg.Pt(0, -1000), To: gg.Pt(0, 1000)},
}

func (g *Game) drawFrame(screen *ebiten.Image) {
	for _, a := range axes {
		g.strokeSegment(screen, a, 1, ui.AxisColor)
	}

	f := g.frame
	if f.Circle.Radius > 0 {
		c := g.view.Screen(f.Circle.Center)
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(f.Circle.Radius), 2, ui.RingColor, true)
	}

	g.strokeSegment(screen, f.Vector, 1, ui.VectorGray)
	g.strokeSegment(screen, f.Cos, 2, ui.CosColor)
	g.strokeSegment(screen, f.Sin, 2, ui.SinColor)
	g.strokeSegment(screen, f.Tan, 2, ui.TanColor)
	g.strokeSegment(screen, f.Cot, 2, ui.CotColor)
}

func (g *Game) strokeSegment(screen *ebiten.Image, s trig.Segment, width float32, clr color.Color) {
	if !s.Finite() {
		return
	}
	a, b := g.view.Screen(s.From), g.view.Screen(s.To)
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}
