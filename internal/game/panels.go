package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/trig-visualization/internal/config"
	"github.com/iburimskiy/trig-visualization/internal/ui"
)

const helpText = `It's often helpful to think of cosine as width,
sine as height, and tangent as slope.`

const (
	panelMargin  = 10
	panelPadding = 10
	lineHeight   = 24
)

type textLine struct {
	s   string
	clr color.Color
}

// drawReadout draws the angle and function values in the top-left corner.
func (g *Game) drawReadout(screen *ebiten.Image) {
	lines := []textLine{
		{g.state.ThetaText, ui.TextColor},
		{g.frame.Labels.Cos, ui.CosColor},
		{g.frame.Labels.Sin, ui.SinColor},
		{g.frame.Labels.Tan, ui.TanColor},
		{g.frame.Labels.Cot, ui.CotColor},
	}

	var w float64
	for _, l := range lines {
		lw, _ := text.Measure(l.s, g.fonts.mono, lineHeight)
		w = max(w, lw)
	}
	h := float64(len(lines) * lineHeight)

	x, y := float32(panelMargin), float32(panelMargin)
	vector.DrawFilledRect(screen, x, y, float32(w+2*panelPadding), float32(h+2*panelPadding), ui.ReadoutBackground, false)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(panelMargin+panelPadding, panelMargin+panelPadding+float64(i*lineHeight))
		op.ColorScale.ScaleWithColor(l.clr)
		text.Draw(screen, l.s, g.fonts.mono, op)
	}

	if g.player.Enabled() {
		g.drawScope(screen, x, y+float32(h+2*panelPadding)+panelMargin, float32(w+2*panelPadding), 60)
	}
}

// drawScope traces the most recent tone samples.
func (g *Game) drawScope(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, ui.ReadoutBackground, false)
	samples := g.player.Tone().Snapshot(config.ScopeSamples)
	if len(samples) < 2 {
		return
	}
	mid := y + h/2
	amp := h / 2 / float32(max(g.cfg.Sound.Volume, 1e-3))
	step := w / float32(len(samples)-1)
	for i := 1; i < len(samples); i++ {
		x0 := x + float32(i-1)*step
		y0 := mid - float32(samples[i-1][0])*amp
		x1 := x + float32(i)*step
		y1 := mid - float32(samples[i][0])*amp
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, ui.SinColor, true)
	}
}

// drawHelp draws the static help panel in the bottom-left corner.
func (g *Game) drawHelp(screen *ebiten.Image) {
	const border = 2
	w, h := text.Measure(helpText, g.fonts.regular, lineHeight)
	outerW := w + 2*panelPadding + 2*border
	outerH := h + 2*panelPadding + 2*border
	x := float64(panelMargin)
	y := g.size.Height - panelMargin - outerH

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(outerW), float32(outerH), ui.HelpBorder, false)
	vector.DrawFilledRect(screen, float32(x+border), float32(y+border), float32(outerW-2*border), float32(outerH-2*border), ui.HelpBackground, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+border+panelPadding, y+border+panelPadding)
	op.ColorScale.ScaleWithColor(ui.TextColor)
	op.LineSpacing = lineHeight
	text.Draw(screen, helpText, g.fonts.regular, op)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	r := g.button.Rect(int(g.size.Width))
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), ui.ButtonFill(g.button.State()), false)

	label := ui.PauseLabel(g.state.Paused)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+r.Dy()/2))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(ui.ButtonText)
	text.Draw(screen, label, g.fonts.button, op)
}

// drawStatus prints key hints and the last error in the bottom-right corner.
func (g *Game) drawStatus(screen *ebiten.Image) {
	parts := []string{"Space: pause", "S: sound", "E: export", "Esc: quit"}
	if g.lastErr != nil {
		parts = append(parts, fmt.Sprintf("Error: %v", g.lastErr))
	}
	status := strings.Join(parts, " | ")
	// debug font glyphs are 6px wide
	x := int(g.size.Width) - len(status)*6 - panelMargin
	ebitenutil.DebugPrintAt(screen, status, max(x, 0), int(g.size.Height)-panelMargin-16)
}
