// Package game runs the visualization on Ebitengine.
package game

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/trig-visualization/internal/config"
	"github.com/iburimskiy/trig-visualization/internal/logging"
	"github.com/iburimskiy/trig-visualization/internal/snapshot"
	"github.com/iburimskiy/trig-visualization/internal/sound"
	"github.com/iburimskiy/trig-visualization/internal/trig"
	"github.com/iburimskiy/trig-visualization/internal/ui"
)

// Game implements ebiten.Game.
type Game struct {
	cfg *config.Config

	// persistent state; frame is rebuilt from it every Update
	state *trig.State
	frame trig.Frame

	button ui.Button
	sizes  *ui.SizeQueue
	size   ui.Size
	view   ui.View

	fonts     *fonts
	player    *sound.Player
	snapshots *snapshot.Renderer

	lastErr error
}

// New builds a game from cfg. Failing to load fonts is fatal.
func New(cfg *config.Config) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}
	r, err := snapshot.NewRenderer()
	if err != nil {
		return nil, err
	}

	size := ui.Size{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	g := &Game{
		cfg:   cfg,
		state: trig.NewState(cfg.Animation.Rate, cfg.Geometry.MaxRadius, cfg.Geometry.Margin, cfg.Geometry.Limit),
		button: ui.Button{
			Width:  config.ButtonWidth,
			Height: config.ButtonHeight,
			Inset:  config.ButtonInset,
		},
		sizes:     ui.NewSizeQueue(size),
		size:      size,
		view:      ui.NewView(size.Width, size.Height),
		fonts:     f,
		player:    sound.NewPlayer(sound.NewTone(sound.SampleRate, cfg.Sound.BaseFrequency, cfg.Sound.Volume, config.ScopeRingSize)),
		snapshots: r,
	}
	g.state.Rescale(size.Width)
	g.frame = g.state.Frame()

	if cfg.Sound.Enabled {
		if err := g.player.SetEnabled(true); err != nil {
			g.fail("enable sound", err)
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if s, changed := g.sizes.Latest(); changed {
		g.size = s
		g.view = ui.NewView(s.Width, s.Height)
		logging.Logger().Debug("window resized", "width", s.Width, "height", s.Height)
	}

	mouseX, mouseY := ebiten.CursorPosition()
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if g.button.Update(int(g.size.Width), mouseX, mouseY, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft), held) {
		g.state.TogglePause()
	}
	g.state.OverControl = g.button.Hovered()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.state.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.toggleSound()
	}

	g.frame = g.state.Step(trig.Input{
		Elapsed: 1 / float64(ebiten.TPS()),
		Cursor:  g.view.World(gg.Pt(float64(mouseX), float64(mouseY))),
		Pressed: held,
		Width:   g.size.Width,
	})
	g.player.Tone().SetAngle(g.frame.Theta)

	// The save dialog blocks the loop until it closes.
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if err := g.exportSnapshot(); err != nil {
			g.fail("export snapshot", err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.Background)
	g.drawFrame(screen)
	g.drawReadout(screen)
	g.drawHelp(screen)
	g.drawButton(screen)
	g.drawStatus(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.sizes.Push(ui.Size{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

func (g *Game) toggleSound() {
	on, err := g.player.Toggle()
	if err != nil {
		g.fail("toggle sound", err)
		return
	}
	logging.Logger().Info("sound toggled", "enabled", on)
}

// fail records a non-fatal error for the status line.
func (g *Game) fail(op string, err error) {
	g.lastErr = fmt.Errorf("%s: %w", op, err)
	logging.Logger().Warn("operation failed", "op", op, "err", err)
}

// Run opens the window and blocks until it closes.
func Run(cfg *config.Config) error {
	g, err := New(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	logging.Logger().Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
