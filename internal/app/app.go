//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifeloop/internal/config"
	"lifeloop/internal/core"
	"lifeloop/internal/render"
	"lifeloop/internal/session"
	"lifeloop/internal/ui"
	"lifeloop/internal/widgets"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minPanelHeight keeps the HUD readable next to small grids.
const minPanelHeight = 300

// Game adapts a session to the ebiten.Game interface. Every Update is one
// paint opportunity for the scheduler.
type Game struct {
	session *session.Session
	canvas  *render.Canvas
	hud     *ui.HUD

	background color.Color
	scale      int
}

// New constructs a Game for the provided simulation.
func New(cfg config.Config, sim core.Stepper) (*Game, error) {
	canvas := render.NewCanvas(sim.Width(), sim.Height(), render.DefaultPalette)
	s, err := session.New(cfg, sim, canvas, nil)
	if err != nil {
		return nil, err
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	_, h := canvas.Size()
	return &Game{
		session:    s,
		canvas:     canvas,
		hud:        ui.NewHUD(s.Panel, s.Scheduler, ui.Width, max(h*scale, minPanelHeight)),
		background: color.RGBA{R: 16, G: 16, B: 20, A: 255},
		scale:      scale,
	}, nil
}

// Close stops the loop and releases the widgets.
func (g *Game) Close() { g.session.Close() }

// Update handles input and gives the scheduler its paint opportunity.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	panel := g.session.Panel
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		panel.PlayPause.Click()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		panel.NextFrame.Click()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		panel.Range.Nudge(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		panel.Range.Nudge(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		panel.Range.SetValue(widgets.RangeMax)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reset(time.Now().UnixNano())
	}

	mx, my := ebiten.CursorPosition()
	g.canvas.Update(g.session.Stepper(), mx/g.scale, my/g.scale)
	g.hud.Update(g.canvasWidth())

	g.session.Paint()
	return nil
}

// Draw composites the canvas and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.canvas.Draw(screen, g.scale)
	g.hud.Draw(screen, g.canvasWidth())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	_, h := g.canvas.Size()
	return g.canvasWidth() + ui.Width, max(h*g.scale, minPanelHeight)
}

func (g *Game) canvasWidth() int {
	w, _ := g.canvas.Size()
	return w * g.scale
}
