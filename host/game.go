// Package host runs a shapebox.Sandbox in an Ebitengine window: it samples
// the mouse and modifier keys once per tick, rasterises the sandbox's points
// into a frame buffer, and draws button textures, press highlights and a
// text overlay on top.
package host

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/phanxgames/shapebox"
)

// Game implements ebiten.Game around a Sandbox.
type Game struct {
	// ScreenshotDir is where F12 and scripted screenshots are written.
	ScreenshotDir string

	sandbox  *shapebox.Sandbox
	log      *zap.Logger
	canvas   *canvas
	presses  *pressFades
	textures []*ebiten.Image
	overlay  overlay
	shots    screenshots

	showOverlay  bool
	script       *shapebox.ScriptRunner
	exitWhenDone bool
}

// New wraps sb. Button textures are loaded eagerly so a missing file fails
// before the window opens. A nil logger discards output.
func New(sb *shapebox.Sandbox, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	textures, err := loadTextures(sb.Buttons())
	if err != nil {
		return nil, err
	}
	return &Game{
		ScreenshotDir: "screenshots",
		sandbox:       sb,
		log:           logger,
		canvas:        newCanvas(sb.Viewport()),
		presses:       newPressFades(len(sb.Buttons())),
		textures:      textures,
		showOverlay:   true,
	}, nil
}

// SetScript attaches runner to the sandbox and routes its screenshot steps
// to this window. With exitWhenDone the game terminates once the script
// finishes.
func (g *Game) SetScript(runner *shapebox.ScriptRunner, exitWhenDone bool) {
	runner.OnScreenshot = g.Screenshot
	g.sandbox.SetScript(runner)
	g.script = runner
	g.exitWhenDone = exitWhenDone
}

// Screenshot queues a labeled PNG capture at the end of the next Draw.
func (g *Game) Screenshot(label string) {
	g.shots.dir = g.ScreenshotDir
	g.shots.add(label)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return g.quit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("f12")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showOverlay = !g.showOverlay
	}

	g.sandbox.Update(readPointer())
	g.presses.update(g.sandbox.Buttons(), float32(shapebox.DeltaTime))
	g.overlay.update(shapebox.DeltaTime)

	if g.exitWhenDone && g.script != nil && g.script.Done() {
		return g.quit()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.clear(shapebox.ColorBlack)
	g.canvas.plot(g.sandbox.Display())
	g.canvas.flush(screen)

	buttons := g.sandbox.Buttons()
	drawTextures(screen, buttons, g.textures)
	g.presses.draw(screen, buttons)
	if g.showOverlay {
		g.overlay.draw(screen, g.sandbox)
	}
	g.shots.flush(screen, g.log)
}

// Layout implements ebiten.Game. The logical screen is always the sandbox
// viewport.
func (g *Game) Layout(_, _ int) (int, int) {
	vp := g.sandbox.Viewport()
	return vp.Width, vp.Height
}

// quit returns any held shape to the collection and ends the run loop.
func (g *Game) quit() error {
	if g.sandbox.ReleaseHeld() {
		g.log.Info("returned held shape on exit")
	}
	g.log.Info("quit", zap.Uint64("frames", g.sandbox.Frame()), zap.Int("objects", len(g.sandbox.Objects())))
	return ebiten.Termination
}

// Run opens a window sized to the sandbox and blocks until it closes.
// Closing the window is a normal exit and returns nil.
func Run(g *Game, title string) error {
	vp := g.sandbox.Viewport()
	ebiten.SetWindowSize(vp.Width, vp.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(int(1 / shapebox.DeltaTime))

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
