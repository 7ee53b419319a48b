package host

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/shapebox"
)

// overlayRefresh is how often the FPS line is recomputed, in seconds.
const overlayRefresh = 0.5

// overlay prints FPS/TPS, the current mode and the latest diagnostic in the
// bottom-left corner.
type overlay struct {
	fpsLine string
	elapsed float64
}

func (o *overlay) update(dt float64) {
	o.elapsed += dt
	if o.fpsLine != "" && o.elapsed < overlayRefresh {
		return
	}
	o.elapsed = 0
	o.fpsLine = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *overlay) text(sb *shapebox.Sandbox) string {
	lines := []string{
		o.fpsLine,
		fmt.Sprintf("%s  objects: %d", sb.Mode(), len(sb.Objects())),
	}
	if d := sb.Diagnostic(); d != "" {
		lines = append(lines, d)
	}
	return strings.Join(lines, "\n")
}

func (o *overlay) draw(screen *ebiten.Image, sb *shapebox.Sandbox) {
	text := o.text(sb)
	// DebugPrint glyphs are 16px tall.
	y := screen.Bounds().Dy() - 16*(strings.Count(text, "\n")+1) - 4
	ebitenutil.DebugPrintAt(screen, text, 4, y)
}
