package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/shapebox"
)

// canvas is a CPU-side RGBA frame buffer uploaded to the screen once per
// frame. Points are written run by run so the color bytes are resolved once
// per run rather than once per pixel.
type canvas struct {
	vp  shapebox.Viewport
	pix []byte
}

func newCanvas(vp shapebox.Viewport) *canvas {
	return &canvas{vp: vp, pix: make([]byte, 4*vp.Width*vp.Height)}
}

// clear fills the buffer with bg.
func (c *canvas) clear(bg shapebox.Color) {
	for i := 0; i < len(c.pix); i += 4 {
		c.pix[i] = bg.R
		c.pix[i+1] = bg.G
		c.pix[i+2] = bg.B
		c.pix[i+3] = 0xff
	}
}

// plot writes points into the buffer, dropping any that fall off screen, and
// returns the number of color runs.
func (c *canvas) plot(points []shapebox.ColoredPoint) int {
	runs := 0
	shapebox.ForEachRun(points, func(col shapebox.Color, run []shapebox.ColoredPoint) {
		runs++
		px := [4]byte{col.R, col.G, col.B, 0xff}
		for _, p := range run {
			if !c.vp.Contains(p.P) {
				continue
			}
			i := 4 * (p.P.Y*c.vp.Width + p.P.X)
			copy(c.pix[i:i+4], px[:])
		}
	})
	return runs
}

// flush uploads the buffer. screen must match the viewport size, which
// Game.Layout guarantees.
func (c *canvas) flush(screen *ebiten.Image) {
	screen.WritePixels(c.pix)
}
