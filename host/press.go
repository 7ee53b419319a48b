package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/shapebox"
)

// pressFadeSeconds is how long the inverted highlight lingers after a button
// is released.
const pressFadeSeconds = 0.3

// pressFade tracks one button's highlight. alpha is 1 while the button is
// held and tweens to 0 after release.
type pressFade struct {
	tween *gween.Tween
	alpha float32
	was   bool
}

type pressFades struct {
	fades []pressFade
	white *ebiten.Image
}

func newPressFades(n int) *pressFades {
	return &pressFades{fades: make([]pressFade, n)}
}

// update advances every fade by dt seconds.
func (p *pressFades) update(buttons []*shapebox.Button, dt float32) {
	for i, b := range buttons {
		if i >= len(p.fades) {
			break
		}
		f := &p.fades[i]
		pressed := b.Pressed()
		switch {
		case pressed:
			f.alpha = 1
			f.tween = nil
		case f.was:
			f.tween = gween.New(1, 0, pressFadeSeconds, ease.OutCubic)
		}
		if f.tween != nil {
			v, done := f.tween.Update(dt)
			f.alpha = v
			if done {
				f.alpha = 0
				f.tween = nil
			}
		}
		f.was = pressed
	}
}

// draw fills each highlighted button with its inverted color at half the
// fade's alpha.
func (p *pressFades) draw(screen *ebiten.Image, buttons []*shapebox.Button) {
	for i, b := range buttons {
		if i >= len(p.fades) || p.fades[i].alpha <= 0 {
			continue
		}
		if p.white == nil {
			p.white = ebiten.NewImage(1, 1)
			p.white.Fill(color.White)
		}
		r := b.Bounds()
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		op.ColorScale.ScaleWithColor(shapebox.ColorButton.Invert())
		op.ColorScale.ScaleAlpha(p.fades[i].alpha * 0.5)
		screen.DrawImage(p.white, &op)
	}
}
