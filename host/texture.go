package host

import (
	"fmt"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "golang.org/x/image/bmp"

	"github.com/phanxgames/shapebox"
)

// textureInset keeps a texture clear of the button border.
const textureInset = 4

// loadTextures loads the PNG or BMP texture of every button that names one.
// The result is indexed like buttons; entries without a texture are nil.
func loadTextures(buttons []*shapebox.Button) ([]*ebiten.Image, error) {
	out := make([]*ebiten.Image, len(buttons))
	for i, b := range buttons {
		if b.Texture == "" {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(b.Texture)
		if err != nil {
			return nil, fmt.Errorf("button %s texture: %w", b.Action, err)
		}
		out[i] = img
	}
	return out, nil
}

// drawTextures stretches each texture over its button, inside the border.
func drawTextures(screen *ebiten.Image, buttons []*shapebox.Button, textures []*ebiten.Image) {
	for i, img := range textures {
		if img == nil {
			continue
		}
		r := buttons[i].Bounds().Inset(textureInset)
		if r.Empty() {
			continue
		}
		src := img.Bounds()
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(float64(r.Dx())/float64(src.Dx()), float64(r.Dy())/float64(src.Dy()))
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, &op)
	}
}
