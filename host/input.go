package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/shapebox"
)

// readModifiers reads the current keyboard modifier state.
func readModifiers() shapebox.KeyModifiers {
	var mods shapebox.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= shapebox.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= shapebox.ModCtrl
	}
	return mods
}

// readPointer samples the mouse. Left wins when both buttons are down.
func readPointer() shapebox.PointerState {
	mx, my := ebiten.CursorPosition()
	st := shapebox.PointerState{
		X:    float64(mx),
		Y:    float64(my),
		Mods: readModifiers(),
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if left || right {
		st.Pressed = true
		if !left {
			st.Button = shapebox.MouseButtonRight
		}
	}
	return st
}
