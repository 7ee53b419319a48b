package shapebox

import (
	"image"
	"image/color"
)

// DeltaTime is the fixed integration step in seconds, independent of the
// actual frame wall-clock time.
const DeltaTime = 1.0 / 60.0

// Color is an 8-bit RGB color. Alpha is always opaque.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

// Invert returns the channel-wise complement of c.
func (c Color) Invert() Color {
	return Color{255 - c.R, 255 - c.G, 255 - c.B}
}

var (
	ColorWhite  = Color{255, 255, 255}
	ColorBlack  = Color{0, 0, 0}
	ColorHeld   = Color{255, 200, 64}  // shape owned by the active manipulation
	ColorWall   = Color{96, 96, 112}   // boundary rectangles
	ColorButton = Color{200, 200, 200} // button border and glyph
)

// ColoredPoint is a single screen-space pixel produced by Display.
type ColoredPoint struct {
	P     image.Point
	Color Color
}

// ShapeKind tags the active variant of a Shape.
type ShapeKind uint8

const (
	KindCircle ShapeKind = iota // Shape holds a Circle
	KindRect                    // Shape holds a Rect
)

func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	default:
		return "unknown"
	}
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft  MouseButton = iota // primary (left) mouse button
	MouseButtonRight                    // secondary (right) mouse button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
)

// Has reports whether every modifier in m is set.
func (k KeyModifiers) Has(m KeyModifiers) bool {
	return k&m == m
}

// Viewport maps between simulation space (origin at the centre, Y up) and
// screen space (origin at the top-left, Y down).
type Viewport struct {
	Width, Height int
}

// ToScreen converts a simulation-space point to a screen pixel.
func (vp Viewport) ToScreen(v Vec2) image.Point {
	return image.Point{
		X: int(v.X + float64(vp.Width/2)),
		Y: int(-v.Y + float64(vp.Height/2)),
	}
}

// ToSim converts screen coordinates to a simulation-space point.
func (vp Viewport) ToSim(x, y float64) Vec2 {
	return Vec2{
		X: x - float64(vp.Width/2),
		Y: -(y - float64(vp.Height/2)),
	}
}

// Contains reports whether p lies on the screen.
func (vp Viewport) Contains(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < vp.Width && p.Y < vp.Height
}
