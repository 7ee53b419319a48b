package shapebox

import (
	"fmt"
	"math"
)

// vecTolerance is the absolute per-component tolerance used by Vec2.Eq.
const vecTolerance = 1e-6

// axisTolerance is the |x| below which Polar treats a vector as lying on the
// y-axis.
const axisTolerance = 0.001

// Vec2 is an immutable 2D vector in simulation space (origin at the window
// centre, Y increasing upward).
type Vec2 struct {
	X, Y float64
}

// Zero is the origin.
var Zero = Vec2{}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul scales v by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides both components by s.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSquared returns the squared magnitude.
func (v Vec2) LenSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the magnitude.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSquared())
}

// Perpendicular returns v rotated a quarter turn counter-clockwise.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Normalize returns the unit vector in the direction of v, or Zero for the
// zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return v.Div(l)
}

// Eq reports whether v and o are equal within an absolute tolerance of 1e-6
// per component.
func (v Vec2) Eq(o Vec2) bool {
	return math.Abs(v.X-o.X) < vecTolerance && math.Abs(v.Y-o.Y) < vecTolerance
}

// Polar returns the magnitude of v and its angle in [0, 2π).
//
// The angle is reconstructed from atan(|y/x|) by quadrant rather than with
// math.Atan2. Vectors within 0.001 of the y-axis snap to π/2 or 3π/2, vectors
// on the x-axis get 0 or π, and the zero vector gets 0.
func (v Vec2) Polar() (mag, angle float64) {
	mag = v.Len()
	if math.Abs(v.X) < axisTolerance {
		switch {
		case v.Y > 0:
			return mag, math.Pi / 2
		case v.Y < 0:
			return mag, 3 * math.Pi / 2
		default:
			return mag, 0
		}
	}

	a := math.Atan(math.Abs(v.Y / v.X))
	switch {
	case v.X > 0 && v.Y > 0:
		angle = a
	case v.X < 0 && v.Y > 0:
		angle = math.Pi - a
	case v.X < 0 && v.Y < 0:
		angle = math.Pi + a
	case v.X > 0 && v.Y < 0:
		angle = 2*math.Pi - a
	case v.X < 0:
		angle = math.Pi
	default:
		angle = 0
	}
	return mag, angle
}

// Angle returns the polar angle of v. See Polar.
func (v Vec2) Angle() float64 {
	_, a := v.Polar()
	return a
}

// FromPolar builds a vector from a magnitude and an angle in radians.
func FromPolar(mag, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos * mag, sin * mag}
}

// Rotate rotates v counter-clockwise by angle radians about pivot using a
// rotation matrix. Unlike a round trip through Polar it applies no y-axis
// snapping, so points close to the pivot's vertical keep their exact offset.
func (v Vec2) Rotate(pivot Vec2, angle float64) Vec2 {
	if angle == 0 {
		return v
	}
	rel := v.Sub(pivot)
	sin, cos := math.Sincos(angle)
	return Vec2{
		rel.X*cos - rel.Y*sin + pivot.X,
		rel.X*sin + rel.Y*cos + pivot.Y,
	}
}

// wrapAngle maps a to (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
