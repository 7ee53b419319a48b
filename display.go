package shapebox

import (
	"image"
	"math"
)

// Display returns the outline pixels of s in screen space.
func (s Shape) Display(vp Viewport, col Color) []ColoredPoint {
	if s.kind == KindRect {
		return s.rect.Display(vp, col)
	}
	return s.circle.Display(vp, col)
}

// Display rasterises the circle outline with the midpoint algorithm: one
// octant is walked from the top and mirrored eight ways.
func (c Circle) Display(vp Viewport, col Color) []ColoredPoint {
	r2 := c.radius * c.radius
	// radialError is how far a pixel centre is from the ideal circle.
	radialError := func(x, y int) float64 {
		return math.Abs(float64(x*x+y*y) - r2)
	}

	var octant []image.Point
	x, y := 0, int(c.radius)
	for x <= y {
		octant = append(octant, image.Point{x, y})
		if radialError(x+1, y-1) < radialError(x+1, y) {
			y--
		}
		x++
	}

	out := make([]ColoredPoint, 0, len(octant)*8)
	for _, p := range octant {
		for _, m := range [8]image.Point{
			{p.X, p.Y}, {-p.X, p.Y}, {p.X, -p.Y}, {-p.X, -p.Y},
			{p.Y, p.X}, {-p.Y, p.X}, {p.Y, -p.X}, {-p.Y, -p.X},
		} {
			sim := c.centre.Add(Vec2{float64(m.X), float64(m.Y)})
			out = append(out, ColoredPoint{P: vp.ToScreen(sim), Color: col})
		}
	}
	return out
}

// Display rasterises the four edges with Bresenham lines.
func (r Rect) Display(vp Viewport, col Color) []ColoredPoint {
	var out []ColoredPoint
	for i := range r.points {
		a := vp.ToScreen(r.points[i])
		b := vp.ToScreen(r.points[(i+1)%len(r.points)])
		out = appendLine(out, a, b, col)
	}
	return out
}

// appendLine appends the Bresenham line from a to b, excluding b so that
// chained edges do not repeat their shared corner.
func appendLine(out []ColoredPoint, a, b image.Point, col Color) []ColoredPoint {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	for p := a; p != b; {
		out = append(out, ColoredPoint{P: p, Color: col})
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
