package shapebox

import "math"

// wallMargin keeps a bouncing circle one unit clear of the window edge.
const wallMargin = 1.0

// Bounce replaces c's velocity with its post-collision velocity against
// other. other should be a snapshot taken before this frame's responses, and
// the caller bounces both members of a colliding pair. gravity only affects
// the next-frame prediction of the window-wall rule.
func (c *Circle) Bounce(other Shape, gravity Vec2) {
	switch other.kind {
	case KindCircle:
		c.bounceCircle(other.circle)
	case KindRect:
		if other.rect.boundary {
			c.bounceWall(other.rect.arena, gravity)
			return
		}
		c.bounceRect(other.rect)
	}
}

// bounceCircle resolves an elastic collision along the line of centres. The
// velocity component along that line follows the one-dimensional elastic
// formula; the perpendicular component is kept.
func (c *Circle) bounceCircle(o Circle) {
	v1, theta1 := c.velocity.Polar()
	v2, theta2 := o.velocity.Polar()
	_, eps := o.centre.Sub(c.centre).Polar()
	m1, m2 := c.mass, o.mass

	along := (v1*math.Cos(theta1-eps)*(m1-m2) + v2*2*m2*math.Cos(theta2-eps)) / (m1 + m2)
	across := v1 * math.Sin(theta1-eps)

	c.velocity = FromPolar(along, eps).Add(FromPolar(across, eps+math.Pi/2))
}

// bounceWall reflects the velocity component that would carry the circle's
// next-frame centre past one of the four window lines, each pulled in by the
// radius plus a one-unit margin. The prediction integrates under gravity
// exactly as the frame step does. Only the first crossed line is handled.
func (c *Circle) bounceWall(arena, gravity Vec2) {
	left := -arena.X/2 + c.radius + wallMargin
	right := -left
	bottom := -arena.Y/2 + c.radius + wallMargin
	top := -bottom

	next := *c
	next.Integrate(gravity)
	switch p := next.centre; {
	case p.X < left:
		c.velocity.X = math.Abs(c.velocity.X)
	case p.X > right:
		c.velocity.X = -math.Abs(c.velocity.X)
	case p.Y < bottom:
		c.velocity.Y = math.Abs(c.velocity.Y)
	case p.Y > top:
		c.velocity.Y = -math.Abs(c.velocity.Y)
	}
}

// bounceRect reflects the circle's velocity relative to r about the normal of
// r's nearest feature, evaluated in r's own frame. Nothing changes when the
// circle is already moving away.
func (c *Circle) bounceRect(r Rect) {
	local, lo, hi := r.localFrame(c.centre)
	n := nearestNormal(local, lo, hi)

	rel := c.velocity.Sub(r.velocity).Rotate(Zero, -r.rotation)
	d := rel.Dot(n)
	if d >= 0 {
		return
	}
	rel = rel.Sub(n.Mul(2 * d))
	c.velocity = rel.Rotate(Zero, r.rotation).Add(r.velocity)
}

// nearestNormal returns the outward unit normal of the box [lo, hi] at the
// feature closest to p. Inside the box the edge with the least penetration
// wins.
func nearestNormal(p, lo, hi Vec2) Vec2 {
	xr, yr := classify(p, lo, hi)
	if closest, outside := closestOnBox(p, lo, hi, xr, yr); outside {
		if n := p.Sub(closest).Normalize(); n != Zero {
			return n
		}
	}

	best := p.X - lo.X
	n := Vec2{-1, 0}
	if d := hi.X - p.X; d < best {
		best, n = d, Vec2{1, 0}
	}
	if d := p.Y - lo.Y; d < best {
		best, n = d, Vec2{0, -1}
	}
	if d := hi.Y - p.Y; d < best {
		n = Vec2{0, 1}
	}
	return n
}

// Bounce is reserved; rectangles do not respond to collisions.
func (r *Rect) Bounce(_ Shape, _ Vec2) {}
