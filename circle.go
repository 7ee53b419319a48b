package shapebox

import "math"

// minRadius is the smallest radius a resize can produce.
const minRadius = 1.0

// Circle is a disc with kinematic state. The angular velocity has no visible
// effect but is kept so every shape honours the same physics contract.
type Circle struct {
	centre          Vec2
	radius          float64
	velocity        Vec2
	angularVelocity float64
	mass            float64
	explicitMass    bool
}

// NewCircle returns a circle at rest whose mass is its area, π·r².
func NewCircle(centre Vec2, radius float64) Circle {
	return Circle{
		centre: centre,
		radius: radius,
		mass:   math.Pi * radius * radius,
	}
}

// NewCircleWithMass returns a circle at rest with an explicit mass that
// survives resizing.
func NewCircleWithMass(centre Vec2, radius, mass float64) Circle {
	return Circle{
		centre:       centre,
		radius:       radius,
		mass:         mass,
		explicitMass: true,
	}
}

func (c Circle) Centre() Vec2             { return c.centre }
func (c Circle) Radius() float64          { return c.radius }
func (c Circle) Position() Vec2           { return c.centre }
func (c Circle) Velocity() Vec2           { return c.velocity }
func (c Circle) AngularVelocity() float64 { return c.angularVelocity }
func (c Circle) Mass() float64            { return c.mass }

// TranslateTo moves the centre to p.
func (c *Circle) TranslateTo(p Vec2) {
	c.centre = p
}

// Impulse adds dv to the velocity.
func (c *Circle) Impulse(dv Vec2) {
	c.velocity = c.velocity.Add(dv)
}

// AngularImpulse adds dw to the angular velocity.
func (c *Circle) AngularImpulse(dw float64) {
	c.angularVelocity += dw
}

// Integrate advances the circle by one DeltaTime step. Gravity is applied to
// the velocity before the position update; momentum is otherwise conserved.
func (c *Circle) Integrate(gravity Vec2) {
	c.velocity = c.velocity.Add(gravity.Mul(DeltaTime))
	c.centre = c.centre.Add(c.velocity.Mul(DeltaTime))
}

// PointIn reports whether p lies inside or on the circle.
func (c Circle) PointIn(p Vec2) bool {
	return p.Sub(c.centre).LenSquared() <= c.radius*c.radius
}

// Resize sets the radius from archive given a drag from anchor to to, both
// relative to the centre: the radius changes by |to| - |anchor|.
func (c *Circle) Resize(anchor, to Vec2, archive Circle) {
	r := archive.radius - anchor.Len() + to.Len()
	if r < minRadius {
		r = minRadius
	}
	c.radius = r
	if !c.explicitMass {
		c.mass = math.Pi * r * r
	}
}

// Rotate is a no-op: a circle is rotationally symmetric.
func (c *Circle) Rotate(_, _ Vec2, _ Circle) {}

// SetVelocity replaces the velocity.
func (c *Circle) SetVelocity(v Vec2) {
	c.velocity = v
}

// SetAngularVelocity replaces the angular velocity.
func (c *Circle) SetAngularVelocity(w float64) {
	c.angularVelocity = w
}
