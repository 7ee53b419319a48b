package shapebox

// Shape is a closed tagged union over Circle and Rect. Every operation
// dispatches on the active kind, so heterogeneous shapes share one ordered
// slice without interface boxing. The zero value is a degenerate circle;
// build shapes with CircleShape or RectShape.
type Shape struct {
	kind   ShapeKind
	circle Circle
	rect   Rect
}

// CircleShape wraps c.
func CircleShape(c Circle) Shape {
	return Shape{kind: KindCircle, circle: c}
}

// RectShape wraps r.
func RectShape(r Rect) Shape {
	return Shape{kind: KindRect, rect: r}
}

// Kind reports the active variant.
func (s Shape) Kind() ShapeKind {
	return s.kind
}

// Circle returns the circle variant and whether it is active.
func (s Shape) Circle() (Circle, bool) {
	return s.circle, s.kind == KindCircle
}

// Rect returns the rectangle variant and whether it is active.
func (s Shape) Rect() (Rect, bool) {
	return s.rect, s.kind == KindRect
}

// Boundary reports whether s is a window-wall rectangle.
func (s Shape) Boundary() bool {
	return s.kind == KindRect && s.rect.boundary
}

func (s Shape) Position() Vec2 {
	if s.kind == KindRect {
		return s.rect.Position()
	}
	return s.circle.Position()
}

func (s Shape) Velocity() Vec2 {
	if s.kind == KindRect {
		return s.rect.Velocity()
	}
	return s.circle.Velocity()
}

func (s Shape) AngularVelocity() float64 {
	if s.kind == KindRect {
		return s.rect.AngularVelocity()
	}
	return s.circle.AngularVelocity()
}

func (s Shape) Mass() float64 {
	if s.kind == KindRect {
		return s.rect.Mass()
	}
	return s.circle.Mass()
}

// TranslateTo moves s so that its position is p, preserving everything else.
func (s *Shape) TranslateTo(p Vec2) {
	switch s.kind {
	case KindCircle:
		s.circle.TranslateTo(p)
	case KindRect:
		s.rect.TranslateTo(p)
	}
}

// Impulse adds dv to the velocity.
func (s *Shape) Impulse(dv Vec2) {
	switch s.kind {
	case KindCircle:
		s.circle.Impulse(dv)
	case KindRect:
		s.rect.Impulse(dv)
	}
}

// AngularImpulse adds dw to the angular velocity.
func (s *Shape) AngularImpulse(dw float64) {
	switch s.kind {
	case KindCircle:
		s.circle.AngularImpulse(dw)
	case KindRect:
		s.rect.AngularImpulse(dw)
	}
}

// SetVelocity replaces the velocity.
func (s *Shape) SetVelocity(v Vec2) {
	switch s.kind {
	case KindCircle:
		s.circle.SetVelocity(v)
	case KindRect:
		s.rect.SetVelocity(v)
	}
}

// SetAngularVelocity replaces the angular velocity.
func (s *Shape) SetAngularVelocity(w float64) {
	switch s.kind {
	case KindCircle:
		s.circle.SetAngularVelocity(w)
	case KindRect:
		s.rect.SetAngularVelocity(w)
	}
}

// PointIn reports whether p lies inside s.
func (s Shape) PointIn(p Vec2) bool {
	if s.kind == KindRect {
		return s.rect.PointIn(p)
	}
	return s.circle.PointIn(p)
}

// Integrate advances s by one DeltaTime step.
func (s *Shape) Integrate(gravity Vec2) {
	switch s.kind {
	case KindCircle:
		s.circle.Integrate(gravity)
	case KindRect:
		s.rect.Integrate(gravity)
	}
}

// Resize resizes s relative to archive, a snapshot of s taken when the drag
// started. anchor and to are relative to the shape's position. It is a no-op
// when archive holds a different kind.
func (s *Shape) Resize(anchor, to Vec2, archive Shape) {
	if archive.kind != s.kind {
		return
	}
	switch s.kind {
	case KindCircle:
		s.circle.Resize(anchor, to, archive.circle)
	case KindRect:
		s.rect.Resize(anchor, to, archive.rect)
	}
}

// Rotate rotates s relative to archive. See Resize.
func (s *Shape) Rotate(anchor, to Vec2, archive Shape) {
	if archive.kind != s.kind {
		return
	}
	switch s.kind {
	case KindCircle:
		s.circle.Rotate(anchor, to, archive.circle)
	case KindRect:
		s.rect.Rotate(anchor, to, archive.rect)
	}
}

// Bounce applies the collision response of s against other. gravity is the
// acceleration of the step being resolved. Only circles respond; rectangles
// are left untouched.
func (s *Shape) Bounce(other Shape, gravity Vec2) {
	switch s.kind {
	case KindCircle:
		s.circle.Bounce(other, gravity)
	case KindRect:
		s.rect.Bounce(other, gravity)
	}
}

// Intersect reports whether s and other overlap. It is symmetric.
func (s Shape) Intersect(other Shape) bool {
	if s.kind == KindRect {
		return s.rect.Intersect(other)
	}
	return s.circle.Intersect(other)
}
