package shapebox

// minExtent is the smallest width or height a resize can produce.
const minExtent = 1.0

// Corner indices into Rect.Points. The winding is counter-clockwise in the
// rectangle's own frame.
const (
	cornerBottomLeft = iota
	cornerBottomRight
	cornerTopRight
	cornerTopLeft
)

// Rect is an oriented rectangle stored as its four corners plus a separately
// tracked rotation. The corners are always rederived from (centre, size,
// rotation) by FromCentre so they cannot drift apart.
type Rect struct {
	points          [4]Vec2
	rotation        float64
	velocity        Vec2
	angularVelocity float64
	mass            float64
	explicitMass    bool

	// boundary marks a window wall. arena is the window size it encloses.
	boundary bool
	arena    Vec2
}

// FromCentre returns a rectangle at rest centred on centre with the given
// size and rotation. Its mass is its area.
func FromCentre(centre, size Vec2, rotation float64) Rect {
	r := Rect{rotation: rotation, mass: size.X * size.Y}
	r.points = cornersOf(centre, size, rotation)
	return r
}

// FromCentreWithMass is FromCentre with an explicit mass that survives
// resizing.
func FromCentreWithMass(centre, size Vec2, rotation, mass float64) Rect {
	r := FromCentre(centre, size, rotation)
	r.mass = mass
	r.explicitMass = true
	return r
}

// NewBoundaryWalls returns four static rectangles lying just outside the
// viewport, one per edge. Circles bounce off them with the window-wall rule.
// The side walls span only the window height so neighbouring walls touch
// without intersecting.
func NewBoundaryWalls(vp Viewport, thickness float64) []Rect {
	w, h := float64(vp.Width), float64(vp.Height)
	arena := Vec2{w, h}
	walls := []Rect{
		FromCentre(Vec2{-(w + thickness) / 2, 0}, Vec2{thickness, h}, 0),
		FromCentre(Vec2{(w + thickness) / 2, 0}, Vec2{thickness, h}, 0),
		FromCentre(Vec2{0, -(h + thickness) / 2}, Vec2{w + 2*thickness, thickness}, 0),
		FromCentre(Vec2{0, (h + thickness) / 2}, Vec2{w + 2*thickness, thickness}, 0),
	}
	for i := range walls {
		walls[i].boundary = true
		walls[i].arena = arena
	}
	return walls
}

func cornersOf(centre, size Vec2, rotation float64) [4]Vec2 {
	half := size.Div(2)
	return [4]Vec2{
		cornerBottomLeft:  centre.Sub(half).Rotate(centre, rotation),
		cornerBottomRight: centre.Add(Vec2{half.X, -half.Y}).Rotate(centre, rotation),
		cornerTopRight:    centre.Add(half).Rotate(centre, rotation),
		cornerTopLeft:     centre.Add(Vec2{-half.X, half.Y}).Rotate(centre, rotation),
	}
}

// rebuild replaces the corners from (centre, size, rotation) and keeps every
// other field.
func (r *Rect) rebuild(centre, size Vec2, rotation float64) {
	r.points = cornersOf(centre, size, rotation)
	r.rotation = rotation
}

func (r Rect) Points() [4]Vec2          { return r.points }
func (r Rect) Rotation() float64        { return r.rotation }
func (r Rect) BottomLeft() Vec2         { return r.points[cornerBottomLeft] }
func (r Rect) Velocity() Vec2           { return r.velocity }
func (r Rect) AngularVelocity() float64 { return r.angularVelocity }
func (r Rect) Mass() float64            { return r.mass }
func (r Rect) Boundary() bool           { return r.boundary }

// Position returns the centroid, the midpoint of opposite corners.
func (r Rect) Position() Vec2 {
	return r.points[cornerBottomLeft].Add(r.points[cornerTopRight]).Div(2)
}

// Size returns (width, height) measured in the rectangle's own frame.
func (r Rect) Size() Vec2 {
	c := r.Position()
	tr := r.points[cornerTopRight].Rotate(c, -r.rotation)
	bl := r.points[cornerBottomLeft].Rotate(c, -r.rotation)
	return tr.Sub(bl)
}

// TranslateTo moves the rectangle rigidly so that its centroid is p.
func (r *Rect) TranslateTo(p Vec2) {
	d := p.Sub(r.Position())
	for i := range r.points {
		r.points[i] = r.points[i].Add(d)
	}
}

// Impulse adds dv to the velocity.
func (r *Rect) Impulse(dv Vec2) {
	r.velocity = r.velocity.Add(dv)
}

// AngularImpulse adds dw to the angular velocity.
func (r *Rect) AngularImpulse(dw float64) {
	r.angularVelocity += dw
}

// SetVelocity replaces the velocity.
func (r *Rect) SetVelocity(v Vec2) {
	r.velocity = v
}

// SetAngularVelocity replaces the angular velocity.
func (r *Rect) SetAngularVelocity(w float64) {
	r.angularVelocity = w
}

// Integrate advances position and rotation by one DeltaTime step, applying
// gravity to the velocity first. Velocities are not consumed. Boundary walls
// are static and never move.
func (r *Rect) Integrate(gravity Vec2) {
	if r.boundary {
		return
	}
	r.velocity = r.velocity.Add(gravity.Mul(DeltaTime))
	size := r.Size()
	centre := r.Position().Add(r.velocity.Mul(DeltaTime))
	r.rebuild(centre, size, r.rotation+r.angularVelocity*DeltaTime)
}

// PointIn runs a crossing-number test with a ray cast towards +x. An edge
// counts when its endpoints lie strictly on opposite sides of the ray under
// the half-open rule (a vertex on the ray belongs to the lower side), so a
// ray through a vertex is counted once and edges collinear with the ray are
// ignored.
func (r Rect) PointIn(p Vec2) bool {
	cn := 0
	for i := range r.points {
		a := r.points[i]
		b := r.points[(i+1)%len(r.points)]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		t := (p.Y - b.Y) / (a.Y - b.Y)
		x := a.X*t + b.X*(1-t)
		if x > p.X {
			cn++
		}
	}
	return cn%2 == 1
}

// Resize recomputes the size from archive given a drag from anchor to to,
// both relative to the centroid. The drag is measured in the rectangle's
// de-rotated frame and the anchor's quadrant decides which edges move; the
// opposite edges move symmetrically so the centre stays put.
func (r *Rect) Resize(anchor, to Vec2, archive Rect) {
	localAnchor := anchor.Rotate(Zero, -r.rotation)
	localTo := to.Rotate(Zero, -r.rotation)

	quadrant := Vec2{sign(localAnchor.X), sign(localAnchor.Y)}
	delta := localTo.Sub(localAnchor).Mul(2)
	delta = Vec2{delta.X * quadrant.X, delta.Y * quadrant.Y}

	size := archive.Size().Add(delta)
	size = Vec2{clampExtent(size.X), clampExtent(size.Y)}

	r.rebuild(r.Position(), size, r.rotation)
	if !r.explicitMass {
		r.mass = size.X * size.Y
	}
}

// Rotate sets the rotation to archive's rotation plus the change in polar
// angle from anchor to to, both relative to the centroid.
func (r *Rect) Rotate(anchor, to Vec2, archive Rect) {
	rotation := archive.rotation + (to.Angle() - anchor.Angle())
	r.rebuild(r.Position(), archive.Size(), rotation)
}

// sign returns -1, 0 or 1 without dividing by v.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clampExtent(v float64) float64 {
	if v < 0 {
		v = -v
	}
	if v < minExtent {
		return minExtent
	}
	return v
}
