package shapebox

import "sort"

// Pair is an unordered pair of collection indices with I < J.
type Pair struct {
	I, J int
}

// Intersect reports whether c overlaps other. Circles touching at exactly one
// point do not intersect. Circle-rectangle tests are delegated to the
// rectangle so both argument orders evaluate the same predicate.
func (c Circle) Intersect(other Shape) bool {
	switch other.kind {
	case KindCircle:
		r := c.radius + other.circle.radius
		return c.centre.Sub(other.circle.centre).LenSquared() < r*r
	case KindRect:
		return other.rect.intersectCircle(c)
	}
	return false
}

// Intersect reports whether r overlaps other.
func (r Rect) Intersect(other Shape) bool {
	switch other.kind {
	case KindCircle:
		return r.intersectCircle(other.circle)
	case KindRect:
		return r.intersectRect(other.rect)
	}
	return false
}

type xRegion uint8

const (
	regionLeft xRegion = iota
	regionCentreX
	regionRight
)

type yRegion uint8

const (
	regionBelow yRegion = iota
	regionCentreY
	regionAbove
)

// localFrame returns p expressed in r's unrotated frame (rotated about r's
// position) together with r's axis-aligned extents in that frame.
func (r Rect) localFrame(p Vec2) (local, lo, hi Vec2) {
	centre := r.Position()
	half := r.Size().Div(2)
	return p.Rotate(centre, -r.rotation), centre.Sub(half), centre.Add(half)
}

// classify places p in one of the nine regions around the box [lo, hi].
func classify(p, lo, hi Vec2) (xRegion, yRegion) {
	xr, yr := regionCentreX, regionCentreY
	switch {
	case p.X < lo.X:
		xr = regionLeft
	case p.X > hi.X:
		xr = regionRight
	}
	switch {
	case p.Y > hi.Y:
		yr = regionAbove
	case p.Y < lo.Y:
		yr = regionBelow
	}
	return xr, yr
}

// closestOnBox returns the point of the box [lo, hi] closest to p given p's
// region: the corner for diagonal regions, the perpendicular foot on the edge
// for side regions. ok is false when p is inside the box.
func closestOnBox(p, lo, hi Vec2, xr xRegion, yr yRegion) (closest Vec2, ok bool) {
	x, y := p.X, p.Y
	switch xr {
	case regionLeft:
		x = lo.X
	case regionRight:
		x = hi.X
	}
	switch yr {
	case regionBelow:
		y = lo.Y
	case regionAbove:
		y = hi.Y
	}
	if xr == regionCentreX && yr == regionCentreY {
		return p, false
	}
	return Vec2{x, y}, true
}

// intersectCircle classifies the circle centre against the de-rotated
// rectangle and compares the squared distance to the closest boundary point
// with the squared radius. Touching counts as intersecting.
func (r Rect) intersectCircle(c Circle) bool {
	local, lo, hi := r.localFrame(c.centre)
	xr, yr := classify(local, lo, hi)
	closest, outside := closestOnBox(local, lo, hi, xr, yr)
	if !outside {
		return true
	}
	return closest.Sub(local).LenSquared() <= c.radius*c.radius
}

// edgeNormals returns the normals of two adjacent edges, which span every
// separating axis a rectangle can contribute.
func (r Rect) edgeNormals() [2]Vec2 {
	p := r.points
	return [2]Vec2{
		p[0].Sub(p[1]).Perpendicular(),
		p[1].Sub(p[2]).Perpendicular(),
	}
}

// project returns the sorted projections of the four corners onto axis.
func (r Rect) project(axis Vec2) [4]float64 {
	var out [4]float64
	for i, p := range r.points {
		out[i] = axis.Dot(p)
	}
	sort.Float64s(out[:])
	return out
}

// intersectRect runs the separating axis test over both rectangles' edge
// normals. Intervals that only touch at an endpoint are separated.
func (r Rect) intersectRect(o Rect) bool {
	rn, on := r.edgeNormals(), o.edgeNormals()
	for _, axis := range [4]Vec2{rn[0], rn[1], on[0], on[1]} {
		a := r.project(axis)
		b := o.project(axis)
		if !(a[0] < b[3] && b[0] < a[3]) {
			return false
		}
	}
	return true
}

// DetectIntersections returns every overlapping pair exactly once, ordered by
// ascending I then ascending J.
func DetectIntersections(objects []Shape) []Pair {
	var pairs []Pair
	for i := 0; i < len(objects); i++ {
		for j := i + 1; j < len(objects); j++ {
			if objects[i].Intersect(objects[j]) {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}
	return pairs
}
