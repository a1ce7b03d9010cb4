package interaction

import "math"

// PointOnEdge reports whether p lies on the edge, within threshold.
//
// A point is on the edge if:
//  1. The cross product of the edge vector and the vector from the edge's
//     first corner to the point is close to zero. The threshold is on the
//     magnitude of that cross product, so it scales with the edge length and
//     is not a pixel distance.
//  2. Along the edge's dominant axis, the point lies between the endpoints.
//
// The second check only looks at one axis: a mostly horizontal edge checks x,
// a mostly vertical edge checks y. Touches slightly past the perpendicular
// extent of the edge are still accepted as long as the cross product allows
// it.
func PointOnEdge(p Point, e Edge, threshold float64) bool {
	a := e.A.Point()
	b := e.B.Point()

	d := p.Sub(a)
	dl := b.Sub(a)

	if math.Abs(d.Cross(dl)) > threshold {
		return false
	}

	if math.Abs(dl.X) >= math.Abs(dl.Y) {
		if dl.X > 0 {
			return a.X <= p.X && p.X <= b.X
		}
		return b.X <= p.X && p.X <= a.X
	}
	if dl.Y > 0 {
		return a.Y <= p.Y && p.Y <= b.Y
	}
	return b.Y <= p.Y && p.Y <= a.Y
}
