package interaction

import "math"

// Shoelace area of the quadrilateral. Positive when the corners wind
// clockwise on screen (y grows downward), which is the normal orientation of
// TopLeft, TopRight, BottomRight, BottomLeft.
func SignedArea(coords *Coords) float64 {
	var area float64
	for i := 0; i < cornerCount; i++ {
		p := coords.At(CornerPosition(i))
		q := coords.At(CornerPosition(CircularIndex(i+1, cornerCount)))
		area += p.Cross(q)
	}
	return area / 2
}

// A quadrilateral is convex when every turn along the boundary goes the same
// way. Collinear corners (a zero turn) make it degenerate, so they fail too.
func IsConvex(coords *Coords) bool {
	var sign float64
	for i := 0; i < cornerCount; i++ {
		prev := coords.At(CornerPosition(CircularIndex(i-1, cornerCount)))
		cur := coords.At(CornerPosition(i))
		next := coords.At(CornerPosition(CircularIndex(i+1, cornerCount)))

		turn := cur.Sub(prev).Cross(next.Sub(cur))
		if Equal(turn, 0) {
			return false
		}
		if sign == 0 {
			sign = turn
			continue
		}
		if (turn > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// Interior angle at pos in degrees, always in [0, 180]. atan2 of the cross and
// dot products of the two vectors to the neighbours has a range of -180 to
// 180; the sign only encodes winding, so it is dropped.
func InteriorAngle(coords *Coords, pos CornerPosition) float64 {
	one, two := pos.Neighbors()
	origin := coords.At(pos)
	v1 := coords.At(one).Sub(origin)
	v2 := coords.At(two).Sub(origin)
	return math.Abs(math.Atan2(v1.Cross(v2), v1.Dot(v2)) * 180 / math.Pi)
}
