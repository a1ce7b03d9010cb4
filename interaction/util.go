package interaction

import (
	"iter"
	"math"
)

const Tolerance = 1e-9

// Float comparisons in tests and validators are tolerance based, since
// translations accumulate rounding error.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat the corners as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Euclidean distance between two points. Symmetric, and zero for a point and
// itself.
func DistanceBetween(from, to Point) float64 {
	return math.Hypot(from.X-to.X, from.Y-to.Y)
}

// Displacement is the distance from one point to another, signed so that
// moving right or down is positive. If either axis went in the negative
// direction the whole displacement is negative.
func Displacement(from, to Point) float64 {
	d := DistanceBetween(from, to)
	if to.X < from.X || to.Y < from.Y {
		return -d
	}
	return d
}

// Displacement along each axis.
func DxDy(from, to Point) (dx, dy float64) {
	return to.X - from.X, to.Y - from.Y
}

// Corners yields a handle for each of the four corners in canonical order.
func Corners(coords *Coords) iter.Seq[Corner] {
	return func(yield func(Corner) bool) {
		for pos := TopLeft; pos <= BottomLeft; pos++ {
			if !yield(Corner{pos, coords}) {
				return
			}
		}
	}
}

// Edges yields the four edges in fixed detection order: top, right, bottom,
// left.
func Edges(coords *Coords) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for pos := Top; pos <= Left; pos++ {
			if !yield(NewEdge(coords, pos)) {
				return
			}
		}
	}
}
