package interaction

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// 2D cross product (the z component of the 3D cross product).
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// The four fixed corner roles. The declaration order is the canonical
// enumeration order used for detection and for the layout of Coords.
type CornerPosition int

const (
	TopLeft CornerPosition = iota
	TopRight
	BottomRight
	BottomLeft
)

const cornerCount = 4

func (c CornerPosition) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	}
	return fmt.Sprintf("CornerPosition(%d)", int(c))
}

func (c CornerPosition) Valid() bool {
	return c >= TopLeft && c <= BottomLeft
}

// Neighbors returns the two corners adjacent to c on the polygon, in the
// order used for interior angle computation.
func (c CornerPosition) Neighbors() (CornerPosition, CornerPosition) {
	switch c {
	case TopLeft:
		return TopRight, BottomLeft
	case TopRight:
		return TopLeft, BottomRight
	case BottomRight:
		return TopRight, BottomLeft
	case BottomLeft:
		return TopLeft, BottomRight
	}
	panic(fmt.Sprintf("invalid corner position %d", int(c)))
}

type EdgePosition int

const (
	Top EdgePosition = iota
	Right
	Bottom
	Left
)

func (e EdgePosition) String() string {
	switch e {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("EdgePosition(%d)", int(e))
}

// Endpoints gives the fixed cyclic adjacency: each edge runs from one corner
// to the next in clockwise screen order.
func (e EdgePosition) Endpoints() (a, b CornerPosition) {
	switch e {
	case Top:
		return TopLeft, TopRight
	case Right:
		return TopRight, BottomRight
	case Bottom:
		return BottomRight, BottomLeft
	case Left:
		return BottomLeft, TopLeft
	}
	panic(fmt.Sprintf("invalid edge position %d", int(e)))
}

// Coords is the host-owned storage for all four corners, laid out as x,y pairs
// in CornerPosition order. The renderer reads it directly, so whatever the
// engine writes during a gesture is immediately visible. A corner whose x or y
// is NaN is unset.
type Coords [2 * cornerCount]float64

func NewCoords(tl, tr, br, bl Point) Coords {
	var c Coords
	c.Set(TopLeft, tl)
	c.Set(TopRight, tr)
	c.Set(BottomRight, br)
	c.Set(BottomLeft, bl)
	return c
}

func (c *Coords) At(pos CornerPosition) Point {
	return Point{c[2*pos], c[2*pos+1]}
}

func (c *Coords) Set(pos CornerPosition, p Point) {
	c[2*pos] = p.X
	c[2*pos+1] = p.Y
}

func (c *Coords) Unset(pos CornerPosition) {
	c[2*pos] = math.NaN()
	c[2*pos+1] = math.NaN()
}

func (c *Coords) IsSet(pos CornerPosition) bool {
	return !math.IsNaN(c[2*pos]) && !math.IsNaN(c[2*pos+1])
}

// A named handle into host coordinates. It owns nothing; reads and writes go
// straight through to the Coords it indexes.
type Corner struct {
	Position CornerPosition
	Coords   *Coords
}

func (c Corner) Point() Point { return c.Coords.At(c.Position) }

func (c Corner) IsSet() bool { return c.Coords != nil && c.Coords.IsSet(c.Position) }

func (c Corner) set(p Point) { c.Coords.Set(c.Position, p) }

// Edges are derived fresh from the corners on every detection cycle.
type Edge struct {
	A, B     Corner
	Position EdgePosition
}

func NewEdge(coords *Coords, pos EdgePosition) Edge {
	a, b := pos.Endpoints()
	return Edge{
		A:        Corner{a, coords},
		B:        Corner{b, coords},
		Position: pos,
	}
}

func (e Edge) IsSet() bool { return e.A.IsSet() && e.B.IsSet() }

// Committed value of a corner, detached from host storage.
type DetachedCorner struct {
	Point    Point
	Position CornerPosition
}

func (d DetachedCorner) String() string {
	return fmt.Sprintf("%s %s", d.Position, d.Point)
}

type DetachedEdge struct {
	CornerOne DetachedCorner
	CornerTwo DetachedCorner
}

// What a detection cycle selected.
type Selection int

const (
	SelectedNone Selection = iota
	SelectedCorner
	SelectedEdge
)

func (s Selection) String() string {
	switch s {
	case SelectedNone:
		return "none"
	case SelectedCorner:
		return "corner"
	case SelectedEdge:
		return "edge"
	}
	return fmt.Sprintf("Selection(%d)", int(s))
}
