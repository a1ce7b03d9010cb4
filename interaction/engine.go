package interaction

import (
	"log/slog"
)

// Engine hit-tests touches against a quadrilateral and moves whatever the
// touch selected. It owns the selection for one gesture at a time:
//
//	Idle --detect(corner hit)--> CornerActive --move*--> CornerActive --detach, Reset--> Idle
//	Idle --detect(edge hit)----> EdgeActive ---move*--> EdgeActive ---detach, Reset--> Idle
//	Idle --detect(no hit)------> Idle
//
// A corner and an edge are never active at the same time. The host owns the
// Coords; the engine writes to them only between a detection and Reset.
//
// An Engine is not safe for concurrent use. Serialise gestures per engine, or
// use a Controller.
type Engine struct {
	radius        TouchRadius
	lineThreshold float64
	bounds        Bounds
	angles        AngleRange
	validators    []Validator

	// Gesture state, cleared by Reset.
	coords       *Coords
	cornerActive bool
	activeCorner CornerPosition
	edgeActive   bool
	activeEdge   Edge
	// Endpoints of the active edge when it was detected. Edge moves are
	// computed from these and the initial touch, not from frame deltas, so
	// jitter can't accumulate.
	initialEdge     [2]Point
	hasInitialTouch bool
	initialTouch    Point
	snapshot        *Coords
}

type Option func(*Engine)

func WithTouchRadius(r TouchRadius) Option {
	return func(e *Engine) { e.radius = r }
}

func WithLineTouchThreshold(t float64) Option {
	return func(e *Engine) { e.lineThreshold = t }
}

func WithBounds(maxWidth, maxHeight float64) Option {
	return func(e *Engine) { e.bounds = Bounds{MaxWidth: maxWidth, MaxHeight: maxHeight} }
}

// WithAngleRange sets the permitted interior angle in degrees. A zero range
// disables the check.
func WithAngleRange(minAngle, maxAngle float64) Option {
	return func(e *Engine) { e.angles = AngleRange{Min: minAngle, Max: maxAngle} }
}

// WithValidators adds validation strategies run by CheckMove. Bounds and
// AngleRange values are installed as the engine's bounds and angle range so
// the advisory queries see them too.
func WithValidators(vs ...Validator) Option {
	return func(e *Engine) {
		for _, v := range vs {
			switch v := v.(type) {
			case Bounds:
				e.bounds = v
			case AngleRange:
				e.angles = v
			default:
				e.validators = append(e.validators, v)
			}
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		radius:        TouchRadiusMedium,
		lineThreshold: DefaultLineTouchThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) TouchRadius() TouchRadius { return e.radius }

func (e *Engine) LineTouchThreshold() float64 { return e.lineThreshold }

// Detection

// DetectCorner selects the first corner, in canonical order, within the touch
// radius of (x, y). Ties go to enumeration order rather than the nearest
// corner. Unset corners are skipped. A miss leaves the current selection
// alone; a hit replaces it, so detection may be repeated within a gesture.
func (e *Engine) DetectCorner(x, y float64, coords *Coords) bool {
	touch := Pt(x, y)
	for corner := range Corners(coords) {
		if !corner.IsSet() {
			continue
		}
		if DistanceBetween(touch, corner.Point()) <= float64(e.radius) {
			e.clearSelection()
			e.coords = coords
			e.cornerActive = true
			e.activeCorner = corner.Position
			e.takeSnapshot()
			Logger().Debug("corner detected", slog.String("corner", corner.Position.String()), slog.Any("touch", touch))
			return true
		}
	}
	return false
}

// DetectEdge selects the first edge (top, right, bottom, left) the touch lies
// on, and records the touch and the edge's endpoints as the origin for
// subsequent moves. Edges with an unset endpoint are skipped.
func (e *Engine) DetectEdge(x, y float64, coords *Coords) bool {
	touch := Pt(x, y)
	for edge := range Edges(coords) {
		if !edge.IsSet() {
			Logger().Debug("skipping edge with unset corner", slog.String("edge", edge.Position.String()))
			continue
		}
		if PointOnEdge(touch, edge, e.lineThreshold) {
			e.clearSelection()
			e.coords = coords
			e.edgeActive = true
			e.activeEdge = edge
			e.initialEdge = [2]Point{edge.A.Point(), edge.B.Point()}
			e.SetInitialTouchPosition(touch)
			e.takeSnapshot()
			Logger().Debug("edge detected", slog.String("edge", edge.Position.String()), slog.Any("touch", touch))
			return true
		}
	}
	return false
}

// Detect runs the touch-start flow: corners first, edges only if no corner
// was hit.
func (e *Engine) Detect(x, y float64, coords *Coords) Selection {
	if e.DetectCorner(x, y, coords) {
		return SelectedCorner
	}
	if e.DetectEdge(x, y, coords) {
		return SelectedEdge
	}
	return SelectedNone
}

func (e *Engine) SetInitialTouchPosition(p Point) {
	e.initialTouch = p
	e.hasInitialTouch = true
}

func (e *Engine) CornerActive() bool { return e.cornerActive }

func (e *Engine) EdgeActive() bool { return e.edgeActive }

func (e *Engine) Selection() Selection {
	switch {
	case e.cornerActive:
		return SelectedCorner
	case e.edgeActive:
		return SelectedEdge
	}
	return SelectedNone
}

func (e *Engine) ActiveCorner() (CornerPosition, bool) {
	return e.activeCorner, e.cornerActive
}

func (e *Engine) ActiveEdge() (Edge, bool) {
	return e.activeEdge, e.edgeActive
}

func (e *Engine) takeSnapshot() {
	snap := *e.coords
	e.snapshot = &snap
}

func (e *Engine) clearSelection() {
	e.cornerActive = false
	e.activeCorner = 0
	e.edgeActive = false
	e.activeEdge = Edge{}
	e.initialEdge = [2]Point{}
	e.hasInitialTouch = false
	e.initialTouch = Point{}
}

// Moving

// MoveCorner puts the active corner at (x, y). The latest sample wins; there
// is no smoothing or clamping.
func (e *Engine) MoveCorner(x, y float64) error {
	if !e.cornerActive {
		return preconditionf("move corner: no active corner")
	}
	Corner{e.activeCorner, e.coords}.set(Pt(x, y))
	return nil
}

// MoveEdge translates the active edge rigidly by the displacement of (x, y)
// from the initial touch. Both endpoints always move by the same vector, so
// the edge keeps its length and orientation.
func (e *Engine) MoveEdge(x, y float64) error {
	if !e.edgeActive {
		return preconditionf("move edge: no active edge")
	}
	if !e.hasInitialTouch {
		return preconditionf("move edge: no initial touch position")
	}
	a, b := e.translatedEdge(x, y)
	e.activeEdge.A.set(a)
	e.activeEdge.B.set(b)
	return nil
}

// Move dispatches to MoveCorner or MoveEdge depending on the selection.
func (e *Engine) Move(x, y float64) error {
	switch {
	case e.cornerActive:
		return e.MoveCorner(x, y)
	case e.edgeActive:
		return e.MoveEdge(x, y)
	}
	return preconditionf("move: nothing selected")
}

func (e *Engine) translatedEdge(x, y float64) (a, b Point) {
	dx, dy := DxDy(e.initialTouch, Pt(x, y))
	d := Pt(dx, dy)
	return e.initialEdge[0].Add(d), e.initialEdge[1].Add(d)
}

// Committing

func (e *Engine) DetachCorner() (DetachedCorner, error) {
	if !e.cornerActive {
		return DetachedCorner{}, preconditionf("detach corner: no active corner")
	}
	corner := Corner{e.activeCorner, e.coords}
	if !corner.IsSet() {
		return DetachedCorner{}, preconditionf("detach corner: %s coordinate is unset", e.activeCorner)
	}
	d := DetachedCorner{Point: corner.Point(), Position: corner.Position}
	Logger().Debug("corner detached", slog.String("corner", d.Position.String()), slog.Any("point", d.Point))
	return d, nil
}

// DetachEdge returns the committed values of both endpoints, each tagged with
// its own corner position.
func (e *Engine) DetachEdge() (DetachedEdge, error) {
	if !e.edgeActive {
		return DetachedEdge{}, preconditionf("detach edge: no active edge")
	}
	a, b := e.activeEdge.A, e.activeEdge.B
	for _, c := range [...]Corner{a, b} {
		if !c.IsSet() {
			return DetachedEdge{}, preconditionf("detach edge: %s coordinate is unset", c.Position)
		}
	}
	d := DetachedEdge{
		CornerOne: DetachedCorner{Point: a.Point(), Position: a.Position},
		CornerTwo: DetachedCorner{Point: b.Point(), Position: b.Position},
	}
	Logger().Debug("edge detached", slog.String("edge", e.activeEdge.Position.String()),
		slog.Any("one", d.CornerOne.Point), slog.Any("two", d.CornerTwo.Point))
	return d, nil
}

// Reset clears all gesture state and returns the engine to idle. Call it
// exactly once at the end of every gesture, whether or not detaching
// succeeded. It is also the only way to cancel a gesture.
func (e *Engine) Reset() {
	e.clearSelection()
	e.coords = nil
	e.snapshot = nil
}
