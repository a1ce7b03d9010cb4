package interaction

import (
	"github.com/pkg/errors"
)

// Proposal is a state the quadrilateral would be in if a move were applied.
type Proposal struct {
	// Coordinates after the move.
	Coords Coords
	// Corners the move changes.
	Moved []CornerPosition
	// Corners as they were when the selection was detected.
	Snapshot Coords
}

// A Validator accepts or rejects a proposed move. Validators are advisory:
// the engine only consults them through CheckMove and the Controller only
// enforces them when asked to.
type Validator interface {
	Validate(Proposal) error
}

type ValidatorFunc func(Proposal) error

func (f ValidatorFunc) Validate(p Proposal) error { return f(p) }

// Bounds keeps corners strictly inside (0, MaxWidth) x (0, MaxHeight). A zero
// maximum leaves that axis unbounded.
type Bounds struct {
	MaxWidth  float64
	MaxHeight float64
}

func (b Bounds) Enabled() bool { return b.MaxWidth > 0 || b.MaxHeight > 0 }

func (b Bounds) Contains(p Point) bool {
	if b.MaxWidth > 0 && (p.X <= 0 || p.X >= b.MaxWidth) {
		return false
	}
	if b.MaxHeight > 0 && (p.Y <= 0 || p.Y >= b.MaxHeight) {
		return false
	}
	return true
}

func (b Bounds) Validate(p Proposal) error {
	if !b.Enabled() {
		return nil
	}
	for _, pos := range p.Moved {
		if pt := p.Coords.At(pos); !b.Contains(pt) {
			return rejectedf("%s at %s is outside %gx%g", pos, pt, b.MaxWidth, b.MaxHeight)
		}
	}
	return nil
}

// AngleRange bounds the interior angle, in degrees, at every corner a move
// affects. The zero value is disabled.
type AngleRange struct {
	Min float64
	Max float64
}

func (r AngleRange) Enabled() bool { return r.Min != 0 || r.Max != 0 }

func (r AngleRange) Contains(angle float64) bool {
	return angle >= r.Min && angle <= r.Max
}

func (r AngleRange) Validate(p Proposal) error {
	if !r.Enabled() {
		return nil
	}
	// Moving a corner also changes the angles at its two neighbours.
	var affected [cornerCount]bool
	for _, pos := range p.Moved {
		one, two := pos.Neighbors()
		affected[pos], affected[one], affected[two] = true, true, true
	}
	for i, ok := range affected {
		if !ok {
			continue
		}
		pos := CornerPosition(i)
		if angle := InteriorAngle(&p.Coords, pos); !r.Contains(angle) {
			return rejectedf("angle at %s is %.1f°, outside [%g, %g]", pos, angle, r.Min, r.Max)
		}
	}
	return nil
}

// Convex rejects moves that would fold the quadrilateral over itself or make
// three corners collinear.
type Convex struct{}

func (Convex) Validate(p Proposal) error {
	if !IsConvex(&p.Coords) {
		return rejectedf("quadrilateral would not be convex")
	}
	return nil
}

// IsOutOfBounds reports whether (x, y) falls outside the configured bounds.
// Without bounds nothing is out of bounds.
func (e *Engine) IsOutOfBounds(x, y float64) bool {
	return e.bounds.Enabled() && !e.bounds.Contains(Pt(x, y))
}

// IsAngleOutOfRange reports whether the interior angle at the active corner,
// at its current position and against the neighbours captured at detection,
// is outside the configured range.
func (e *Engine) IsAngleOutOfRange() (bool, error) {
	if e.snapshot == nil {
		return false, errors.Wrap(ErrInvalidSnapshot, "angle check: no corners snapshot")
	}
	if !e.cornerActive {
		return false, preconditionf("angle check: no active corner")
	}
	corner := Corner{e.activeCorner, e.coords}
	if !corner.IsSet() {
		return false, preconditionf("angle check: %s coordinate is unset", e.activeCorner)
	}
	for pos := TopLeft; pos <= BottomLeft; pos++ {
		if !e.snapshot.IsSet(pos) {
			return false, errors.Wrapf(ErrInvalidSnapshot, "angle check: %s is unset in snapshot", pos)
		}
	}
	if !e.angles.Enabled() {
		return false, nil
	}

	coords := *e.snapshot
	coords.Set(e.activeCorner, corner.Point())
	return !e.angles.Contains(InteriorAngle(&coords, e.activeCorner)), nil
}

// CheckMove runs every configured validator against the state a Move(x, y)
// would produce, without applying it. A nil error means the move is
// acceptable. Rejections wrap ErrRejected.
func (e *Engine) CheckMove(x, y float64) error {
	p, err := e.propose(x, y)
	if err != nil {
		return err
	}
	for _, v := range e.allValidators() {
		if err := v.Validate(p); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) allValidators() []Validator {
	vs := make([]Validator, 0, len(e.validators)+2)
	if e.bounds.Enabled() {
		vs = append(vs, e.bounds)
	}
	if e.angles.Enabled() {
		vs = append(vs, e.angles)
	}
	return append(vs, e.validators...)
}

func (e *Engine) propose(x, y float64) (Proposal, error) {
	switch {
	case e.cornerActive:
		p := Proposal{Coords: *e.coords, Snapshot: *e.snapshot, Moved: []CornerPosition{e.activeCorner}}
		p.Coords.Set(e.activeCorner, Pt(x, y))
		return p, nil
	case e.edgeActive:
		if !e.hasInitialTouch {
			return Proposal{}, preconditionf("check move: no initial touch position")
		}
		a, b := e.translatedEdge(x, y)
		p := Proposal{
			Coords:   *e.coords,
			Snapshot: *e.snapshot,
			Moved:    []CornerPosition{e.activeEdge.A.Position, e.activeEdge.B.Position},
		}
		p.Coords.Set(e.activeEdge.A.Position, a)
		p.Coords.Set(e.activeEdge.B.Position, b)
		return p, nil
	}
	return Proposal{}, preconditionf("check move: nothing selected")
}
