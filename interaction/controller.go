package interaction

import (
	"context"
	"log/slog"
	"sync"

	"github.com/osuushi/quadedit/dbg"
	"github.com/pkg/errors"
)

// Controller drives an Engine from a host's touch lifecycle: Start on
// touch-start, Move on every touch-move, End on touch-end. It is the host
// layer, so unlike the engine it logs contract violations and carries on.
//
// Gestures are serialised by a mutex, so a Controller may be fed from more
// than one goroutine, but samples for one gesture must still arrive in order.
type Controller struct {
	mu     sync.Mutex
	engine *Engine
	coords *Coords

	// Called once for a committed corner, twice for a committed edge.
	OnCornerUpdate func(DetachedCorner)
	// Skip moves that any of the engine's validators reject.
	EnforceValidation bool

	name    string
	session string
}

func NewController(coords *Coords, engine *Engine) *Controller {
	if engine == nil {
		engine = NewEngine()
	}
	return &Controller{engine: engine, coords: coords, name: dbg.NewLabel()}
}

// NewControllerFromConfig builds the engine from conf.
func NewControllerFromConfig(coords *Coords, conf Config) (*Controller, error) {
	opts, err := conf.Options()
	if err != nil {
		return nil, errors.Wrap(err, "engine options")
	}
	c := NewController(coords, NewEngine(opts...))
	c.EnforceValidation = conf.EnforceValidation
	return c, nil
}

func (c *Controller) Engine() *Engine { return c.engine }

// Name is a readable label for this controller, used in its log lines.
func (c *Controller) Name() string { return c.name }

// Session is the readable label of the gesture in progress, or "" when idle.
func (c *Controller) Session() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Start begins a gesture at (x, y). A gesture still in progress is abandoned
// first, discarding its selection without committing.
func (c *Controller) Start(x, y float64) Selection {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != "" {
		c.log().Warn("gesture started before previous one ended")
		c.engine.Reset()
	}
	c.session = dbg.NewLabel()

	sel := c.engine.Detect(x, y, c.coords)
	c.log().Debug("gesture started", slog.Any("touch", Pt(x, y)), slog.String("selection", sel.String()))
	return sel
}

// Move applies a touch-move sample. It reports whether the coordinates
// changed.
func (c *Controller) Move(x, y float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.engine.Selection() == SelectedNone {
		return false
	}
	if c.EnforceValidation {
		if err := c.engine.CheckMove(x, y); err != nil {
			c.logErr("move refused", err)
			return false
		}
	}
	if err := c.engine.Move(x, y); err != nil {
		c.logErr("error while moving", err)
		return false
	}
	return true
}

// End commits the gesture, reports the committed corners to OnCornerUpdate
// and resets the engine. The engine is reset even when committing fails.
func (c *Controller) End() []DetachedCorner {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		c.engine.Reset()
		c.session = ""
	}()

	var committed []DetachedCorner
	switch c.engine.Selection() {
	case SelectedCorner:
		corner, err := c.engine.DetachCorner()
		if err != nil {
			c.logErr("error while detaching corner", err)
			return nil
		}
		committed = []DetachedCorner{corner}
	case SelectedEdge:
		edge, err := c.engine.DetachEdge()
		if err != nil {
			c.logErr("error while detaching edge", err)
			return nil
		}
		committed = []DetachedCorner{edge.CornerOne, edge.CornerTwo}
	default:
		return nil
	}

	if c.OnCornerUpdate == nil {
		c.log().Warn("no corner update handler")
	} else {
		for _, corner := range committed {
			c.OnCornerUpdate(corner)
		}
	}
	c.log().Debug("gesture ended", slog.Int("committed", len(committed)))
	return committed
}

// Cancel abandons the gesture in progress without committing. Coordinates
// already moved stay where they are.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.Reset()
	c.session = ""
}

func (c *Controller) log() *slog.Logger {
	return Logger().With(slog.String("controller", c.name), slog.String("gesture", c.session))
}

func (c *Controller) logErr(msg string, err error) {
	level := slog.LevelWarn
	if errors.Is(err, ErrRejected) {
		level = slog.LevelDebug
	}
	c.log().Log(context.Background(), level, msg, slog.Any("err", err))
}
