// Touch interaction for an adjustable four cornered polygon.
//
// Given a stream of touch samples, this package works out whether the user is
// dragging a corner or an edge of a quadrilateral, and moves the host's corner
// coordinates accordingly. Rendering is left to the host.
//
// A gesture is Detect, any number of Moves, then DetachCorner or DetachEdge to
// read the committed coordinates, then Reset. Controller wraps that sequence
// for hosts that just want to forward touch events.
package quadedit

import "github.com/osuushi/quadedit/interaction"

type Point = interaction.Point
type Coords = interaction.Coords
type CornerPosition = interaction.CornerPosition
type EdgePosition = interaction.EdgePosition
type DetachedCorner = interaction.DetachedCorner
type DetachedEdge = interaction.DetachedEdge
type Engine = interaction.Engine
type Controller = interaction.Controller
type Option = interaction.Option

const (
	TopLeft     = interaction.TopLeft
	TopRight    = interaction.TopRight
	BottomRight = interaction.BottomRight
	BottomLeft  = interaction.BottomLeft
)

func NewEngine(opts ...Option) *Engine {
	return interaction.NewEngine(opts...)
}

// NewQuad creates host storage for a quadrilateral and a controller over it.
func NewQuad(tl, tr, br, bl Point, opts ...Option) (*Coords, *Controller) {
	coords := interaction.NewCoords(tl, tr, br, bl)
	return &coords, interaction.NewController(&coords, interaction.NewEngine(opts...))
}
