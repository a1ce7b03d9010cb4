package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedArea(t *testing.T) {
	coords := rectangle()
	assert.InDelta(t, 60000, SignedArea(coords), Tolerance)

	// Swapping the right hand corners reverses the winding
	reversed := NewCoords(coords.At(TopLeft), coords.At(BottomLeft), coords.At(BottomRight), coords.At(TopRight))
	assert.InDelta(t, -60000, SignedArea(&reversed), Tolerance)
}

func TestIsConvex(t *testing.T) {
	assert.True(t, IsConvex(rectangle()))

	skewed := LoadFixture("skewed")
	assert.True(t, IsConvex(&skewed))

	dented := rectangle()
	dented.Set(TopLeft, Pt(250, 450))
	assert.False(t, IsConvex(dented))

	bowtie := rectangle()
	bowtie.Set(TopRight, Pt(300, 600))
	bowtie.Set(BottomRight, Pt(300, 300))
	assert.False(t, IsConvex(bowtie))

	collinear := rectangle()
	collinear.Set(TopRight, Pt(300, 450))
	collinear.Set(TopLeft, Pt(300, 300))
	assert.False(t, IsConvex(collinear))
}

func TestInteriorAngle(t *testing.T) {
	coords := rectangle()
	for pos := TopLeft; pos <= BottomLeft; pos++ {
		assert.InDelta(t, 90, InteriorAngle(coords, pos), Tolerance, pos.String())
	}

	coords.Set(TopLeft, Pt(100, 500))
	assert.InDelta(t, 135, InteriorAngle(coords, TopLeft), Tolerance)

	coords = rectangle()
	coords.Set(TopLeft, Pt(0, 300))
	// atan2(90000, 30000)
	assert.InDelta(t, 71.565, InteriorAngle(coords, TopLeft), 1e-3)
}

func TestNeighbors(t *testing.T) {
	for pos := TopLeft; pos <= BottomLeft; pos++ {
		one, two := pos.Neighbors()
		assert.NotEqual(t, pos, one)
		assert.NotEqual(t, pos, two)
		assert.NotEqual(t, one, two)
		// Neighbours are never the opposite corner
		opposite := CornerPosition(CircularIndex(int(pos)+2, cornerCount))
		assert.NotEqual(t, opposite, one)
		assert.NotEqual(t, opposite, two)
	}
}
