package interaction

import (
	"embed"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

// Quadrilateral fixtures are SVG files in the fixtures/ directory, available
// by name sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Coords {
	f, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer f.Close()

	coords, err := LoadCoordsSVG(f)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return coords
}

// The quadrilateral used throughout the tests:
//
//	TL(100,300) ---- TR(300,300)
//	     |                |
//	BL(100,600) ---- BR(300,600)
func rectangle() *Coords {
	coords := NewCoords(Pt(100, 300), Pt(300, 300), Pt(300, 600), Pt(100, 600))
	return &coords
}

func TestLoadCoordsSVG(t *testing.T) {
	t.Run("clockwise", func(t *testing.T) {
		coords := LoadFixture("rectangle")
		require.Equal(t, *rectangle(), coords)
	})

	t.Run("counterclockwise is reordered", func(t *testing.T) {
		coords := LoadFixture("counterclockwise")
		require.Equal(t, *rectangle(), coords)
	})

	t.Run("skewed", func(t *testing.T) {
		coords := LoadFixture("skewed")
		require.Equal(t, Pt(80, 120), coords.At(TopLeft))
		require.Equal(t, Pt(320, 90), coords.At(TopRight))
		require.Equal(t, Pt(350, 560), coords.At(BottomRight))
		require.Equal(t, Pt(60, 610), coords.At(BottomLeft))
	})

	t.Run("wrong point count", func(t *testing.T) {
		f, err := fixtures.Open("fixtures/pentagon.svg")
		require.NoError(t, err)
		defer f.Close()

		_, err = LoadCoordsSVG(f)
		require.EqualError(t, err, "polygon has 5 points, want 4")
	})
}
