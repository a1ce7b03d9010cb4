package interaction

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// LoadCoordsSVG reads the first <polygon> of an SVG document as a
// quadrilateral. This is not a general SVG reader: the polygon must have
// exactly four points, starting at the top left corner. Points listed
// counterclockwise on screen are reordered so the result is always TopLeft,
// TopRight, BottomRight, BottomLeft.
func LoadCoordsSVG(r io.Reader) (Coords, error) {
	var coords Coords

	root, err := svgparser.Parse(r, false)
	if err != nil {
		return coords, errors.Wrap(err, "parse svg")
	}
	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return coords, errors.New("no polygon found")
	}

	points, err := parsePoints(polygons[0].Attributes["points"])
	if err != nil {
		return coords, err
	}
	if len(points) != cornerCount {
		return coords, errors.Errorf("polygon has %d points, want %d", len(points), cornerCount)
	}

	coords = NewCoords(points[0], points[1], points[2], points[3])
	if SignedArea(&coords) < 0 {
		coords.Set(TopRight, points[3])
		coords.Set(BottomLeft, points[1])
	}
	return coords, nil
}

func parsePoints(s string) ([]Point, error) {
	var points []Point
	for _, pointString := range strings.Fields(s) {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", parts[0])
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", parts[1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
