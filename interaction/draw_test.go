package interaction

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPNG(t *testing.T, coords *Coords, engine *Engine) image.Image {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, coords, engine, 400, 700))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	return img
}

func rgb(img image.Image, x, y int) (r, g, b uint32) {
	r, g, b, _ = img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestRenderPNG(t *testing.T) {
	img := renderPNG(t, rectangle(), nil)
	assert.Equal(t, image.Rect(0, 0, 400, 700), img.Bounds())

	// Corner dot
	r, g, b := rgb(img, 100, 300)
	assert.Less(t, r, uint32(64))
	assert.Less(t, g, uint32(64))
	assert.Greater(t, b, uint32(192))

	// Outline, away from the corners
	r, g, b = rgb(img, 200, 300)
	assert.Greater(t, r, uint32(192))
	assert.Less(t, g, uint32(64))
	assert.Less(t, b, uint32(64))

	// Inside is left blank
	r, g, b = rgb(img, 200, 450)
	assert.Equal(t, [3]uint32{255, 255, 255}, [3]uint32{r, g, b})
}

func TestRenderPNGHighlightsSelection(t *testing.T) {
	coords := rectangle()
	engine := NewEngine()
	require.True(t, engine.DetectEdge(300, 450, coords))

	img := renderPNG(t, coords, engine)
	r, g, b := rgb(img, 300, 450)
	assert.Greater(t, g, uint32(192))
	assert.Greater(t, r, uint32(128))
	assert.Less(t, b, uint32(128))

	engine.Reset()
	require.True(t, engine.DetectCorner(100, 300, coords))
	img = renderPNG(t, coords, engine)
	// Inside the touch radius, outside the corner dot
	r, g, b = rgb(img, 112, 312)
	assert.Greater(t, g, uint32(192))
	assert.Less(t, b, uint32(192))
}
