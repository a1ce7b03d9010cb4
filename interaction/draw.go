package interaction

import (
	"io"
	"os"
	"path/filepath"

	"deedles.dev/xiter"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Radius of the circle drawn on each corner.
const cornerDotRadius = 4

// Draw renders the quadrilateral onto c: the outline, a dot on every set
// corner, and the engine's current selection highlighted. engine may be nil.
func Draw(c *gg.Context, coords *Coords, engine *Engine) {
	c.SetLineWidth(2)
	for i, corner := range xiter.Enumerate(Corners(coords)) {
		p := corner.Point()
		if i == 0 {
			c.MoveTo(p.X, p.Y)
		} else {
			c.LineTo(p.X, p.Y)
		}
	}
	c.ClosePath()
	c.SetRGB(1, 0, 0)
	c.Stroke()

	for corner := range Corners(coords) {
		if !corner.IsSet() {
			continue
		}
		p := corner.Point()
		c.DrawCircle(p.X, p.Y, cornerDotRadius)
		c.SetRGB(0, 0, 1)
		c.Fill()
	}

	if engine == nil {
		return
	}
	if pos, ok := engine.ActiveCorner(); ok {
		p := coords.At(pos)
		c.DrawCircle(p.X, p.Y, float64(engine.TouchRadius()))
		c.SetRGBA(0.68, 1, 0.18, 0.5)
		c.Fill()
	}
	if edge, ok := engine.ActiveEdge(); ok {
		a, b := edge.A.Point(), edge.B.Point()
		c.SetLineWidth(4)
		c.DrawLine(a.X, a.Y, b.X, b.Y)
		c.SetRGB(0.68, 1, 0.18)
		c.Stroke()
	}
}

// RenderPNG draws onto a white canvas of the given size and writes it as PNG.
func RenderPNG(w io.Writer, coords *Coords, engine *Engine, width, height int) error {
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()
	Draw(c, coords, engine)
	return errors.Wrap(c.EncodePNG(w), "encode png")
}

// DebugDraw renders to a temporary file and prints it to the terminal (iTerm
// only). This is for debugging purposes only.
func DebugDraw(coords *Coords, engine *Engine, width, height int) error {
	path := filepath.Join(os.TempDir(), "quadedit.png")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create debug image")
	}
	if err := RenderPNG(f, coords, engine, width, height); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close debug image")
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
