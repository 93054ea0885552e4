package pipeline

import (
	"fmt"
	"image/color"
	"math"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// Canvas is the rasterizer the pipeline draws on.
// Coordinates are screen pixels; Z of the triangle is only informational.
type Canvas interface {
	DrawLine(x1, y1, x2, y2 float32, c color.NRGBA) error
	FillTriangle(t geometry.Triangle, c color.NRGBA) error
}

// Wireframe edge colours, one per edge: AB, BC, CA
var (
	EdgeAB = color.NRGBA{R: 255, G: 0, B: 255, A: 255} // magenta
	EdgeBC = color.NRGBA{R: 0, G: 255, B: 0, A: 255}   // green
	EdgeCA = color.NRGBA{R: 0, G: 255, B: 255, A: 255} // cyan
)

var (
	unlitFill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	litHue    = color.NRGBA{R: 64, G: 160, B: 255}
)

// Shade returns the fill alpha for a triangle lit by a directional light:
// dot(normal, normalize(light)) * 255, narrowed to 8 bits.
func Shade(t geometry.Triangle, light geometry.Vector3) uint8 {
	return narrow(t.NormalVector().Dot(light.Normalize()) * 255)
}

// narrow truncates toward zero and saturates at 0 and 255; NaN becomes 0.
// Faces lit from behind therefore come out fully transparent.
func narrow(f float32) uint8 {
	switch {
	case math.IsNaN(float64(f)) || f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}

// FillColor returns the fill colour for a screen-space triangle
func FillColor(t geometry.Triangle, cfg Config) color.NRGBA {
	if !cfg.Shading {
		return unlitFill
	}
	c := litHue
	c.A = Shade(t, cfg.Light)
	return c
}

// DrawWireframe draws the three edges of t
func DrawWireframe(canvas Canvas, t geometry.Triangle) error {
	edges := []struct {
		from, to geometry.Vector3
		color    color.NRGBA
	}{
		{t.A, t.B, EdgeAB},
		{t.B, t.C, EdgeBC},
		{t.C, t.A, EdgeCA},
	}
	for _, e := range edges {
		if err := canvas.DrawLine(e.from.X, e.from.Y, e.to.X, e.to.Y, e.color); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders sorted screen-space triangles in the given fill mode.
// The first canvas error aborts the frame.
func Draw(canvas Canvas, tris []geometry.Triangle, mode FillMode, cfg Config) error {
	for i, t := range tris {
		if mode == Filled || mode == Both {
			if err := canvas.FillTriangle(t, FillColor(t, cfg)); err != nil {
				return fmt.Errorf("fill triangle %d: %w", i, err)
			}
		}
		if mode == Wireframe || mode == Both {
			if err := DrawWireframe(canvas, t); err != nil {
				return fmt.Errorf("draw wireframe %d: %w", i, err)
			}
		}
	}
	return nil
}
