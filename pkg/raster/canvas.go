// Package raster draws pipeline output into an offscreen image
// and writes it out as PNG or BMP.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/philipparndt/goobj/pkg/geometry"
	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned by Save for extensions other than .png and .bmp
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Canvas is an offscreen drawing surface backed by a gg context
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a black canvas of the given size in pixels
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{dc: gg.NewContext(width, height)}
	c.Clear()
	return c
}

// Clear paints the whole canvas black
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(gg.Black)
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.dc.Width()
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.dc.Height()
}

// DrawLine strokes a one pixel line
func (c *Canvas) DrawLine(x1, y1, x2, y2 float32, col color.NRGBA) error {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)
	c.dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
	return c.dc.Stroke()
}

// FillTriangle fills t using its X and Y screen coordinates
func (c *Canvas) FillTriangle(t geometry.Triangle, col color.NRGBA) error {
	c.dc.SetColor(col)
	c.dc.MoveTo(float64(t.A.X), float64(t.A.Y))
	c.dc.LineTo(float64(t.B.X), float64(t.B.Y))
	c.dc.LineTo(float64(t.C.X), float64(t.C.Y))
	c.dc.ClosePath()
	return c.dc.Fill()
}

// Image returns the current canvas contents
func (c *Canvas) Image() (image.Image, error) {
	if err := c.dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("failed to flush canvas: %w", err)
	}
	return c.dc.Image(), nil
}

// Save writes the canvas to path. The format follows the extension.
func (c *Canvas) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := c.dc.SavePNG(path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		return nil
	case ".bmp":
		return c.saveBMP(path)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func (c *Canvas) saveBMP(path string) error {
	img, err := c.Image()
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := bmp.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// Close releases the drawing context
func (c *Canvas) Close() error {
	return c.dc.Close()
}
