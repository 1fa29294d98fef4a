// Package card models a sample card: a base-colored canvas with painted
// rectangular regions, rasterizable to PNG or BMP.
package card

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/avistisen/farvelade/internal/color"
	"github.com/avistisen/farvelade/internal/geom"
)

// Default canvas parameters for cards constructed without explicit values.
const (
	DefaultWidth  = 128
	DefaultHeight = 128
)

// PaintRegion pairs a rectangle with the color painted onto it.
type PaintRegion struct {
	Region geom.Region
	Color  color.Color
}

// Card is a canvas with a base color and a stack of paint regions. The zero
// value is not usable; construct cards with New.
type Card struct {
	Name    string
	Width   int
	Height  int
	Base    color.Color
	regions []PaintRegion
}

// New returns an empty card with a white base.
func New(width, height int) *Card {
	return &Card{
		Width:  width,
		Height: height,
		Base:   color.New(255, 255, 255),
	}
}

// Bounds returns the canvas extent as a region anchored at the origin.
func (c *Card) Bounds() geom.Region {
	return geom.FromSize(c.Width, c.Height)
}

// AddRegion paints a rectangle onto the card. Regions added later cover
// earlier ones where they overlap.
func (c *Card) AddRegion(r geom.Region, col color.Color) error {
	if r.Empty() {
		return fmt.Errorf("empty region %s", r)
	}
	c.regions = append([]PaintRegion{{Region: r, Color: col}}, c.regions...)
	return nil
}

// Regions returns the paint regions in lookup order, most recently added
// first.
func (c *Card) Regions() []PaintRegion {
	return c.regions
}

// ColorAt returns the color of the given pixel: the most recently added
// region containing it, or the base color.
func (c *Card) ColorAt(p geom.Pixel) color.Color {
	for _, pr := range c.regions {
		if pr.Region.Contains(p) {
			return pr.Color
		}
	}
	return c.Base
}

// Image rasterizes the card. Channel values are stored straight from the
// card's colors, so the image is non-premultiplied: NRGBA, not RGBA.
func (c *Card) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.ColorAt(geom.Pixel{X: x, Y: y})
			img.SetNRGBA(x, y, imgcolor.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A})
		}
	}
	return img
}

// EncodePNG rasterizes the card and writes it as PNG.
func (c *Card) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("encoding card as png: %w", err)
	}
	return nil
}

// EncodeBMP rasterizes the card and writes it as BMP.
func (c *Card) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("encoding card as bmp: %w", err)
	}
	return nil
}
