// Package geom provides the pixel and rectangle geometry used by sample
// cards. Regions are half-open: a region covers its left and top edges but
// not its right and bottom edges.
package geom

import "fmt"

// Pixel is an integer point on the card canvas. Pixels are comparable and
// usable as map keys.
type Pixel struct {
	X, Y int
}

func (p Pixel) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}
