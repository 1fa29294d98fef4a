package geom

import "fmt"

// Region is an axis-aligned rectangle given by its edges. The horizontal
// extent is [Left, Right) and the vertical extent is [Top, Bottom).
type Region struct {
	Left, Top, Right, Bottom int
}

// FromSize returns the region of the given size anchored at the origin.
func FromSize(w, h int) Region {
	return Region{Right: w, Bottom: h}
}

// At returns the region of the given size whose top-left corner is at p.
func At(p Pixel, w, h int) Region {
	return Region{Left: p.X, Top: p.Y, Right: p.X + w, Bottom: p.Y + h}
}

// FromCorners returns the region spanned by a top-left and a bottom-right
// corner.
func FromCorners(topLeft, bottomRight Pixel) Region {
	return Region{
		Left:   topLeft.X,
		Top:    topLeft.Y,
		Right:  bottomRight.X,
		Bottom: bottomRight.Y,
	}
}

func (r Region) Width() int  { return r.Right - r.Left }
func (r Region) Height() int { return r.Bottom - r.Top }

func (r Region) TopLeft() Pixel     { return Pixel{r.Left, r.Top} }
func (r Region) TopRight() Pixel    { return Pixel{r.Right, r.Top} }
func (r Region) BottomLeft() Pixel  { return Pixel{r.Left, r.Bottom} }
func (r Region) BottomRight() Pixel { return Pixel{r.Right, r.Bottom} }

// Center returns the midpoint pixel, truncating toward zero.
func (r Region) Center() Pixel {
	return Pixel{(r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2}
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside the region. The right and bottom
// edges are excluded.
func (r Region) Contains(p Pixel) bool {
	return r.Left <= p.X && p.X < r.Right && r.Top <= p.Y && p.Y < r.Bottom
}

// ContainsRegion reports whether other lies entirely inside r. Because
// regions are half-open, a region whose right or bottom edge coincides with
// r's is still contained.
func (r Region) ContainsRegion(other Region) bool {
	return r.Left <= other.Left && other.Right <= r.Right &&
		r.Top <= other.Top && other.Bottom <= r.Bottom
}

func (r Region) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", r.Left, r.Top, r.Right, r.Bottom)
}
