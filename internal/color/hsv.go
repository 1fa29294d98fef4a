package color

import "math"

// HSV returns the hue, saturation, and value components, each in [0, 1],
// computed from the unit-float channels. Hue is normalized into [0, 1). The
// view is read-only and recomputed on every call.
func (c Color) HSV() (h, s, v float64) {
	r, g, b := c.RedF(), c.GreenF(), c.BlueF()
	v = math.Max(r, math.Max(g, b))
	delta := v - math.Min(r, math.Min(g, b))

	if v >= epsilon && delta >= epsilon {
		s = delta / v
	}

	if delta < epsilon {
		return 0, s, v
	}
	switch v {
	case r:
		h = math.Mod((g-b)/delta, 6)
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return h / 6, s, v
}

// Hue8 returns the hue as an 8-bit integer.
func (c Color) Hue8() uint8 {
	h, _, _ := c.HSV()
	return uint8(math.Round(h * 255))
}

// Saturation8 returns the saturation as an 8-bit integer.
func (c Color) Saturation8() uint8 {
	_, s, _ := c.HSV()
	return uint8(math.Round(s * 255))
}

// Value8 returns the value as an 8-bit integer.
func (c Color) Value8() uint8 {
	_, _, v := c.HSV()
	return uint8(math.Round(v * 255))
}
