package color

import "math"

// realView maps a unit view onto the real line. The input is derived from a
// stored channel and therefore always inside [0,1].
func realView(v float64) float64 {
	return math.Atanh(unitToSigned(v))
}

// linearView gamma-decodes a unit view into linear light.
func linearView(v float64) float64 {
	out, _ := SRGBToLinear(v)
	return out
}

// RedF returns the red channel as a unit-range float.
func (c Color) RedF() float64 { return float64(c.R) / 255.0 }

// GreenF returns the green channel as a unit-range float.
func (c Color) GreenF() float64 { return float64(c.G) / 255.0 }

// BlueF returns the blue channel as a unit-range float.
func (c Color) BlueF() float64 { return float64(c.B) / 255.0 }

// AlphaF returns the alpha channel as a unit-range float.
func (c Color) AlphaF() float64 { return float64(c.A) / 255.0 }

// UnitFloats returns all four channels as unit-range floats.
func (c Color) UnitFloats() (r, g, b, a float64) {
	return c.RedF(), c.GreenF(), c.BlueF(), c.AlphaF()
}

// SetRedF sets the red channel from a unit-range float.
func (c *Color) SetRedF(v float64) error { return setUnit(&c.R, v, "red") }

// SetGreenF sets the green channel from a unit-range float.
func (c *Color) SetGreenF(v float64) error { return setUnit(&c.G, v, "green") }

// SetBlueF sets the blue channel from a unit-range float.
func (c *Color) SetBlueF(v float64) error { return setUnit(&c.B, v, "blue") }

// SetAlphaF sets the alpha channel from a unit-range float.
func (c *Color) SetAlphaF(v float64) error { return setUnit(&c.A, v, "alpha") }

func setUnit(ch *uint8, v float64, name string) error {
	if v < 0.0 || v > 1.0 {
		return &RangeError{Value: v, Lo: 0, Hi: 1, Channel: name}
	}
	*ch = uint8(math.Round(v * 255.0))
	return nil
}

// RedReal returns the red channel mapped onto the real line.
func (c Color) RedReal() float64 { return realView(c.RedF()) }

// GreenReal returns the green channel mapped onto the real line.
func (c Color) GreenReal() float64 { return realView(c.GreenF()) }

// BlueReal returns the blue channel mapped onto the real line.
func (c Color) BlueReal() float64 { return realView(c.BlueF()) }

// AlphaReal returns the alpha channel mapped onto the real line.
func (c Color) AlphaReal() float64 { return realView(c.AlphaF()) }

// SetRedReal sets the red channel from a real-line value. Total for finite input.
func (c *Color) SetRedReal(v float64) { c.R = uint8(math.Round(RealToUnit(v) * 255.0)) }

// SetGreenReal sets the green channel from a real-line value.
func (c *Color) SetGreenReal(v float64) { c.G = uint8(math.Round(RealToUnit(v) * 255.0)) }

// SetBlueReal sets the blue channel from a real-line value.
func (c *Color) SetBlueReal(v float64) { c.B = uint8(math.Round(RealToUnit(v) * 255.0)) }

// SetAlphaReal sets the alpha channel from a real-line value.
func (c *Color) SetAlphaReal(v float64) { c.A = uint8(math.Round(RealToUnit(v) * 255.0)) }

// RedLinear returns the red channel as gamma-decoded linear light.
func (c Color) RedLinear() float64 { return linearView(c.RedF()) }

// GreenLinear returns the green channel as gamma-decoded linear light.
func (c Color) GreenLinear() float64 { return linearView(c.GreenF()) }

// BlueLinear returns the blue channel as gamma-decoded linear light.
func (c Color) BlueLinear() float64 { return linearView(c.BlueF()) }

// SetRedLinear sets the red channel from a linear-light value, re-encoding
// with the sRGB gamma before storing.
func (c *Color) SetRedLinear(v float64) error { return setLinear(&c.R, v, "red") }

// SetGreenLinear sets the green channel from a linear-light value.
func (c *Color) SetGreenLinear(v float64) error { return setLinear(&c.G, v, "green") }

// SetBlueLinear sets the blue channel from a linear-light value.
func (c *Color) SetBlueLinear(v float64) error { return setLinear(&c.B, v, "blue") }

func setLinear(ch *uint8, v float64, name string) error {
	encoded, err := LinearToSRGB(v)
	if err != nil {
		return &RangeError{Value: v, Lo: 0, Hi: 1, Channel: name}
	}
	return setUnit(ch, encoded, name)
}

// XYZ returns the CIE XYZ coordinates computed from the gamma-linear
// channels with the sRGB D65 matrix.
func (c Color) XYZ() (x, y, z float64) {
	r, g, b := c.RedLinear(), c.GreenLinear(), c.BlueLinear()
	x = 0.4124564*r + 0.3575761*g + 0.1804375*b
	y = 0.2126729*r + 0.7151522*g + 0.0721750*b
	z = 0.0193339*r + 0.1191920*g + 0.9503041*b
	return x, y, z
}

// SetXYZ solves the inverse D65 matrix and overwrites the three chromatic
// channels. The XYZ axes are coupled through the matrix, so the setter takes
// the full triple; coordinates outside the sRGB gamut produce a RangeError.
func (c *Color) SetXYZ(x, y, z float64) error {
	r := snapUnit(3.2404542*x - 1.5371385*y - 0.4985314*z)
	g := snapUnit(-0.9692660*x + 1.8760108*y + 0.0415560*z)
	b := snapUnit(0.0556434*x - 0.2040259*y + 1.0572252*z)
	next := *c
	if err := next.SetRedLinear(r); err != nil {
		return err
	}
	if err := next.SetGreenLinear(g); err != nil {
		return err
	}
	if err := next.SetBlueLinear(b); err != nil {
		return err
	}
	*c = next
	return nil
}

// Luma returns the relative luminance, the Y coordinate of XYZ.
func (c Color) Luma() float64 {
	_, y, _ := c.XYZ()
	return y
}
