package color

import "math"

// OKLab is an RGB color viewed through the OKLab axes: L (lightness) and the
// A/B chroma directions. There is no independent storage; OKLab embeds Color
// and derives the axes from the gamma-linear channels, so it round-trips
// through RGB exactly like Color does.
//
// Matrices from https://bottosson.github.io/posts/oklab/
type OKLab struct {
	Color
}

// zeroReal is the dead zone around zero on the real-line view. Half a channel
// quantum away from mid-gray maps to about ±0.0039 on the real line, so a
// magnitude below this is indistinguishable from zero at 8-bit resolution.
const zeroReal = 0.004

// NewOKLab wraps an RGB color in the OKLab accessor surface.
func NewOKLab(c Color) OKLab {
	return OKLab{Color: c}
}

// FromLab constructs a fully opaque color from OKLab axes. Axes that resolve
// outside the sRGB gamut produce a RangeError.
func FromLab(l, a, b float64) (OKLab, error) {
	out := OKLab{Color: New(0, 0, 0)}
	if err := out.SetLab(l, a, b); err != nil {
		return OKLab{}, err
	}
	return out, nil
}

// Lab returns the OKLab axes: gamma-linear RGB through the LMS matrix, a
// sign-preserving cube root, then the Lab matrix.
func (c OKLab) Lab() (l, a, b float64) {
	lr, lg, lb := c.RedLinear(), c.GreenLinear(), c.BlueLinear()

	lm := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	mm := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	sm := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	lp := SignedCbrt(lm)
	mp := SignedCbrt(mm)
	sp := SignedCbrt(sm)

	l = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	a = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	b = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return l, a, b
}

// L returns the lightness axis.
func (c OKLab) L() float64 {
	l, _, _ := c.Lab()
	return l
}

// AxisA returns the green-red chroma axis. Named AxisA rather than A so the
// promoted A (alpha) channel field stays selectable on OKLab values.
func (c OKLab) AxisA() float64 {
	_, a, _ := c.Lab()
	return a
}

// AxisB returns the blue-yellow chroma axis, named like AxisA to keep the
// promoted B channel field selectable.
func (c OKLab) AxisB() float64 {
	_, _, b := c.Lab()
	return b
}

// labToLinear solves the inverse transform: the Lab matrix inverse, a plain
// cube (the forward cube root made the intermediate values signed), then the
// LMS matrix inverse back to gamma-linear RGB.
func labToLinear(l, a, b float64) (lr, lg, lb float64) {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lm := lp * lp * lp
	mm := mp * mp * mp
	sm := sp * sp * sp

	lr = 4.0767416621*lm - 3.3077115913*mm + 0.2309699292*sm
	lg = -1.2684380046*lm + 2.6097574011*mm - 0.3413193965*sm
	lb = -0.0041960863*lm - 0.7034186147*mm + 1.7076147010*sm
	return lr, lg, lb
}

// SetLab solves the inverse transform and overwrites the three chromatic
// channels. Axes resolving outside the sRGB gamut produce a RangeError; the
// color is unchanged on error.
func (c *OKLab) SetLab(l, a, b float64) error {
	lr, lg, lb := labToLinear(l, a, b)
	lr = snapUnit(lr)
	lg = snapUnit(lg)
	lb = snapUnit(lb)
	next := c.Color
	if err := next.SetRedLinear(lr); err != nil {
		return err
	}
	if err := next.SetGreenLinear(lg); err != nil {
		return err
	}
	if err := next.SetBlueLinear(lb); err != nil {
		return err
	}
	c.Color = next
	return nil
}

// SetL sets the lightness axis. The inverse transform is not per-axis: the
// current A and B are read before resolving, so setting L then A does not
// commute with setting A then L.
func (c *OKLab) SetL(v float64) error {
	_, a, b := c.Lab()
	return c.SetLab(v, a, b)
}

// SetA sets the green-red chroma axis, reading the current L and B first.
func (c *OKLab) SetA(v float64) error {
	l, _, b := c.Lab()
	return c.SetLab(l, v, b)
}

// SetB sets the blue-yellow chroma axis, reading the current L and A first.
func (c *OKLab) SetB(v float64) error {
	l, a, _ := c.Lab()
	return c.SetLab(l, a, v)
}

// setLabClamped writes Lab axes with the linear channels clamped into [0,1].
// Operators use it so that out-of-gamut intermediate results saturate instead
// of failing.
func (c *OKLab) setLabClamped(l, a, b float64) {
	lr, lg, lb := labToLinear(l, a, b)
	c.SetRedLinear(clamp01(lr))
	c.SetGreenLinear(clamp01(lg))
	c.SetBlueLinear(clamp01(lb))
}

// snapUnit absorbs the float noise of a forward/inverse matrix round trip at
// the gamut boundary, which reaches about 1e-7 for saturated channels. The
// slack stays far below half a channel quantum (about 2e-3), so genuinely
// out-of-gamut values still fail validation.
func snapUnit(v float64) float64 {
	const slack = 1e-6
	if v < 0 && v > -slack {
		return 0
	}
	if v > 1 && v < 1+slack {
		return 1
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Add combines two colors on the OKLab axes: lightness is averaged while the
// chroma axes are summed. The receiver's alpha channel is kept.
func (c OKLab) Add(other OKLab) OKLab {
	l1, a1, b1 := c.Lab()
	l2, a2, b2 := other.Lab()
	out := c
	out.setLabClamped((l1+l2)/2, a1+a2, b1+b2)
	return out
}

// Negate flips both chroma axes and keeps the lightness.
func (c OKLab) Negate() OKLab {
	l, a, b := c.Lab()
	out := c
	out.setLabClamped(l, -a, -b)
	return out
}

// Subtract is the addition of the other color's negation.
func (c OKLab) Subtract(other OKLab) OKLab {
	return c.Add(other.Negate())
}

// Multiply combines two colors channel-wise on the real-line view with the
// resistance-parallel formula r1*r2/(r1+r2). A vanishing denominator is a
// DegenerateError rather than a silent NaN.
func (c OKLab) Multiply(other OKLab) (OKLab, error) {
	out := c
	channels := [...]struct {
		name string
		r1   float64
		r2   float64
		set  func(*Color, float64)
	}{
		{"red", c.RedReal(), other.RedReal(), (*Color).SetRedReal},
		{"green", c.GreenReal(), other.GreenReal(), (*Color).SetGreenReal},
		{"blue", c.BlueReal(), other.BlueReal(), (*Color).SetBlueReal},
	}
	for _, ch := range channels {
		sum := ch.r1 + ch.r2
		if math.Abs(sum) < zeroReal {
			return OKLab{}, &DegenerateError{Op: "multiply", Channel: ch.name}
		}
		ch.set(&out.Color, ch.r1*ch.r2/sum)
	}
	return out, nil
}

// Invert reciprocates each chromatic channel on the real-line view. A channel
// whose real-line value vanishes is a DegenerateError.
func (c OKLab) Invert() (OKLab, error) {
	out := c
	channels := [...]struct {
		name string
		r    float64
		set  func(*Color, float64)
	}{
		{"red", c.RedReal(), (*Color).SetRedReal},
		{"green", c.GreenReal(), (*Color).SetGreenReal},
		{"blue", c.BlueReal(), (*Color).SetBlueReal},
	}
	for _, ch := range channels {
		if math.Abs(ch.r) < zeroReal {
			return OKLab{}, &DegenerateError{Op: "invert", Channel: ch.name}
		}
		ch.set(&out.Color, 1/ch.r)
	}
	return out, nil
}

// Divide multiplies by the other color's reciprocal.
func (c OKLab) Divide(other OKLab) (OKLab, error) {
	inv, err := other.Invert()
	if err != nil {
		return OKLab{}, err
	}
	return c.Multiply(inv)
}
