package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("farvelade.color")

// Color represents an RGB color with an alpha channel. The R, G, B, A uint8
// fields are the source of truth; every other representation (unit floats,
// real-line values, gamma-linear light, XYZ, HSV, OKLab) is derived from them
// on access and never cached.
//
// Color is a value type: assignment copies, and two colors with equal
// channels compare equal with == regardless of how they were produced.
type Color struct {
	R, G, B, A uint8
}

// Opaque is the default alpha channel value.
const Opaque uint8 = 255

// almostEqualThreshold is the squared channel distance below which two
// unequal colors are still reported as almost equal. It absorbs rounding
// noise from float and name based construction paths.
const almostEqualThreshold = 16

// New returns a fully opaque color from three 8-bit channels.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: Opaque}
}

// NewRGBA returns a color from four 8-bit channels.
func NewRGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromInts constructs a fully opaque color from integer channels,
// validating each against [0, 255].
func FromInts(r, g, b int) (Color, error) {
	return FromIntsRGBA(r, g, b, int(Opaque))
}

// FromIntsRGBA constructs a color from four integer channels,
// validating each against [0, 255].
func FromIntsRGBA(r, g, b, a int) (Color, error) {
	channels := [...]struct {
		name  string
		value int
	}{
		{"red", r}, {"green", g}, {"blue", b}, {"alpha", a},
	}
	for _, ch := range channels {
		if ch.value < 0 || ch.value > 255 {
			return Color{}, &RangeError{Value: float64(ch.value), Lo: 0, Hi: 255, Channel: ch.name}
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// FromFloats constructs a fully opaque color from unit-range floats,
// validating each against [0, 1] and rounding to 8-bit channels.
func FromFloats(r, g, b float64) (Color, error) {
	return FromFloatsRGBA(r, g, b, 1.0)
}

// FromFloatsRGBA constructs a color from four unit-range floats,
// validating each against [0, 1] and rounding to 8-bit channels.
func FromFloatsRGBA(r, g, b, a float64) (Color, error) {
	channels := [...]struct {
		name  string
		value float64
	}{
		{"red", r}, {"green", g}, {"blue", b}, {"alpha", a},
	}
	var out [4]uint8
	for i, ch := range channels {
		if ch.value < 0.0 || ch.value > 1.0 {
			return Color{}, &RangeError{Value: ch.value, Lo: 0, Hi: 1, Channel: ch.name}
		}
		out[i] = uint8(math.Round(ch.value * 255.0))
	}
	return Color{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}

// Broadcast constructs a fully opaque gray color with all three chromatic
// channels set to the same integer value.
func Broadcast(v int) (Color, error) {
	return FromInts(v, v, v)
}

// BroadcastFloat constructs a fully opaque gray color with all three
// chromatic channels set to the same unit-range float value.
func BroadcastFloat(v float64) (Color, error) {
	return FromFloats(v, v, v)
}

// LookupFunc resolves a color name into integer channels. A lookup table is
// an injected collaborator; the color engine does not embed one.
type LookupFunc func(name string) (r, g, b, a int, ok bool)

// FromName constructs a color by resolving a name through the given lookup.
func FromName(name string, lookup LookupFunc) (Color, error) {
	r, g, b, a, ok := lookup(name)
	if !ok {
		return Color{}, &ResolutionError{Value: name}
	}
	return FromIntsRGBA(r, g, b, a)
}

// ChannelSource is the narrow bridge to foreign color types, for example a
// GUI toolkit's native color. Each accessor yields an integer in [0, 255].
type ChannelSource interface {
	Red() int
	Green() int
	Blue() int
	Alpha() int
}

// FromSource constructs a color from a foreign channel source.
func FromSource(src ChannelSource) (Color, error) {
	return FromIntsRGBA(src.Red(), src.Green(), src.Blue(), src.Alpha())
}

// ParseHex parses a hex color string like "#eb6f92" or "#eb6f92cc" into a
// Color. The leading # is optional.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 6:
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return New(r, g, b), nil
	case 8:
		var r, g, b, a uint8
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return NewRGBA(r, g, b, a), nil
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 or 8 hex digits", s)
	}
}

// SetRed sets the red channel, validating against [0, 255].
func (c *Color) SetRed(v int) error { return setChannel(&c.R, v, "red") }

// SetGreen sets the green channel, validating against [0, 255].
func (c *Color) SetGreen(v int) error { return setChannel(&c.G, v, "green") }

// SetBlue sets the blue channel, validating against [0, 255].
func (c *Color) SetBlue(v int) error { return setChannel(&c.B, v, "blue") }

// SetAlpha sets the alpha channel, validating against [0, 255].
func (c *Color) SetAlpha(v int) error { return setChannel(&c.A, v, "alpha") }

func setChannel(ch *uint8, v int, name string) error {
	if v < 0 || v > 255 {
		return &RangeError{Value: float64(v), Lo: 0, Hi: 255, Channel: name}
	}
	*ch = uint8(v)
	return nil
}

// AlmostEqual reports whether two colors are equal within the rounding
// tolerance: exactly equal channels, or a squared channel distance below the
// fixed threshold. The tolerant branch logs a diagnostic note. AlmostEqual is
// deliberately separate from ==, so the tolerance band never reaches map keys.
func (c Color) AlmostEqual(other Color) bool {
	if c == other {
		return true
	}
	loss := sq(int(c.R)-int(other.R)) +
		sq(int(c.G)-int(other.G)) +
		sq(int(c.B)-int(other.B)) +
		sq(int(c.A)-int(other.A))
	if loss < almostEqualThreshold {
		log.Noticef("almost equal: %s and %s differ with squared loss %d", c, other, loss)
		return true
	}
	return false
}

func sq(v int) int { return v * v }

// Abs returns the Euclidean norm of the chromatic channels.
func (c Color) Abs() float64 {
	return math.Sqrt(float64(sq(int(c.R)) + sq(int(c.G)) + sq(int(c.B))))
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
// The alpha channel is omitted when fully opaque.
func (c Color) Hex() string {
	if c.A == Opaque {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}
