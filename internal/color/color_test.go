package color

import (
	"errors"
	"math"
	"testing"
)

func absDiffUint8(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// channelsWithin reports whether all four channels of two colors differ by at
// most tol.
func channelsWithin(a, b Color, tol int) bool {
	return absDiffUint8(a.R, b.R) <= tol &&
		absDiffUint8(a.G, b.G) <= tol &&
		absDiffUint8(a.B, b.B) <= tol &&
		absDiffUint8(a.A, b.A) <= tol
}

func TestChannelRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c, err := FromInts(v, v, v)
		if err != nil {
			t.Fatalf("FromInts(%d): %v", v, err)
		}
		if int(c.R) != v || int(c.G) != v || int(c.B) != v {
			t.Fatalf("FromInts(%d) channels = %d %d %d, want %d", v, c.R, c.G, c.B, v)
		}
	}
}

func TestConstructionFormEquivalence(t *testing.T) {
	fromInts, err := FromInts(255, 0, 0)
	if err != nil {
		t.Fatalf("FromInts: %v", err)
	}
	fromFloats, err := FromFloats(1.0, 0.0, 0.0)
	if err != nil {
		t.Fatalf("FromFloats: %v", err)
	}
	if fromInts != New(255, 0, 0) || fromFloats != New(255, 0, 0) {
		t.Errorf("construction forms disagree: %v vs %v vs %v", fromInts, fromFloats, New(255, 0, 0))
	}

	gray, err := Broadcast(128)
	if err != nil {
		t.Fatalf("Broadcast: %v", err)
	}
	if gray != New(128, 128, 128) {
		t.Errorf("Broadcast(128) = %v, want %v", gray, New(128, 128, 128))
	}
}

func TestConstructionRangeErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"int too high", errOf(FromInts(300, 0, 0))},
		{"int negative", errOf(FromInts(0, -1, 0))},
		{"alpha too high", errOf(FromIntsRGBA(0, 0, 0, 256))},
		{"float too high", errOf(FromFloats(0, 0, 1.5))},
		{"float negative", errOf(FromFloats(-0.1, 0, 0))},
		{"broadcast", errOf(Broadcast(999))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rangeErr *RangeError
			if !errors.As(tt.err, &rangeErr) {
				t.Errorf("error = %v, want RangeError", tt.err)
			}
		})
	}
}

func errOf(_ Color, err error) error { return err }

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"with hash", "#eb6f92", New(235, 111, 146), false},
		{"without hash", "eb6f92", New(235, 111, 146), false},
		{"with alpha", "#eb6f9280", NewRGBA(235, 111, 146, 128), false},
		{"black", "#000000", New(0, 0, 0), false},
		{"uppercase", "#AABBCC", New(170, 187, 204), false},
		{"too short", "#fff", Color{}, true},
		{"invalid chars", "#zzzzzz", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexString(t *testing.T) {
	if got := New(235, 111, 146).Hex(); got != "#eb6f92" {
		t.Errorf("opaque Hex() = %q, want %q", got, "#eb6f92")
	}
	if got := NewRGBA(235, 111, 146, 128).Hex(); got != "#eb6f9280" {
		t.Errorf("translucent Hex() = %q, want %q", got, "#eb6f9280")
	}
	if got := New(0, 5, 10).String(); got != "#00050a" {
		t.Errorf("String() = %q, want %q", got, "#00050a")
	}
}

func TestSetChannelValidation(t *testing.T) {
	c := New(10, 20, 30)
	if err := c.SetRed(200); err != nil {
		t.Fatalf("SetRed(200): %v", err)
	}
	if c.R != 200 {
		t.Errorf("R = %d, want 200", c.R)
	}

	var rangeErr *RangeError
	if err := c.SetGreen(300); !errors.As(err, &rangeErr) {
		t.Errorf("SetGreen(300) error = %v, want RangeError", err)
	}
	if c.G != 20 {
		t.Errorf("failed setter mutated channel: G = %d, want 20", c.G)
	}
}

func TestUnitViewRoundTrip(t *testing.T) {
	var c Color
	if err := c.SetRedF(0.25); err != nil {
		t.Fatalf("SetRedF: %v", err)
	}
	// One quantization step is 1/255; the reconstructed value must land
	// within half a step of the assigned one.
	if got := c.RedF(); math.Abs(got-0.25) > 0.5/255+1e-9 {
		t.Errorf("RedF() = %v, want 0.25 within half a channel step", got)
	}

	var rangeErr *RangeError
	if err := c.SetBlueF(1.5); !errors.As(err, &rangeErr) {
		t.Errorf("SetBlueF(1.5) error = %v, want RangeError", err)
	}
}

func TestRealViewRoundTrip(t *testing.T) {
	// Quantization error in the real view grows toward the tails, where one
	// channel step covers a wider real interval.
	tests := []struct {
		v, tol float64
	}{
		{-2, 0.06},
		{-0.5, 0.01},
		{0, 0.01},
		{0.3, 0.01},
		{1.7, 0.04},
	}
	var c Color
	for _, tt := range tests {
		c.SetRedReal(tt.v)
		if got := c.RedReal(); math.Abs(got-tt.v) > tt.tol {
			t.Errorf("SetRedReal(%v) read back %v, want within %v", tt.v, got, tt.tol)
		}
	}
}

func TestLinearViewRoundTrip(t *testing.T) {
	var c Color
	for _, v := range []float64{0, 0.1, 0.5, 0.9, 1} {
		if err := c.SetGreenLinear(v); err != nil {
			t.Fatalf("SetGreenLinear(%v): %v", v, err)
		}
		if got := c.GreenLinear(); math.Abs(got-v) > 0.01 {
			t.Errorf("SetGreenLinear(%v) read back %v, want within 0.01", v, got)
		}
	}

	var rangeErr *RangeError
	if err := c.SetRedLinear(-0.2); !errors.As(err, &rangeErr) {
		t.Errorf("SetRedLinear(-0.2) error = %v, want RangeError", err)
	}
}

func TestXYZRoundTrip(t *testing.T) {
	colors := []Color{
		New(12, 130, 250),
		New(255, 0, 0),
		New(128, 128, 128),
		New(255, 255, 255),
	}
	for _, c := range colors {
		x, y, z := c.XYZ()
		var back Color
		back.A = c.A
		if err := back.SetXYZ(x, y, z); err != nil {
			t.Fatalf("SetXYZ(%v): %v", c, err)
		}
		if !channelsWithin(c, back, 1) {
			t.Errorf("XYZ round trip of %v = %v, want within 1 per channel", c, back)
		}
	}
}

func TestLuma(t *testing.T) {
	if got := New(255, 255, 255).Luma(); math.Abs(got-1.0) > 1e-6 {
		t.Errorf("white Luma() = %v, want 1", got)
	}
	if got := New(0, 0, 0).Luma(); got != 0 {
		t.Errorf("black Luma() = %v, want 0", got)
	}
}

func TestNegateInvolution(t *testing.T) {
	colors := []Color{
		New(0, 0, 0),
		New(255, 255, 255),
		New(100, 150, 200),
		New(1, 254, 128),
		NewRGBA(40, 80, 120, 64),
	}
	for _, c := range colors {
		back := c.Negate().Negate()
		if !channelsWithin(c, back, 1) {
			t.Errorf("Negate involution of %v = %v, want within 1 per channel", c, back)
		}
		if back.A != c.A {
			t.Errorf("Negate touched alpha: %d, want %d", back.A, c.A)
		}
	}
}

func TestNegateMirrorsChannels(t *testing.T) {
	// Negating the real-line view mirrors each channel around mid-gray.
	c := New(100, 0, 255)
	got := c.Negate()
	want := New(155, 255, 0)
	if !channelsWithin(got, want, 1) {
		t.Errorf("Negate(%v) = %v, want %v within 1 per channel", c, got, want)
	}
}

func TestAddIsRealDomainNotChannelSum(t *testing.T) {
	red := New(255, 0, 0)
	blue := New(0, 0, 255)
	purple := red.Add(blue)

	if purple == New(255, 0, 255) {
		t.Fatalf("Add produced the naive channel sum %v", purple)
	}
	// Saturated channels sit symmetrically on the real line, so 255+0
	// cancels to mid-gray and 0+0 stays saturated.
	if want := New(128, 0, 128); purple != want {
		t.Errorf("red + blue = %v, want %v", purple, want)
	}
}

func TestSubtractInvertsAdd(t *testing.T) {
	// The inverse law holds where no channel saturates; at the extremes the
	// atanh clamp quantizes away the excess and the law intentionally breaks.
	c1 := New(200, 80, 40)
	c2 := New(30, 120, 60)
	back := c1.Add(c2).Subtract(c2)
	if !channelsWithin(c1, back, 2) {
		t.Errorf("(c1 + c2) - c2 = %v, want %v within 2 per channel", back, c1)
	}
}

func TestAlmostEqual(t *testing.T) {
	base := New(100, 100, 100)
	tests := []struct {
		name  string
		other Color
		want  bool
	}{
		{"identical", New(100, 100, 100), true},
		{"within threshold", New(101, 102, 101), true},
		{"on threshold", New(104, 100, 100), false},
		{"far", New(200, 100, 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.AlmostEqual(tt.other); got != tt.want {
				t.Errorf("AlmostEqual(%v, %v) = %v, want %v", base, tt.other, got, tt.want)
			}
			// Symmetry
			if got := tt.other.AlmostEqual(base); got != tt.want {
				t.Errorf("AlmostEqual(%v, %v) = %v, want %v", tt.other, base, got, tt.want)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	if got := New(3, 4, 0).Abs(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Abs() = %v, want 5", got)
	}
}

type fakeSource struct {
	r, g, b, a int
}

func (s fakeSource) Red() int   { return s.r }
func (s fakeSource) Green() int { return s.g }
func (s fakeSource) Blue() int  { return s.b }
func (s fakeSource) Alpha() int { return s.a }

func TestFromSource(t *testing.T) {
	c, err := FromSource(fakeSource{10, 20, 30, 40})
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	if c != NewRGBA(10, 20, 30, 40) {
		t.Errorf("FromSource = %v, want %v", c, NewRGBA(10, 20, 30, 40))
	}

	var rangeErr *RangeError
	if _, err := FromSource(fakeSource{300, 0, 0, 0}); !errors.As(err, &rangeErr) {
		t.Errorf("FromSource out of range error = %v, want RangeError", err)
	}
}

func TestFromName(t *testing.T) {
	lookup := func(name string) (int, int, int, int, bool) {
		if name == "rose" {
			return 235, 111, 146, 255, true
		}
		return 0, 0, 0, 0, false
	}

	c, err := FromName("rose", lookup)
	if err != nil {
		t.Fatalf("FromName: %v", err)
	}
	if c != New(235, 111, 146) {
		t.Errorf("FromName = %v, want %v", c, New(235, 111, 146))
	}

	var resErr *ResolutionError
	if _, err := FromName("nope", lookup); !errors.As(err, &resErr) {
		t.Errorf("FromName miss error = %v, want ResolutionError", err)
	}
}

func TestResolve(t *testing.T) {
	rose := New(235, 111, 146)
	tests := []struct {
		name    string
		input   any
		want    Color
		wantErr bool
	}{
		{"color", rose, rose, false},
		{"pointer", &rose, rose, false},
		{"oklab", NewOKLab(rose), rose, false},
		{"int array", [3]int{235, 111, 146}, rose, false},
		{"rgba array", [4]int{235, 111, 146, 128}, NewRGBA(235, 111, 146, 128), false},
		{"float slice", []float64{1, 0, 0}, New(255, 0, 0), false},
		{"broadcast int", 128, New(128, 128, 128), false},
		{"hex string", "#eb6f92", rose, false},
		{"source", fakeSource{235, 111, 146, 255}, rose, false},
		{"bad slice length", []int{1, 2}, Color{}, true},
		{"unsupported type", struct{}{}, Color{}, true},
		{"bad string", "not a color", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if tt.wantErr {
				var resErr *ResolutionError
				var rangeErr *RangeError
				if !errors.As(err, &resErr) && !errors.As(err, &rangeErr) {
					t.Errorf("Resolve(%v) error = %v, want resolution or range error", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%v): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
