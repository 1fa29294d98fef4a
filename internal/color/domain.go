package color

import "math"

// epsilon guards the poles of atanh/tanh and the cube root's sign near zero.
const epsilon = 1e-10

// unitToSigned shifts a unit-range value [0,1] into the signed range (-1,1),
// clamped away from the poles so atanh stays finite.
func unitToSigned(v float64) float64 {
	out := v*2 - 1
	out = math.Min(1.0-epsilon, out)
	out = math.Max(-1.0+epsilon, out)
	return out
}

// signedToUnit shifts a signed-range value (-1,1) back into the unit range,
// clamped away from the exact endpoints.
func signedToUnit(v float64) float64 {
	out := (v + 1) / 2
	out = math.Min(1.0-epsilon, out)
	out = math.Max(0.0+epsilon, out)
	return out
}

// UnitToReal maps a unit-range value onto the full real line using atanh.
// The mapping is monotonically increasing with 0.5 mapping to 0. Values
// outside [0,1] produce a DomainError.
func UnitToReal(v float64) (float64, error) {
	if v < 0.0 || v > 1.0 {
		return 0, &DomainError{Value: v, Fn: "UnitToReal", Lo: 0, Hi: 1}
	}
	return math.Atanh(unitToSigned(v)), nil
}

// RealToUnit maps a real-line value back into the unit range using tanh.
// It is total for finite input and inverts UnitToReal for values strictly
// inside (epsilon, 1-epsilon).
func RealToUnit(v float64) float64 {
	return signedToUnit(math.Tanh(v))
}

// SRGBToLinear converts a gamma-encoded sRGB component [0,1] to linear light.
// Values outside [0,1] produce a DomainError.
func SRGBToLinear(v float64) (float64, error) {
	if v < 0.0 || v > 1.0 {
		return 0, &DomainError{Value: v, Fn: "SRGBToLinear", Lo: 0, Hi: 1}
	}
	if v < 0.04045 {
		return v / 12.92, nil
	}
	return math.Pow((v+0.055)/1.055, 2.4), nil
}

// LinearToSRGB converts a linear-light component [0,1] to gamma-encoded sRGB.
// Values outside [0,1] produce a DomainError.
func LinearToSRGB(v float64) (float64, error) {
	if v < 0.0 || v > 1.0 {
		return 0, &DomainError{Value: v, Fn: "LinearToSRGB", Lo: 0, Hi: 1}
	}
	if v < 0.0031308 {
		return v * 12.92, nil
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055, nil
}

// SignedCbrt returns the sign-preserving cube root. Magnitudes whose square
// falls below epsilon collapse to zero to avoid sign flutter near the origin.
func SignedCbrt(v float64) float64 {
	if v*v < epsilon {
		return 0.0
	}
	return math.Cbrt(v)
}
