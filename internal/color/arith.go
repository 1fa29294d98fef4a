package color

// Arithmetic between colors is defined on the real-line view rather than on
// raw channels: each chromatic channel is mapped onto the unbounded real line,
// combined there, and mapped back. Negation and overflow are meaningful on the
// real line, and addition compresses toward mid-gray instead of clipping.
// Summing already-extreme channels saturates toward the same extreme; that is
// the intended average-like blend, not linear-light mixing.

// Negate returns the color whose real-line coordinates are the negatives of
// the receiver's. The alpha channel is unaffected.
func (c Color) Negate() Color {
	out := c
	out.SetRedReal(-c.RedReal())
	out.SetGreenReal(-c.GreenReal())
	out.SetBlueReal(-c.BlueReal())
	return out
}

// Add combines two colors by summing their real-line coordinates per
// channel. The receiver's alpha channel is kept.
func (c Color) Add(other Color) Color {
	out := c
	out.SetRedReal(c.RedReal() + other.RedReal())
	out.SetGreenReal(c.GreenReal() + other.GreenReal())
	out.SetBlueReal(c.BlueReal() + other.BlueReal())
	return out
}

// Subtract is the addition of the other color's negation.
func (c Color) Subtract(other Color) Color {
	return c.Add(other.Negate())
}
