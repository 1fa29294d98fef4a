package color

import "fmt"

// RangeError reports a channel value outside its declared range: [0,255] for
// integer channels, [0,1] for unit-float views. Values are never clamped.
type RangeError struct {
	Value   float64
	Lo, Hi  float64
	Channel string
}

func (e *RangeError) Error() string {
	if e.Channel != "" {
		return fmt.Sprintf("%s channel out of range [%g, %g]: %g", e.Channel, e.Lo, e.Hi, e.Value)
	}
	return fmt.Sprintf("value out of range [%g, %g]: %g", e.Lo, e.Hi, e.Value)
}

// DomainError reports input outside a transform's defined domain.
type DomainError struct {
	Value  float64
	Fn     string
	Lo, Hi float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: value outside domain [%g, %g]: %g", e.Fn, e.Lo, e.Hi, e.Value)
}

// DegenerateError reports an operator whose numeric result is undefined
// because of a zero denominator. It is raised instead of letting NaN or Inf
// propagate silently.
type DegenerateError struct {
	Op      string
	Channel string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s: zero denominator on %s channel", e.Op, e.Channel)
}

// ResolutionError reports a value that cannot be converted into a Color.
// Callers performing heterogeneous-operand arithmetic should treat it as
// "operation not supported" rather than as a programming error.
type ResolutionError struct {
	Value any
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %T value to a color: %v", e.Value, e.Value)
}
