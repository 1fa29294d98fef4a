package color

// Resolve converts an arbitrary value into a Color. It accepts colors of this
// package, integer and float channel collections, broadcast scalars, hex
// strings, and foreign channel sources. A value that cannot be converted
// yields a ResolutionError; callers combining heterogeneous operands should
// treat that as "operation not supported" and pick their own fallback.
func Resolve(v any) (Color, error) {
	switch x := v.(type) {
	case Color:
		return x, nil
	case *Color:
		if x == nil {
			return Color{}, &ResolutionError{Value: v}
		}
		return *x, nil
	case OKLab:
		return x.Color, nil
	case *OKLab:
		if x == nil {
			return Color{}, &ResolutionError{Value: v}
		}
		return x.Color, nil
	case [3]int:
		return FromInts(x[0], x[1], x[2])
	case [4]int:
		return FromIntsRGBA(x[0], x[1], x[2], x[3])
	case [3]float64:
		return FromFloats(x[0], x[1], x[2])
	case [4]float64:
		return FromFloatsRGBA(x[0], x[1], x[2], x[3])
	case []int:
		switch len(x) {
		case 3:
			return FromInts(x[0], x[1], x[2])
		case 4:
			return FromIntsRGBA(x[0], x[1], x[2], x[3])
		}
		return Color{}, &ResolutionError{Value: v}
	case []float64:
		switch len(x) {
		case 3:
			return FromFloats(x[0], x[1], x[2])
		case 4:
			return FromFloatsRGBA(x[0], x[1], x[2], x[3])
		}
		return Color{}, &ResolutionError{Value: v}
	case int:
		return Broadcast(x)
	case float64:
		return BroadcastFloat(x)
	case string:
		c, err := ParseHex(x)
		if err != nil {
			return Color{}, &ResolutionError{Value: v}
		}
		return c, nil
	case ChannelSource:
		return FromSource(x)
	default:
		return Color{}, &ResolutionError{Value: v}
	}
}
