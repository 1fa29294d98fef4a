package parser

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/avistisen/farvelade/internal/color"
	"github.com/avistisen/farvelade/internal/names"
)

// makeRGBFunc creates an HCL function that builds a color from integer
// channels. Usage: rgb(235, 111, 146)
func makeRGBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from red, green, and blue channels in 0..255",
		Params: []function.Parameter{
			{Name: "r", Type: cty.Number},
			{Name: "g", Type: cty.Number},
			{Name: "b", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.FromInts(ctyInt(args[0]), ctyInt(args[1]), ctyInt(args[2]))
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Hex()), nil
		},
	})
}

// makeOKLabFunc creates an HCL function that builds a color from OKLab axes.
// Usage: oklab(0.6, 0.05, 0.02)
func makeOKLabFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from OKLab lightness and chroma axes",
		Params: []function.Parameter{
			{Name: "l", Type: cty.Number},
			{Name: "a", Type: cty.Number},
			{Name: "b", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			l, _ := args[0].AsBigFloat().Float64()
			a, _ := args[1].AsBigFloat().Float64()
			b, _ := args[2].AsBigFloat().Float64()

			c, err := color.FromLab(l, a, b)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Hex()), nil
		},
	})
}

// makeMixFunc creates an HCL function that blends two colors on the real-line
// view. Usage: mix("#eb6f92", palette.pine)
func makeMixFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Blends two colors by summing their real-line coordinates",
		Params: []function.Parameter{
			{Name: "a", Type: cty.String},
			{Name: "b", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, err := color.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			b, err := color.ParseHex(args[1].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(a.Add(b).Hex()), nil
		},
	})
}

// makeInvertFunc creates an HCL function that mirrors a color around
// mid-gray. Usage: invert(palette.rose)
func makeInvertFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Mirrors a color around mid-gray on the real-line view",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Negate().Hex()), nil
		},
	})
}

// makeNamedFunc creates an HCL function that resolves a CSS color name.
// Usage: named("cornflowerblue")
func makeNamedFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Resolves a CSS color name",
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.FromName(args[0].AsString(), names.Lookup)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Hex()), nil
		},
	})
}

func ctyInt(v cty.Value) int {
	f, _ := v.AsBigFloat().Float64()
	return int(f)
}
