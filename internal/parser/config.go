// Package parser loads .card files: HCL documents describing a sample card
// canvas, a palette of named colors, and painted regions.
package parser

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/avistisen/farvelade/internal/card"
	"github.com/avistisen/farvelade/internal/color"
	"github.com/avistisen/farvelade/internal/geom"
)

// CardBlock holds the canvas attributes of the card block.
type CardBlock struct {
	Name   string `hcl:"name,optional"`
	Width  int    `hcl:"width,optional"`
	Height int    `hcl:"height,optional"`
	Base   string `hcl:"base,optional"`
}

// RegionBlock holds one region block. A region is placed either with
// at/size or with explicit edges; mixing the two forms is an error.
type RegionBlock struct {
	Label  string `hcl:"name,label"`
	At     []int  `hcl:"at,optional"`
	Size   []int  `hcl:"size,optional"`
	Left   *int   `hcl:"left,optional"`
	Top    *int   `hcl:"top,optional"`
	Right  *int   `hcl:"right,optional"`
	Bottom *int   `hcl:"bottom,optional"`
	Color  string `hcl:"color"`
}

// PaletteBlock wraps the palette block for gohcl decoding.
type PaletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// RawConfig captures the palette block first (no EvalContext needed).
type RawConfig struct {
	Palette *PaletteBlock `hcl:"palette,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// ResolvedConfig decodes blocks that reference palette.
type ResolvedConfig struct {
	Card    *CardBlock    `hcl:"card,block"`
	Regions []RegionBlock `hcl:"region,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// Loader handles two-pass HCL decoding with palette resolution.
type Loader struct {
	body    hcl.Body
	ctx     *hcl.EvalContext
	palette map[string]color.Color
}

// NewLoader parses card source and builds the evaluation context from the
// palette block. The palette block is optional; cards without one still get
// the color functions.
func NewLoader(src []byte, filename string) (*Loader, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	// First pass: extract palette (literal values, no context needed)
	var raw RawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding palette: %s", diags.Error())
	}

	palette := make(map[string]color.Color)
	if raw.Palette != nil {
		paletteBody, ok := raw.Palette.Entries.(*hclsyntax.Body)
		if !ok {
			return nil, fmt.Errorf("palette block is not an hclsyntax.Body")
		}
		if err := parsePaletteBody(paletteBody, palette); err != nil {
			return nil, fmt.Errorf("parsing palette: %w", err)
		}
	}

	return &Loader{
		body:    file.Body,
		ctx:     buildEvalContext(palette),
		palette: palette,
	}, nil
}

// Decode decodes a value using the palette context.
func (l *Loader) Decode(target any) error {
	if diags := gohcl.DecodeBody(l.body, l.ctx, target); diags.HasErrors() {
		return fmt.Errorf("decoding: %s", diags.Error())
	}
	return nil
}

// Palette returns the parsed palette colors.
func (l *Loader) Palette() map[string]color.Color {
	return l.palette
}

// Context returns the EvalContext for manual parsing.
func (l *Loader) Context() *hcl.EvalContext {
	return l.ctx
}

// parsePaletteBody parses the flat palette block. Entries are hex literals or
// function calls; palette references within the palette are not allowed, so
// entries evaluate against a function-only context.
func parsePaletteBody(body *hclsyntax.Body, dest map[string]color.Color) error {
	if len(body.Blocks) > 0 {
		return fmt.Errorf("palette block does not nest")
	}
	ctx := buildEvalContext(nil)
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating palette.%s: %s", name, diags.Error())
		}
		if val.Type() != cty.String {
			return fmt.Errorf("palette.%s: expected a color string", name)
		}
		c, err := color.ParseHex(val.AsString())
		if err != nil {
			return fmt.Errorf("palette.%s: %w", name, err)
		}
		dest[name] = c
	}
	return nil
}

// paletteToCty converts the palette to a cty.Value for HCL evaluation.
func paletteToCty(palette map[string]color.Color) cty.Value {
	if len(palette) == 0 {
		return cty.EmptyObjectVal
	}
	vals := make(map[string]cty.Value, len(palette))

	// Sort keys for deterministic output
	keys := make([]string, 0, len(palette))
	for k := range palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals[k] = cty.StringVal(palette[k].Hex())
	}
	return cty.ObjectVal(vals)
}

// EvalContext builds the evaluation context used for card expressions:
// palette variables plus the color functions. The LSP analyzer shares it so
// that editor diagnostics match what the parser accepts.
func EvalContext(palette map[string]color.Color) *hcl.EvalContext {
	return buildEvalContext(palette)
}

func buildEvalContext(palette map[string]color.Color) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": paletteToCty(palette),
		},
		Functions: map[string]function.Function{
			"rgb":    makeRGBFunc(),
			"oklab":  makeOKLabFunc(),
			"mix":    makeMixFunc(),
			"invert": makeInvertFunc(),
			"named":  makeNamedFunc(),
		},
	}
}

// regionGeometry resolves a region block's placement attributes into a
// rectangle.
func regionGeometry(rb RegionBlock) (geom.Region, error) {
	hasAt := len(rb.At) > 0 || len(rb.Size) > 0
	hasEdges := rb.Left != nil || rb.Top != nil || rb.Right != nil || rb.Bottom != nil

	switch {
	case hasAt && hasEdges:
		return geom.Region{}, fmt.Errorf("region %q mixes at/size with edge attributes", rb.Label)
	case hasAt:
		if len(rb.At) != 2 {
			return geom.Region{}, fmt.Errorf("region %q: at needs [left, top]", rb.Label)
		}
		if len(rb.Size) != 2 {
			return geom.Region{}, fmt.Errorf("region %q: size needs [width, height]", rb.Label)
		}
		return geom.At(geom.Pixel{X: rb.At[0], Y: rb.At[1]}, rb.Size[0], rb.Size[1]), nil
	case hasEdges:
		if rb.Left == nil || rb.Top == nil || rb.Right == nil || rb.Bottom == nil {
			return geom.Region{}, fmt.Errorf("region %q needs all of left, top, right, bottom", rb.Label)
		}
		return geom.Region{Left: *rb.Left, Top: *rb.Top, Right: *rb.Right, Bottom: *rb.Bottom}, nil
	default:
		return geom.Region{}, fmt.Errorf("region %q has no placement attributes", rb.Label)
	}
}

// ParseSource parses card source into a fully-resolved sample card.
func ParseSource(src []byte, filename string) (*card.Card, error) {
	loader, err := NewLoader(src, filename)
	if err != nil {
		return nil, err
	}

	// Second pass: decode blocks that reference palette
	var resolved ResolvedConfig
	if err := loader.Decode(&resolved); err != nil {
		return nil, err
	}

	width, height := card.DefaultWidth, card.DefaultHeight
	base := color.New(255, 255, 255)
	name := ""
	if resolved.Card != nil {
		name = resolved.Card.Name
		if resolved.Card.Width != 0 {
			width = resolved.Card.Width
		}
		if resolved.Card.Height != 0 {
			height = resolved.Card.Height
		}
		if resolved.Card.Base != "" {
			base, err = color.ParseHex(resolved.Card.Base)
			if err != nil {
				return nil, fmt.Errorf("card base: %w", err)
			}
		}
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("canvas %dx%d is smaller than 1x1", width, height)
	}

	out := card.New(width, height)
	out.Name = name
	out.Base = base

	for _, rb := range resolved.Regions {
		region, err := regionGeometry(rb)
		if err != nil {
			return nil, err
		}
		col, err := color.ParseHex(rb.Color)
		if err != nil {
			return nil, fmt.Errorf("region %q color: %w", rb.Label, err)
		}
		if err := out.AddRegion(region, col); err != nil {
			return nil, fmt.Errorf("region %q: %w", rb.Label, err)
		}
	}

	return out, nil
}

// Parse reads and parses a .card file.
func Parse(path string) (*card.Card, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading card file: %w", err)
	}
	return ParseSource(src, path)
}
