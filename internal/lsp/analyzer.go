package lsp

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"

	"github.com/avistisen/farvelade/internal/card"
	"github.com/avistisen/farvelade/internal/color"
	"github.com/avistisen/farvelade/internal/geom"
	"github.com/avistisen/farvelade/internal/parser"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// cardAttributes are the valid attributes of the card block.
var cardAttributes = []string{"name", "width", "height", "base"}

// regionAttributes are the valid attributes of a region block.
var regionAttributes = []string{"at", "size", "left", "top", "right", "bottom", "color"}

// AnalysisResult holds all information produced by analyzing a card file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     map[string]color.Color
	Canvas      geom.Region
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	IsRef bool // true if this is a palette reference (not a hex literal)
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses card content from memory and produces diagnostics, the
// palette, and color locations. It collects ALL problems rather than
// short-circuiting on the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Palette: make(map[string]color.Color),
		Canvas:  geom.FromSize(card.DefaultWidth, card.DefaultHeight),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	var cardBody *hclsyntax.Body
	var paletteBody *hclsyntax.Body
	var regionBlocks []*hclsyntax.Block

	for _, block := range body.Blocks {
		switch block.Type {
		case "card":
			cardBody = block.Body
		case "palette":
			paletteBody = block.Body
		case "region":
			if len(block.Labels) == 0 {
				result.addError(block.DefRange(), "region block needs a label")
			}
			regionBlocks = append(regionBlocks, block)
		default:
			result.addWarning(block.DefRange(), fmt.Sprintf("unknown block %q", block.Type))
		}
	}

	if paletteBody != nil {
		result.analyzePaletteBody(paletteBody)
	}

	// The card block and regions evaluate against the full palette context.
	ctx := parser.EvalContext(result.Palette)
	if cardBody != nil {
		result.analyzeCardBody(cardBody, ctx)
	}
	for _, block := range regionBlocks {
		result.analyzeRegionBlock(block, ctx)
	}

	return result
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr("farvelade"),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr("farvelade"),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr("farvelade"),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

// analyzeCardBody checks the card block attributes and records the canvas
// extent for region containment checks.
func (r *AnalysisResult) analyzeCardBody(body *hclsyntax.Body, ctx *hcl.EvalContext) {
	width, height := card.DefaultWidth, card.DefaultHeight

	for name, attr := range body.Attributes {
		switch name {
		case "name":
			// Free-form string; nothing to validate.
		case "width", "height":
			v, ok := r.evalInt(attr, ctx, "card."+name)
			if !ok {
				continue
			}
			if v < 1 {
				r.addError(attr.SrcRange, fmt.Sprintf("card.%s must be at least 1", name))
				continue
			}
			if name == "width" {
				width = v
			} else {
				height = v
			}
		case "base":
			if c, ok := r.evalColor(attr, ctx, "card.base"); ok {
				r.recordColor(attr, c)
			}
		default:
			r.addWarning(attr.SrcRange, fmt.Sprintf("unknown card attribute %q (expected one of %v)", name, cardAttributes))
		}
	}

	r.Canvas = geom.FromSize(width, height)
}

// analyzePaletteBody parses the flat palette block, collecting diagnostics
// and color locations. Entries evaluate against a function-only context, as
// in the parser: palette entries cannot reference each other.
func (r *AnalysisResult) analyzePaletteBody(body *hclsyntax.Body) {
	for _, block := range body.Blocks {
		r.addError(block.DefRange(), "palette block does not nest")
	}

	// Sort attributes by source position for deterministic diagnostics.
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	ctx := parser.EvalContext(nil)
	for _, attr := range attrs {
		c, ok := r.evalColor(attr, ctx, "palette."+attr.Name)
		if !ok {
			continue
		}
		r.recordColor(attr, c)
		r.Palette[attr.Name] = c
	}
}

// analyzeRegionBlock checks one region block: its color and its placement.
func (r *AnalysisResult) analyzeRegionBlock(block *hclsyntax.Block, ctx *hcl.EvalContext) {
	label := "region"
	if len(block.Labels) > 0 {
		label = fmt.Sprintf("region %q", block.Labels[0])
	}

	body := block.Body
	var at, size []int
	edges := make(map[string]int)
	hasAt, hasEdges := false, false

	for name, attr := range body.Attributes {
		switch name {
		case "color":
			if c, ok := r.evalColor(attr, ctx, label+" color"); ok {
				r.recordColor(attr, c)
			}
		case "at", "size":
			hasAt = true
			pair, ok := r.evalIntPair(attr, ctx, label+" "+name)
			if !ok {
				continue
			}
			if name == "at" {
				at = pair
			} else {
				size = pair
			}
		case "left", "top", "right", "bottom":
			hasEdges = true
			if v, ok := r.evalInt(attr, ctx, label+" "+name); ok {
				edges[name] = v
			}
		default:
			r.addWarning(attr.SrcRange, fmt.Sprintf("unknown region attribute %q (expected one of %v)", name, regionAttributes))
		}
	}

	if _, ok := body.Attributes["color"]; !ok {
		r.addError(block.DefRange(), label+" is missing the color attribute")
	}

	region, ok := r.resolveRegionGeometry(block, label, at, size, edges, hasAt, hasEdges)
	if !ok {
		return
	}

	if region.Empty() {
		r.addError(block.DefRange(), label+" covers no pixels")
		return
	}
	if !r.Canvas.ContainsRegion(region) {
		r.addWarning(block.DefRange(), fmt.Sprintf("%s %s escapes the %dx%d canvas",
			label, region, r.Canvas.Width(), r.Canvas.Height()))
	}
}

func (r *AnalysisResult) resolveRegionGeometry(block *hclsyntax.Block, label string, at, size []int, edges map[string]int, hasAt, hasEdges bool) (geom.Region, bool) {
	switch {
	case hasAt && hasEdges:
		r.addError(block.DefRange(), label+" mixes at/size with edge attributes")
		return geom.Region{}, false
	case hasAt:
		if at == nil || size == nil {
			r.addError(block.DefRange(), label+" needs both at and size")
			return geom.Region{}, false
		}
		return geom.At(geom.Pixel{X: at[0], Y: at[1]}, size[0], size[1]), true
	case hasEdges:
		for _, name := range []string{"left", "top", "right", "bottom"} {
			if _, ok := edges[name]; !ok {
				r.addError(block.DefRange(), label+" needs all of left, top, right, bottom")
				return geom.Region{}, false
			}
		}
		return geom.Region{
			Left:   edges["left"],
			Top:    edges["top"],
			Right:  edges["right"],
			Bottom: edges["bottom"],
		}, true
	default:
		r.addError(block.DefRange(), label+" has no placement attributes")
		return geom.Region{}, false
	}
}

// recordColor appends a color location for the attribute's value expression.
func (r *AnalysisResult) recordColor(attr *hclsyntax.Attribute, c color.Color) {
	r.Colors = append(r.Colors, ColorLocation{
		Range: hclRangeToLSP(attr.Expr.Range()),
		Color: c,
		IsRef: isReferenceExpr(attr.Expr),
	})
}

// evalColor evaluates an attribute expected to produce a color string.
func (r *AnalysisResult) evalColor(attr *hclsyntax.Attribute, ctx *hcl.EvalContext, what string) (color.Color, bool) {
	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", what, diags.Error()))
		return color.Color{}, false
	}
	if val.Type() != cty.String {
		r.addError(attr.SrcRange, fmt.Sprintf("%s: expected a color string, got %s", what, val.Type().FriendlyName()))
		return color.Color{}, false
	}
	c, err := color.ParseHex(val.AsString())
	if err != nil {
		r.addError(attr.SrcRange, fmt.Sprintf("%s: %s", what, err.Error()))
		return color.Color{}, false
	}
	return c, true
}

// evalInt evaluates an attribute expected to produce a whole number.
func (r *AnalysisResult) evalInt(attr *hclsyntax.Attribute, ctx *hcl.EvalContext, what string) (int, bool) {
	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", what, diags.Error()))
		return 0, false
	}
	if val.Type() != cty.Number {
		r.addError(attr.SrcRange, fmt.Sprintf("%s: expected a number, got %s", what, val.Type().FriendlyName()))
		return 0, false
	}
	f, _ := val.AsBigFloat().Float64()
	return int(f), true
}

// evalIntPair evaluates an attribute expected to produce a two-element list
// of numbers.
func (r *AnalysisResult) evalIntPair(attr *hclsyntax.Attribute, ctx *hcl.EvalContext, what string) ([]int, bool) {
	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", what, diags.Error()))
		return nil, false
	}
	if !val.Type().IsTupleType() && !val.Type().IsListType() {
		r.addError(attr.SrcRange, fmt.Sprintf("%s: expected a two-element list", what))
		return nil, false
	}
	var out []int
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.Type() != cty.Number {
			r.addError(attr.SrcRange, fmt.Sprintf("%s: expected numbers", what))
			return nil, false
		}
		f, _ := elem.AsBigFloat().Float64()
		out = append(out, int(f))
	}
	if len(out) != 2 {
		r.addError(attr.SrcRange, fmt.Sprintf("%s: expected exactly two elements, got %d", what, len(out)))
		return nil, false
	}
	return out, true
}

// isReferenceExpr returns true if the expression is a scope traversal
// (e.g. palette.rose) rather than a literal value.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		return true
	case *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}
