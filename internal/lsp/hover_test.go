package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestHover_PaletteReference(t *testing.T) {
	content := `palette {
  rose = "#eb6f92"
}

region "swatch" {
  at    = [0, 0]
  size  = [4, 4]
  color = palette.rose
}
`
	result := Analyze("test.card", content)

	var refLoc *ColorLocation
	for i, cl := range result.Colors {
		if cl.IsRef {
			refLoc = &result.Colors[i]
			break
		}
	}
	if refLoc == nil {
		t.Fatal("expected to find a palette reference ColorLocation")
	}

	pos := protocol.Position{
		Line:      refLoc.Range.Start.Line,
		Character: refLoc.Range.Start.Character + 2,
	}

	h := hover(result, content, pos)
	if h == nil {
		t.Fatal("expected non-nil hover result for palette reference")
	}

	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}

	if !strings.Contains(mc.Value, "palette.rose") {
		t.Errorf("hover does not lead with the reference text: %q", mc.Value)
	}
	if !strings.Contains(mc.Value, "#eb6f92") {
		t.Errorf("hover does not show the hex value: %q", mc.Value)
	}
	if !strings.Contains(mc.Value, "OKLab") || !strings.Contains(mc.Value, "HSV") {
		t.Errorf("hover does not show the derived views: %q", mc.Value)
	}
}

func TestHover_HexLiteral(t *testing.T) {
	content := `palette {
  rose = "#eb6f92"
}
`
	result := Analyze("test.card", content)
	if len(result.Colors) != 1 {
		t.Fatalf("expected 1 color location, got %d", len(result.Colors))
	}

	pos := result.Colors[0].Range.Start
	h := hover(result, content, pos)
	if h == nil {
		t.Fatal("expected non-nil hover result for hex literal")
	}

	mc := h.Contents.(protocol.MarkupContent)
	if !strings.Contains(mc.Value, "#eb6f92") {
		t.Errorf("hover does not show the hex value: %q", mc.Value)
	}
	if !strings.Contains(mc.Value, "rgb(235, 111, 146)") {
		t.Errorf("hover does not show the rgb form: %q", mc.Value)
	}
	if strings.Contains(mc.Value, "**") {
		t.Errorf("literal hover should not lead with reference text: %q", mc.Value)
	}
}

func TestHover_OutsideAnyColor(t *testing.T) {
	content := `palette {
  rose = "#eb6f92"
}
`
	result := Analyze("test.card", content)

	h := hover(result, content, protocol.Position{Line: 0, Character: 0})
	if h != nil {
		t.Errorf("expected nil hover outside color locations, got %+v", h)
	}
}

func TestPosInRange(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 4},
		End:   protocol.Position{Line: 1, Character: 10},
	}

	tests := []struct {
		name string
		pos  protocol.Position
		want bool
	}{
		{"inside", protocol.Position{Line: 1, Character: 6}, true},
		{"at start", protocol.Position{Line: 1, Character: 4}, true},
		{"at end is exclusive", protocol.Position{Line: 1, Character: 10}, false},
		{"before", protocol.Position{Line: 1, Character: 3}, false},
		{"other line", protocol.Position{Line: 2, Character: 6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := posInRange(tt.pos, r); got != tt.want {
				t.Errorf("posInRange(%+v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	content := "first line\nsecond line\nthird line"

	tests := []struct {
		name string
		r    protocol.Range
		want string
	}{
		{
			"single line",
			protocol.Range{
				Start: protocol.Position{Line: 1, Character: 0},
				End:   protocol.Position{Line: 1, Character: 6},
			},
			"second",
		},
		{
			"multi line",
			protocol.Range{
				Start: protocol.Position{Line: 0, Character: 6},
				End:   protocol.Position{Line: 1, Character: 6},
			},
			"line\nsecond",
		},
		{
			"past end of document",
			protocol.Range{
				Start: protocol.Position{Line: 9, Character: 0},
				End:   protocol.Position{Line: 9, Character: 4},
			},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(content, tt.r); got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}
