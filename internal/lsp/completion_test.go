package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func completionLabels(items []protocol.CompletionItem) []string {
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	return labels
}

func hasLabel(items []protocol.CompletionItem, label string) bool {
	for _, item := range items {
		if item.Label == label {
			return true
		}
	}
	return false
}

func TestComplete_TopLevel(t *testing.T) {
	content := "\n"
	result := Analyze("test.card", content)

	items := complete(result, content, protocol.Position{Line: 0, Character: 0})
	if len(items) != len(topLevelBlocks) {
		t.Fatalf("expected %d top-level completions, got %v",
			len(topLevelBlocks), completionLabels(items))
	}

	for _, name := range topLevelBlocks {
		if !hasLabel(items, name) {
			t.Errorf("missing top-level block completion %q", name)
		}
	}

	// The region snippet carries a label placeholder.
	for _, item := range items {
		if item.Label != "region" {
			continue
		}
		if item.InsertText == nil || *item.InsertText != "region \"${1:label}\" {\n  $0\n}" {
			t.Errorf("region snippet = %v", item.InsertText)
		}
	}
}

func TestComplete_CardAttributes(t *testing.T) {
	content := `card {
  width = 64

}
`
	result := Analyze("test.card", content)

	items := complete(result, content, protocol.Position{Line: 2, Character: 2})
	labels := completionLabels(items)

	if hasLabel(items, "width") {
		t.Errorf("width is already defined, should not be offered: %v", labels)
	}
	for _, want := range []string{"name", "height", "base"} {
		if !hasLabel(items, want) {
			t.Errorf("missing card attribute completion %q in %v", want, labels)
		}
	}
}

func TestComplete_RegionAttributes(t *testing.T) {
	content := `region "swatch" {
  at = [0, 0]

}
`
	result := Analyze("test.card", content)

	items := complete(result, content, protocol.Position{Line: 2, Character: 2})
	labels := completionLabels(items)

	if hasLabel(items, "at") {
		t.Errorf("at is already defined, should not be offered: %v", labels)
	}
	for _, want := range []string{"size", "color", "left", "top", "right", "bottom"} {
		if !hasLabel(items, want) {
			t.Errorf("missing region attribute completion %q in %v", want, labels)
		}
	}
}

func TestComplete_ValuePosition(t *testing.T) {
	content := `region "swatch" {
  color =
}
`
	result := Analyze("test.card", content)

	items := complete(result, content, protocol.Position{Line: 1, Character: 10})
	labels := completionLabels(items)

	for _, want := range []string{"rgb", "oklab", "mix", "invert", "named", "palette"} {
		if !hasLabel(items, want) {
			t.Errorf("missing value completion %q in %v", want, labels)
		}
	}
}

func TestComplete_PalettePath(t *testing.T) {
	content := `palette {
  rose = "#eb6f92"
  pine = "#31748f"
}

region "swatch" {
  at    = [0, 0]
  size  = [4, 4]
  color = palette.rose
}
`
	result := Analyze("test.card", content)

	// Cursor right after the dot, as if mid-edit.
	items := complete(result, content, protocol.Position{Line: 8, Character: 18})
	labels := completionLabels(items)

	if len(items) != 2 {
		t.Fatalf("expected 2 palette completions, got %v", labels)
	}
	// Sorted order.
	if labels[0] != "pine" || labels[1] != "rose" {
		t.Errorf("palette completions = %v, want [pine rose]", labels)
	}
	if items[1].Detail == nil || *items[1].Detail != "#eb6f92" {
		t.Errorf("rose detail = %v, want the hex value", items[1].Detail)
	}
}

func TestComplete_NamedColors(t *testing.T) {
	content := `region "swatch" {
  color = named("steel
}
`
	result := Analyze("test.card", content)

	items := complete(result, content, protocol.Position{Line: 1, Character: 22})
	if len(items) < 140 {
		t.Fatalf("expected the full color name table, got %d items", len(items))
	}
	if !hasLabel(items, "steelblue") {
		t.Error("missing named color completion steelblue")
	}
	if !hasLabel(items, "transparent") {
		t.Error("missing named color completion transparent")
	}
}

func TestComplete_ClosedNamedCall(t *testing.T) {
	content := `region "swatch" {
  color = named("steelblue")
}
`
	result := Analyze("test.card", content)

	items := complete(result, content, protocol.Position{Line: 1, Character: 28})
	if hasLabel(items, "steelblue") {
		t.Errorf("closed named() call should not offer color names: %v",
			completionLabels(items))
	}
}

func TestComplete_PastEndOfDocument(t *testing.T) {
	content := "card {\n}\n"
	result := Analyze("test.card", content)

	items := complete(result, content, protocol.Position{Line: 40, Character: 0})
	if items != nil {
		t.Errorf("expected nil past end of document, got %v", completionLabels(items))
	}
}
