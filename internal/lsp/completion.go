package lsp

import (
	"sort"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/avistisen/farvelade/internal/names"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot    blockContext = iota
	contextCard                 // inside card {}
	contextPalette              // inside palette {}
	contextRegion               // inside a region block
)

// topLevelBlocks are the valid top-level block names.
var topLevelBlocks = []string{"card", "palette", "region"}

// complete produces completion items given an analysis result, document
// content, and cursor position. This is the core logic, decoupled from the
// LSP protocol handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	// Inside a named("...") call, offer the color name table.
	if items := tryNamedCompletion(textBeforeCursor); items != nil {
		return items
	}

	// Check for palette path completion: "palette."
	if items := tryPaletteCompletion(result, textBeforeCursor); items != nil {
		return items
	}

	// Check for value position (after "="): offer functions and palette
	if isValuePosition(textBeforeCursor) {
		return valueCompletions()
	}

	// Determine which block the cursor is in by scanning backwards
	switch determineBlockContext(lines, int(pos.Line)) {
	case contextCard:
		return attributeCompletions(cardAttributes, lines, int(pos.Line))
	case contextRegion:
		return attributeCompletions(regionAttributes, lines, int(pos.Line))
	case contextRoot:
		return topLevelCompletions()
	}

	return nil
}

// tryNamedCompletion checks if the cursor sits inside the string argument of
// a named() call and returns the color name table.
func tryNamedCompletion(textBeforeCursor string) []protocol.CompletionItem {
	idx := strings.LastIndex(textBeforeCursor, `named("`)
	if idx == -1 {
		return nil
	}
	rest := textBeforeCursor[idx+len(`named("`):]
	if strings.Contains(rest, `"`) {
		// The string argument is already closed.
		return nil
	}

	kind := protocol.CompletionItemKindColor
	var items []protocol.CompletionItem
	for _, name := range names.Names() {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		})
	}
	return items
}

// tryPaletteCompletion checks if the text before the cursor ends with a
// palette path prefix and returns completion items for the palette entries.
// The palette is flat, so any "palette." prefix completes to the same set.
func tryPaletteCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || len(result.Palette) == 0 {
		return nil
	}

	if !strings.Contains(textBeforeCursor, "palette.") {
		return nil
	}

	keys := make([]string, 0, len(result.Palette))
	for name := range result.Palette {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	kind := protocol.CompletionItemKindColor
	var items []protocol.CompletionItem
	for _, name := range keys {
		hex := result.Palette[name].Hex()
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &kind,
			Detail: &hex,
		})
	}
	return items
}

// isValuePosition returns true if the text before the cursor indicates we are
// at a value position (after an "=" sign with nothing meaningful following
// it).
func isValuePosition(textBeforeCursor string) bool {
	trimmed := strings.TrimSpace(textBeforeCursor)
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return false
	}
	afterEq := strings.TrimSpace(trimmed[eqIdx+1:])
	return afterEq == ""
}

// valueCompletions returns completion items for a value position, including
// function snippets and a palette reference trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	rgbSnippet := "rgb(${1:255}, ${2:255}, ${3:255})"
	oklabSnippet := "oklab(${1:0.6}, ${2:0.0}, ${3:0.0})"
	mixSnippet := "mix(${1:a}, ${2:b})"
	invertSnippet := "invert(${1:color})"
	namedSnippet := `named("${1:name}")`
	paletteSnippet := "palette."

	return []protocol.CompletionItem{
		{
			Label:            "rgb",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("rgb(r, g, b)"),
			InsertText:       &rgbSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:            "oklab",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("oklab(l, a, b)"),
			InsertText:       &oklabSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:            "mix",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("mix(a, b)"),
			InsertText:       &mixSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:            "invert",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("invert(color)"),
			InsertText:       &invertSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:            "named",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("named(name)"),
			InsertText:       &namedSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:      "palette",
			Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
			Detail:     strPtr("palette reference"),
			InsertText: &paletteSnippet,
		},
	}
}

// determineBlockContext scans from the top of the file down to the cursor
// line to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		if opens > 0 {
			parts := strings.Fields(line)
			if len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		if closes > 0 {
			for range closes {
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}

	switch stack[len(stack)-1] {
	case "card":
		return contextCard
	case "palette":
		return contextPalette
	case "region":
		return contextRegion
	default:
		return contextRoot
	}
}

// attributeCompletions returns completions for the given attribute set,
// excluding attributes already defined in the current block.
func attributeCompletions(attributes []string, lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindKeyword

	var items []protocol.CompletionItem
	for _, name := range attributes {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  &kind,
			})
		}
	}

	return items
}

// findDefinedAttributes scans the current block (from the nearest opening
// brace before cursorLine to cursorLine) and returns attribute names already
// defined (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	// Scan backwards to find the opening brace of the current block
	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		closes := strings.Count(line, "}")
		opens := strings.Count(line, "{")
		depth += closes - opens
		if depth < 0 {
			startLine = i
			break
		}
	}

	// Scan forward from startLine to cursorLine, collecting attribute names
	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// topLevelCompletions returns completion items for top-level block names.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		snippet := name + " {\n  $0\n}"
		if name == "region" {
			snippet = `region "${1:label}" {` + "\n  $0\n}"
		}
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion
// requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	items := complete(result, content, params.Position)
	return items, nil
}
