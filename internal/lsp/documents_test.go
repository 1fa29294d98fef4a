package lsp

import "testing"

func TestDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///tmp/test.card"

	if _, ok := store.Get(uri); ok {
		t.Error("expected miss on empty store")
	}

	store.Open(uri, "card {\n}\n")
	content, ok := store.Get(uri)
	if !ok {
		t.Fatal("expected document after Open")
	}
	if content != "card {\n}\n" {
		t.Errorf("content = %q", content)
	}

	store.Update(uri, "palette {\n}\n")
	content, _ = store.Get(uri)
	if content != "palette {\n}\n" {
		t.Errorf("content after update = %q", content)
	}

	store.Close(uri)
	if _, ok := store.Get(uri); ok {
		t.Error("expected miss after Close")
	}
}

func TestServerResultCache(t *testing.T) {
	s := NewServer("test")
	uri := "file:///tmp/test.card"

	if s.getResult(uri) != nil {
		t.Error("expected nil result before analysis")
	}

	result := Analyze("test.card", `palette {
  rose = "#eb6f92"
}
`)
	s.setResult(uri, result)

	got := s.getResult(uri)
	if got == nil {
		t.Fatal("expected cached result")
	}
	if len(got.Palette) != 1 {
		t.Errorf("cached palette has %d entries, want 1", len(got.Palette))
	}

	s.dropResult(uri)
	if s.getResult(uri) != nil {
		t.Error("expected nil result after drop")
	}
}
