package farvelade

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avistisen/farvelade/internal/color"
	"github.com/avistisen/farvelade/internal/geom"
)

func writeCard(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.card")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("writing card file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCard(t, `
card {
  name   = "demo"
  width  = 32
  height = 32
  base   = "#191724"
}

palette {
  rose = "#eb6f92"
}

region "swatch" {
  at    = [4, 4]
  size  = [8, 8]
  color = palette.rose
}
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Name != "demo" {
		t.Errorf("name = %q, want demo", c.Name)
	}
	if got := c.ColorAt(geom.Pixel{X: 5, Y: 5}); got != color.New(235, 111, 146) {
		t.Errorf("ColorAt(5,5) = %v, want rose", got)
	}
	if got := c.ColorAt(geom.Pixel{X: 0, Y: 0}); got != color.New(25, 23, 36) {
		t.Errorf("ColorAt(0,0) = %v, want base", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.card"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "loading card") {
		t.Errorf("error %q does not mention loading", err)
	}
}
