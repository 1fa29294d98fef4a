// Package farvelade is a color representation engine with sample-card
// tooling. Colors are stored as 8-bit RGB channels with alpha; derived views
// expose unit floats, an unbounded real-line mapping, gamma-linear channels,
// XYZ, HSV, and the OKLab axes. Sample cards paint colored regions onto a
// canvas described by .card files.
package farvelade

import (
	"fmt"

	"github.com/avistisen/farvelade/internal/card"
	"github.com/avistisen/farvelade/internal/parser"
)

// Load parses a .card file and returns a fully-resolved sample card.
func Load(path string) (*card.Card, error) {
	c, err := parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("loading card: %w", err)
	}
	return c, nil
}
