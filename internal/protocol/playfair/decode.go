package playfair

import (
	"errors"
	"fmt"
	"strings"

	"playfair/internal/domain"
)

// ErrLookup is returned when a digram letter has no coordinate in the grid.
// It indicates a grid and coordinate map that were not built together.
var ErrLookup = errors.New("letter missing from key grid")

// Decode reverses the Playfair substitution for each digram and removes
// every filler letter from the result.
//
//   - same row: each letter moves one column left, wrapping
//   - same column: each letter moves one row up, wrapping
//   - otherwise: each letter takes the other letter's column
func Decode(
	grid domain.Grid,
	coords domain.CoordinateMap,
	digrams []domain.Digram,
) (string, error) {
	var b strings.Builder
	b.Grow(2 * len(digrams))
	for _, d := range digrams {
		p1, ok := coords.Lookup(d.First)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrLookup, d.First)
		}
		p2, ok := coords.Lookup(d.Second)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrLookup, d.Second)
		}

		var a, c domain.Position
		switch {
		case p1.Row == p2.Row:
			a = domain.Position{Row: p1.Row, Col: wrap(p1.Col - 1)}
			c = domain.Position{Row: p2.Row, Col: wrap(p2.Col - 1)}
		case p1.Col == p2.Col:
			a = domain.Position{Row: wrap(p1.Row - 1), Col: p1.Col}
			c = domain.Position{Row: wrap(p2.Row - 1), Col: p2.Col}
		default:
			a = domain.Position{Row: p1.Row, Col: p2.Col}
			c = domain.Position{Row: p2.Row, Col: p1.Col}
		}
		for _, letter := range [2]byte{grid.At(a), grid.At(c)} {
			if letter != domain.Filler {
				b.WriteByte(letter)
			}
		}
	}
	return b.String(), nil
}

// wrap reduces i modulo the grid size into [0, GridSize).
func wrap(i int) int {
	return (i%domain.GridSize + domain.GridSize) % domain.GridSize
}
