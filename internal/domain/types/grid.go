package types

import "strings"

// Position is a (row, column) cell address inside a Grid.
type Position struct {
	Row int
	Col int
}

// Grid is a 5x5 key square holding every Alphabet letter exactly once.
type Grid [GridSize][GridSize]byte

// At returns the letter stored at p.
func (g Grid) At(p Position) byte { return g[p.Row][p.Col] }

// Row returns row i as a string of five letters.
func (g Grid) Row(i int) string { return string(g[i][:]) }

// Letters returns the grid contents in row-major order.
func (g Grid) Letters() string {
	var b strings.Builder
	b.Grow(GridSize * GridSize)
	for i := range g {
		b.Write(g[i][:])
	}
	return b.String()
}

// String renders the grid one row per line with letters separated by spaces.
func (g Grid) String() string {
	var b strings.Builder
	for i := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, c := range g[i] {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CoordinateMap is the inverse of a Grid: letter to cell position.
// It is built in the same pass as its Grid and never modified afterwards.
type CoordinateMap map[byte]Position

// Lookup returns the position of letter and whether it is present.
func (m CoordinateMap) Lookup(letter byte) (Position, bool) {
	p, ok := m[letter]
	return p, ok
}
