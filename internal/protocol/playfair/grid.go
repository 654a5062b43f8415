package playfair

import (
	"playfair/internal/crypto"
	"playfair/internal/domain"
)

// BuildGrid lays out the sanitized key row-major, skipping repeated letters,
// then fills the remaining cells with the unused Alphabet letters in order.
// The returned CoordinateMap is the exact inverse of the Grid.
func BuildGrid(key string) (domain.Grid, domain.CoordinateMap, error) {
	k, err := sanitize(key)
	if err != nil {
		return domain.Grid{}, nil, err
	}
	defer crypto.Wipe(k)

	var (
		grid     domain.Grid
		coords   = make(domain.CoordinateMap, len(domain.Alphabet))
		keyIndex int
		alphaIdx int
	)
	for row := 0; row < domain.GridSize; row++ {
		for col := 0; col < domain.GridSize; col++ {
			var letter byte
			for keyIndex < len(k) {
				c := k[keyIndex]
				keyIndex++
				if _, seen := coords[c]; !seen {
					letter = c
					break
				}
			}
			// Key exhausted: continue with the alphabet.
			for letter == 0 {
				c := domain.Alphabet[alphaIdx]
				alphaIdx++
				if _, seen := coords[c]; !seen {
					letter = c
				}
			}
			grid[row][col] = letter
			coords[letter] = domain.Position{Row: row, Col: col}
		}
	}
	return grid, coords, nil
}
