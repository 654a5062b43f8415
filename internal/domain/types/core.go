package types

// Alphabet is the ordered Playfair alphabet. J is folded into I.
const Alphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

const (
	// Filler is inserted between doubled letters and after a trailing odd letter.
	Filler byte = 'X'
	// AltFiller is used when the letter that needs a partner is Filler.
	AltFiller byte = 'Q'
	// GridSize is the side length of the key grid.
	GridSize = 5
)

// Fingerprint is a short identifier for key grids presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
