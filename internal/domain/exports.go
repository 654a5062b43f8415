package domain

import (
	interfaces "playfair/internal/domain/interfaces"
	types "playfair/internal/domain/types"
)

// Alphabet is the 25-letter Playfair alphabet (J merged into I).
const Alphabet = types.Alphabet

// Filler pads odd-length messages and splits doubled letters.
const Filler = types.Filler

// AltFiller replaces Filler when the letter being padded is Filler itself.
const AltFiller = types.AltFiller

// GridSize is the number of rows and columns in a key grid.
const GridSize = types.GridSize

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint   = types.Fingerprint
	Position      = types.Position
	Grid          = types.Grid
	CoordinateMap = types.CoordinateMap
	Digram        = types.Digram
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DecryptService = interfaces.DecryptService
)
