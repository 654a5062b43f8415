package types

// Digram is an ordered pair of letters transformed together.
type Digram struct {
	First  byte
	Second byte
}

// String returns the two letters as a string, e.g. "LX".
func (d Digram) String() string { return string([]byte{d.First, d.Second}) }
