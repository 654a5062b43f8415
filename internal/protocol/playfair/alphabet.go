package playfair

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidCharacter is returned when input holds a rune that is neither a
// Latin letter nor whitespace.
var ErrInvalidCharacter = errors.New("invalid character")

// Sanitize uppercases s, folds J into I and removes whitespace.
func Sanitize(s string) (string, error) {
	b, err := sanitize(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func sanitize(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, r, i)
		}
		if r == 'J' {
			r = 'I'
		}
		out = append(out, byte(r))
	}
	return out, nil
}
