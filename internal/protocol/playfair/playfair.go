package playfair

import "fmt"

// Decrypt recovers the plaintext of ciphertext under key.
func Decrypt(key, ciphertext string) (string, error) {
	grid, coords, err := BuildGrid(key)
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	digrams, err := Segment(ciphertext)
	if err != nil {
		return "", fmt.Errorf("ciphertext: %w", err)
	}
	return Decode(grid, coords, digrams)
}
