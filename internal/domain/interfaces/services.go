package interfaces

import domaintypes "playfair/internal/domain/types"

// DecryptService decrypts Playfair ciphertext and inspects key grids.
type DecryptService interface {
	Decrypt(key, ciphertext string) (string, error)
	Grid(key string) (domaintypes.Grid, error)
	Fingerprint(key string) (domaintypes.Fingerprint, error)
}
