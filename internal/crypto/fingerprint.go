package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"playfair/internal/domain"
)

// fingerprintBytes is the truncated digest length (20 hex chars).
const fingerprintBytes = 10

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes.
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:fingerprintBytes])
}

// GridFingerprint returns the fingerprint of g's row-major letters.
func GridFingerprint(g domain.Grid) domain.Fingerprint {
	return domain.Fingerprint(Fingerprint([]byte(g.Letters())))
}
