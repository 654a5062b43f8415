package decrypt

import (
	"fmt"

	"go.uber.org/zap"

	"playfair/internal/crypto"
	"playfair/internal/domain"
	"playfair/internal/protocol/playfair"
)

// Service decrypts Playfair ciphertext. It holds no per-run state and is
// safe for concurrent use.
type Service struct {
	log *zap.Logger
}

// New returns a decryption service logging to log. A nil logger is replaced
// with a no-op logger.
func New(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log.Named("decrypt")}
}

// Decrypt recovers the plaintext of ciphertext under key.
func (s *Service) Decrypt(key, ciphertext string) (string, error) {
	grid, coords, err := playfair.BuildGrid(key)
	if err != nil {
		s.log.Warn("rejected key", zap.Error(err))
		return "", fmt.Errorf("build grid: %w", err)
	}
	fp := crypto.GridFingerprint(grid)

	digrams, err := playfair.Segment(ciphertext)
	if err != nil {
		s.log.Warn("rejected ciphertext", zap.Stringer("grid", fp), zap.Error(err))
		return "", fmt.Errorf("segment ciphertext: %w", err)
	}
	s.log.Debug("segmented ciphertext",
		zap.Stringer("grid", fp),
		zap.Int("digrams", len(digrams)),
	)

	plaintext, err := playfair.Decode(grid, coords, digrams)
	if err != nil {
		// Grid and coordinates come from the same BuildGrid call, so a miss is a bug.
		s.log.Error("grid lookup failed", zap.Stringer("grid", fp), zap.Error(err))
		return "", fmt.Errorf("decode: %w", err)
	}
	s.log.Debug("decrypted",
		zap.Stringer("grid", fp),
		zap.Int("plaintext_len", len(plaintext)),
	)
	return plaintext, nil
}

// Grid returns the key grid derived from key.
func (s *Service) Grid(key string) (domain.Grid, error) {
	grid, _, err := playfair.BuildGrid(key)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("build grid: %w", err)
	}
	return grid, nil
}

// Fingerprint returns a short fingerprint of the grid derived from key.
func (s *Service) Fingerprint(key string) (domain.Fingerprint, error) {
	grid, err := s.Grid(key)
	if err != nil {
		return "", err
	}
	return crypto.GridFingerprint(grid), nil
}

// Compile-time assertion that Service implements domain.DecryptService.
var _ domain.DecryptService = (*Service)(nil)
