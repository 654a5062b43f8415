// Package crypto exposes the small set of primitives the Playfair tools need.
//
// Contents
//
//   - Short grid fingerprints for display and comparison (Fingerprint,
//     GridFingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Fingerprints are derived from the grid, not the raw key, so two keys that
// sanitize to the same string share a fingerprint. Callers should treat key
// material as sensitive and rely on Wipe when practical.
package crypto
