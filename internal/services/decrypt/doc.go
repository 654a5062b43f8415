// Package decrypt wraps the Playfair protocol functions for the CLI.
//
// It adds structured logging around each run and exposes grid inspection
// (layout and fingerprint) through domain.DecryptService. Keys and
// plaintext are never logged.
package decrypt
