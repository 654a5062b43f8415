// Package commands defines the playfair CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)        Decrypt the configured demonstration ciphertext
//   - decrypt       Decrypt ciphertext given on the command line
//   - grid          Print the 5x5 key grid for a key
//   - fingerprint   Print a short fingerprint of the key grid
//
// # Implementation
//
// The root command loads configuration and builds the app context (logger and
// decryption service) before any subcommand runs. Output goes to the
// command's writer so it can be captured in tests.
package commands
