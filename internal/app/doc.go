// Package app wires application dependencies for the CLI.
//
// It loads Config (defaults, optional YAML file, environment), builds the
// logger and the decryption service via NewWire, and exposes them through
// App for commands to use.
package app
