// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (grid, coordinates, digrams) and contracts (interfaces) only.
package domain
