// Package view provides stateless view components for the TUI. Each view
// renders a string from an explicit state struct so it can be tested
// without a running program.
package view
