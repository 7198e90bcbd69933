// Package editor provides a Bubble Tea component that hosts the indentation
// engine: a buffer-backed text view where Tab re-indents the current line,
// a repeated Tab toggles the run-on strategy override, and Enter indents
// the fresh line.
//
// The package is responsible for input handling, viewport behavior, and
// rendering; all indentation decisions live in the indent package.
package editor
