// Package buffer implements the pure, rune-accurate document model the
// indentation host edits.
//
// Coordinates are 0-based (Row, Col) in runes. The only structured mutation
// beyond plain editing is SetLineIndent, which atomically replaces one
// line's leading whitespace and preserves the cursor's offset into the line
// content.
package buffer
