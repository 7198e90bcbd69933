package syntax

import (
	"sort"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// LineCount returns the number of lines in the snapshot (at least 1).
func (s *Scanner) LineCount() int { return len(s.lines) }

// LineAt returns the index of the line containing off.
func (s *Scanner) LineAt(off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(s.src) {
		off = len(s.src)
	}
	return sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > off }) - 1
}

// LineStart returns the offset of the first rune of line.
func (s *Scanner) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	if line >= len(s.lines) {
		return len(s.src)
	}
	return s.lines[line]
}

// LineEnd returns the offset just past the last rune of line, excluding the
// line break.
func (s *Scanner) LineEnd(line int) int {
	if line < 0 {
		return 0
	}
	if line+1 < len(s.lines) {
		return s.lines[line+1] - 1
	}
	return len(s.src)
}

// Offset converts a (line, col) rune position to a flat offset, clamped to
// the line's bounds.
func (s *Scanner) Offset(line, col int) int {
	start := s.LineStart(line)
	end := s.LineEnd(line)
	if col < 0 {
		col = 0
	}
	if start+col > end {
		return end
	}
	return start + col
}

// Column returns the display column of off within its line. Wide runes count
// per their terminal cell width; tabs count as one cell.
func (s *Scanner) Column(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(s.src) {
		off = len(s.src)
	}
	col := 0
	for i := s.LineStart(s.LineAt(off)); i < off; i++ {
		col += cellWidth(s.src[i])
	}
	return col
}

// IndentWidth returns the display width of the line's leading whitespace.
func (s *Scanner) IndentWidth(line int) int {
	start := s.LineStart(line)
	end := s.LineEnd(line)
	col := 0
	for i := start; i < end; i++ {
		r := s.src[i]
		if r != ' ' && r != '\t' {
			break
		}
		col += cellWidth(r)
	}
	return col
}

// CodeStart returns the offset of the first code token on line, skipping
// whitespace and comments. ok is false for blank and comment-only lines.
func (s *Scanner) CodeStart(line int) (off int, ok bool) {
	t, ok := s.FirstOnLine(line)
	if !ok {
		return 0, false
	}
	return t.Start, true
}

// IndentWidthAt returns the indentation width of the line containing off.
func (s *Scanner) IndentWidthAt(off int) int {
	return s.IndentWidth(s.LineAt(off))
}

// BlankLineBetween reports whether any line strictly between the lines of a
// and b is entirely whitespace.
func (s *Scanner) BlankLineBetween(a, b int) bool {
	la, lb := s.LineAt(a), s.LineAt(b)
	for line := la + 1; line < lb; line++ {
		blank := true
		for i := s.LineStart(line); i < s.LineEnd(line); i++ {
			if !unicode.IsSpace(s.src[i]) {
				blank = false
				break
			}
		}
		if blank {
			return true
		}
	}
	return false
}

func cellWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 0
}
