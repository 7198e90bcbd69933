package syntax

import (
	"unicode"
)

// Class classifies a source offset.
type Class uint8

const (
	ClassCode Class = iota
	ClassComment
	ClassString
)

// Scanner is a read-only lexical view of one buffer snapshot.
type Scanner struct {
	src   []rune
	lines []int // start offset of each line

	class    []Class
	suppress []bool // line breaks lexically suppressed (multi-line literal)

	tokens []Token
	match  []int // token index of matching bracket, -1 if none
	encl   []int // token index of innermost enclosing open bracket, -1 if none
}

// NewScanner scans text once and returns the lexical view.
func NewScanner(text string) *Scanner {
	s := &Scanner{src: []rune(text)}
	s.scanLines()
	s.scanTokens()
	return s
}

func (s *Scanner) Len() int { return len(s.src) }

// Rune returns the rune at off, or 0 out of bounds.
func (s *Scanner) Rune(off int) rune {
	if off < 0 || off >= len(s.src) {
		return 0
	}
	return s.src[off]
}

func (s *Scanner) scanLines() {
	s.lines = []int{0}
	for i, r := range s.src {
		if r == '\n' {
			s.lines = append(s.lines, i+1)
		}
	}
}

func (s *Scanner) markClass(from, to int, c Class, sup bool) {
	for i := from; i < to && i < len(s.class); i++ {
		s.class[i] = c
		s.suppress[i] = sup
	}
}

func (s *Scanner) scanTokens() {
	n := len(s.src)
	s.class = make([]Class, n)
	s.suppress = make([]bool, n)

	var stack []int
	i := 0
	for i < n {
		r := s.src[i]
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			i++

		case r == '/' && i+1 < n && s.src[i+1] == '/':
			j := i
			for j < n && s.src[j] != '\n' {
				j++
			}
			s.markClass(i, j, ClassComment, false)
			i = j

		case r == '/' && i+1 < n && s.src[i+1] == '*':
			// Block comments nest in Scala.
			depth := 1
			j := i + 2
			for j < n && depth > 0 {
				if s.src[j] == '/' && j+1 < n && s.src[j+1] == '*' {
					depth++
					j += 2
				} else if s.src[j] == '*' && j+1 < n && s.src[j+1] == '/' {
					depth--
					j += 2
				} else {
					j++
				}
			}
			s.markClass(i, j, ClassComment, false)
			i = j

		case r == '"':
			i = s.scanString(i, &stack)

		case r == '\'':
			i = s.scanQuote(i, &stack)

		case r == '`':
			j := i + 1
			for j < n && s.src[j] != '`' && s.src[j] != '\n' {
				j++
			}
			if j < n && s.src[j] == '`' {
				j++
			}
			s.addToken(KindIdent, WordNone, i, j, &stack)
			i = j

		case isIdentStart(r):
			j := i + 1
			for j < n && isIdentPart(s.src[j]) {
				j++
			}
			text := string(s.src[i:j])
			if w, ok := keywords[text]; ok {
				s.addToken(KindKeyword, w, i, j, &stack)
			} else {
				s.addToken(KindIdent, WordNone, i, j, &stack)
			}
			i = j

		case unicode.IsDigit(r):
			j := i + 1
			for j < n && (unicode.IsDigit(s.src[j]) || isIdentPart(s.src[j]) ||
				(s.src[j] == '.' && j+1 < n && unicode.IsDigit(s.src[j+1]))) {
				j++
			}
			s.addToken(KindNumber, WordNone, i, j, &stack)
			i = j

		case r == '(':
			s.addToken(KindOpenParen, WordNone, i, i+1, &stack)
			i++
		case r == ')':
			s.addToken(KindCloseParen, WordNone, i, i+1, &stack)
			i++
		case r == '[':
			s.addToken(KindOpenBracket, WordNone, i, i+1, &stack)
			i++
		case r == ']':
			s.addToken(KindCloseBracket, WordNone, i, i+1, &stack)
			i++
		case r == '{':
			s.addToken(KindOpenBrace, WordNone, i, i+1, &stack)
			i++
		case r == '}':
			s.addToken(KindCloseBrace, WordNone, i, i+1, &stack)
			i++
		case r == ',':
			s.addToken(KindComma, WordNone, i, i+1, &stack)
			i++
		case r == ';':
			s.addToken(KindSemi, WordNone, i, i+1, &stack)
			i++
		case r == '.':
			s.addToken(KindDot, WordNone, i, i+1, &stack)
			i++

		case isOperatorRune(r):
			j := i + 1
			for j < n && isOperatorRune(s.src[j]) {
				// A comment opener terminates the operator run.
				if s.src[j] == '/' && j+1 < n && (s.src[j+1] == '/' || s.src[j+1] == '*') {
					break
				}
				j++
			}
			s.addToken(operatorKind(string(s.src[i:j])), WordNone, i, j, &stack)
			i = j

		default:
			i++
		}
	}
}

// scanString consumes a string literal starting at i and returns the offset
// after it. The whole literal becomes one token so backward navigation never
// jumps over it. Triple-quoted literals span lines and suppress line breaks;
// an unclosed one suppresses to end of buffer.
func (s *Scanner) scanString(i int, stack *[]int) int {
	n := len(s.src)
	if i+2 < n && s.src[i+1] == '"' && s.src[i+2] == '"' {
		j := i + 3
		for j+2 < n {
			if s.src[j] == '"' && s.src[j+1] == '"' && s.src[j+2] == '"' {
				j += 3
				s.markClass(i, j, ClassString, true)
				s.addToken(KindStringLit, WordNone, i, j, stack)
				return j
			}
			j++
		}
		s.markClass(i, n, ClassString, true)
		s.addToken(KindStringLit, WordNone, i, n, stack)
		return n
	}
	j := i + 1
	for j < n && s.src[j] != '"' && s.src[j] != '\n' {
		if s.src[j] == '\\' && j+1 < n {
			j++
		}
		j++
	}
	if j < n && s.src[j] == '"' {
		j++
	}
	s.markClass(i, j, ClassString, false)
	s.addToken(KindStringLit, WordNone, i, j, stack)
	return j
}

// scanQuote handles char literals ('a', '\n') and symbol literals ('name).
func (s *Scanner) scanQuote(i int, stack *[]int) int {
	n := len(s.src)
	j := i + 1
	if j < n && s.src[j] == '\\' {
		j += 2
		for j < n && s.src[j] != '\'' && s.src[j] != '\n' {
			j++
		}
		if j < n && s.src[j] == '\'' {
			j++
		}
		s.addToken(KindCharLit, WordNone, i, j, stack)
		return j
	}
	if j+1 < n && s.src[j+1] == '\'' {
		s.addToken(KindCharLit, WordNone, i, j+2, stack)
		return j + 2
	}
	if j < n && isIdentStart(s.src[j]) {
		for j < n && isIdentPart(s.src[j]) {
			j++
		}
		s.addToken(KindIdent, WordNone, i, j, stack)
		return j
	}
	return j
}

func (s *Scanner) addToken(k Kind, w Word, start, end int, stack *[]int) {
	idx := len(s.tokens)
	encl := -1
	if len(*stack) > 0 {
		encl = (*stack)[len(*stack)-1]
	}

	switch {
	case IsOpen(k):
		s.match = append(s.match, -1)
		s.encl = append(s.encl, encl)
		*stack = append(*stack, idx)
	case IsClose(k):
		if len(*stack) > 0 && closes(s.tokens[(*stack)[len(*stack)-1]].Kind, k) {
			open := (*stack)[len(*stack)-1]
			*stack = (*stack)[:len(*stack)-1]
			s.match[open] = idx
			s.match = append(s.match, open)
			s.encl = append(s.encl, s.encl[open])
		} else {
			// Unmatched closer in mid-edit code: record it, pair nothing.
			s.match = append(s.match, -1)
			s.encl = append(s.encl, encl)
		}
	default:
		s.match = append(s.match, -1)
		s.encl = append(s.encl, encl)
	}

	s.tokens = append(s.tokens, Token{Kind: k, Word: w, Start: start, End: end, Index: idx})
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

// ClassAt classifies the offset as code, comment, or string.
func (s *Scanner) ClassAt(off int) Class {
	if off < 0 || off >= len(s.class) {
		return ClassCode
	}
	return s.class[off]
}

// SuppressedAt reports whether line breaks are lexically suppressed at off,
// i.e. the offset lies inside a multi-line (or unclosed) literal.
func (s *Scanner) SuppressedAt(off int) bool {
	if off < 0 || off >= len(s.suppress) {
		return false
	}
	return s.suppress[off]
}
