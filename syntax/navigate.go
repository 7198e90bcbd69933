package syntax

import "sort"

// TokenCount returns the number of code tokens in the snapshot.
func (s *Scanner) TokenCount() int { return len(s.tokens) }

// TokenByIndex returns the i-th token of the stream.
func (s *Scanner) TokenByIndex(i int) (Token, bool) {
	if i < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

// tokenIndexBefore returns the index of the last token ending at or before
// off, or -1.
func (s *Scanner) tokenIndexBefore(off int) int {
	return sort.Search(len(s.tokens), func(i int) bool { return s.tokens[i].End > off }) - 1
}

// TokenBefore returns the last token ending at or before off, skipping
// comments and whitespace (they are never tokens).
func (s *Scanner) TokenBefore(off int) (Token, bool) {
	i := s.tokenIndexBefore(off)
	if i < 0 {
		return Token{}, false
	}
	return s.tokens[i], true
}

// TokenAt returns the first token starting at or after off.
func (s *Scanner) TokenAt(off int) (Token, bool) {
	i := sort.Search(len(s.tokens), func(i int) bool { return s.tokens[i].Start >= off })
	if i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

// FirstOnLine returns the first token that starts on the given line.
func (s *Scanner) FirstOnLine(line int) (Token, bool) {
	t, ok := s.TokenAt(s.LineStart(line))
	if !ok || t.Start > s.LineEnd(line) {
		return Token{}, false
	}
	return t, true
}

// IsFirstOnLine reports whether t is the first token on its line.
func (s *Scanner) IsFirstOnLine(t Token) bool {
	first, ok := s.FirstOnLine(s.LineAt(t.Start))
	return ok && first.Index == t.Index
}

// Prev returns the token before t in the stream.
func (s *Scanner) Prev(t Token) (Token, bool) {
	return s.TokenByIndex(t.Index - 1)
}

// Next returns the token after t in the stream.
func (s *Scanner) Next(t Token) (Token, bool) {
	return s.TokenByIndex(t.Index + 1)
}

// Matching returns the bracket paired with t, in either direction.
func (s *Scanner) Matching(t Token) (Token, bool) {
	if t.Index < 0 || t.Index >= len(s.match) || s.match[t.Index] < 0 {
		return Token{}, false
	}
	return s.tokens[s.match[t.Index]], true
}

// Enclosing returns the innermost open bracket enclosing t.
func (s *Scanner) Enclosing(t Token) (Token, bool) {
	if t.Index < 0 || t.Index >= len(s.encl) || s.encl[t.Index] < 0 {
		return Token{}, false
	}
	return s.tokens[s.encl[t.Index]], true
}

// EnclosingBracket returns the innermost open bracket whose group contains
// off. Unclosed groups extend to the end of the buffer.
func (s *Scanner) EnclosingBracket(off int) (Token, bool) {
	i := s.tokenIndexBefore(off)
	for i >= 0 {
		t := s.tokens[i]
		if IsOpen(t.Kind) && t.End <= off {
			m := s.match[i]
			if m < 0 || s.tokens[m].Start >= off {
				return t, true
			}
		}
		i = s.encl[i]
	}
	return Token{}, false
}

// Depth returns the bracket nesting depth at off.
func (s *Scanner) Depth(off int) int {
	d := 0
	t, ok := s.EnclosingBracket(off)
	for ok {
		d++
		t, ok = s.Enclosing(t)
	}
	return d
}

// TokensBetween returns the tokens fully contained in [a, b).
func (s *Scanner) TokensBetween(a, b int) []Token {
	lo := sort.Search(len(s.tokens), func(i int) bool { return s.tokens[i].Start >= a })
	hi := sort.Search(len(s.tokens), func(i int) bool { return s.tokens[i].Start >= b })
	return s.tokens[lo:hi]
}

// SkipGroupsForward skips from an open bracket across all adjacent balanced
// parameter/argument groups and returns the first token after them.
func (s *Scanner) SkipGroupsForward(t Token) (Token, bool) {
	cur := t
	for IsOpen(cur.Kind) {
		m, ok := s.Matching(cur)
		if !ok {
			return Token{}, false
		}
		nxt, ok := s.Next(m)
		if !ok {
			return Token{}, false
		}
		if nxt.Kind == KindOpenParen || nxt.Kind == KindOpenBracket {
			cur = nxt
			continue
		}
		return nxt, true
	}
	return Token{}, false
}

// SkipGroupsBackward skips from a close bracket across all directly adjacent
// groups and returns the open bracket of the first group in the chain.
func (s *Scanner) SkipGroupsBackward(t Token) (Token, bool) {
	cur := t
	for IsClose(cur.Kind) {
		open, ok := s.Matching(cur)
		if !ok {
			return Token{}, false
		}
		prev, ok := s.Prev(open)
		if ok && (prev.Kind == KindCloseParen || prev.Kind == KindCloseBracket) {
			cur = prev
			continue
		}
		return open, true
	}
	return Token{}, false
}

// BeginsCaseClause reports whether the token at off starts a pattern-match
// clause: a `case` not introducing a class or object definition.
func (s *Scanner) BeginsCaseClause(off int) bool {
	t, ok := s.TokenAt(off)
	if !ok || t.Start != off || t.Word != WordCase {
		return false
	}
	nxt, ok := s.Next(t)
	if ok && (nxt.Word == WordClass || nxt.Word == WordObject) {
		return false
	}
	return true
}
