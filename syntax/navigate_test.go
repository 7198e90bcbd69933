package syntax

import "testing"

func tokenAtText(t *testing.T, s *Scanner, src, text string) Token {
	t.Helper()
	runes := []rune(src)
	for i := 0; i < s.TokenCount(); i++ {
		tok, _ := s.TokenByIndex(i)
		if string(runes[tok.Start:tok.End]) == text {
			return tok
		}
	}
	t.Fatalf("no token %q in %q", text, src)
	return Token{}
}

func TestNavigate_Matching(t *testing.T) {
	src := "def f(a: Int) = { a }"
	s := NewScanner(src)
	open := tokenAtText(t, s, src, "(")
	closeTok, ok := s.Matching(open)
	if !ok || closeTok.Kind != KindCloseParen {
		t.Fatalf("matching of ( = %+v ok=%v, want close paren", closeTok, ok)
	}
	back, ok := s.Matching(closeTok)
	if !ok || back.Index != open.Index {
		t.Fatalf("matching of ) = %+v, want the ( back", back)
	}
}

func TestNavigate_UnmatchedCloser(t *testing.T) {
	src := "a ) b"
	s := NewScanner(src)
	closer := tokenAtText(t, s, src, ")")
	if _, ok := s.Matching(closer); ok {
		t.Fatalf("unmatched closer must not pair")
	}
	if _, ok := s.Enclosing(closer); ok {
		t.Fatalf("unmatched closer must not be enclosed")
	}
}

func TestNavigate_MismatchedPairDoesNotMatch(t *testing.T) {
	src := "( a ]"
	s := NewScanner(src)
	open := tokenAtText(t, s, src, "(")
	if _, ok := s.Matching(open); ok {
		t.Fatalf("( must not match ]")
	}
}

func TestNavigate_EnclosingBracket(t *testing.T) {
	src := "f({ g(x) })"
	s := NewScanner(src)
	runes := []rune(src)
	xOff := 0
	for i, r := range runes {
		if r == 'x' {
			xOff = i
		}
	}
	open, ok := s.EnclosingBracket(xOff)
	if !ok || open.Kind != KindOpenParen {
		t.Fatalf("enclosing of x = %+v ok=%v, want g's paren", open, ok)
	}
	outer, ok := s.Enclosing(open)
	if !ok || outer.Kind != KindOpenBrace {
		t.Fatalf("enclosing of g's paren = %+v, want the brace", outer)
	}
	if got := s.Depth(xOff); got != 3 {
		t.Fatalf("Depth(x)=%d, want 3", got)
	}
}

func TestNavigate_EnclosingBracketUnclosed(t *testing.T) {
	src := "def f = {\n  val a = 1\n"
	s := NewScanner(src)
	open, ok := s.EnclosingBracket(s.Len())
	if !ok || open.Kind != KindOpenBrace {
		t.Fatalf("enclosing at eob = %+v ok=%v, want the unclosed brace", open, ok)
	}
}

func TestNavigate_EnclosingBracketAfterClose(t *testing.T) {
	src := "f(a) + b"
	s := NewScanner(src)
	runes := []rune(src)
	bOff := 0
	for i, r := range runes {
		if r == 'b' {
			bOff = i
		}
	}
	if _, ok := s.EnclosingBracket(bOff); ok {
		t.Fatalf("b lies outside the closed group")
	}
}

func TestNavigate_FirstOnLine(t *testing.T) {
	s := NewScanner("val a = 1\n  // comment only\n  b")
	if _, ok := s.FirstOnLine(1); ok {
		t.Fatalf("comment-only line must have no first token")
	}
	tok, ok := s.FirstOnLine(2)
	if !ok || tok.Kind != KindIdent {
		t.Fatalf("first on line 2 = %+v ok=%v, want ident b", tok, ok)
	}
	if !s.IsFirstOnLine(tok) {
		t.Fatalf("b must be first on its line")
	}
}

func TestNavigate_TokenBefore(t *testing.T) {
	src := "a = // note\nb"
	s := NewScanner(src)
	bStart := len([]rune("a = // note\n"))
	prev, ok := s.TokenBefore(bStart)
	if !ok || prev.Kind != KindEq {
		t.Fatalf("token before b = %+v ok=%v, want the = (comments skipped)", prev, ok)
	}
}

func TestNavigate_SkipGroupsForward(t *testing.T) {
	src := "def f(a: Int)(b: Int) = a"
	s := NewScanner(src)
	open := tokenAtText(t, s, src, "(")
	after, ok := s.SkipGroupsForward(open)
	if !ok || after.Kind != KindEq {
		t.Fatalf("after groups = %+v ok=%v, want the =", after, ok)
	}
}

func TestNavigate_SkipGroupsBackward(t *testing.T) {
	src := "f(a)(b)[c] = x"
	s := NewScanner(src)
	runes := []rune(src)
	lastClose := Token{}
	for i := 0; i < s.TokenCount(); i++ {
		tok, _ := s.TokenByIndex(i)
		if tok.Kind == KindCloseBracket {
			lastClose = tok
		}
	}
	open, ok := s.SkipGroupsBackward(lastClose)
	if !ok {
		t.Fatalf("expected chain start")
	}
	if string(runes[open.Start:open.End]) != "(" || open.Start != 1 {
		t.Fatalf("chain start = %+v, want the first ( at offset 1", open)
	}
}

func TestNavigate_TokensBetween(t *testing.T) {
	s := NewScanner("a b c d")
	toks := s.TokensBetween(2, 6)
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens in [2,6), got %d", len(toks))
	}
}

func TestNavigate_BeginsCaseClause(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"case x => y", true},
		{"case _ => y", true},
		{"case class Foo(a: Int)", false},
		{"case object Bar", false},
		{"val x = 1", false},
	}
	for _, c := range cases {
		s := NewScanner(c.src)
		if got := s.BeginsCaseClause(0); got != c.want {
			t.Fatalf("%q: BeginsCaseClause=%v, want %v", c.src, got, c.want)
		}
	}
	s := NewScanner("case x => y")
	if s.BeginsCaseClause(1) {
		t.Fatalf("offset inside the keyword must not begin a clause")
	}
}
