package syntax

import "testing"

func kindsOf(s *Scanner) []Kind {
	out := make([]Kind, 0, s.TokenCount())
	for i := 0; i < s.TokenCount(); i++ {
		t, _ := s.TokenByIndex(i)
		out = append(out, t.Kind)
	}
	return out
}

func TestScanner_TokenKinds(t *testing.T) {
	s := NewScanner("val x = foo(1, 2)")
	want := []Kind{
		KindKeyword, KindIdent, KindEq, KindIdent,
		KindOpenParen, KindNumber, KindComma, KindNumber, KindCloseParen,
	}
	got := kindsOf(s)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: kind=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanner_KeywordWords(t *testing.T) {
	s := NewScanner("case class Foo extends Bar with Baz")
	words := []Word{WordCase, WordClass, WordNone, WordExtends, WordNone, WordWith, WordNone}
	if s.TokenCount() != len(words) {
		t.Fatalf("expected %d tokens, got %d", len(words), s.TokenCount())
	}
	for i, w := range words {
		tok, _ := s.TokenByIndex(i)
		if tok.Word != w {
			t.Fatalf("token %d: word=%v, want %v", i, tok.Word, w)
		}
	}
}

func TestScanner_ReservedOperators(t *testing.T) {
	cases := []struct {
		text string
		kind Kind
	}{
		{"=", KindEq},
		{"=>", KindArrow},
		{"⇒", KindArrow},
		{"<-", KindLArrow},
		{"←", KindLArrow},
		{":", KindColon},
		{"#", KindHash},
		{"@", KindAt},
		{"+", KindOperator},
		{"==", KindOperator},
		{"=>>", KindOperator},
		{"::", KindOperator},
	}
	for _, c := range cases {
		s := NewScanner("a " + c.text + " b")
		tok, ok := s.TokenByIndex(1)
		if !ok {
			t.Fatalf("%q: expected 3 tokens, got %d", c.text, s.TokenCount())
		}
		if tok.Kind != c.kind {
			t.Fatalf("%q: kind=%v, want %v", c.text, tok.Kind, c.kind)
		}
	}
}

func TestScanner_LineComment(t *testing.T) {
	s := NewScanner("val x = 1 // trailing\nval y = 2")
	off := len([]rune("val x = 1 /"))
	if got := s.ClassAt(off); got != ClassComment {
		t.Fatalf("class at comment=%v, want ClassComment", got)
	}
	// The comment text produces no tokens.
	if s.TokenCount() != 8 {
		t.Fatalf("expected 8 tokens, got %d", s.TokenCount())
	}
}

func TestScanner_NestedBlockComment(t *testing.T) {
	s := NewScanner("a /* outer /* inner */ still */ b")
	inner := len([]rune("a /* outer /* in"))
	after := len([]rune("a /* outer /* inner */ sti"))
	if got := s.ClassAt(inner); got != ClassComment {
		t.Fatalf("class inside nested comment=%v, want ClassComment", got)
	}
	if got := s.ClassAt(after); got != ClassComment {
		t.Fatalf("class after inner close=%v, want ClassComment", got)
	}
	if s.TokenCount() != 2 {
		t.Fatalf("expected 2 tokens, got %d", s.TokenCount())
	}
}

func TestScanner_OperatorRunStopsAtComment(t *testing.T) {
	s := NewScanner("a +// note")
	if s.TokenCount() != 2 {
		t.Fatalf("expected 2 tokens, got %d", s.TokenCount())
	}
	tok, _ := s.TokenByIndex(1)
	if tok.Kind != KindOperator || tok.End-tok.Start != 1 {
		t.Fatalf("operator token=%+v, want single-rune KindOperator", tok)
	}
	if got := s.ClassAt(len([]rune("a +/"))); got != ClassComment {
		t.Fatalf("class=%v, want ClassComment", got)
	}
}

func TestScanner_StringLiteral(t *testing.T) {
	s := NewScanner(`val s = "a\"b" + x`)
	inString := len([]rune(`val s = "a`))
	if got := s.ClassAt(inString); got != ClassString {
		t.Fatalf("class in string=%v, want ClassString", got)
	}
	if s.SuppressedAt(inString) {
		t.Fatalf("single-line string must not suppress line breaks")
	}
	// val s = "a\"b" + x
	if s.TokenCount() != 6 {
		t.Fatalf("expected 6 tokens, got %d", s.TokenCount())
	}
	tok, _ := s.TokenByIndex(3)
	if tok.Kind != KindStringLit {
		t.Fatalf("literal kind=%v, want KindStringLit", tok.Kind)
	}
}

func TestScanner_TripleQuotedSuppresses(t *testing.T) {
	s := NewScanner("val s = \"\"\"one\ntwo\"\"\"\nval t = 1")
	inside := len([]rune("val s = \"\"\"one\nt"))
	if got := s.ClassAt(inside); got != ClassString {
		t.Fatalf("class=%v, want ClassString", got)
	}
	if !s.SuppressedAt(inside) {
		t.Fatalf("expected line breaks suppressed inside triple-quoted literal")
	}
	after := len([]rune("val s = \"\"\"one\ntwo\"\"\"\nval"))
	if s.SuppressedAt(after) {
		t.Fatalf("suppression must end with the literal")
	}
	// The literal is one token spanning both lines.
	tok, _ := s.TokenByIndex(3)
	if tok.Kind != KindStringLit {
		t.Fatalf("literal kind=%v, want KindStringLit", tok.Kind)
	}
	if end := len([]rune("val s = \"\"\"one\ntwo\"\"\"")); tok.End != end {
		t.Fatalf("literal End=%d, want %d", tok.End, end)
	}
}

func TestScanner_UnclosedTripleQuoteSuppressesToEnd(t *testing.T) {
	s := NewScanner("val s = \"\"\"open\nmore")
	last := s.Len() - 1
	if got := s.ClassAt(last); got != ClassString {
		t.Fatalf("class=%v, want ClassString", got)
	}
	if !s.SuppressedAt(last) {
		t.Fatalf("unclosed literal must suppress to end of buffer")
	}
	tok, _ := s.TokenByIndex(3)
	if tok.Kind != KindStringLit || tok.End != s.Len() {
		t.Fatalf("literal token=%+v, want KindStringLit to end of buffer", tok)
	}
}

func TestScanner_CharAndSymbolLiterals(t *testing.T) {
	s := NewScanner(`'a' '\n' 'sym`)
	k0, _ := s.TokenByIndex(0)
	k1, _ := s.TokenByIndex(1)
	k2, _ := s.TokenByIndex(2)
	if k0.Kind != KindCharLit || k1.Kind != KindCharLit {
		t.Fatalf("char literal kinds=%v %v, want KindCharLit", k0.Kind, k1.Kind)
	}
	if k2.Kind != KindIdent {
		t.Fatalf("symbol literal kind=%v, want KindIdent", k2.Kind)
	}
}

func TestScanner_BackquotedIdent(t *testing.T) {
	s := NewScanner("val `type` = 1")
	tok, _ := s.TokenByIndex(1)
	if tok.Kind != KindIdent {
		t.Fatalf("backquoted ident kind=%v, want KindIdent", tok.Kind)
	}
	if got := string([]rune("val `type` = 1")[tok.Start:tok.End]); got != "`type`" {
		t.Fatalf("token text=%q, want backquoted form", got)
	}
}

func TestScanner_Numbers(t *testing.T) {
	for _, text := range []string{"12", "1.5", "0x1F", "3e8", "10L"} {
		s := NewScanner(text)
		if s.TokenCount() != 1 {
			t.Fatalf("%q: expected 1 token, got %d", text, s.TokenCount())
		}
		tok, _ := s.TokenByIndex(0)
		if tok.Kind != KindNumber {
			t.Fatalf("%q: kind=%v, want KindNumber", text, tok.Kind)
		}
	}
}

func TestScanner_Rune(t *testing.T) {
	s := NewScanner("ab")
	if got := s.Rune(1); got != 'b' {
		t.Fatalf("Rune(1)=%q, want 'b'", got)
	}
	if got := s.Rune(-1); got != 0 {
		t.Fatalf("Rune(-1)=%q, want 0", got)
	}
	if got := s.Rune(2); got != 0 {
		t.Fatalf("Rune(2)=%q, want 0", got)
	}
}
