package buffer

import "testing"

func TestBuffer_TextRoundTrip(t *testing.T) {
	for _, text := range []string{"", "a", "a\nb", "a\n\nb\n"} {
		b := New(text, Options{})
		if got := b.Text(); got != text {
			t.Fatalf("Text()=%q, want %q", got, text)
		}
	}
}

func TestBuffer_LineAccess(t *testing.T) {
	b := New("ab\ncd", Options{})
	if got := b.LineCount(); got != 2 {
		t.Fatalf("LineCount=%d, want 2", got)
	}
	if got := b.Line(1); got != "cd" {
		t.Fatalf("Line(1)=%q, want cd", got)
	}
	if got := b.Line(5); got != "" {
		t.Fatalf("Line(5)=%q, want empty", got)
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}
	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestComparePos(t *testing.T) {
	if got := ComparePos(Pos{0, 1}, Pos{1, 0}); got != -1 {
		t.Fatalf("got=%d, want -1", got)
	}
	if got := ComparePos(Pos{1, 2}, Pos{1, 1}); got != 1 {
		t.Fatalf("got=%d, want 1", got)
	}
	if got := ComparePos(Pos{1, 1}, Pos{1, 1}); got != 0 {
		t.Fatalf("got=%d, want 0", got)
	}
}
