package indent

import "testing"

func TestStrategy_StringRoundTrip(t *testing.T) {
	for _, s := range allStrategies {
		got, err := ParseStrategy(s.String())
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", s.String(), err)
		}
		if got != s {
			t.Fatalf("ParseStrategy(%q)=%v, want %v", s.String(), got, s)
		}
	}
}

func TestStrategy_ParseUnknown(t *testing.T) {
	if _, err := ParseStrategy("aggressive"); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestSession_RepeatToggles(t *testing.T) {
	var s Session

	if got := s.Begin(CommandIndentLine, Eager); got != Eager {
		t.Fatalf("first: got=%v, want eager", got)
	}
	if got := s.Begin(CommandIndentLine, Eager); got != Reluctant {
		t.Fatalf("repeat: got=%v, want reluctant override", got)
	}
	if _, ok := s.Override(); !ok {
		t.Fatalf("expected override set")
	}
	if got := s.Begin(CommandIndentLine, Eager); got != Eager {
		t.Fatalf("second repeat: got=%v, want override cleared", got)
	}
	if _, ok := s.Override(); ok {
		t.Fatalf("expected override cleared")
	}
}

func TestSession_OppositeExtremes(t *testing.T) {
	cases := []struct {
		def  Strategy
		want Strategy
	}{
		{Eager, Reluctant},
		{Operator, Reluctant},
		{Reluctant, Eager},
		{KeywordsOnly, Eager},
	}
	for _, c := range cases {
		var s Session
		s.Begin(CommandIndentLine, c.def)
		if got := s.Begin(CommandIndentLine, c.def); got != c.want {
			t.Fatalf("default %v: override=%v, want %v", c.def, got, c.want)
		}
	}
}

func TestSession_DifferentCommandClears(t *testing.T) {
	var s Session
	s.Begin(CommandIndentLine, Eager)
	s.Begin(CommandIndentLine, Eager)
	if got := s.Begin(CommandOther, Eager); got != Eager {
		t.Fatalf("got=%v, want default after a different command", got)
	}
	if _, ok := s.Override(); ok {
		t.Fatalf("expected override cleared by a different command")
	}
}

func TestSession_Reset(t *testing.T) {
	var s Session
	s.Begin(CommandIndentLine, Eager)
	s.Begin(CommandIndentLine, Eager)
	s.Reset()
	if _, ok := s.Override(); ok {
		t.Fatalf("expected no override after reset")
	}
	if got := s.Begin(CommandIndentLine, Eager); got != Eager {
		t.Fatalf("got=%v, want eager (no repeat after reset)", got)
	}
}
