package indent

import "fmt"

// Strategy selects how aggressively the run-on classifier treats a line as a
// continuation of the previous statement. Values are ordered by
// permissiveness: every line KeywordsOnly classifies as a run-on is also a
// run-on under Reluctant, Operator, and Eager.
type Strategy uint8

const (
	KeywordsOnly Strategy = iota
	Reluctant
	Operator
	Eager
)

func (s Strategy) String() string {
	switch s {
	case KeywordsOnly:
		return "keywords-only"
	case Reluctant:
		return "reluctant"
	case Operator:
		return "operator"
	case Eager:
		return "eager"
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// ParseStrategy parses the textual form used in config files.
func ParseStrategy(text string) (Strategy, error) {
	switch text {
	case "keywords-only":
		return KeywordsOnly, nil
	case "reluctant":
		return Reluctant, nil
	case "operator":
		return Operator, nil
	case "eager":
		return Eager, nil
	}
	return Eager, fmt.Errorf("indent: unknown run-on strategy %q", text)
}

// Command identifies the editing command driving the engine. The session
// override toggles on a repeated IndentLine and clears on anything else.
type Command uint8

const (
	CommandNone Command = iota
	CommandIndentLine
	CommandRotateStrategy
	CommandOther
)

// Session holds the only state that survives across indent commands: the
// ephemeral strategy override and the identity of the last command.
type Session struct {
	override    Strategy
	hasOverride bool
	lastCmd     Command
}

// Begin records cmd and returns the effective strategy for it. Repeating
// IndentLine toggles the override between unset and the opposite extreme of
// the default; any different command clears the override.
func (s *Session) Begin(cmd Command, def Strategy) Strategy {
	repeat := cmd == s.lastCmd
	s.lastCmd = cmd

	switch {
	case cmd != CommandIndentLine:
		s.hasOverride = false
	case repeat && s.hasOverride:
		s.hasOverride = false
	case repeat:
		s.override = oppositeExtreme(def)
		s.hasOverride = true
	default:
		s.hasOverride = false
	}

	if s.hasOverride {
		return s.override
	}
	return def
}

// Override reports the current override, if set.
func (s *Session) Override() (Strategy, bool) {
	return s.override, s.hasOverride
}

// Reset clears the override and the command history.
func (s *Session) Reset() {
	*s = Session{}
}

func oppositeExtreme(def Strategy) Strategy {
	if def >= Operator {
		return Reluctant
	}
	return Eager
}

// rotate cycles the default strategy: reluctant → operator → eager →
// reluctant. KeywordsOnly rotates up into Reluctant.
func rotate(s Strategy) Strategy {
	switch s {
	case Reluctant:
		return Operator
	case Operator:
		return Eager
	case Eager:
		return Reluctant
	default:
		return Reluctant
	}
}
