package indent

import "github.com/iw2rmb/scalindent/syntax"

// statementStarters are keywords that open a new statement; a line starting
// with one never continues the previous line.
var statementStarters = map[syntax.Word]bool{
	syntax.WordAbstract:  true,
	syntax.WordCatch:     true,
	syntax.WordCase:      true,
	syntax.WordClass:     true,
	syntax.WordDef:       true,
	syntax.WordDo:        true,
	syntax.WordElse:      true,
	syntax.WordFinal:     true,
	syntax.WordFinally:   true,
	syntax.WordFor:       true,
	syntax.WordIf:        true,
	syntax.WordImplicit:  true,
	syntax.WordImport:    true,
	syntax.WordLazy:      true,
	syntax.WordNew:       true,
	syntax.WordObject:    true,
	syntax.WordOverride:  true,
	syntax.WordPackage:   true,
	syntax.WordPrivate:   true,
	syntax.WordProtected: true,
	syntax.WordReturn:    true,
	syntax.WordSealed:    true,
	syntax.WordThrow:     true,
	syntax.WordTrait:     true,
	syntax.WordTry:       true,
	syntax.WordType:      true,
	syntax.WordVal:       true,
	syntax.WordVar:       true,
	syntax.WordWhile:     true,
	syntax.WordYield:     true,
}

// mustNotTerminate are keywords that cannot start a fresh statement; a line
// opening with one always continues the previous line.
var mustNotTerminate = map[syntax.Word]bool{
	syntax.WordExtends: true,
	syntax.WordForSome: true,
	syntax.WordMatch:   true,
	syntax.WordWith:    true,
}

// isRunOn reports whether the line whose code starts at lineStart continues
// the previous statement. It is an ordered decision list; the first matching
// rule wins.
func (cx *context) isRunOn(lineStart int, strat Strategy) bool {
	sc := cx.sc
	first, hasFirst := cx.firstTokenFrom(lineStart)

	// A closing bracket aligns with its block, never with a statement.
	if hasFirst && syntax.IsClose(first.Kind) {
		return false
	}

	// Inside a multi-line literal the break is not a statement boundary.
	// This is decided before looking at the preceding token, which may lie
	// on the far side of the literal.
	if sc.SuppressedAt(sc.LineStart(sc.LineAt(lineStart))) && strat != KeywordsOnly {
		return true
	}

	prev, hasPrev := sc.TokenBefore(lineStart)
	if !hasPrev {
		return false
	}
	if sc.BlankLineBetween(prev.End, lineStart) {
		return false
	}
	switch prev.Kind {
	case syntax.KindComma, syntax.KindSemi, syntax.KindArrow, syntax.KindEq,
		syntax.KindOpenParen, syntax.KindOpenBracket, syntax.KindOpenBrace:
		// must-terminate set
		return false
	}

	if hasFirst && first.Kind == syntax.KindKeyword && statementStarters[first.Word] {
		return false
	}

	if cx.beginsBody(lineStart) {
		return false
	}

	if strat == Eager {
		return true
	}

	if hasFirst {
		if first.Kind == syntax.KindKeyword && mustNotTerminate[first.Word] {
			return true
		}
		switch first.Kind {
		case syntax.KindColon, syntax.KindHash, syntax.KindAt, syntax.KindLArrow:
			return true
		}
	}

	if cx.mustBeContinued(prev) {
		return true
	}

	if hasFirst && first.Kind == syntax.KindOpenBracket {
		return true
	}

	// A leading parenthesis chain continued by `=`, `{`, or a further run-on
	// is a curried parameter group.
	if hasFirst && first.Kind == syntax.KindOpenParen {
		if after, ok := sc.SkipGroupsForward(first); ok {
			if after.Kind == syntax.KindEq || after.Kind == syntax.KindOpenBrace {
				return true
			}
			if cx.fuel > 0 {
				cx.fuel--
				cont := cx.isRunOn(after.Start, strat)
				cx.fuel++
				if cont {
					return true
				}
			}
		}
	}

	if strat == KeywordsOnly {
		return false
	}

	if hasFirst && first.Kind == syntax.KindDot {
		return true
	}
	if prev.Kind == syntax.KindDot {
		return true
	}

	if strat == Reluctant {
		return false
	}

	if hasFirst && first.Kind == syntax.KindOperator {
		return true
	}
	if prev.Kind == syntax.KindOperator {
		return true
	}

	return false
}

// mustBeContinued reports whether the trailing token of the previous line
// forces a continuation: a reserved operator, or a colon ending its line.
func (cx *context) mustBeContinued(prev syntax.Token) bool {
	switch prev.Kind {
	case syntax.KindLArrow, syntax.KindHash, syntax.KindAt:
		return true
	case syntax.KindColon:
		if nxt, ok := cx.sc.Next(prev); ok {
			return cx.sc.LineAt(nxt.Start) > cx.sc.LineAt(prev.Start)
		}
		return true
	case syntax.KindKeyword:
		switch prev.Word {
		case syntax.WordWith, syntax.WordExtends, syntax.WordForSome, syntax.WordMatch:
			return true
		}
	}
	return false
}

// bodyIntroducer returns the token that makes the line at lineStart a
// single-statement body: the `=` or `=>` directly before it, or the `if` of
// a guarded if / else if whose condition group is already closed.
func (cx *context) bodyIntroducer(lineStart int) (syntax.Token, bool) {
	prev, ok := cx.sc.TokenBefore(lineStart)
	if !ok {
		return syntax.Token{}, false
	}
	switch prev.Kind {
	case syntax.KindEq, syntax.KindArrow:
		return prev, true
	case syntax.KindCloseParen:
		open, ok := cx.sc.Matching(prev)
		if !ok {
			return syntax.Token{}, false
		}
		kw, ok := cx.sc.Prev(open)
		if ok && kw.Word == syntax.WordIf {
			return kw, true
		}
	}
	return syntax.Token{}, false
}

func (cx *context) beginsBody(lineStart int) bool {
	_, ok := cx.bodyIntroducer(lineStart)
	return ok
}

// runOnAnchor walks backward from a run-on line to the line that opens its
// statement. Each hop re-tests run-on-ness and structurally skips balanced
// groups; the walk is bounded by the enclosing bracket and buffer start.
func (cx *context) runOnAnchor(lineStart int) int {
	bound := 0
	if open, ok := cx.sc.EnclosingBracket(lineStart); ok {
		bound = open.End
	}
	pos := lineStart
	for pos > bound && cx.isRunOn(pos, cx.strat) {
		prev := cx.statementStartBefore(pos, bound)
		if prev >= pos || prev < bound {
			break
		}
		pos = prev
	}
	return pos
}

// statementStartBefore returns the code start of the logical line preceding
// pos, jumping over any balanced group that ends directly before it.
func (cx *context) statementStartBefore(pos, bound int) int {
	prev, ok := cx.sc.TokenBefore(pos)
	if !ok || prev.End <= bound {
		return pos
	}
	t := prev
	if syntax.IsClose(t.Kind) {
		if open, ok := cx.sc.SkipGroupsBackward(t); ok {
			t = open
		}
	}
	cs, ok := cx.sc.CodeStart(cx.sc.LineAt(t.Start))
	if !ok || cs < bound {
		return pos
	}
	return cs
}

// statementAnchor returns the run-on anchor for the line containing off.
func (cx *context) statementAnchor(off int) int {
	cs, ok := cx.sc.CodeStart(cx.sc.LineAt(off))
	if !ok {
		return off
	}
	return cx.runOnAnchor(cs)
}
