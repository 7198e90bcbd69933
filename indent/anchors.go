package indent

import "github.com/iw2rmb/scalindent/syntax"

// anchor is a resolved reference for the current line: a source position,
// its resolved column, and the column delta to add.
type anchor struct {
	pos  int
	col  int
	step int
}

// anchorColumn applies the align-anchor rule: with parameter alignment on
// the anchor keeps its own column, otherwise it snaps to its line's
// indentation.
func (cx *context) anchorColumn(pos int) int {
	if cx.opts.AlignParams {
		return cx.sc.Column(pos)
	}
	return cx.sc.IndentWidthAt(pos)
}

// eqBetween reports whether an `=` sits between a and b at a's bracket depth.
func (cx *context) eqBetween(a, b int) bool {
	da := cx.sc.Depth(a)
	for _, t := range cx.sc.TokensBetween(a, b) {
		if t.Kind == syntax.KindEq && cx.sc.Depth(t.Start) == da {
			return true
		}
	}
	return false
}

// doubleIndentToken reports whether the token at off asks for a double step:
// with, extends, forSome, or a reserved colon form.
func (cx *context) doubleIndentToken(off int) bool {
	t, ok := cx.sc.TokenAt(off)
	if !ok || t.Start != off {
		return false
	}
	if t.Kind == syntax.KindColon {
		return true
	}
	return mustNotTerminate[t.Word] && t.Word != syntax.WordMatch
}

// leadingPipes counts alternation bars opening the line, as in
// `case A\n   | B =>`.
func (cx *context) leadingPipes(lineStart int) int {
	n := 0
	for i := lineStart; i < cx.sc.Len() && cx.sc.Rune(i) == '|'; i++ {
		n++
	}
	return n
}

// resolveRunOn anchors a continuation line at the statement it continues.
func resolveRunOn(cx *context, lineStart int) (anchor, bool) {
	if !cx.isRunOn(lineStart, cx.strat) {
		return anchor{}, false
	}
	pos := cx.runOnAnchor(lineStart)
	if pos >= lineStart {
		return anchor{}, false
	}
	return anchor{pos: pos, col: cx.anchorColumn(pos), step: cx.runOnStep(lineStart, pos)}, true
}

func (cx *context) runOnStep(lineStart, anchorPos int) int {
	unit := cx.opts.Unit
	if cx.sc.BeginsCaseClause(anchorPos) {
		step := 2*unit - cx.leadingPipes(lineStart)
		if step < 0 {
			step = 0
		}
		return step
	}
	if cx.doubleIndentToken(anchorPos) || cx.doubleIndentToken(lineStart) {
		return 2 * unit
	}
	step := unit
	if cx.opts.ValueExprStep && cx.eqBetween(anchorPos, lineStart) {
		step += unit
	}
	return step
}

// resolveBlock anchors the line at the statement that opened the innermost
// enclosing bracket.
func resolveBlock(cx *context, lineStart int) (anchor, bool) {
	open, ok := cx.sc.EnclosingBracket(lineStart)
	if !ok {
		return anchor{}, false
	}
	var pos int
	if cx.sc.IsFirstOnLine(open) {
		pos = open.Start
	} else {
		pos = cx.with(KeywordsOnly).statementAnchor(open.Start)
	}
	return anchor{pos: pos, col: cx.anchorColumn(pos), step: cx.blockStep(lineStart, open, pos)}, true
}

func (cx *context) blockStep(lineStart int, open syntax.Token, anchorPos int) int {
	unit := cx.opts.Unit
	first, hasFirst := cx.firstTokenFrom(lineStart)

	lead := 0
	if cx.opts.ValueExprStep && cx.eqBetween(anchorPos, open.Start) {
		lead = unit
	}

	switch {
	case hasFirst && syntax.IsClose(first.Kind):
		// the closer re-aligns with the opening statement
		return 0
	case !hasFirst && lineStart >= cx.sc.Len():
		return unit + lead + 1
	case hasFirst && cx.sc.BeginsCaseClause(first.Start):
		return unit + lead
	case cx.insideCaseBody(lineStart, open):
		return 2*unit + lead
	default:
		return unit + lead
	}
}

// insideCaseBody reports whether lineStart sits in the body of a case clause
// already opened at the top level of the block.
func (cx *context) insideCaseBody(lineStart int, open syntax.Token) bool {
	sawCase := false
	sawArrow := false
	for _, t := range cx.sc.TokensBetween(open.End, lineStart) {
		if e, ok := cx.sc.Enclosing(t); !ok || e.Index != open.Index {
			continue
		}
		switch {
		case t.Word == syntax.WordCase && cx.sc.BeginsCaseClause(t.Start):
			sawCase, sawArrow = true, false
		case t.Kind == syntax.KindArrow && sawCase:
			sawArrow = true
		}
	}
	return sawCase && sawArrow
}

// resolveList aligns comma-separated elements under the first element.
func resolveList(cx *context, lineStart int) (anchor, bool) {
	if !cx.opts.AlignParams {
		// the block resolver supplies the step-based fallback
		return anchor{}, false
	}
	open, ok := cx.sc.EnclosingBracket(lineStart)
	if !ok {
		return anchor{}, false
	}
	first, hasFirst := cx.firstTokenFrom(lineStart)
	if !hasFirst || syntax.IsClose(first.Kind) {
		return anchor{}, false
	}
	prev, ok := cx.sc.TokenBefore(lineStart)
	if !ok || prev.Kind != syntax.KindComma {
		return anchor{}, false
	}
	if e, ok := cx.sc.Enclosing(prev); !ok || e.Index != open.Index {
		return anchor{}, false
	}
	elem, ok := cx.sc.Next(open)
	if !ok || syntax.IsClose(elem.Kind) {
		return anchor{}, false
	}
	return anchor{pos: elem.Start, col: cx.sc.Column(elem.Start)}, true
}

// resolveForEnumerators aligns for-comprehension enumerators under the first
// one. The first enumerator itself is left to the block resolver.
func resolveForEnumerators(cx *context, lineStart int) (anchor, bool) {
	if !cx.opts.AlignParams {
		return anchor{}, false
	}
	open, ok := cx.sc.EnclosingBracket(lineStart)
	if !ok {
		return anchor{}, false
	}
	kw, ok := cx.sc.Prev(open)
	if !ok || kw.Word != syntax.WordFor {
		return anchor{}, false
	}
	firstEnum, ok := cx.sc.Next(open)
	if !ok || syntax.IsClose(firstEnum.Kind) || firstEnum.Start >= lineStart {
		return anchor{}, false
	}
	first, hasFirst := cx.firstTokenFrom(lineStart)
	if hasFirst && syntax.IsClose(first.Kind) {
		return anchor{}, false
	}
	return anchor{pos: firstEnum.Start, col: cx.sc.Column(firstEnum.Start)}, true
}

var formTargets = map[syntax.Word]syntax.Word{
	syntax.WordElse:    syntax.WordIf,
	syntax.WordYield:   syntax.WordFor,
	syntax.WordCatch:   syntax.WordTry,
	syntax.WordFinally: syntax.WordTry,
}

// resolveForms aligns else/catch/finally/yield with the keyword introducing
// the construct.
func resolveForms(cx *context, lineStart int) (anchor, bool) {
	first, hasFirst := cx.firstTokenFrom(lineStart)
	if !hasFirst || first.Start != lineStart || first.Kind != syntax.KindKeyword {
		return anchor{}, false
	}
	target, isForm := formTargets[first.Word]
	if !isForm {
		return anchor{}, false
	}
	kw, ok := cx.matchingIntroducer(first, target)
	if !ok {
		return anchor{}, false
	}
	if cx.opts.AlignForms {
		return anchor{pos: kw.Start, col: cx.sc.Column(kw.Start)}, true
	}
	pos := cx.with(KeywordsOnly).statementAnchor(kw.Start)
	return anchor{pos: pos, col: cx.anchorColumn(pos), step: cx.opts.Unit}, true
}

// matchingIntroducer searches backward for the keyword that introduces the
// form, skipping balanced groups, bounded by the enclosing bracket. Nested
// if/else pairs are counted; an `else if` match resolves to its `else`.
func (cx *context) matchingIntroducer(form syntax.Token, target syntax.Word) (syntax.Token, bool) {
	bound := 0
	if open, ok := cx.sc.EnclosingBracket(form.Start); ok {
		bound = open.End
	}
	pending := 0
	t := form
	for {
		prev, ok := cx.sc.Prev(t)
		if !ok || prev.End <= bound {
			return syntax.Token{}, false
		}
		t = prev
		if syntax.IsClose(t.Kind) {
			if open, ok := cx.sc.Matching(t); ok {
				t = open
			}
			continue
		}
		switch {
		case t.Word == target && pending == 0:
			if target == syntax.WordIf {
				if p, ok := cx.sc.Prev(t); ok && p.Word == syntax.WordElse &&
					cx.sc.LineAt(p.Start) == cx.sc.LineAt(t.Start) {
					return p, true
				}
			}
			return t, true
		case t.Word == target:
			pending--
		case form.Word == syntax.WordElse && t.Word == syntax.WordElse:
			pending++
		}
	}
}

// resolveBody anchors the single-statement body following `=`, `=>`, or a
// guarded if / else if.
func resolveBody(cx *context, lineStart int) (anchor, bool) {
	// A line opening inside a multi-line literal continues the literal's
	// statement; the run-on resolver owns it.
	if cx.sc.SuppressedAt(cx.sc.LineStart(cx.sc.LineAt(lineStart))) {
		return anchor{}, false
	}
	intro, ok := cx.bodyIntroducer(lineStart)
	if !ok {
		return anchor{}, false
	}
	first, hasFirst := cx.firstTokenFrom(lineStart)
	braceNext := hasFirst && first.Kind == syntax.KindOpenBrace

	if intro.Word == syntax.WordIf {
		var pos, col int
		if cx.opts.AlignForms {
			pos = intro.Start
			col = cx.sc.Column(pos)
		} else {
			pos = cx.with(KeywordsOnly).statementAnchor(intro.Start)
			col = cx.anchorColumn(pos)
		}
		step := cx.opts.Unit
		if braceNext {
			step = 0
		}
		return anchor{pos: pos, col: col, step: step}, true
	}

	// A case clause's arrow leaves its body to the block resolver, which
	// applies the double step.
	if intro.Kind == syntax.KindArrow && cx.arrowOfCase(intro) {
		return anchor{}, false
	}

	pos := cx.with(KeywordsOnly).statementAnchor(intro.Start)
	step := cx.opts.Unit
	if braceNext {
		step = 0
	}
	return anchor{pos: pos, col: cx.anchorColumn(pos), step: step}, true
}

// arrowOfCase reports whether the arrow terminates a case clause pattern.
func (cx *context) arrowOfCase(arrow syntax.Token) bool {
	cs, ok := cx.sc.CodeStart(cx.sc.LineAt(arrow.Start))
	if !ok {
		return false
	}
	return cx.sc.BeginsCaseClause(cs)
}

// constructWords open bodies that hang off the construct keyword rather than
// a value expression.
var constructWords = map[syntax.Word]bool{
	syntax.WordClass:   true,
	syntax.WordTrait:   true,
	syntax.WordObject:  true,
	syntax.WordDef:     true,
	syntax.WordNew:     true,
	syntax.WordPackage: true,
	syntax.WordIf:      true,
	syntax.WordElse:    true,
	syntax.WordWhile:   true,
	syntax.WordFor:     true,
	syntax.WordTry:     true,
	syntax.WordDo:      true,
}

var modifierWords = map[syntax.Word]bool{
	syntax.WordAbstract:  true,
	syntax.WordCase:      true,
	syntax.WordFinal:     true,
	syntax.WordImplicit:  true,
	syntax.WordLazy:      true,
	syntax.WordOverride:  true,
	syntax.WordPrivate:   true,
	syntax.WordProtected: true,
	syntax.WordSealed:    true,
}

// resolveOpenParen handles lines that start with an opening bracket.
func resolveOpenParen(cx *context, lineStart int) (anchor, bool) {
	first, hasFirst := cx.firstTokenFrom(lineStart)
	if !hasFirst || first.Start != lineStart || !syntax.IsOpen(first.Kind) {
		return anchor{}, false
	}
	prev, hasPrev := cx.sc.TokenBefore(lineStart)

	// Curried group: `(` or `[` directly continuing a previous group chain
	// aligns under the chain's first opener.
	if hasPrev && syntax.IsClose(prev.Kind) && first.Kind != syntax.KindOpenBrace &&
		!cx.sc.BlankLineBetween(prev.End, lineStart) {
		if firstOpen, ok := cx.sc.SkipGroupsBackward(prev); ok {
			return anchor{pos: firstOpen.Start, col: cx.sc.Column(firstOpen.Start)}, true
		}
	}

	// After `=` the body resolver owns the line.
	if hasPrev && prev.Kind == syntax.KindEq {
		return anchor{}, false
	}

	if first.Kind == syntax.KindOpenBrace {
		if pos, ok := cx.constructAnchor(lineStart); ok {
			step := 0
			if cx.eqBetween(pos, lineStart) {
				step = cx.opts.Unit
			}
			return anchor{pos: pos, col: cx.anchorColumn(pos), step: step}, true
		}
	}

	// Parameters alone on their own line fall through to the structural
	// resolvers.
	return anchor{}, false
}

// constructAnchor finds, via a keywords-only backward walk, the start of the
// statement the brace belongs to, when that statement opens with a construct
// keyword (possibly behind modifiers).
func (cx *context) constructAnchor(lineStart int) (int, bool) {
	prev, ok := cx.sc.TokenBefore(lineStart)
	if !ok {
		return 0, false
	}
	pos := cx.with(KeywordsOnly).statementAnchor(prev.Start)
	t, ok := cx.sc.TokenAt(pos)
	if !ok || t.Start != pos || t.Kind != syntax.KindKeyword {
		return 0, false
	}
	for modifierWords[t.Word] {
		nxt, ok := cx.sc.Next(t)
		if !ok || nxt.Kind != syntax.KindKeyword {
			return 0, false
		}
		t = nxt
	}
	if constructWords[t.Word] {
		return pos, true
	}
	return 0, false
}
