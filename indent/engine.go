package indent

import (
	"log"

	"github.com/iw2rmb/scalindent/syntax"
)

// context carries one resolution's inputs. fuel bounds the mutual recursion
// between run-on and curried-paren detection by the current bracket depth.
type context struct {
	sc    *syntax.Scanner
	opts  Options
	strat Strategy
	fuel  int
}

func (cx *context) with(strat Strategy) *context {
	sub := *cx
	sub.strat = strat
	return &sub
}

// firstTokenFrom returns the token at lineStart if it lies on the same line.
func (cx *context) firstTokenFrom(lineStart int) (syntax.Token, bool) {
	t, ok := cx.sc.TokenAt(lineStart)
	if !ok || t.Start > cx.sc.LineEnd(cx.sc.LineAt(lineStart)) {
		return syntax.Token{}, false
	}
	return t, true
}

type resolver struct {
	name string
	fn   func(*context, int) (anchor, bool)
}

// chain is the fixed resolver priority. Exact-alignment rules (parens,
// lists, forms) come before the generic step-based rules.
var chain = []resolver{
	{"open-paren", resolveOpenParen},
	{"for-enumerators", resolveForEnumerators},
	{"forms-alignment", resolveForms},
	{"list", resolveList},
	{"body", resolveBody},
	{"run-on", resolveRunOn},
	{"block", resolveBlock},
}

// Engine computes indentation columns for one editing session. It is
// synchronous and holds no state besides Options and the strategy Session.
type Engine struct {
	opts    Options
	session Session
}

func New(opts Options) *Engine {
	return &Engine{opts: opts.normalized()}
}

func (e *Engine) Options() Options { return e.opts }

// Strategy returns the effective strategy and whether it comes from the
// session override.
func (e *Engine) Strategy() (Strategy, bool) {
	if s, ok := e.session.Override(); ok {
		return s, true
	}
	return e.opts.Strategy, false
}

// ObserveCommand records a non-indent command so that the next indent is not
// treated as a repeat. The override, if any, is cleared.
func (e *Engine) ObserveCommand(cmd Command) {
	e.session.Begin(cmd, e.opts.Strategy)
}

// RotateStrategy cycles the default run-on strategy
// (reluctant → operator → eager → reluctant) and clears the override.
func (e *Engine) RotateStrategy() {
	e.session.Begin(CommandRotateStrategy, e.opts.Strategy)
	e.opts.Strategy = rotate(e.opts.Strategy)
}

// IndentCommand computes the indentation for the line containing off as an
// interactive command: it advances the session (a repeated command toggles
// the strategy override) and honors an explicit strategy when given.
func (e *Engine) IndentCommand(sc *syntax.Scanner, off int, explicit *Strategy) int {
	eff := e.session.Begin(CommandIndentLine, e.opts.Strategy)
	if explicit != nil {
		eff = *explicit
	}
	return e.IndentFor(sc, off, eff)
}

// IndentFor computes the indentation column for the line containing off
// under the given strategy. Session state is not touched. Unresolvable
// context yields 0; an internal inconsistency is logged and yields the
// line's current indentation.
func (e *Engine) IndentFor(sc *syntax.Scanner, off int, strat Strategy) int {
	col, _ := e.Resolve(sc, off, strat)
	return col
}

// Resolve is IndentFor plus the name of the rule that matched; rule is ""
// when no resolver claimed the line.
func (e *Engine) Resolve(sc *syntax.Scanner, off int, strat Strategy) (col int, rule string) {
	line := sc.LineAt(off)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("indent: internal error resolving line %d: %v", line+1, r)
			col, rule = sc.IndentWidth(line), ""
		}
	}()

	lineStart, ok := sc.CodeStart(line)
	if !ok {
		lineStart = sc.LineEnd(line)
	}

	cx := &context{sc: sc, opts: e.opts, strat: strat, fuel: sc.Depth(lineStart) + 1}
	for _, r := range chain {
		if a, ok := r.fn(cx, lineStart); ok {
			col = a.col + a.step
			if col < 0 {
				col = 0
			}
			return col, r.name
		}
	}
	return 0, ""
}
