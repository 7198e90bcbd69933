package editor

import (
	"github.com/iw2rmb/scalindent/indent"
	"github.com/iw2rmb/scalindent/syntax"
)

// indentCurrentLine recomputes and applies the indentation of the cursor's
// line. A nil explicit strategy lets the session decide (repeat toggling).
func (m *Model) indentCurrentLine(explicit *indent.Strategy) {
	sc := syntax.NewScanner(m.buf.Text())
	cur := m.buf.Cursor()
	off := sc.Offset(cur.Row, cur.Col)

	width := m.engine.IndentCommand(sc, off, explicit)
	strat := m.effectiveStrategy()
	if explicit != nil {
		strat = *explicit
	}
	_, m.lastRule = m.engine.Resolve(sc, off, strat)
	m.buf.SetLineIndent(cur.Row, width)
}

// autoIndentLine indents the cursor's line without advancing the command
// session, so a following Tab is not seen as a repeat.
func (m *Model) autoIndentLine() {
	sc := syntax.NewScanner(m.buf.Text())
	cur := m.buf.Cursor()
	width := m.engine.IndentFor(sc, sc.Offset(cur.Row, cur.Col), m.effectiveStrategy())
	m.buf.SetLineIndent(cur.Row, width)
}

// reindentBuffer re-runs the engine over every line, top to bottom. Each
// line is recomputed against the already re-indented lines above it.
func (m *Model) reindentBuffer() {
	m.engine.ObserveCommand(indent.CommandOther)
	strat := m.effectiveStrategy()
	for row := 0; row < m.buf.LineCount(); row++ {
		sc := syntax.NewScanner(m.buf.Text())
		width := m.engine.IndentFor(sc, sc.LineStart(row), strat)
		m.buf.SetLineIndent(row, width)
	}
}

func (m *Model) effectiveStrategy() indent.Strategy {
	s, _ := m.engine.Strategy()
	return s
}
