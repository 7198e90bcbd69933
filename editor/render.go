package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/scalindent/buffer"
	"github.com/iw2rmb/scalindent/internal/grapheme"
)

func (m *Model) renderContent() string {
	rows := m.buf.LineCount()
	cur := m.buf.Cursor()

	numWidth := len(fmt.Sprint(rows))
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		if m.cfg.ShowLineNums {
			num := fmt.Sprintf("%*d ", numWidth, row+1)
			if row == cur.Row && m.focused {
				sb.WriteString(m.cfg.Style.LineNumActive.Render(num))
			} else {
				sb.WriteString(m.cfg.Style.LineNum.Render(num))
			}
		}
		sb.WriteString(m.renderLine(row, cur))
	}
	return sb.String()
}

func (m *Model) renderLine(row int, cur buffer.Pos) string {
	line := m.buf.Line(row)
	if !m.focused || row != cur.Row {
		return m.cfg.Style.Text.Render(line)
	}

	clusters := grapheme.Clusters(line)
	col := cur.Col
	if col > len(clusters) {
		col = len(clusters)
	}

	before := strings.Join(clusters[:col], "")
	under := " "
	after := ""
	if col < len(clusters) {
		under = clusters[col]
		after = strings.Join(clusters[col+1:], "")
	}

	var sb strings.Builder
	if before != "" {
		sb.WriteString(m.cfg.Style.Text.Render(before))
	}
	sb.WriteString(m.cfg.Style.Cursor.Render(under))
	if after != "" {
		sb.WriteString(m.cfg.Style.Text.Render(after))
	}
	return sb.String()
}

// StatusLine reports the cursor position, the active run-on strategy and
// the rule that produced the last indentation.
func (m Model) StatusLine() string {
	cur := m.buf.Cursor()
	strat, override := m.engine.Strategy()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d", cur.Row+1, cur.Col+1)
	sb.WriteString("  ")
	if override {
		sb.WriteString(m.cfg.Style.StatusOverride.Render(strat.String() + "*"))
	} else {
		sb.WriteString(strat.String())
	}
	if m.lastRule != "" {
		sb.WriteString("  ")
		sb.WriteString(m.lastRule)
	}

	line := sb.String()
	if m.viewport.Width > 0 {
		line = grapheme.Truncate(line, m.viewport.Width)
	}
	return m.cfg.Style.Status.Render(line)
}
