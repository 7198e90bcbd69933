package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scalindent/buffer"
	"github.com/iw2rmb/scalindent/indent"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.engine.ObserveCommand(indent.CommandOther)
			m.buf.InsertText(string(msg.Runes))
		}
		m.afterEdit()
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Indent):
		if !m.cfg.ReadOnly {
			m.indentCurrentLine(nil)
		}

	case key.Matches(msg, km.RotateStrategy):
		m.engine.RotateStrategy()

	case key.Matches(msg, km.ReindentAll):
		if !m.cfg.ReadOnly {
			m.reindentBuffer()
		}

	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.engine.ObserveCommand(indent.CommandOther)
			m.buf.InsertNewline()
			m.autoIndentLine()
		}

	case key.Matches(msg, km.Left):
		m.observeMove()
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.observeMove()
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.observeMove()
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.observeMove()
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.Home):
		m.observeMove()
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.observeMove()
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.engine.ObserveCommand(indent.CommandOther)
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.engine.ObserveCommand(indent.CommandOther)
			m.buf.DeleteForward()
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			m.engine.ObserveCommand(indent.CommandOther)
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			m.engine.ObserveCommand(indent.CommandOther)
			_ = m.buf.Redo()
		}

	default:
		if !m.cfg.ReadOnly && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) {
			m.engine.ObserveCommand(indent.CommandOther)
			if msg.Type == tea.KeySpace {
				m.buf.InsertRune(' ')
			} else {
				for _, r := range msg.Runes {
					m.buf.InsertRune(r)
				}
			}
		}
	}

	m.afterEdit()
	return m, nil
}

func (m *Model) observeMove() {
	m.engine.ObserveCommand(indent.CommandOther)
}

func (m *Model) afterEdit() {
	if m.syncFromBuffer() {
		m.followCursor()
	}
}
