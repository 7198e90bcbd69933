package buffer

// LineIndent returns the number of leading whitespace runes on row.
func (b *Buffer) LineIndent(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	n := 0
	for _, r := range b.lines[row] {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

// SetLineIndent replaces row's leading whitespace with width spaces as a
// single undoable edit.
//
// Cursor adjustment: a cursor inside the old indentation moves to the new
// indentation column; a cursor in line content keeps its offset into the
// content. A no-op change records no history and bumps no version.
func (b *Buffer) SetLineIndent(row, width int) bool {
	if row < 0 || row >= len(b.lines) || width < 0 {
		return false
	}
	old := b.LineIndent(row)
	line := b.lines[row]
	if old == width && allSpaces(line[:old]) {
		return false
	}

	prev := b.snapshot()
	next := make([]rune, 0, width+len(line)-old)
	for i := 0; i < width; i++ {
		next = append(next, ' ')
	}
	next = append(next, line[old:]...)
	b.lines[row] = next

	if b.cursor.Row == row {
		if b.cursor.Col <= old {
			b.cursor.Col = width
		} else {
			b.cursor.Col += width - old
		}
	}
	b.recordUndo(prev)
	b.version++
	return true
}

func allSpaces(rs []rune) bool {
	for _, r := range rs {
		if r != ' ' {
			return false
		}
	}
	return true
}
