package buffer

// InsertRune inserts r at the cursor.
func (b *Buffer) InsertRune(r rune) {
	if r == '\n' {
		b.InsertNewline()
		return
	}
	prev := b.snapshot()
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, r)
	next = append(next, line[col:]...)
	b.lines[row] = next
	b.cursor.Col++
	b.recordUndo(prev)
	b.version++
}

// InsertText inserts text (which may contain line breaks) at the cursor.
func (b *Buffer) InsertText(text string) {
	for _, r := range text {
		b.InsertRune(r)
	}
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	prev := b.snapshot()
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]
	rest := append([]rune(nil), line[col:]...)
	b.lines[row] = line[:col]
	b.lines = append(b.lines[:row+1], append([][]rune{rest}, b.lines[row+1:]...)...)
	b.cursor = Pos{Row: row + 1, Col: 0}
	b.recordUndo(prev)
	b.version++
}

// DeleteBackward removes the rune before the cursor, joining lines at col 0.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}
	prev := b.snapshot()
	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(line[:col-1], line[col:]...)
		b.cursor.Col--
	} else {
		above := b.lines[row-1]
		b.cursor = Pos{Row: row - 1, Col: len(above)}
		b.lines[row-1] = append(above, b.lines[row]...)
		b.lines = append(b.lines[:row], b.lines[row+1:]...)
	}
	b.recordUndo(prev)
	b.version++
}

// DeleteForward removes the rune after the cursor, joining lines at line end.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]
	if col >= len(line) && row == len(b.lines)-1 {
		return
	}
	prev := b.snapshot()
	if col < len(line) {
		b.lines[row] = append(line[:col], line[col+1:]...)
	} else {
		b.lines[row] = append(line, b.lines[row+1]...)
		b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	}
	b.recordUndo(prev)
	b.version++
}
