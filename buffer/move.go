package buffer

// MoveUnit selects the granularity of a cursor move.
type MoveUnit uint8

const (
	MoveRune MoveUnit = iota
	MoveLine
	MoveDoc
)

// MoveDir selects the direction of a cursor move.
type MoveDir uint8

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

// Move describes one cursor movement.
type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

func (b *Buffer) Move(m Move) {
	p := b.cursor
	switch m.Unit {
	case MoveRune:
		switch m.Dir {
		case DirLeft:
			if p.Col > 0 {
				p.Col--
			} else if p.Row > 0 {
				p.Row--
				p.Col = b.lineLen(p.Row)
			}
		case DirRight:
			if p.Col < b.lineLen(p.Row) {
				p.Col++
			} else if p.Row < len(b.lines)-1 {
				p.Row++
				p.Col = 0
			}
		case DirUp:
			p.Row--
		case DirDown:
			p.Row++
		}
	case MoveLine:
		switch m.Dir {
		case DirUp:
			p.Row--
		case DirDown:
			p.Row++
		case DirHome:
			p.Col = 0
		case DirEnd:
			p.Col = b.lineLen(p.Row)
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome:
			p = Pos{}
		case DirEnd:
			p = Pos{Row: len(b.lines) - 1, Col: b.lineLen(len(b.lines) - 1)}
		}
	}
	b.SetCursor(p)
}
