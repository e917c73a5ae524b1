package tui

import "quantum_gomoku/internal/domain/game"

// Layout places the board on the terminal: a title line, a column label line,
// then one line per row behind a row label.
type Layout struct {
	Size      int
	OffsetX   int
	OffsetY   int
	CellWidth int
}

func NewLayout(size int) Layout {
	return Layout{Size: size, OffsetX: 3, OffsetY: 2, CellWidth: 2}
}

// CellAt maps a terminal position to a board cell. Positions off the board
// report false.
func (l Layout) CellAt(x, y int) (game.Cell, bool) {
	if x < l.OffsetX || y < l.OffsetY {
		return game.Cell{}, false
	}
	c := game.Cell{Row: y - l.OffsetY, Col: (x - l.OffsetX) / l.CellWidth}
	if !c.In(l.Size) {
		return game.Cell{}, false
	}
	return c, true
}
