package game

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "quantum_gomoku/internal/errors"
)

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) In(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// String renders the board label: column letter then 1-based row, so (7,7) is H8.
func (c Cell) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Col), c.Row+1)
}

func ParseCell(s string, size int) (Cell, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Cell{}, fmt.Errorf("parse cell %q: %w", s, apperrors.ErrInvalidCell)
	}

	col := s[0]
	if col < 'A' || col > 'Z' {
		return Cell{}, fmt.Errorf("parse cell %q: %w", s, apperrors.ErrInvalidCell)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Cell{}, fmt.Errorf("parse cell %q: %w", s, apperrors.ErrInvalidCell)
	}

	c := Cell{Row: row - 1, Col: int(col - 'A')}
	if !c.In(size) {
		return Cell{}, fmt.Errorf("parse cell %q: %w", s, apperrors.ErrOutOfBoard)
	}
	return c, nil
}
