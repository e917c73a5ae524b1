package game

const (
	ActionPlace   = "place"
	ActionObserve = "observe"
	ActionRestart = "restart"
)

// Move is a front end command. Place moves carry either Cell notation ("H8")
// or explicit Row/Col.
type Move struct {
	Action string `json:"action,omitempty"`
	Cell   string `json:"cell,omitempty"`
	Row    *int   `json:"row,omitempty"`
	Col    *int   `json:"col,omitempty"`
}

// Target resolves the cell of a place move.
func (m Move) Target(size int) (Cell, error) {
	if m.Cell != "" {
		return ParseCell(m.Cell, size)
	}
	if m.Row == nil || m.Col == nil {
		return ParseCell("", size)
	}
	return Cell{Row: *m.Row, Col: *m.Col}, nil
}
