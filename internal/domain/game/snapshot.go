package game

import (
	apperrors "quantum_gomoku/internal/errors"
)

// Snapshot is an immutable copy of a Grid.
type Snapshot struct {
	grid Grid
}

func (s *Snapshot) Stones() int {
	n := 0
	for _, row := range s.grid {
		for _, st := range row {
			if st != nil {
				n++
			}
		}
	}
	return n
}

// SaveSnapshot records the current grid, replacing any earlier snapshot.
func (b *Board) SaveSnapshot() {
	b.snapshot = &Snapshot{grid: b.grid.clone()}
}

func (b *Board) HasSnapshot() bool {
	return b.snapshot != nil
}

// RestoreSnapshot puts the saved grid back, drops the observed view and
// consumes the snapshot.
func (b *Board) RestoreSnapshot() error {
	if b.snapshot == nil {
		return apperrors.ErrNoSnapshot
	}
	b.grid = b.snapshot.grid.clone()
	b.snapshot = nil
	b.observed = nil
	return nil
}

// DiscardSnapshot keeps the current grid as it is and forgets the snapshot
// and the observed view.
func (b *Board) DiscardSnapshot() {
	b.snapshot = nil
	b.observed = nil
}
