package game

import (
	"fmt"
)

// Grid holds the placed, unobserved stones. A nil entry is an empty cell.
type Grid [][]*Stone

func newGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]*Stone, size)
	}
	return g
}

// clone copies the cell pointers. Stones are immutable, so this is a full copy.
func (g Grid) clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = append([]*Stone(nil), g[r]...)
	}
	return out
}

// ObservedGrid is one collapsed realization of a Grid.
type ObservedGrid [][]Color

func (o ObservedGrid) clone() ObservedGrid {
	out := make(ObservedGrid, len(o))
	for r := range o {
		out[r] = append([]Color(nil), o[r]...)
	}
	return out
}

// Board owns the placed stones, the latest observed view and the preview snapshot.
// It is not safe for concurrent use.
type Board struct {
	size      int
	winLength int
	rand      Sampler

	grid     Grid
	observed ObservedGrid
	snapshot *Snapshot
}

func NewBoard(size, winLength int, r Sampler) *Board {
	return &Board{
		size:      size,
		winLength: winLength,
		rand:      r,
		grid:      newGrid(size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) WinLength() int {
	return b.winLength
}

// PlaceStone puts a new stone of the tier on an empty cell. It reports false
// without touching the board when the cell is occupied. Coordinates must be in
// range; callers map input to cells before reaching the board.
func (b *Board) PlaceStone(row, col int, tier Tier) (bool, error) {
	if b.grid[row][col] != nil {
		return false, nil
	}
	s, err := NewStone(tier)
	if err != nil {
		return false, fmt.Errorf("place stone at %s: %w", Cell{Row: row, Col: col}, err)
	}
	b.grid[row][col] = s
	return true, nil
}

func (b *Board) StoneAt(row, col int) *Stone {
	return b.grid[row][col]
}

func (b *Board) Stones() int {
	n := 0
	for _, row := range b.grid {
		for _, s := range row {
			if s != nil {
				n++
			}
		}
	}
	return n
}

func (b *Board) Grid() Grid {
	return b.grid.clone()
}

// Observed returns a copy of the current observed view, or nil when there is none.
func (b *Board) Observed() ObservedGrid {
	if b.observed == nil {
		return nil
	}
	return b.observed.clone()
}

func (b *Board) Observing() bool {
	return b.observed != nil
}

func (b *Board) observe() ObservedGrid {
	o := make(ObservedGrid, b.size)
	for r := range b.grid {
		o[r] = make([]Color, b.size)
		for c, s := range b.grid[r] {
			if s != nil {
				o[r][c] = s.Observe(b.rand)
			}
		}
	}
	return o
}

// ObserveAndCheckWinner collapses every stone into a fresh observed view and
// checks both colours on it. When both colours complete a line the observer
// wins. ok is false when the collapse decided nothing.
func (b *Board) ObserveAndCheckWinner(observer Side) (winner Side, ok bool) {
	b.observed = b.observe()

	blackWins := HasWin(b.observed, ColorBlack, b.winLength)
	whiteWins := HasWin(b.observed, ColorWhite, b.winLength)

	switch {
	case blackWins && whiteWins:
		return observer, true
	case blackWins:
		return SideBlack, true
	case whiteWins:
		return SideWhite, true
	default:
		return 0, false
	}
}

// ObserveAndVisualize resamples every stone and replaces it with the
// high-confidence tier of the colour it fell on. The previous tiers only come
// back through RestoreSnapshot.
func (b *Board) ObserveAndVisualize() {
	for r := range b.grid {
		for c, s := range b.grid[r] {
			if s == nil {
				continue
			}
			tier := TierBlack10
			if s.Observe(b.rand) == ColorBlack {
				tier = TierBlack90
			}
			b.grid[r][c] = &Stone{tier: tier}
		}
	}
}
