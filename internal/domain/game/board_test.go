package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "quantum_gomoku/internal/errors"
)

const (
	testSize = 15
	testWin  = 5
)

// dumpObserved renders an observed grid for failure messages.
func dumpObserved(o ObservedGrid) string {
	var sb strings.Builder
	for _, row := range o {
		for _, c := range row {
			switch c {
			case ColorBlack:
				sb.WriteByte('X')
			case ColorWhite:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func occupied(g Grid) map[Cell]bool {
	out := map[Cell]bool{}
	for r := range g {
		for c, s := range g[r] {
			if s != nil {
				out[Cell{Row: r, Col: c}] = true
			}
		}
	}
	return out
}

func occupiedObserved(o ObservedGrid) map[Cell]bool {
	out := map[Cell]bool{}
	for r := range o {
		for c, col := range o[r] {
			if col != ColorEmpty {
				out[Cell{Row: r, Col: c}] = true
			}
		}
	}
	return out
}

func mustPlace(t *testing.T, b *Board, row, col int, tier Tier) {
	t.Helper()
	ok, err := b.PlaceStone(row, col, tier)
	require.NoError(t, err)
	require.True(t, ok, "place at %s", Cell{Row: row, Col: col})
}

func TestPlaceStone_EmptyThenOccupied(t *testing.T) {
	b := NewBoard(testSize, testWin, rand.New(rand.NewSource(1)))
	for r := 0; r < testSize; r++ {
		for c := 0; c < testSize; c++ {
			ok, err := b.PlaceStone(r, c, TierBlack70)
			require.NoError(t, err)
			require.True(t, ok)

			ok, err = b.PlaceStone(r, c, TierBlack10)
			require.NoError(t, err)
			require.False(t, ok)
			require.Equal(t, TierBlack70, b.StoneAt(r, c).Tier(), "occupied cell must keep its stone")
		}
	}
	assert.Equal(t, testSize*testSize, b.Stones())
}

func TestPlaceStone_UnknownTier(t *testing.T) {
	b := NewBoard(testSize, testWin, fixedSampler(0))
	ok, err := b.PlaceStone(3, 3, Tier(9))
	assert.False(t, ok)
	assert.ErrorIs(t, err, apperrors.ErrUnknownTier)
	assert.Nil(t, b.StoneAt(3, 3))
}

func TestObserve_PreservesOccupancy(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		b := NewBoard(testSize, testWin, r)
		tiers := []Tier{TierBlack90, TierBlack70, TierBlack30, TierBlack10}
		for i := 0; i < 40; i++ {
			_, err := b.PlaceStone(r.Intn(testSize), r.Intn(testSize), tiers[i%len(tiers)])
			require.NoError(t, err)
		}
		before := occupied(b.Grid())

		b.ObserveAndCheckWinner(SideBlack)
		require.True(t, b.Observing())
		assert.Equal(t, before, occupiedObserved(b.Observed()))
		assert.Equal(t, before, occupied(b.Grid()), "observation must not touch the grid")
	}
}

func TestObserve_FreshEachTime(t *testing.T) {
	// 0.0 collapses everything black, 0.95 everything white.
	s := &seqSampler{values: []float64{0.0, 0.95}}
	b := NewBoard(testSize, testWin, s)
	mustPlace(t, b, 7, 7, TierBlack90)

	b.ObserveAndCheckWinner(SideBlack)
	assert.Equal(t, ColorBlack, b.Observed()[7][7])
	b.ObserveAndCheckWinner(SideBlack)
	assert.Equal(t, ColorWhite, b.Observed()[7][7])
}

func TestObserveAndCheckWinner_ForcedBlackRow(t *testing.T) {
	b := NewBoard(testSize, testWin, fixedSampler(0))
	for c := 0; c < 5; c++ {
		mustPlace(t, b, 0, c, TierBlack70)
	}
	winner, ok := b.ObserveAndCheckWinner(SideWhite)
	require.True(t, ok, dumpObserved(b.Observed()))
	assert.Equal(t, SideBlack, winner)
}

func TestObserveAndCheckWinner_ForcedWhiteDiagonal(t *testing.T) {
	b := NewBoard(testSize, testWin, fixedSampler(0.99))
	for i := 0; i < 5; i++ {
		mustPlace(t, b, 10-i, 2+i, TierBlack90)
	}
	winner, ok := b.ObserveAndCheckWinner(SideBlack)
	require.True(t, ok, dumpObserved(b.Observed()))
	assert.Equal(t, SideWhite, winner)
}

func TestObserveAndCheckWinner_BothWinGoesToObserver(t *testing.T) {
	// Row 0 is all B90 and row 5 all B10; a draw of 0.5 makes row 0 black
	// and row 5 white, so both colours complete a line.
	for _, observer := range []Side{SideBlack, SideWhite} {
		b := NewBoard(testSize, testWin, fixedSampler(0.5))
		for c := 0; c < 5; c++ {
			mustPlace(t, b, 0, c, TierBlack90)
			mustPlace(t, b, 5, c, TierBlack10)
		}
		winner, ok := b.ObserveAndCheckWinner(observer)
		require.True(t, ok, dumpObserved(b.Observed()))
		assert.Equal(t, observer, winner)
	}
}

func TestObserveAndCheckWinner_NoWinner(t *testing.T) {
	b := NewBoard(testSize, testWin, fixedSampler(0))
	for c := 0; c < 4; c++ {
		mustPlace(t, b, 2, c, TierBlack90)
	}
	_, ok := b.ObserveAndCheckWinner(SideBlack)
	assert.False(t, ok)
	assert.True(t, b.Observing())
}

func TestCountInLine(t *testing.T) {
	o := make(ObservedGrid, testSize)
	for r := range o {
		o[r] = make([]Color, testSize)
	}
	// vertical run of 3 through (4,4), horizontal run of 6 through it
	o[3][4], o[4][4], o[5][4] = ColorBlack, ColorBlack, ColorBlack
	for c := 1; c <= 6; c++ {
		o[4][c] = ColorBlack
	}
	o[4][7] = ColorWhite

	assert.Equal(t, 6, CountInLine(o, 4, 4, ColorBlack))
	assert.Equal(t, 3, CountInLine(o, 3, 4, ColorBlack))
	assert.Equal(t, 1, CountInLine(o, 4, 7, ColorWhite))
	assert.True(t, HasWin(o, ColorBlack, 5))
	assert.False(t, HasWin(o, ColorWhite, 5))
	assert.False(t, HasWin(o, ColorBlack, 7))
}

func TestCountInLine_AntiDiagonalAtEdge(t *testing.T) {
	o := make(ObservedGrid, testSize)
	for r := range o {
		o[r] = make([]Color, testSize)
	}
	for i := 0; i < 5; i++ {
		o[i][14-i] = ColorWhite
	}
	assert.Equal(t, 5, CountInLine(o, 0, 14, ColorWhite))
	assert.Equal(t, 5, CountInLine(o, 2, 12, ColorWhite))
	assert.True(t, HasWin(o, ColorWhite, 5))
}

func TestSnapshot_SaveRestore(t *testing.T) {
	b := NewBoard(testSize, testWin, fixedSampler(0))
	mustPlace(t, b, 1, 1, TierBlack70)
	mustPlace(t, b, 2, 2, TierBlack30)
	before := b.Grid()

	b.SaveSnapshot()
	b.ObserveAndCheckWinner(SideBlack)
	b.ObserveAndVisualize()
	mustPlace(t, b, 3, 3, TierBlack90)
	require.True(t, b.Observing())

	require.NoError(t, b.RestoreSnapshot())
	assert.Equal(t, StoneTiers(before), StoneTiers(b.Grid()))
	assert.False(t, b.Observing())
	assert.Nil(t, b.Observed())
	assert.False(t, b.HasSnapshot())
}

func TestSnapshot_SaveThenRestoreImmediately(t *testing.T) {
	b := NewBoard(testSize, testWin, fixedSampler(0))
	mustPlace(t, b, 0, 0, TierBlack10)
	before := b.Grid()

	b.SaveSnapshot()
	require.NoError(t, b.RestoreSnapshot())
	assert.Equal(t, StoneTiers(before), StoneTiers(b.Grid()))
	assert.Nil(t, b.Observed())
}

func TestSnapshot_RestoreWithoutSave(t *testing.T) {
	b := NewBoard(testSize, testWin, fixedSampler(0))
	mustPlace(t, b, 0, 0, TierBlack10)
	assert.ErrorIs(t, b.RestoreSnapshot(), apperrors.ErrNoSnapshot)
	assert.Equal(t, 1, b.Stones())

	b.SaveSnapshot()
	require.NoError(t, b.RestoreSnapshot())
	assert.ErrorIs(t, b.RestoreSnapshot(), apperrors.ErrNoSnapshot, "a snapshot restores once")
}

func TestSnapshot_IsolatedFromLaterPlacements(t *testing.T) {
	b := NewBoard(testSize, testWin, fixedSampler(0))
	b.SaveSnapshot()
	mustPlace(t, b, 4, 4, TierBlack90)
	assert.Equal(t, 0, b.snapshot.Stones())
}

func TestObserveAndVisualize_Rebiases(t *testing.T) {
	// First stone draws 0.1 (black for B30), second 0.5 (white for B30).
	s := &seqSampler{values: []float64{0.1, 0.5}}
	b := NewBoard(testSize, testWin, s)
	mustPlace(t, b, 0, 0, TierBlack30)
	mustPlace(t, b, 0, 1, TierBlack30)

	b.ObserveAndVisualize()
	assert.Equal(t, TierBlack90, b.StoneAt(0, 0).Tier())
	assert.Equal(t, TierBlack10, b.StoneAt(0, 1).Tier())
	assert.Equal(t, 2, b.Stones())
}

func TestDiscardSnapshot_KeepsGrid(t *testing.T) {
	b := NewBoard(testSize, testWin, fixedSampler(0))
	mustPlace(t, b, 0, 0, TierBlack30)
	b.SaveSnapshot()
	b.ObserveAndCheckWinner(SideBlack)
	b.ObserveAndVisualize()

	b.DiscardSnapshot()
	assert.False(t, b.HasSnapshot())
	assert.False(t, b.Observing())
	assert.Equal(t, TierBlack90, b.StoneAt(0, 0).Tier())
}

func TestScenario_TwoStonesObserved(t *testing.T) {
	b := NewBoard(testSize, testWin, rand.New(rand.NewSource(3)))
	black := NewPlayer(SideBlack, 5)
	white := NewPlayer(SideWhite, 5)

	mustPlace(t, b, 7, 7, black.NextTier())
	black.ConfirmPlacement()
	mustPlace(t, b, 7, 8, white.NextTier())
	white.ConfirmPlacement()

	assert.Equal(t, TierBlack90, b.StoneAt(7, 7).Tier())
	assert.Equal(t, TierBlack10, b.StoneAt(7, 8).Tier())

	_, ok := b.ObserveAndCheckWinner(SideBlack)
	assert.False(t, ok)
	assert.Equal(t, map[Cell]bool{{Row: 7, Col: 7}: true, {Row: 7, Col: 8}: true}, occupiedObserved(b.Observed()))
}
