package game

import (
	"fmt"

	apperrors "quantum_gomoku/internal/errors"
)

// Tier selects one of the four stone variants. The zero value is not a valid tier.
type Tier int

const (
	TierBlack90 Tier = iota + 1
	TierBlack70
	TierBlack30
	TierBlack10
)

var probabilityOfBlack = map[Tier]float64{
	TierBlack90: 0.9,
	TierBlack70: 0.7,
	TierBlack30: 0.3,
	TierBlack10: 0.1,
}

func (t Tier) Valid() bool {
	_, ok := probabilityOfBlack[t]
	return ok
}

// ProbabilityOfBlack returns 0 for invalid tiers; NewStone never lets one onto the board.
func (t Tier) ProbabilityOfBlack() float64 {
	return probabilityOfBlack[t]
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return fmt.Sprintf("B%02.0f", t.ProbabilityOfBlack()*100)
}

// Color is the observed state of a cell.
type Color int

const (
	ColorEmpty Color = iota
	ColorBlack
	ColorWhite
)

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	default:
		return "empty"
	}
}

// Sampler is the random source consumed by observation. *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// Stone is immutable once created.
type Stone struct {
	tier Tier
}

func NewStone(tier Tier) (*Stone, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("new stone %d: %w", int(tier), apperrors.ErrUnknownTier)
	}
	return &Stone{tier: tier}, nil
}

func (s *Stone) Tier() Tier {
	return s.tier
}

// Observe collapses the stone into a colour without changing it.
func (s *Stone) Observe(r Sampler) Color {
	if r.Float64() < s.tier.ProbabilityOfBlack() {
		return ColorBlack
	}
	return ColorWhite
}
