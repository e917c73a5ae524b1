package game

// Player tracks one side's arsenal alternation and observation budget.
type Player struct {
	side         Side
	observations int
	arsenal      [2]Tier
	next         int
}

// NewPlayer gives black the 90/70 pair and white the 10/30 pair, each side
// starting with its mostly-own-colour stone.
func NewPlayer(side Side, observations int) *Player {
	arsenal := [2]Tier{TierBlack10, TierBlack30}
	if side == SideBlack {
		arsenal = [2]Tier{TierBlack90, TierBlack70}
	}
	if observations < 0 {
		observations = 0
	}
	return &Player{side: side, observations: observations, arsenal: arsenal}
}

func (p *Player) Side() Side {
	return p.side
}

func (p *Player) NextTier() Tier {
	return p.arsenal[p.next]
}

func (p *Player) ConfirmPlacement() {
	p.next = 1 - p.next
}

func (p *Player) CanObserve() bool {
	return p.observations > 0
}

func (p *Player) UseObservation() {
	if p.CanObserve() {
		p.observations--
	}
}

func (p *Player) Observations() int {
	return p.observations
}
