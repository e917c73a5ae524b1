package game

type Phase string

const (
	PhasePlaying            Phase = "playing"
	PhaseObservationPending Phase = "observation_pending"
	PhaseGameOver           Phase = "game_over"
)

// PendingKind tells which announcement an ObservationPending phase is counting down to.
type PendingKind string

const (
	PendingNone     PendingKind = ""
	PendingWinner   PendingKind = "winner"
	PendingNoWinner PendingKind = "no_winner"
)

// View is the read model handed to front ends. It shares no memory with the game.
type View struct {
	GameID       string       `json:"game_id"`
	Phase        Phase        `json:"phase"`
	Pending      PendingKind  `json:"pending,omitempty"`
	CurrentSide  Side         `json:"current_side"`
	NextTier     Tier         `json:"next_tier"`
	Observations [2]int       `json:"observations"` // black, white
	Observing    bool         `json:"observing"`
	Observer     Side         `json:"observer,omitempty"`
	Message      string       `json:"message,omitempty"`
	MessageTicks int          `json:"message_ticks"`
	Winner       Side         `json:"winner,omitempty"`
	BoardSize    int          `json:"board_size"`
	Stones       [][]Tier     `json:"stones"`
	ObservedView ObservedGrid `json:"observed,omitempty"`
}

func (v View) ObservationsOf(s Side) int {
	if s == SideWhite {
		return v.Observations[1]
	}
	return v.Observations[0]
}

// StoneTiers flattens a grid into tiers, 0 for empty cells.
func StoneTiers(g Grid) [][]Tier {
	out := make([][]Tier, len(g))
	for r := range g {
		out[r] = make([]Tier, len(g[r]))
		for c, s := range g[r] {
			if s != nil {
				out[r][c] = s.Tier()
			}
		}
	}
	return out
}

type GameCreateResponse struct {
	GameID string `json:"game_id"`
	View   View   `json:"view"`
}

type ObservationResponse struct {
	Result string `json:"result"`
	View   View   `json:"view"`
}

// ErrorMessage is pushed on the websocket when a command is rejected.
type ErrorMessage struct {
	Error string `json:"error"`
}
