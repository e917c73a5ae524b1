package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quantum_gomoku/internal/bootstrap"
	"quantum_gomoku/internal/domain/game"
	apperrors "quantum_gomoku/internal/errors"
)

const (
	MessageObservedWinner = "WINNER DETERMINED BY OBSERVATION!"
	MessageNoWinner       = "WINNER NOT DETERMINED"
	MessageRestored       = "RESTORED ORIGINAL BOARD"
)

type ObservationResult int

const (
	ObservationRestored ObservationResult = iota + 1
	ObservationWinner
	ObservationNoWinner
)

func (r ObservationResult) String() string {
	switch r {
	case ObservationRestored:
		return "restored"
	case ObservationWinner:
		return "winner"
	case ObservationNoWinner:
		return "no_winner"
	default:
		return "none"
	}
}

// GameUseCase is the turn and observation state machine of one game. It is
// driven only by its commands and Tick, and is not safe for concurrent use.
type GameUseCase struct {
	cfg  bootstrap.Config
	log  *zap.SugaredLogger
	rand game.Sampler

	id      string
	board   *game.Board
	players [2]*game.Player
	current int

	phase         game.Phase
	pending       game.PendingKind
	pendingWinner game.Side
	winner        game.Side

	observing bool
	observer  game.Side

	message      string
	messageTicks int
}

func NewGameUseCase(cfg bootstrap.Config, log *zap.SugaredLogger, r game.Sampler) *GameUseCase {
	g := &GameUseCase{cfg: cfg, log: log, rand: r}
	g.reset()
	return g
}

func (g *GameUseCase) reset() {
	g.id = uuid.New().String()
	g.board = game.NewBoard(g.cfg.BoardSize, g.cfg.WinningLength, g.rand)
	g.players = [2]*game.Player{
		game.NewPlayer(game.SideBlack, g.cfg.ObservationBudget),
		game.NewPlayer(game.SideWhite, g.cfg.ObservationBudget),
	}
	g.current = 0
	g.phase = game.PhasePlaying
	g.pending = game.PendingNone
	g.pendingWinner = 0
	g.winner = 0
	g.observing = false
	g.observer = 0
	g.message = ""
	g.messageTicks = 0
}

func (g *GameUseCase) ID() string {
	return g.id
}

func (g *GameUseCase) Phase() game.Phase {
	return g.phase
}

func (g *GameUseCase) Winner() game.Side {
	return g.winner
}

func (g *GameUseCase) CurrentPlayer() *game.Player {
	return g.players[g.current]
}

func (g *GameUseCase) Player(s game.Side) *game.Player {
	if s == game.SideWhite {
		return g.players[1]
	}
	return g.players[0]
}

func (g *GameUseCase) Board() *game.Board {
	return g.board
}

func (g *GameUseCase) Observing() bool {
	return g.observing
}

// AttemptPlace places the current player's next stone. Placing while an
// observation preview is showing commits the preview first.
func (g *GameUseCase) AttemptPlace(row, col int) error {
	if g.phase != game.PhasePlaying {
		return apperrors.ErrNotPlaying
	}
	cell := game.Cell{Row: row, Col: col}
	if !cell.In(g.board.Size()) {
		return fmt.Errorf("place %d,%d: %w", row, col, apperrors.ErrOutOfBoard)
	}
	if g.board.StoneAt(row, col) != nil {
		return fmt.Errorf("place %s: %w", cell, apperrors.ErrCellOccupied)
	}

	if g.observing {
		g.commitObservation()
	}

	player := g.CurrentPlayer()
	tier := player.NextTier()
	placed, err := g.board.PlaceStone(row, col, tier)
	if err != nil {
		return err
	}
	if !placed {
		return fmt.Errorf("place %s: %w", cell, apperrors.ErrCellOccupied)
	}

	player.ConfirmPlacement()
	g.current = 1 - g.current
	g.log.Infow("stone placed", "game", g.id, "side", player.Side().String(), "cell", cell.String(), "tier", tier.String())
	return nil
}

// ToggleObservation starts an observation, or undoes the one being previewed.
func (g *GameUseCase) ToggleObservation() (ObservationResult, error) {
	if g.phase != game.PhasePlaying {
		return 0, apperrors.ErrNotPlaying
	}
	if g.observing {
		return ObservationRestored, g.restorePreview()
	}

	player := g.CurrentPlayer()
	if !player.CanObserve() {
		return 0, fmt.Errorf("%s observes: %w", player.Side(), apperrors.ErrNoObservationsLeft)
	}

	g.board.SaveSnapshot()
	g.observing = true
	g.observer = player.Side()
	player.UseObservation()

	winner, ok := g.board.ObserveAndCheckWinner(g.observer)
	if ok {
		g.log.Infof("game %s: %s observed, %s wins", g.id, g.observer, winner)
		g.pendingWinner = winner
		g.enterPending(game.PendingWinner, MessageObservedWinner, g.cfg.WinnerMessageTicks)
		return ObservationWinner, nil
	}

	g.board.ObserveAndVisualize()
	g.log.Infof("game %s: %s observed, no winner (%d left)", g.id, g.observer, player.Observations())
	g.enterPending(game.PendingNoWinner, MessageNoWinner, g.cfg.NoWinnerMessageTicks)
	return ObservationNoWinner, nil
}

// Restart starts a fresh game once the previous one is over.
func (g *GameUseCase) Restart() error {
	if g.phase != game.PhaseGameOver {
		return apperrors.ErrNotGameOver
	}
	old := g.id
	g.reset()
	g.log.Infof("game %s restarted as %s", old, g.id)
	return nil
}

// Tick advances the message countdown by elapsed ticks and resolves a pending
// observation once it reaches zero.
func (g *GameUseCase) Tick(elapsed int) {
	if elapsed <= 0 || g.messageTicks == 0 {
		return
	}
	g.messageTicks -= elapsed
	if g.messageTicks > 0 {
		return
	}
	g.messageTicks = 0
	if g.phase == game.PhaseObservationPending {
		g.resolvePending()
	}
}

func (g *GameUseCase) enterPending(kind game.PendingKind, message string, ticks int) {
	g.message = message
	g.messageTicks = ticks
	g.phase = game.PhaseObservationPending
	g.pending = kind
	if ticks == 0 {
		g.resolvePending()
	}
}

func (g *GameUseCase) resolvePending() {
	switch g.pending {
	case game.PendingWinner:
		g.phase = game.PhaseGameOver
		g.winner = g.pendingWinner
		g.log.Infow("game over", "game", g.id, "winner", g.winner.String(), "observer", g.observer.String())
	case game.PendingNoWinner:
		g.phase = game.PhasePlaying
	}
	g.pending = game.PendingNone
	g.pendingWinner = 0
}

// restorePreview rolls the board back to the snapshot taken before the
// observation, including the tiers the preview re-biased.
func (g *GameUseCase) restorePreview() error {
	if err := g.board.RestoreSnapshot(); err != nil {
		return fmt.Errorf("restore preview: %w", err)
	}
	g.observing = false
	g.observer = 0
	g.message = MessageRestored
	g.messageTicks = g.cfg.RestoredMessageTicks
	g.log.Infof("game %s: board restored", g.id)
	return nil
}

// commitObservation keeps the re-biased stones of the preview as the real board.
func (g *GameUseCase) commitObservation() {
	g.board.DiscardSnapshot()
	g.observing = false
	g.observer = 0
	g.log.Infof("game %s: observation preview committed", g.id)
}

func (g *GameUseCase) View() game.View {
	v := game.View{
		GameID:       g.id,
		Phase:        g.phase,
		Pending:      g.pending,
		CurrentSide:  g.CurrentPlayer().Side(),
		NextTier:     g.CurrentPlayer().NextTier(),
		Observations: [2]int{g.players[0].Observations(), g.players[1].Observations()},
		Observing:    g.observing,
		Observer:     g.observer,
		Message:      g.message,
		MessageTicks: g.messageTicks,
		Winner:       g.winner,
		BoardSize:    g.board.Size(),
		Stones:       game.StoneTiers(g.board.Grid()),
		ObservedView: g.board.Observed(),
	}
	return v
}

func (g *GameUseCase) Message() (string, int) {
	return g.message, g.messageTicks
}
