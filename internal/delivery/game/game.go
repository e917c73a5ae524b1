package game

import (
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"quantum_gomoku/internal/bootstrap"
	"quantum_gomoku/internal/domain/game"
	apperrors "quantum_gomoku/internal/errors"
	"quantum_gomoku/internal/httpresponse"
	repo "quantum_gomoku/internal/repository"
	"quantum_gomoku/internal/utils"
)

type GameHandler struct {
	cfg      bootstrap.Config
	log      *zap.SugaredLogger
	sessions *repo.SessionStorage
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, sessions *repo.SessionStorage) *GameHandler {
	return &GameHandler{
		cfg:      cfg,
		log:      log,
		sessions: sessions,
	}
}

func (g *GameHandler) Routes(r chi.Router) {
	r.Post("/games", g.HandleNewGame)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", g.HandleGetGame)
		r.Delete("/", g.HandleCloseGame)
		r.Post("/place", g.HandlePlace)
		r.Post("/observe", g.HandleObserve)
		r.Post("/restart", g.HandleRestart)
		r.Get("/ws", g.HandleStream)
	})
}

func (g *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	s := g.sessions.Create()
	httpresponse.WriteResponseWithStatus(w, http.StatusCreated, game.GameCreateResponse{
		GameID: s.ID,
		View:   s.View(),
	})
}

func (g *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, s.View())
}

func (g *GameHandler) HandleCloseGame(w http.ResponseWriter, r *http.Request) {
	if err := g.sessions.Delete(chi.URLParam(r, "id")); err != nil {
		g.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *GameHandler) HandlePlace(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}

	var move game.Move
	if err := utils.DecodeJSONRequest(w, r, &move); err != nil {
		g.log.Debugf("place: %v", err)
		httpresponse.WriteError(w, http.StatusBadRequest, err)
		return
	}
	move.Action = game.ActionPlace

	v, _, err := g.apply(s, move)
	if err != nil {
		g.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, v)
}

func (g *GameHandler) HandleObserve(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}
	v, result, err := g.apply(s, game.Move{Action: game.ActionObserve})
	if err != nil {
		g.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, game.ObservationResponse{Result: result, View: v})
}

func (g *GameHandler) HandleRestart(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}
	v, _, err := g.apply(s, game.Move{Action: game.ActionRestart})
	if err != nil {
		g.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, v)
}

// HandleStream pushes the view after every change and accepts moves on the
// same connection.
func (g *GameHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("upgrade error:", err)
		return
	}
	defer conn.Close()

	views, cancel := s.Subscribe()
	defer cancel()

	var writeMu sync.Mutex
	write := func(v any) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(v)
	}

	if err = write(s.View()); err != nil {
		g.log.Error("write error:", err)
		return
	}

	go func() {
		for {
			select {
			case v, ok := <-views:
				if !ok {
					_ = conn.Close()
					return
				}
				if err := write(v); err != nil {
					g.log.Debugf("session %s: stream write: %v", s.ID, err)
					return
				}
			case <-r.Context().Done():
				return
			}
		}
	}()

	for {
		var move game.Move
		if err = conn.ReadJSON(&move); err != nil {
			g.log.Debugf("session %s: stream closed: %v", s.ID, err)
			return
		}

		g.log.Infof("session %s: move %+v", s.ID, move)
		if _, _, err = g.apply(s, move); err != nil {
			if err = write(game.ErrorMessage{Error: err.Error()}); err != nil {
				return
			}
		}
	}
}

func (g *GameHandler) apply(s *repo.Session, move game.Move) (game.View, string, error) {
	var result string
	v, err := s.Do(func(gm repo.Game) error {
		switch move.Action {
		case game.ActionPlace:
			cell, err := move.Target(gm.View().BoardSize)
			if err != nil {
				return err
			}
			return gm.AttemptPlace(cell.Row, cell.Col)
		case game.ActionObserve:
			res, err := gm.ToggleObservation()
			result = res.String()
			return err
		case game.ActionRestart:
			return gm.Restart()
		default:
			return apperrors.ErrUnknownAction
		}
	})
	return v, result, err
}

func (g *GameHandler) session(w http.ResponseWriter, r *http.Request) (*repo.Session, bool) {
	s, err := g.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		g.writeError(w, err)
		return nil, false
	}
	return s, true
}

func (g *GameHandler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		g.log.Error(err)
	} else {
		g.log.Debugf("rejected: %v", err)
	}
	httpresponse.WriteError(w, status, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidCell),
		errors.Is(err, apperrors.ErrOutOfBoard),
		errors.Is(err, apperrors.ErrUnknownAction):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrCellOccupied),
		errors.Is(err, apperrors.ErrNotPlaying),
		errors.Is(err, apperrors.ErrNotGameOver),
		errors.Is(err, apperrors.ErrNoObservationsLeft),
		errors.Is(err, apperrors.ErrNoSnapshot):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
