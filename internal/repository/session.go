package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quantum_gomoku/internal/bootstrap"
	"quantum_gomoku/internal/domain/game"
	apperrors "quantum_gomoku/internal/errors"
	gameuc "quantum_gomoku/internal/usecase/game"
)

// Game is the controller a session serializes access to.
type Game interface {
	AttemptPlace(row, col int) error
	ToggleObservation() (gameuc.ObservationResult, error)
	Restart() error
	Tick(elapsed int)
	Phase() game.Phase
	Message() (string, int)
	View() game.View
}

// Session owns one live game. Every command, tick and read goes through its
// mutex, so the game keeps a single writer.
type Session struct {
	ID string

	mu   sync.Mutex
	game Game
	subs map[chan game.View]struct{}

	done      chan struct{}
	closeOnce sync.Once
}

func newSession(id string, g Game) *Session {
	return &Session{
		ID:   id,
		game: g,
		subs: make(map[chan game.View]struct{}),
		done: make(chan struct{}),
	}
}

// Do runs fn against the game and publishes the resulting view to subscribers.
func (s *Session) Do(fn func(g Game) error) (game.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.game)
	v := s.game.View()
	if err == nil {
		s.publishLocked(v)
	}
	return v, err
}

func (s *Session) View() game.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.View()
}

// Subscribe returns a channel receiving the latest view after each change.
// Slow readers only see the newest view.
func (s *Session) Subscribe() (<-chan game.View, func()) {
	ch := make(chan game.View, 1)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *Session) publishLocked(v game.View) {
	for ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// tick advances the game one tick and publishes when the phase changes or a
// message runs out.
func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	phase := s.game.Phase()
	_, before := s.game.Message()
	if before == 0 {
		return
	}
	s.game.Tick(1)
	_, after := s.game.Message()
	if s.game.Phase() != phase || after == 0 {
		s.publishLocked(s.game.View())
	}
}

func (s *Session) run(ctx context.Context, ticksPerSecond int) {
	t := time.NewTicker(time.Second / time.Duration(ticksPerSecond))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-t.C:
			s.tick()
		}
	}
}

// Close stops the session clock and releases all subscribers.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		defer s.mu.Unlock()
		for ch := range s.subs {
			delete(s.subs, ch)
			close(ch)
		}
	})
}

func (s *Session) Done() <-chan struct{} {
	return s.done
}

// SessionStorage keeps live sessions in memory only; nothing outlives the process.
type SessionStorage struct {
	ctx     context.Context
	cfg     bootstrap.Config
	log     *zap.SugaredLogger
	newGame func() Game

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStorage(ctx context.Context, cfg bootstrap.Config, log *zap.SugaredLogger, newGame func() Game) *SessionStorage {
	return &SessionStorage{
		ctx:      ctx,
		cfg:      cfg,
		log:      log,
		newGame:  newGame,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session and its clock.
func (r *SessionStorage) Create() *Session {
	s := newSession(uuid.New().String(), r.newGame())

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	go s.run(r.ctx, r.cfg.TicksPerSecond)
	r.log.Infof("session %s created", s.ID)
	return s
}

func (r *SessionStorage) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, apperrors.ErrSessionNotFound)
	}
	return s, nil
}

func (r *SessionStorage) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %s: %w", id, apperrors.ErrSessionNotFound)
	}
	s.Close()
	r.log.Infof("session %s closed", id)
	return nil
}

func (r *SessionStorage) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CloseAll closes every session, used on shutdown.
func (r *SessionStorage) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
