package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"quantum_gomoku/internal/bootstrap"
	"quantum_gomoku/internal/common"
	gameDelivery "quantum_gomoku/internal/delivery/game"
	ownMiddleware "quantum_gomoku/internal/middleware"
	repo "quantum_gomoku/internal/repository"
	gameuc "quantum_gomoku/internal/usecase/game"
)

func main() {
	cfgPath := flag.String("config", ".env", "path to the config file (optional)")
	flag.Parse()

	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		logger.Errorw("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := repo.NewSessionStorage(ctx, *cfg, logger, func() repo.Game {
		return gameuc.NewGameUseCase(*cfg, logger, common.NewRand(cfg.RandomSeed))
	})
	defer sessions.CloseAll()

	r := chi.NewRouter()
	Router(r, *cfg, gameDelivery.NewGameHandler(*cfg, logger, sessions))

	srv := &http.Server{Addr: cfg.ServerPort, Handler: r}
	go func() {
		<-ctx.Done()
		logger.Info("Received shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func Router(r *chi.Mux, cfg bootstrap.Config, game *gameDelivery.GameHandler) {
	if cfg.IsLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	game.Routes(r)
}
