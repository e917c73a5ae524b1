package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"quantum_gomoku/internal/bootstrap"
	"quantum_gomoku/internal/common"
	"quantum_gomoku/internal/delivery/tui"
	gameuc "quantum_gomoku/internal/usecase/game"
)

func main() {
	cfgPath := flag.String("config", ".env", "path to the config file (optional)")
	flag.Parse()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Logs go to a file so they do not tear the terminal UI.
	logger, err := NewFileLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	g := gameuc.NewGameUseCase(*cfg, logger, common.NewRand(cfg.RandomSeed))
	p := tea.NewProgram(tui.NewModel(g, logger, cfg.TicksPerSecond), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err = p.Run(); err != nil {
		logger.Errorw("tui stopped", zap.Error(err))
		os.Exit(1)
	}
}

func NewFileLogger(path string) (*zap.SugaredLogger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
