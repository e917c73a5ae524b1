package tui

import (
	"github.com/charmbracelet/lipgloss"

	"quantum_gomoku/internal/domain/game"
)

var (
	boardColor = lipgloss.Color("#CD853F")

	boardStyle  = lipgloss.NewStyle().Background(boardColor).Foreground(lipgloss.Color("#3B2A1A"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	hudStyle    = lipgloss.NewStyle().PaddingLeft(4)
	cursorStyle = lipgloss.NewStyle().Reverse(true)

	messageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#000000"))
	winnerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#B22222"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	tierStyles = map[game.Tier]lipgloss.Style{
		game.TierBlack90: boardStyle.Foreground(lipgloss.Color("#000000")),
		game.TierBlack70: boardStyle.Foreground(lipgloss.Color("#696969")),
		game.TierBlack30: boardStyle.Foreground(lipgloss.Color("#C0C0C0")),
		game.TierBlack10: boardStyle.Foreground(lipgloss.Color("#FFFFFF")),
	}
	colorStyles = map[game.Color]lipgloss.Style{
		game.ColorBlack: boardStyle.Foreground(lipgloss.Color("#000000")),
		game.ColorWhite: boardStyle.Foreground(lipgloss.Color("#FFFFFF")),
	}
)

const (
	stoneGlyph = "●"
	emptyGlyph = "·"
)
