package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"quantum_gomoku/internal/domain/game"
	gameuc "quantum_gomoku/internal/usecase/game"
)

type TickMsg time.Time

// Model is the terminal front end. It owns the clock and the input mapping;
// all game state lives in the controller.
type Model struct {
	game      *gameuc.GameUseCase
	log       *zap.SugaredLogger
	layout    Layout
	tickEvery time.Duration

	cursor game.Cell
	status string
}

func NewModel(g *gameuc.GameUseCase, log *zap.SugaredLogger, ticksPerSecond int) Model {
	size := g.Board().Size()
	return Model{
		game:      g,
		log:       log,
		layout:    NewLayout(size),
		tickEvery: time.Second / time.Duration(ticksPerSecond),
		cursor:    game.Cell{Row: size / 2, Col: size / 2},
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.game.Tick(1)
		return m, m.tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		cell, ok := m.layout.CellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = cell
		m.place()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.layout.Size
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case "down", "j":
		m.cursor.Row = min(m.cursor.Row+1, size-1)
	case "left", "h":
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case "right", "l":
		m.cursor.Col = min(m.cursor.Col+1, size-1)
	case "enter", " ":
		m.place()
	case "o":
		m.status = ""
		if _, err := m.game.ToggleObservation(); err != nil {
			m.status = err.Error()
		}
	case "r":
		m.status = ""
		if err := m.game.Restart(); err == nil {
			m.cursor = game.Cell{Row: size / 2, Col: size / 2}
		}
	}
	return m, nil
}

// place is silent on occupied cells and out-of-phase clicks, like the board it drives.
func (m *Model) place() {
	m.status = ""
	if err := m.game.AttemptPlace(m.cursor.Row, m.cursor.Col); err != nil {
		m.log.Debugf("place %s ignored: %v", m.cursor, err)
	}
}

func (m Model) View() string {
	v := m.game.View()
	board := m.renderBoard(v)
	return lipgloss.JoinHorizontal(lipgloss.Top, board, hudStyle.Render(m.renderHUD(v))) + "\n"
}

func (m Model) renderBoard(v game.View) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("QUANTUM GOMOKU"))
	sb.WriteByte('\n')

	sb.WriteString(strings.Repeat(" ", m.layout.OffsetX))
	for c := 0; c < v.BoardSize; c++ {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*c", m.layout.CellWidth, 'A'+rune(c))))
	}
	sb.WriteByte('\n')

	for r := 0; r < v.BoardSize; r++ {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%*d ", m.layout.OffsetX-1, r+1)))
		for c := 0; c < v.BoardSize; c++ {
			glyph := m.renderCell(v, r, c)
			if r == m.cursor.Row && c == m.cursor.Col && v.Phase != game.PhaseGameOver {
				glyph = cursorStyle.Render(glyph)
			}
			sb.WriteString(glyph)
			sb.WriteString(boardStyle.Render(" "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderCell shows the observed colour while an observed view exists, the
// stone tier otherwise.
func (m Model) renderCell(v game.View, r, c int) string {
	if v.ObservedView != nil {
		if st, ok := colorStyles[v.ObservedView[r][c]]; ok {
			return st.Render(stoneGlyph)
		}
		return boardStyle.Render(emptyGlyph)
	}
	if st, ok := tierStyles[v.Stones[r][c]]; ok {
		return st.Render(stoneGlyph)
	}
	return boardStyle.Render(emptyGlyph)
}

func (m Model) renderHUD(v game.View) string {
	var lines []string

	lines = append(lines, strings.ToUpper(v.CurrentSide.String())+" TURN")
	lines = append(lines, "NEXT STONE: "+tierStyles[v.NextTier].Render(stoneGlyph)+" "+v.NextTier.String())
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("P1 OBSERVE: %d", v.ObservationsOf(game.SideBlack)))
	lines = append(lines, fmt.Sprintf("P2 OBSERVE: %d", v.ObservationsOf(game.SideWhite)))
	lines = append(lines, "CURSOR: "+m.cursor.String())
	lines = append(lines, "")

	if v.MessageTicks > 0 {
		lines = append(lines, messageStyle.Render(" "+v.Message+" "))
	} else if v.Observing && v.Phase == game.PhasePlaying {
		lines = append(lines, "OBSERVING... (press O again to restore)")
	}
	if m.status != "" {
		lines = append(lines, errorStyle.Render(m.status))
	}

	if v.Phase == game.PhaseGameOver {
		if v.Winner == game.SideBlack {
			lines = append(lines, winnerStyle.Render(" PLAYER 1 (BLACK) WINS! "))
		} else {
			lines = append(lines, winnerStyle.Render(" PLAYER 2 (WHITE) WINS! "))
		}
		lines = append(lines, "PRESS 'R' TO RESTART")
	}

	lines = append(lines, "",
		"ENTER/CLICK: PLACE STONE",
		"'O' KEY: OBSERVE",
		"ARROWS/HJKL: MOVE",
		"'Q' KEY: QUIT",
	)
	if v.Phase == game.PhaseGameOver {
		lines = append(lines, "'R' KEY: RESTART")
	}
	return strings.Join(lines, "\n")
}
