package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brensch/constrictor/game"
)

const (
	headCell  = "██"
	bodyCell  = "░░"
	foodCell  = "╺╸"
	emptyCell = "  "
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("8"))
	snakeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	foodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		frameStyle.Render(m.grid()),
		statusStyle.Render(m.status()),
	)
}

func (m Model) grid() string {
	board := m.sim.Board()
	snake := m.sim.Snake()
	head := snake.Head()
	food := m.sim.FoodPosition()

	var sb strings.Builder
	minX, maxX := board.XRange()
	minY, maxY := board.YRange()
	for y := minY; y < maxY; y++ {
		if y > minY {
			sb.WriteByte('\n')
		}
		for x := minX; x < maxX; x++ {
			p := game.Pt(x, y)
			switch {
			case p == head:
				sb.WriteString(snakeStyle.Render(headCell))
			case snake.Contains(p):
				sb.WriteString(snakeStyle.Render(bodyCell))
			case p == food:
				sb.WriteString(foodStyle.Render(foodCell))
			default:
				sb.WriteString(emptyCell)
			}
		}
	}
	return sb.String()
}
