package rules

import (
	"fmt"
	"strings"

	"github.com/brensch/constrictor/game"
)

// Dump renders the simulation as plain text, one character per cell, top row
// first:
//
//	H head, o body, F food, * food under the snake, . empty
//
// The first line summarises tick, length, food and result.
func Dump(s *Simulation) string {
	var b strings.Builder

	status := "Running"
	if r, ok := s.Result(); ok {
		status = r.String()
	}
	snake := s.Snake()
	fmt.Fprintf(&b, "Tick=%d Len=%d Facing=%v Food=%v Result=%s\n",
		s.Ticks(), snake.Len(), snake.Facing(), s.FoodPosition(), status)

	board := s.Board()
	head := snake.Head()
	food := s.FoodPosition()
	minX, maxX := board.XRange()
	minY, maxY := board.YRange()
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := game.Pt(x, y)
			switch {
			case p == food && snake.Contains(p):
				b.WriteByte('*')
			case p == head:
				b.WriteByte('H')
			case p == food:
				b.WriteByte('F')
			case snake.Contains(p):
				b.WriteByte('o')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
