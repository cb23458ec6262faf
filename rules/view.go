package rules

import (
	"iter"

	"github.com/brensch/constrictor/game"
)

// snakeView hides the mutating methods of the simulation's snake.
type snakeView struct{ s *game.Snake }

func (v snakeView) Facing() game.Direction     { return v.s.Facing() }
func (v snakeView) Len() int                   { return v.s.Len() }
func (v snakeView) Head() game.Point           { return v.s.Head() }
func (v snakeView) Tail() game.Point           { return v.s.Tail() }
func (v snakeView) Body() iter.Seq[game.Point] { return v.s.Body() }
func (v snakeView) Contains(p game.Point) bool { return v.s.Contains(p) }
