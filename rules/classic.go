package rules

import (
	"fmt"
	"math/rand"

	"github.com/brensch/constrictor/game"
)

// StartOffset is how far either side of the board centre the snake and the
// first food are placed.
const StartOffset = 3

// NewClassic lays out a width x height board with cells numbered from 1. The
// snake starts with length 1 left of centre facing Right, and the first food
// sits the same distance right of centre.
func NewClassic(width, height int, rng *rand.Rand) (*Simulation, error) {
	board, err := game.NewBoard([2]int{1, width + 1}, [2]int{1, height + 1})
	if err != nil {
		return nil, fmt.Errorf("classic %dx%d board: %w", width, height, err)
	}

	centre := game.Pt(width, height).Div(2)
	snake := game.NewSnake(centre.Neighbour(game.Left, StartOffset), game.Right)
	food := centre.Neighbour(game.Right, StartOffset)

	sim, err := NewWithRand(board, snake, food, rng)
	if err != nil {
		return nil, fmt.Errorf("classic %dx%d layout: %w", width, height, err)
	}
	return sim, nil
}
