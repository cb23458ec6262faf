// Package rules implements classic single player Snake on top of the game
// types:
//   - the snake cannot intersect itself
//   - the snake cannot leave the board, there is no wrap around
//   - the snake grows by one when it eats, and new food appears on a random
//     free cell
//   - filling the whole board wins
package rules

import (
	"errors"
	"math/rand"
	"time"

	"github.com/brensch/constrictor/game"
)

var (
	ErrSnakeOutOfBounds  = errors.New("snake is out of the board bounds")
	ErrFoodOutOfBounds   = errors.New("food is out of the board bounds")
	ErrSnakeOverlapsFood = errors.New("snake overlaps the food")
)

// Simulation is one game of Snake. It is not safe for concurrent use; a
// single driving loop owns it.
type Simulation struct {
	board game.Board
	snake *game.Snake
	food  game.Point
	rng   *rand.Rand

	ticks  int
	result *Result
}

// New creates a simulation with a time seeded random source for food
// placement. The simulation keeps its own copy of snake, so later changes to
// the caller's snake do not reach it.
func New(board game.Board, snake *game.Snake, food game.Point) (*Simulation, error) {
	return NewWithRand(board, snake, food, nil)
}

// NewWithRand is New with an explicit random source, so callers can choose
// reproducible food placement. A nil rng falls back to a time seeded one.
func NewWithRand(board game.Board, snake *game.Snake, food game.Point, rng *rand.Rand) (*Simulation, error) {
	if !board.Contains(food) {
		return nil, ErrFoodOutOfBounds
	}
	for cell := range snake.Body() {
		if !board.Contains(cell) {
			return nil, ErrSnakeOutOfBounds
		}
		if cell == food {
			return nil, ErrSnakeOverlapsFood
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Simulation{
		board: board,
		snake: snake.Clone(),
		food:  food,
		rng:   rng,
	}, nil
}

func (s *Simulation) Board() game.Board { return s.board }

// Snake returns a read-only view of the simulation's snake. The view tracks
// later advances.
func (s *Simulation) Snake() game.SnakeView { return snakeView{s.snake} }

func (s *Simulation) FoodPosition() game.Point { return s.food }

// Ticks is the number of moves the snake has made.
func (s *Simulation) Ticks() int { return s.ticks }

// Score is the amount of food eaten so far.
func (s *Simulation) Score() int { return s.snake.Len() - 1 }

// Result returns the terminal result, if the game has ended.
func (s *Simulation) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Done reports whether a terminal result has been reached.
func (s *Simulation) Done() bool { return s.result != nil }

// Quit ends a running game. A result that already landed is kept.
func (s *Simulation) Quit() {
	if s.result == nil {
		s.finish(Result{Kind: ManuallyTerminated})
	}
}

// ChangePlayerMoveDirection stages a new direction for the next Advance.
// Reversals are silently ignored.
func (s *Simulation) ChangePlayerMoveDirection(d game.Direction) {
	s.snake.TrySetFacing(d)
}

// Advance steps the game forward by one tick. It returns the result and true
// once the game has ended; after that every call returns the same result
// without changing anything.
func (s *Simulation) Advance() (Result, bool) {
	if s.result != nil {
		return *s.result, true
	}

	next := s.snake.NextHeadPosition()
	if !s.board.Contains(next) {
		return s.finish(Result{Kind: Died, Reason: HitWall}), true
	}

	willEat := next == s.food
	willHitTail := next == s.snake.Tail()

	// The tail cell is only safe when the tail moves out of it this tick,
	// which it does not when the snake grows.
	if s.snake.Contains(next) && !(willHitTail && !willEat) {
		return s.finish(Result{Kind: Died, Reason: HitSelf}), true
	}

	// Move before respawning food, or food could land under the new head.
	s.snake.Advance(willEat)
	s.ticks++

	if !willEat {
		return Result{}, false
	}

	food, ok := s.randomValidFoodPosition()
	if !ok {
		// Only possible once the snake covers the whole board.
		return s.finish(Result{Kind: Won}), true
	}
	s.food = food
	return Result{}, false
}

func (s *Simulation) randomValidFoodPosition() (game.Point, bool) {
	return s.board.RandomFreeCell(s.rng, s.snake.Len(), s.snake.Contains)
}

func (s *Simulation) finish(r Result) Result {
	s.result = &r
	return r
}
