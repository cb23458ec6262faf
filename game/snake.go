package game

import (
	"fmt"
	"iter"
)

// SnakeView is the read-only surface of a Snake handed to renderers.
type SnakeView interface {
	Facing() Direction
	Len() int
	Head() Point
	Tail() Point
	Body() iter.Seq[Point]
	Contains(p Point) bool
}

// Snake is an ordered chain of cells with a facing direction.
//
// body and counts must only change together through pushHead and popTail.
// counts[p] is the number of times p appears in body; a point can appear
// more than once while the snake is growing over itself.
type Snake struct {
	facing Direction
	// lastMove is the direction applied by the most recent Advance. Reversal
	// is checked against it rather than facing so two quick 90 degree turns
	// cannot fold the snake back onto its neck.
	lastMove Direction

	// Stored tail first: body[0] is the tail, body[len-1] the head.
	body   []Point
	counts map[Point]int
}

var _ SnakeView = (*Snake)(nil)

// NewSnake creates a snake of length 1 at head, facing facing.
func NewSnake(head Point, facing Direction) *Snake {
	s := &Snake{
		facing:   facing,
		lastMove: facing,
		body:     make([]Point, 0, 16),
		counts:   make(map[Point]int, 16),
	}
	s.pushHead(head)
	return s
}

// Clone returns a deep copy; advancing one never moves the other.
func (s *Snake) Clone() *Snake {
	out := &Snake{
		facing:   s.facing,
		lastMove: s.lastMove,
		body:     make([]Point, len(s.body), max(len(s.body), 16)),
		counts:   make(map[Point]int, len(s.counts)),
	}
	copy(out.body, s.body)
	for p, n := range s.counts {
		out.counts[p] = n
	}
	return out
}

func (s *Snake) Facing() Direction { return s.facing }

// LastMoveDirection is the direction the snake moved on its last Advance.
func (s *Snake) LastMoveDirection() Direction { return s.lastMove }

func (s *Snake) Len() int { return len(s.body) }

func (s *Snake) Head() Point {
	if len(s.body) == 0 {
		panic("snake is headless")
	}
	return s.body[len(s.body)-1]
}

func (s *Snake) Tail() Point {
	if len(s.body) == 0 {
		panic("snake is tailless")
	}
	return s.body[0]
}

// Body yields the segments from head to tail.
func (s *Snake) Body() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := len(s.body) - 1; i >= 0; i-- {
			if !yield(s.body[i]) {
				return
			}
		}
	}
}

func (s *Snake) Contains(p Point) bool {
	_, ok := s.counts[p]
	return ok
}

// NextHeadPosition is where the head will be after the next Advance.
func (s *Snake) NextHeadPosition() Point {
	return s.Head().Neighbour(s.facing, 1)
}

// TrySetFacing stages a new facing for the next Advance. It is rejected when
// d would reverse the snake onto the direction it last moved, and the staged
// facing is left untouched in that case.
func (s *Snake) TrySetFacing(d Direction) bool {
	if d == s.lastMove.Flip() {
		return false
	}
	s.facing = d
	return true
}

// Advance moves the head one cell along facing. The tail is dropped unless
// consumedFood, in which case the snake grows by one.
func (s *Snake) Advance(consumedFood bool) {
	// Computed before popping so a length 1 snake still has a head to read.
	next := s.NextHeadPosition()

	if !consumedFood {
		s.popTail()
	}
	s.pushHead(next)
	s.lastMove = s.facing
}

func (s *Snake) pushHead(p Point) {
	s.body = append(s.body, p)
	s.counts[p]++
}

func (s *Snake) popTail() {
	if len(s.body) == 0 {
		return
	}
	tail := s.body[0]
	s.body = s.body[1:]

	n, ok := s.counts[tail]
	switch {
	case !ok:
		panic(fmt.Sprintf("snake body and occupancy diverged at %v", tail))
	case n <= 1:
		delete(s.counts, tail)
	default:
		s.counts[tail] = n - 1
	}
}
