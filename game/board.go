package game

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"
)

// ErrInvalidBounds is returned when a board range is empty or reversed.
var ErrInvalidBounds = errors.New("board range must satisfy lo < hi")

// Board is an immutable rectangle of cells with half-open bounds
// MinX <= x < MaxX and MinY <= y < MaxY.
type Board struct {
	minX, maxX int
	minY, maxY int
}

// NewBoard builds a board from [lo, hi) ranges on each axis.
func NewBoard(x, y [2]int) (Board, error) {
	if x[0] >= x[1] {
		return Board{}, fmt.Errorf("x range [%d, %d): %w", x[0], x[1], ErrInvalidBounds)
	}
	if y[0] >= y[1] {
		return Board{}, fmt.Errorf("y range [%d, %d): %w", y[0], y[1], ErrInvalidBounds)
	}
	return Board{minX: x[0], maxX: x[1], minY: y[0], maxY: y[1]}, nil
}

// MustNewBoard is NewBoard that panics on invalid ranges.
func MustNewBoard(x, y [2]int) Board {
	b, err := NewBoard(x, y)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) MinX() int { return b.minX }
func (b Board) MaxX() int { return b.maxX }
func (b Board) MinY() int { return b.minY }
func (b Board) MaxY() int { return b.maxY }

func (b Board) Width() int  { return b.maxX - b.minX }
func (b Board) Height() int { return b.maxY - b.minY }

// Area is the number of cells on the board.
func (b Board) Area() int { return b.Width() * b.Height() }

// XRange returns the [lo, hi) range of valid x coordinates.
func (b Board) XRange() (lo, hi int) { return b.minX, b.maxX }

// YRange returns the [lo, hi) range of valid y coordinates.
func (b Board) YRange() (lo, hi int) { return b.minY, b.maxY }

func (b Board) Contains(p Point) bool {
	return p.X >= b.minX && p.X < b.maxX && p.Y >= b.minY && p.Y < b.maxY
}

// Cells yields every cell in row-major order (y outer, x inner).
func (b Board) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := b.minY; y < b.maxY; y++ {
			for x := b.minX; x < b.maxX; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// RandomFreeCell picks a cell for which isTaken is false.
//
// takenCellCount must equal the number of cells isTaken reports as taken over
// the whole board. When it does, a free cell is always found if one exists and
// every free cell is equally likely. An undercount can make the scan run out
// before reaching the chosen index, in which case ok is false even though free
// cells remain.
func (b Board) RandomFreeCell(rng *rand.Rand, takenCellCount int, isTaken func(Point) bool) (cell Point, ok bool) {
	freeCells := b.Area() - takenCellCount
	if freeCells <= 0 {
		return Point{}, false
	}

	target := rng.Intn(freeCells)
	for c := range b.Cells() {
		if isTaken(c) {
			continue
		}
		if target == 0 {
			return c, true
		}
		target--
	}
	return Point{}, false
}
