// Package game defines the board, snake and coordinate types used by the
// simulation.
//
// Coordinates are screen coordinates: X grows to the right and Y grows
// downwards, so moving Up decreases Y.
package game

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vector2 is a 2D integer point or displacement.
type Vector2[T constraints.Signed] struct {
	X T
	Y T
}

// Point is a board coordinate.
type Point = Vector2[int]

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{X: -v.X, Y: -v.Y}
}

// Scale multiplies both components by k.
func (v Vector2[T]) Scale(k T) Vector2[T] {
	return Vector2[T]{X: v.X * k, Y: v.Y * k}
}

// Div divides both components by k, truncating toward zero.
func (v Vector2[T]) Div(k T) Vector2[T] {
	return Vector2[T]{X: v.X / k, Y: v.Y / k}
}

// Neighbour returns v shifted by magnitude cells in direction d.
// A negative magnitude shifts the opposite way.
func (v Vector2[T]) Neighbour(d Direction, magnitude T) Vector2[T] {
	v.Move(d, magnitude)
	return v
}

// Move shifts v in place by magnitude cells in direction d.
func (v *Vector2[T]) Move(d Direction, magnitude T) {
	switch d {
	case Up:
		v.Y -= magnitude
	case Down:
		v.Y += magnitude
	case Left:
		v.X -= magnitude
	case Right:
		v.X += magnitude
	}
}

// Compare orders vectors row-major: by Y, then by X.
func (v Vector2[T]) Compare(o Vector2[T]) int {
	if c := cmp.Compare(v.Y, o.Y); c != 0 {
		return c
	}
	return cmp.Compare(v.X, o.X)
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
