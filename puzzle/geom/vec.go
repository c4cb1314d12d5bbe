// Package geom has the small integer vector type used for grid movement.
// X grows to the East and Y to the North.
package geom

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

type Vec2[T constraints.Signed] struct {
	X, Y T
}

type Vec = Vec2[int]

var (
	North = Vec{0, 1}
	South = Vec{0, -1}
	East  = Vec{1, 0}
	West  = Vec{-1, 0}
)

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

func (a Vec2[T]) Scale(k T) Vec2[T] {
	return Vec2[T]{a.X * k, a.Y * k}
}

// RotateLeft rotates a counter-clockwise about the origin by quarter turns of 90°.
// Negative turns rotate clockwise.
func (a Vec2[T]) RotateLeft(quarterTurns int) Vec2[T] {
	switch ((quarterTurns % 4) + 4) % 4 {
	case 1:
		return Vec2[T]{-a.Y, a.X}
	case 2:
		return Vec2[T]{-a.X, -a.Y}
	case 3:
		return Vec2[T]{a.Y, -a.X}
	default:
		return a
	}
}

// RotateRight rotates a clockwise about the origin by quarter turns of 90°.
func (a Vec2[T]) RotateRight(quarterTurns int) Vec2[T] {
	return a.RotateLeft(-quarterTurns)
}

// Manhattan returns |X| + |Y|.
func (a Vec2[T]) Manhattan() T {
	return abs(a.X) + abs(a.Y)
}

func (a Vec2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", a.X, a.Y)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// ErrBadTurn reports a rotation that is not a whole number of quarter turns.
var ErrBadTurn = errors.New("turn is not a multiple of 90 degrees")

// QuarterTurns converts degrees to quarter turns.
func QuarterTurns(degrees int) (int, error) {
	if degrees%90 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadTurn, degrees)
	}
	return degrees / 90, nil
}
