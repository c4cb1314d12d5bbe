// Package day12 steers a ferry by navigation instructions.
package day12

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/on-the-ground/advent_ive_go/puzzle"
	"github.com/on-the-ground/advent_ive_go/puzzle/geom"
	"github.com/on-the-ground/advent_ive_go/puzzle/input"
)

type Action byte

const (
	North   Action = 'N'
	South   Action = 'S'
	East    Action = 'E'
	West    Action = 'W'
	Left    Action = 'L'
	Right   Action = 'R'
	Forward Action = 'F'
)

var (
	ErrEmptyInstruction = errors.New("empty instruction")
	ErrUnknownAction    = errors.New("unknown action")
)

// Instruction is one navigation step. For Left and Right, Value holds quarter turns.
type Instruction struct {
	Action Action
	Value  int
}

// ParseInstruction parses lines such as "F10" or "R90".
// Turns that are not whole quarter turns are rejected.
func ParseInstruction(s string) (Instruction, error) {
	if s == "" {
		return Instruction{}, ErrEmptyInstruction
	}
	action := Action(s[0])
	n, err := strconv.ParseUint(s[1:], 10, 31)
	if err != nil {
		return Instruction{}, err
	}
	value := int(n)

	switch action {
	case North, South, East, West, Forward:
	case Left, Right:
		if value, err = geom.QuarterTurns(value); err != nil {
			return Instruction{}, err
		}
	default:
		return Instruction{}, fmt.Errorf("%w: %q", ErrUnknownAction, s[0])
	}
	return Instruction{Action: action, Value: value}, nil
}

func direction(a Action) geom.Vec {
	switch a {
	case North:
		return geom.North
	case South:
		return geom.South
	case East:
		return geom.East
	case West:
		return geom.West
	}
	return geom.Vec{}
}

type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Solve(_ context.Context, lines []string) (puzzle.Answer, error) {
	instructions, err := input.ParseEach(lines, ParseInstruction)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: Steer(instructions).Manhattan(),
		Part2: FollowWaypoint(instructions).Manhattan(),
	}, nil
}

// Steer moves the ship itself: compass actions move it, turns change its
// heading, which starts East, and Forward moves it along the heading.
func Steer(instructions []Instruction) geom.Vec {
	var ship geom.Vec
	heading := geom.East
	for _, in := range instructions {
		switch in.Action {
		case Left:
			heading = heading.RotateLeft(in.Value)
		case Right:
			heading = heading.RotateRight(in.Value)
		case Forward:
			ship = ship.Add(heading.Scale(in.Value))
		default:
			ship = ship.Add(direction(in.Action).Scale(in.Value))
		}
	}
	return ship
}

// FollowWaypoint moves a waypoint, relative to the ship and starting at (10,1):
// compass actions move the waypoint, turns rotate it about the ship, and
// Forward moves the ship to the waypoint Value times.
func FollowWaypoint(instructions []Instruction) geom.Vec {
	var ship geom.Vec
	waypoint := geom.Vec{X: 10, Y: 1}
	for _, in := range instructions {
		switch in.Action {
		case Left:
			waypoint = waypoint.RotateLeft(in.Value)
		case Right:
			waypoint = waypoint.RotateRight(in.Value)
		case Forward:
			ship = ship.Add(waypoint.Scale(in.Value))
		default:
			waypoint = waypoint.Add(direction(in.Action).Scale(in.Value))
		}
	}
	return ship
}
