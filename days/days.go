// Package days wires every solved day into a puzzle registry.
package days

import (
	"github.com/on-the-ground/advent_ive_go/days/day01"
	"github.com/on-the-ground/advent_ive_go/days/day10"
	"github.com/on-the-ground/advent_ive_go/days/day12"
	"github.com/on-the-ground/advent_ive_go/puzzle"
	"github.com/on-the-ground/advent_ive_go/tribonacci"
	"go.uber.org/multierr"
)

// Register adds all days to r. ways backs the day 10 arrangement counts and
// is shared with whoever else holds it; see day10.NewEvaluator.
func Register(r *puzzle.Registry, ways *tribonacci.Evaluator) error {
	return multierr.Combine(
		r.Register(1, day01.Solver{}),
		r.Register(10, day10.Solver{Ways: ways}),
		r.Register(12, day12.Solver{}),
	)
}
