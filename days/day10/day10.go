// Package day10 chains joltage adapters from the outlet to the device.
package day10

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"github.com/on-the-ground/advent_ive_go/puzzle"
	"github.com/on-the-ground/advent_ive_go/puzzle/input"
	"github.com/on-the-ground/advent_ive_go/tribonacci"
)

var (
	ErrUnsupportedGap = errors.New("joltage gap must be 1 or 3")
	ErrDuplicate      = errors.New("duplicate adapter")
	ErrOutletRating   = errors.New("adapter rated 0 jolts, same as the outlet")
)

// Solver needs an evaluator seeded with the number of ways to cross a run of
// 0, 1 and 2 one-jolt steps, see NewEvaluator. When a tribonacci effect
// handler is present in the context it is used instead.
type Solver struct {
	Ways *tribonacci.Evaluator
}

var _ puzzle.Solver = Solver{}

// NewEvaluator returns an evaluator whose value(k) is the number of ways to
// cross k consecutive one-jolt steps: 1, 1, 2, 4, 7, 13, ...
func NewEvaluator() *tribonacci.Evaluator {
	return tribonacci.NewSeeded(1, 1, 2)
}

func (s Solver) Solve(ctx context.Context, lines []string) (puzzle.Answer, error) {
	adapters, err := input.Ints[uint64](lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	gaps, err := Gaps(adapters)
	if err != nil {
		return puzzle.Answer{}, err
	}

	p2, err := s.Arrangements(ctx, gaps)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 2: %w", err)
	}
	return puzzle.Answer{Part1: GapProduct(gaps), Part2: p2}, nil
}

// Gaps sorts the adapters and returns the differences along the chain, starting
// at the outlet (0) and ending at the device (highest adapter + 3).
func Gaps(adapters []uint64) ([]uint64, error) {
	sorted := slices.Clone(adapters)
	slices.Sort(sorted)

	gaps := make([]uint64, 0, len(sorted)+1)
	var last uint64
	for _, a := range sorted {
		d := a - last
		switch {
		case a == 0:
			return nil, ErrOutletRating
		case d == 0:
			return nil, fmt.Errorf("%w: %d", ErrDuplicate, a)
		case d != 1 && d != 3:
			return nil, fmt.Errorf("%w: %d to %d", ErrUnsupportedGap, last, a)
		}
		gaps = append(gaps, d)
		last = a
	}
	return append(gaps, 3), nil
}

// GapProduct multiplies the number of one-jolt gaps by the number of three-jolt gaps.
func GapProduct(gaps []uint64) uint64 {
	var ones, threes uint64
	for _, g := range gaps {
		switch g {
		case 1:
			ones++
		case 3:
			threes++
		}
	}
	return ones * threes
}

// Arrangements counts the distinct adapter chains. Three-jolt gaps are fixed,
// so the count is the product, over every run of consecutive one-jolt gaps, of
// the ways to cross that run.
func (s Solver) Arrangements(ctx context.Context, gaps []uint64) (uint64, error) {
	total := uint64(1)
	for _, run := range oneRuns(gaps) {
		ways, err := tribonacci.Resolve(ctx, s.Ways, run)
		if err != nil {
			return 0, err
		}
		hi, lo := bits.Mul64(total, ways)
		if hi != 0 {
			return 0, fmt.Errorf("%w: arrangement count", tribonacci.ErrOverflow)
		}
		total = lo
	}
	return total, nil
}

// oneRuns returns the lengths of the runs of consecutive one-jolt gaps.
func oneRuns(gaps []uint64) []uint64 {
	var runs []uint64
	var run uint64
	for _, g := range gaps {
		if g == 1 {
			run++
			continue
		}
		if run > 0 {
			runs = append(runs, run)
		}
		run = 0
	}
	if run > 0 {
		runs = append(runs, run)
	}
	return runs
}
