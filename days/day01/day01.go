// Package day01 finds the entries of an expense report that sum to a target.
package day01

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/advent_ive_go/puzzle"
	"github.com/on-the-ground/advent_ive_go/puzzle/input"
)

const Target = 2020

var ErrNoSolution = errors.New("no entries sum to the target")

// Solver answers with the product of the two, then the three, entries summing to Target.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Solve(_ context.Context, lines []string) (puzzle.Answer, error) {
	entries, err := input.Ints[int64](lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	set := make(map[int64]struct{}, len(entries))
	for _, e := range entries {
		set[e] = struct{}{}
	}

	p1, err := PairProduct(set, Target)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 1: %w", err)
	}
	p2, err := TripleProduct(set, Target)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 2: %w", err)
	}
	return puzzle.Answer{Part1: p1, Part2: p2}, nil
}

// PairProduct returns u*v for distinct entries u and v with u+v == target.
func PairProduct(entries map[int64]struct{}, target int64) (int64, error) {
	for v := range entries {
		u := target - v
		if u == v {
			continue
		}
		if _, ok := entries[u]; ok {
			return u * v, nil
		}
	}
	return 0, ErrNoSolution
}

// TripleProduct returns i*j*u for distinct entries with i+j+u == target.
func TripleProduct(entries map[int64]struct{}, target int64) (int64, error) {
	for i := range entries {
		for j := range entries {
			if i == j || i+j >= target {
				continue
			}
			u := target - i - j
			if u == i || u == j {
				continue
			}
			if _, ok := entries[u]; ok {
				return i * j * u, nil
			}
		}
	}
	return 0, ErrNoSolution
}
