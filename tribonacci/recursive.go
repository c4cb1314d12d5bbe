package tribonacci

import (
	"fmt"

	"github.com/on-the-ground/advent_ive_go/pure"
)

// LastFittingIndex is the largest n for which New().Evaluate(n) fits in a uint64.
const LastFittingIndex = 73

// Recursive returns the textbook top-down form: base cases answered directly,
// every other index looked up in a private table or computed from its three
// predecessors and stored. Indices past LastFittingIndex fail with ErrOverflow
// before recursing, so the depth stays bounded; prefer Evaluator.
func Recursive() func(uint64) (uint64, error) {
	var eval func(uint64) (uint64, error)
	memo := pure.TableizeI1O2(func(n uint64) (uint64, error) {
		var terms [3]uint64
		for i := range terms {
			v, err := eval(n - uint64(i) - 1)
			if err != nil {
				return 0, err
			}
			terms[i] = v
		}
		sum, err := add3(terms[0], terms[1], terms[2])
		if err != nil {
			return 0, fmt.Errorf("%w at index %d", err, n)
		}
		return sum, nil
	})
	eval = func(n uint64) (uint64, error) {
		switch {
		case n <= 2:
			return n, nil
		case n > LastFittingIndex:
			return 0, fmt.Errorf("%w at index %d", ErrOverflow, LastFittingIndex+1)
		}
		return memo(n)
	}
	return eval
}
