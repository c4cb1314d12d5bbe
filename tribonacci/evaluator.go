package tribonacci

import (
	"errors"
	"fmt"
	"math/bits"
	"sync/atomic"

	"github.com/on-the-ground/advent_ive_go/pure"
)

// ErrOverflow is returned when a value does not fit in a uint64.
var ErrOverflow = errors.New("tribonacci value overflows uint64")

// Evaluator owns the cache of computed values. The zero value is not usable; use New.
type Evaluator struct {
	seeds    [3]uint64
	cache    *pure.Table[uint64, uint64]
	computed atomic.Uint64
}

// New returns an evaluator with value(n) = n for n in {0, 1, 2}.
func New() *Evaluator {
	return NewSeeded(0, 1, 2)
}

// NewSeeded returns an evaluator whose first three values are s0, s1 and s2.
func NewSeeded(s0, s1, s2 uint64) *Evaluator {
	return &Evaluator{
		seeds: [3]uint64{s0, s1, s2},
		cache: pure.NewTable[uint64, uint64](),
	}
}

// Evaluate returns value(n).
//
// Indices 0, 1 and 2 are answered from the seeds. Anything else is a cache hit, or is
// filled bottom-up from the highest cached index, storing every intermediate
// index once. The cache lock is taken per lookup and per insert only.
func (e *Evaluator) Evaluate(n uint64) (uint64, error) {
	if n <= 2 {
		return e.seeds[n], nil
	}
	if v, ok := e.cache.Load(n); ok {
		return v, nil
	}

	top := e.highestCachedBelow(n)
	a, b, c := e.valueAt(top-2), e.valueAt(top-1), e.valueAt(top)
	for k := top + 1; k <= n; k++ {
		next, err := add3(a, b, c)
		if err != nil {
			return 0, fmt.Errorf("evaluate(%d): %w at index %d", n, err, k)
		}
		resident, stored := e.cache.StoreIfAbsent(k, next)
		if stored {
			e.computed.Add(1)
		}
		a, b, c = b, c, resident
	}
	return c, nil
}

// highestCachedBelow returns the largest index below n whose value is known
// without computing, which is at least 2.
//
// Values are only ever stored in ascending runs that start from three known
// neighbours, so the cache always holds exactly the indices 3 through Len()+2.
func (e *Evaluator) highestCachedBelow(n uint64) uint64 {
	top := uint64(e.cache.Len()) + 2
	return min(top, n-1)
}

// valueAt returns a value that is known to be a seed or cached.
func (e *Evaluator) valueAt(k uint64) uint64 {
	if k <= 2 {
		return e.seeds[k]
	}
	v, ok := e.cache.Load(k)
	if !ok {
		panic(fmt.Sprintf("tribonacci: index %d expected in cache", k))
	}
	return v
}

// Len returns the number of cached indices.
func (e *Evaluator) Len() int {
	return e.cache.Len()
}

// Computed returns how many values this evaluator computed and cached.
// Racing callers may compute the same index; only the stored one counts.
func (e *Evaluator) Computed() uint64 {
	return e.computed.Load()
}

func add3(a, b, c uint64) (uint64, error) {
	s, carry1 := bits.Add64(a, b, 0)
	s, carry2 := bits.Add64(s, c, 0)
	if carry1|carry2 != 0 {
		return 0, ErrOverflow
	}
	return s, nil
}
