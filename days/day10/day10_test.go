package day10_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/on-the-ground/advent_ive_go/days/day10"
	"github.com/on-the-ground/advent_ive_go/effects"
	"github.com/on-the-ground/advent_ive_go/tribonacci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallSample = `16
10
15
5
1
11
7
19
6
12
4`

const largeSample = `28
33
18
42
31
14
46
20
48
47
24
23
49
45
19
38
39
11
1
32
25
35
8
17
7
9
4
2
34
10
3`

func TestSolve_SmallSample(t *testing.T) {
	s := day10.Solver{Ways: day10.NewEvaluator()}
	answer, err := s.Solve(context.Background(), strings.Split(smallSample, "\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(7*5), answer.Part1)
	assert.Equal(t, uint64(8), answer.Part2)
}

func TestSolve_LargeSample(t *testing.T) {
	s := day10.Solver{Ways: day10.NewEvaluator()}
	answer, err := s.Solve(context.Background(), strings.Split(largeSample, "\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(220), answer.Part1)
	assert.Equal(t, uint64(19208), answer.Part2)
}

func TestSolve_ThroughEffectHandler(t *testing.T) {
	ways := day10.NewEvaluator()
	ctx, end := tribonacci.WithEffectHandler(context.Background(), effects.NewEffectScopeConfig(4, 2), ways)
	defer end()

	// the solver's own evaluator is not consulted when a handler is present
	s := day10.Solver{Ways: day10.NewEvaluator()}
	answer, err := s.Solve(ctx, strings.Split(largeSample, "\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(19208), answer.Part2)
	assert.Equal(t, 2, ways.Len()) // runs of 3 and 4 needed computing
	assert.Equal(t, 0, s.Ways.Len())
}

func TestSolve_SharedEvaluatorIsReused(t *testing.T) {
	s := day10.Solver{Ways: day10.NewEvaluator()}
	_, err := s.Solve(context.Background(), strings.Split(largeSample, "\n"))
	require.NoError(t, err)
	computed := s.Ways.Computed()

	_, err = s.Solve(context.Background(), strings.Split(largeSample, "\n"))
	require.NoError(t, err)
	assert.Equal(t, computed, s.Ways.Computed())
}

func TestGaps(t *testing.T) {
	gaps, err := day10.Gaps([]uint64{4, 1, 5})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3, 1, 3}, gaps)
	assert.Equal(t, uint64(4), day10.GapProduct(gaps))

	_, err = day10.Gaps([]uint64{1, 3})
	assert.ErrorIs(t, err, day10.ErrUnsupportedGap)

	_, err = day10.Gaps([]uint64{1, 1})
	assert.ErrorIs(t, err, day10.ErrDuplicate)

	_, err = day10.Gaps([]uint64{3, 0, 1})
	assert.ErrorIs(t, err, day10.ErrOutletRating)
	assert.NotErrorIs(t, err, day10.ErrDuplicate)
}

func TestSolve_RejectsAdapterAtOutlet(t *testing.T) {
	s := day10.Solver{Ways: day10.NewEvaluator()}
	_, err := s.Solve(context.Background(), []string{"1", "0", "4"})
	assert.ErrorIs(t, err, day10.ErrOutletRating)
}

func TestSolve_OverflowPropagates(t *testing.T) {
	// a single run of 100 one-jolt steps has more arrangements than a uint64 holds
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = strconv.Itoa(i + 1)
	}
	_, err := day10.Solver{Ways: day10.NewEvaluator()}.Solve(context.Background(), lines)
	assert.ErrorIs(t, err, tribonacci.ErrOverflow)
}

