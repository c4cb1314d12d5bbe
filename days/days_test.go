package days_test

import (
	"testing"

	"github.com/on-the-ground/advent_ive_go/days"
	"github.com/on-the-ground/advent_ive_go/days/day10"
	"github.com/on-the-ground/advent_ive_go/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := puzzle.NewRegistry()
	require.NoError(t, days.Register(r, day10.NewEvaluator()))
	assert.Equal(t, []int{1, 10, 12}, r.Days())

	err := days.Register(r, day10.NewEvaluator())
	assert.ErrorIs(t, err, puzzle.ErrDuplicateDay)
}
