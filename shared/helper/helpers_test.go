package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/advent_ive_go/shared/helper"
	"github.com/stretchr/testify/assert"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 42, nil })
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = helper.GetTypedValueOf[string](func() (any, error) { return 42, nil })
	assert.ErrorContains(t, err, "unexpected type: int")

	boom := errors.New("boom")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestGetTypedValueOf2(t *testing.T) {
	v, ok := helper.GetTypedValueOf2[string](func() (any, bool) { return "x", true })
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = helper.GetTypedValueOf2[string](func() (any, bool) { return 1, true })
	assert.False(t, ok)

	_, ok = helper.GetTypedValueOf2[string](func() (any, bool) { return nil, false })
	assert.False(t, ok)
}

func TestMustHelpersPanic(t *testing.T) {
	boom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() { helper.MustDo(boom) })
	assert.Panics(t, func() { helper.MustGet(0, boom) })
	assert.Panics(t, func() {
		helper.MustGetTypedValue[int](func() (any, error) { return "nope", nil })
	})
	assert.Equal(t, 7, helper.MustGet(7, nil))
}
