package pure_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/advent_ive_go/pure"

	"github.com/stretchr/testify/assert"
)

func TestTableizeI1O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestTableizeI2O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI2O1(func(a, b int) int {
		count++
		return a + b
	})

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 7, fn(3, 4))
	assert.Equal(t, 2, count)
}

func TestTableizeI1O2(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	})

	a, b := fn(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a2, b2 := fn(10)
	assert.Equal(t, 10, a2)
	assert.Equal(t, "val", b2)
	assert.Equal(t, 1, count)
}

func TestTableize_RecursiveCallsShareTheTable(t *testing.T) {
	calls := 0
	var fib func(uint) uint
	fib = pure.TableizeI1O1(func(n uint) uint {
		calls++
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	assert.Equal(t, uint(55), fib(10))
	assert.Equal(t, 11, calls) // one call per index 0..10
	assert.Equal(t, uint(6765), fib(20))
	assert.Equal(t, 21, calls)
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestTableizeWithStringerFallback(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(n NonComparable) int {
		count++
		return len(n.Field)
	})

	val := fn(NonComparable{Field: []int{1, 2, 3}})
	val2 := fn(NonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}

type TotallyInvalid struct {
	Field []int
}

func TestTableizeWithPanicIfNoComparableOrStringer(t *testing.T) {
	fn := pure.TableizeI1O1(func(t TotallyInvalid) int {
		return len(t.Field)
	})

	assert.Panics(t, func() {
		_ = fn(TotallyInvalid{Field: []int{1}})
	})
}
