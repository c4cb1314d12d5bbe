package pure_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/advent_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestTable_WriteOnce(t *testing.T) {
	table := pure.NewTable[string, int]()

	_, ok := table.Load("a")
	assert.False(t, ok)

	v, stored := table.StoreIfAbsent("a", 1)
	assert.True(t, stored)
	assert.Equal(t, 1, v)

	// second store keeps the first value
	v, stored = table.StoreIfAbsent("a", 2)
	assert.False(t, stored)
	assert.Equal(t, 1, v)

	v, ok = table.Load("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"a"}, table.Keys())
}

func TestTable_ConcurrentStoresKeepOneEntryPerKey(t *testing.T) {
	table := pure.NewTable[int, int]()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		stores = make(map[int]int)
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, stored := table.StoreIfAbsent(i%20, i); stored {
				mu.Lock()
				stores[i%20]++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, table.Len())
	for k := 0; k < 20; k++ {
		assert.Equal(t, 1, stores[k], "key %d", k)
		v, _ := table.Load(k)
		assert.Equal(t, k, v%20)
	}
}
