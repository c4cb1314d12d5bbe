package pure

import "sync"

// Table is a write-once memo table: the first value stored under a key stays
// there for the lifetime of the table. It is safe for concurrent use.
type Table[K comparable, V any] struct {
	mu   sync.Mutex
	memo map[K]V
}

// NewTable returns an empty table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{memo: make(map[K]V)}
}

// Load returns the value stored under k, if any.
func (t *Table[K, V]) Load(k K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.memo[k]
	return v, ok
}

// StoreIfAbsent stores v under k unless k is already present.
// It returns the value resident after the call and whether this call stored it.
func (t *Table[K, V]) StoreIfAbsent(k K, v V) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cur, ok := t.memo[k]; ok {
		return cur, false
	}
	t.memo[k] = v
	return v, true
}

// Len returns the number of stored keys.
func (t *Table[K, V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.memo)
}

// Keys returns a snapshot of the stored keys in no particular order.
func (t *Table[K, V]) Keys() []K {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]K, 0, len(t.memo))
	for k := range t.memo {
		keys = append(keys, k)
	}
	return keys
}
