package trie

import "sync"

// Trie maps string keys to values of type T.
type Trie[T any] struct {
	mux   sync.Mutex
	root  *Node[T]
	size  int
	clone func(T) T
}

// Option customises a Trie at construction time.
type Option[T any] func(*Trie[T])

// WithClone sets the function used to copy a stored value before Get returns
// it.  Use it for reference-like values (maps, slices, pointers) so callers
// never share mutable state with the table.
func WithClone[T any](fn func(T) T) Option[T] {
	return func(t *Trie[T]) {
		t.clone = fn
	}
}

// New creates an empty Trie.
func New[T any](opts ...Option[T]) *Trie[T] {
	t := &Trie[T]{root: newNode[T]()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Insert stores value under key, replacing any previous value for the same
// key.  The empty key is stored on the root.
func (t *Trie[T]) Insert(key string, value T) {
	t.Put(key, value)
}

// Put is Insert that also returns the number of keys stored right after the
// insert, observed inside the same critical section.
func (t *Trie[T]) Put(key string, value T) int {
	t.mux.Lock()
	defer t.mux.Unlock()
	node := t.root
	for _, r := range key {
		node = node.child(r)
	}
	if node.value == nil {
		t.size++
	}
	node.value = &value
	return t.size
}

// Get returns a copy of the value stored under key.  The second result is
// false when key was never inserted, including when key is only a prefix of
// longer inserted keys.
func (t *Trie[T]) Get(key string) (T, bool) {
	t.mux.Lock()
	defer t.mux.Unlock()
	var zero T
	node := t.root.lookup(key)
	if node == nil || !node.Terminal() {
		return zero, false
	}
	if t.clone != nil {
		return t.clone(*node.value), true
	}
	return *node.value, true
}

// Len returns the number of distinct keys stored.
func (t *Trie[T]) Len() int {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.size
}
