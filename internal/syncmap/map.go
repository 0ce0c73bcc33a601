package syncmap

import (
	"sort"
	"sync"
)

// Map is a thread-safe name to value registry
type Map[T any] struct {
	mux sync.RWMutex
	m   map[string]T
}

// New creates an empty Map
func New[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get returns the value registered under name
func (r *Map[T]) Get(name string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[name]
	return v, ok
}

// Put adds or replaces the value registered under name
func (r *Map[T]) Put(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[name] = value
}

// GetOrCreate returns the value registered under name, calling create and
// registering its result when absent.  create runs at most once per name.
func (r *Map[T]) GetOrCreate(name string, create func() T) T {
	if v, ok := r.Get(name); ok {
		return v
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if v, ok := r.m[name]; ok {
		return v
	}
	v := create()
	r.m[name] = v
	return v
}

// Keys returns registered names in ascending order
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	ret := make([]string, 0, len(r.m))
	for k := range r.m {
		ret = append(ret, k)
	}
	r.mux.RUnlock()
	sort.Strings(ret)
	return ret
}
