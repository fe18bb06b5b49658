package search

import (
	"sort"
	"sync"
)

// Set is a set of unique candidate strings, safe for concurrent use.
// Parallel generative workers each fill their own Set, merged into the
// result once they finish.
type Set struct {
	mu    sync.RWMutex
	items map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{items: make(map[string]struct{})}
}

// Add inserts s and reports whether it was new.
func (st *Set) Add(s string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.items[s]; ok {
		return false
	}
	st.items[s] = struct{}{}

	return true
}

// Contains reports whether s is in the set.
func (st *Set) Contains(s string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()

	_, ok := st.items[s]

	return ok
}

// Len returns the number of unique strings.
func (st *Set) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.items)
}

// Merge adds every string of other into st.
func (st *Set) Merge(other *Set) {
	if other == nil || other == st {
		return
	}
	items := other.Sorted()

	st.mu.Lock()
	defer st.mu.Unlock()
	for _, s := range items {
		st.items[s] = struct{}{}
	}
}

// Sorted returns the contents in ascending order.
//
// Complexity: O(n log n).
func (st *Set) Sorted() []string {
	st.mu.RLock()
	out := make([]string, 0, len(st.items))
	for s := range st.items {
		out = append(out, s)
	}
	st.mu.RUnlock()

	sort.Strings(out)

	return out
}
