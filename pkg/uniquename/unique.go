package uniquename

import (
	"context"
	"slices"
	"strconv"
	"sync"
)

// DefaultMaxSuffix is the largest suffix Unique tries when none is given.
const DefaultMaxSuffix = 1000

// Unique returns name if it is not in existing. Otherwise it returns the
// first of name_1 ... name_maxSuffix that is not in existing. When every
// candidate collides the last one is returned, so the result is only
// guaranteed unique if maxSuffix is large enough.
func Unique(name string, existing []string, maxSuffix int) string {
	if maxSuffix <= 0 {
		maxSuffix = DefaultMaxSuffix
	}
	if !slices.Contains(existing, name) {
		return name
	}

	var out string
	for i := 1; i <= maxSuffix; i++ {
		out = name + "_" + strconv.Itoa(i)
		if !slices.Contains(existing, out) {
			break
		}
	}
	return out
}

// Registry reports whether a name is already taken.
type Registry interface {
	Contains(ctx context.Context, name string) (bool, error)
}

// RegistryFunc adapts a plain function to Registry.
type RegistryFunc func(ctx context.Context, name string) (bool, error)

// Contains calls f.
func (f RegistryFunc) Contains(ctx context.Context, name string) (bool, error) {
	return f(ctx, name)
}

// NameSet is an in-memory Registry.
type NameSet struct {
	mu    sync.RWMutex
	names map[string]struct{}
}

// NewNameSet returns a NameSet holding names.
func NewNameSet(names ...string) *NameSet {
	s := &NameSet{names: make(map[string]struct{}, len(names))}
	s.Add(names...)
	return s
}

// Add marks names as taken.
func (s *NameSet) Add(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range names {
		s.names[n] = struct{}{}
	}
}

// Contains implements Registry. It never fails.
func (s *NameSet) Contains(_ context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.names[name]
	return ok, nil
}

// Len returns the number of names in the set.
func (s *NameSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}
