package inmemory

import (
	"errors"
	"sync"
)

var errDuplicateID = errors.New("duplicate id")

// orderedStore keeps records keyed by id in an explicit order. All access goes
// through one RWMutex, so operations on a collection apply one at a time.
// Values are cloned on the way in and out; callers never share stored state.
type orderedStore[T any] struct {
	mu    sync.RWMutex
	ids   []string
	items map[string]T
	clone func(T) T
}

func newOrderedStore[T any](clone func(T) T) *orderedStore[T] {
	if clone == nil {
		clone = func(value T) T { return value }
	}
	return &orderedStore[T]{
		items: make(map[string]T),
		clone: clone,
	}
}

func (s *orderedStore[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.ids))
	for _, id := range s.ids {
		result = append(result, s.clone(s.items[id]))
	}
	return result
}

func (s *orderedStore[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.clone(value), true
}

func (s *orderedStore[T]) pushFront(id string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return errDuplicateID
	}
	s.items[id] = s.clone(value)
	s.ids = append([]string{id}, s.ids...)
	return nil
}

func (s *orderedStore[T]) pushBack(id string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return errDuplicateID
	}
	s.items[id] = s.clone(value)
	s.ids = append(s.ids, id)
	return nil
}

// update mutates the stored value in place; its position does not change.
func (s *orderedStore[T]) update(id string, fn func(*T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&value)
	s.items[id] = s.clone(value)
	return s.clone(value), true
}

func (s *orderedStore[T]) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

func (s *orderedStore[T]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
