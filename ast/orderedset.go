package ast

// orderedSet keeps the first-seen order of its elements. Qualifier rendering
// depends on that order.
type orderedSet[T comparable] struct {
	items []T
	index map[T]int
}

func newOrderedSet[T comparable](items ...T) *orderedSet[T] {
	s := &orderedSet[T]{index: make(map[T]int, len(items))}
	for _, it := range items {
		s.add(it)
	}
	return s
}

func (s *orderedSet[T]) add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = len(s.items)
	s.items = append(s.items, item)
	return true
}

func (s *orderedSet[T]) has(item T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[item]
	return ok
}

func (s *orderedSet[T]) len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *orderedSet[T]) values() []T {
	if s == nil {
		return nil
	}
	return s.items
}

func (s *orderedSet[T]) copy() *orderedSet[T] {
	return newOrderedSet(s.values()...)
}

func (s *orderedSet[T]) union(other *orderedSet[T]) *orderedSet[T] {
	out := s.copy()
	for _, it := range other.values() {
		out.add(it)
	}
	return out
}

func (s *orderedSet[T]) intersect(other *orderedSet[T]) *orderedSet[T] {
	out := newOrderedSet[T]()
	for _, it := range s.values() {
		if other.has(it) {
			out.add(it)
		}
	}
	return out
}

// symmetricDifference keeps the left elements missing on the right, then the
// right elements missing on the left.
func (s *orderedSet[T]) symmetricDifference(other *orderedSet[T]) *orderedSet[T] {
	out := newOrderedSet[T]()
	for _, it := range s.values() {
		if !other.has(it) {
			out.add(it)
		}
	}
	for _, it := range other.values() {
		if !s.has(it) {
			out.add(it)
		}
	}
	return out
}

func (s *orderedSet[T]) isSubsetOf(other *orderedSet[T]) bool {
	for _, it := range s.values() {
		if !other.has(it) {
			return false
		}
	}
	return true
}

func (s *orderedSet[T]) setEquals(other *orderedSet[T]) bool {
	return s.len() == other.len() && s.isSubsetOf(other)
}
