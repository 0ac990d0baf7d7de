package collection

import (
	"cmp"
	"iter"
	"slices"
)

// SortedSet is a mutable set kept in ascending order.
// The zero value is an empty set ready to use.
type SortedSet[T cmp.Ordered] struct {
	items []T
}

// NewSortedSet returns a set holding the distinct values of items.
func NewSortedSet[T cmp.Ordered](items ...T) *SortedSet[T] {
	s := &SortedSet[T]{}
	for _, v := range items {
		s.Add(v)
	}

	return s
}

func (*SortedSet[T]) CollectionKind() Kind { return KindSortedSet }

// Add inserts v and reports whether it was absent.
func (s *SortedSet[T]) Add(v T) bool {
	i, found := slices.BinarySearch(s.items, v)
	if found {
		return false
	}

	s.items = slices.Insert(s.items, i, v)
	return true
}

func (s *SortedSet[T]) AddAny(v any) { s.Add(As[T](v)) }

// Remove deletes v and reports whether it was present.
func (s *SortedSet[T]) Remove(v T) bool {
	i, found := slices.BinarySearch(s.items, v)
	if !found {
		return false
	}

	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Has reports whether v is in the set.
func (s *SortedSet[T]) Has(v T) bool {
	_, found := slices.BinarySearch(s.items, v)
	return found
}

func (s *SortedSet[T]) Len() int { return len(s.items) }

// Items returns a copy of the members in ascending order.
func (s *SortedSet[T]) Items() []T { return slices.Clone(s.items) }

// All iterates the members in ascending order.
func (s *SortedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}
