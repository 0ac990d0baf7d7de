package immutable

import (
	"cmp"
	"iter"
	"slices"

	"schema-caster/collection"
)

// SortedSet is an immutable set iterated in ascending order.
type SortedSet[T cmp.Ordered] struct {
	items []T
}

// NewSortedSet returns a set holding the distinct values of items.
func NewSortedSet[T cmp.Ordered](items ...T) SortedSet[T] {
	return SortedSet[T]{items: sortedUnique(slices.Clone(items))}
}

func (SortedSet[T]) CollectionKind() collection.Kind { return collection.KindImmutableSortedSet }

func (SortedSet[T]) NewBuilder(capacity int) collection.Builder {
	return &SortedSetBuilder[T]{items: make([]T, 0, capacity)}
}

func (s SortedSet[T]) Len() int { return len(s.items) }

// Has reports whether v is in the set.
func (s SortedSet[T]) Has(v T) bool {
	_, found := slices.BinarySearch(s.items, v)
	return found
}

// Add returns a set that also holds v.
func (s SortedSet[T]) Add(v T) SortedSet[T] {
	i, found := slices.BinarySearch(s.items, v)
	if found {
		return s
	}

	items := make([]T, 0, len(s.items)+1)
	items = append(items, s.items[:i]...)
	items = append(items, v)
	items = append(items, s.items[i:]...)

	return SortedSet[T]{items: items}
}

// Min returns the smallest member.
func (s SortedSet[T]) Min() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[0], true
}

// Max returns the largest member.
func (s SortedSet[T]) Max() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Items returns a copy of the members in ascending order.
func (s SortedSet[T]) Items() []T { return slices.Clone(s.items) }

func (s SortedSet[T]) All() iter.Seq[T] { return values(s.items) }

// SortedSetBuilder accumulates members for a SortedSet.
type SortedSetBuilder[T cmp.Ordered] struct {
	items []T
}

// Add inserts v in order unless it is already a member.
func (b *SortedSetBuilder[T]) Add(v T) {
	if i, found := slices.BinarySearch(b.items, v); !found {
		b.items = slices.Insert(b.items, i, v)
	}
}

func (b *SortedSetBuilder[T]) AddAny(v any) { b.Add(collection.As[T](v)) }

// Len returns the number of distinct members added so far.
func (b *SortedSetBuilder[T]) Len() int { return len(b.items) }

// SortedSet hands the accumulated members over to a new SortedSet and resets
// the builder.
func (b *SortedSetBuilder[T]) SortedSet() SortedSet[T] {
	s := SortedSet[T]{items: slices.Clip(b.items)}
	b.items = nil
	return s
}

func (b *SortedSetBuilder[T]) BuildAny() any { return b.SortedSet() }

func sortedUnique[T cmp.Ordered](items []T) []T {
	slices.Sort(items)
	return slices.Compact(items)
}
