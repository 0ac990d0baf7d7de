package immutable

import (
	"iter"
	"maps"

	"schema-caster/collection"
)

// Set is an immutable hash set. Iteration order is unspecified.
type Set[T comparable] struct {
	m map[T]struct{}
}

// NewSet returns a set holding the distinct values of items.
func NewSet[T comparable](items ...T) Set[T] {
	m := make(map[T]struct{}, len(items))
	for _, v := range items {
		m[v] = struct{}{}
	}

	return Set[T]{m: m}
}

func (Set[T]) CollectionKind() collection.Kind { return collection.KindImmutableSet }

func (Set[T]) NewBuilder(capacity int) collection.Builder {
	return &SetBuilder[T]{m: make(map[T]struct{}, capacity)}
}

func (s Set[T]) Len() int { return len(s.m) }

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s.m[v]
	return ok
}

// Add returns a set that also holds v.
func (s Set[T]) Add(v T) Set[T] {
	if s.Has(v) {
		return s
	}

	m := maps.Clone(s.m)
	if m == nil {
		m = make(map[T]struct{}, 1)
	}
	m[v] = struct{}{}

	return Set[T]{m: m}
}

// Delete returns a set without v.
func (s Set[T]) Delete(v T) Set[T] {
	if !s.Has(v) {
		return s
	}

	m := maps.Clone(s.m)
	delete(m, v)

	return Set[T]{m: m}
}

// All iterates the members in unspecified order.
func (s Set[T]) All() iter.Seq[T] { return maps.Keys(s.m) }

// SetBuilder accumulates members for a Set.
type SetBuilder[T comparable] struct {
	m map[T]struct{}
}

func (b *SetBuilder[T]) Add(v T) {
	if b.m == nil {
		b.m = make(map[T]struct{})
	}
	b.m[v] = struct{}{}
}

func (b *SetBuilder[T]) AddAny(v any) { b.Add(collection.As[T](v)) }
func (b *SetBuilder[T]) Len() int     { return len(b.m) }

// Set hands the accumulated members over to a new Set and resets the
// builder.
func (b *SetBuilder[T]) Set() Set[T] {
	s := Set[T]{m: b.m}
	if s.m == nil {
		s.m = map[T]struct{}{}
	}
	b.m = nil

	return s
}

func (b *SetBuilder[T]) BuildAny() any { return b.Set() }
