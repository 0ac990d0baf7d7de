package immutable

import (
	"iter"
	"slices"

	"schema-caster/collection"
)

// List is an immutable ordered list.
type List[T any] struct {
	items []T
}

// NewList returns a list holding a copy of items.
func NewList[T any](items ...T) List[T] {
	return List[T]{items: slices.Clone(items)}
}

func (List[T]) CollectionKind() collection.Kind { return collection.KindImmutableList }

func (List[T]) NewBuilder(capacity int) collection.Builder {
	return &ListBuilder[T]{items: make([]T, 0, capacity)}
}

func (l List[T]) Len() int { return len(l.items) }

// Get returns the i-th element.
func (l List[T]) Get(i int) T { return l.items[i] }

// Append returns a list with v added at the end.
func (l List[T]) Append(v T) List[T] {
	// the clipped prefix forces append to allocate, so l is never shared
	return List[T]{items: append(slices.Clip(l.items), v)}
}

// Prepend returns a list with v added at the front.
func (l List[T]) Prepend(v T) List[T] {
	items := make([]T, 0, len(l.items)+1)
	items = append(items, v)
	return List[T]{items: append(items, l.items...)}
}

// Set returns a list with the i-th element replaced.
func (l List[T]) Set(i int, v T) List[T] {
	items := slices.Clone(l.items)
	items[i] = v
	return List[T]{items: items}
}

// Items returns a copy of the elements.
func (l List[T]) Items() []T { return slices.Clone(l.items) }

func (l List[T]) All() iter.Seq[T] { return values(l.items) }

// ListBuilder accumulates elements for a List.
type ListBuilder[T any] struct {
	items []T
}

func (b *ListBuilder[T]) Append(v T)   { b.items = append(b.items, v) }
func (b *ListBuilder[T]) AddAny(v any) { b.Append(collection.As[T](v)) }
func (b *ListBuilder[T]) Len() int     { return len(b.items) }

// List hands the accumulated elements over to a new List and resets the
// builder.
func (b *ListBuilder[T]) List() List[T] {
	l := List[T]{items: slices.Clip(b.items)}
	b.items = nil
	return l
}

func (b *ListBuilder[T]) BuildAny() any { return b.List() }
