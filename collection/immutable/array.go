package immutable

import (
	"iter"
	"slices"

	"schema-caster/collection"
)

// Array is an immutable fixed-length array.
type Array[T any] struct {
	items []T
}

// NewArray returns an array holding a copy of items.
func NewArray[T any](items ...T) Array[T] {
	return Array[T]{items: slices.Clone(items)}
}

// FromSlice returns an array holding a copy of items.
func (Array[T]) FromSlice(items []T) Array[T] {
	return NewArray(items...)
}

func (Array[T]) CollectionKind() collection.Kind { return collection.KindImmutableArray }

func (a Array[T]) Len() int { return len(a.items) }

// At returns the i-th element.
func (a Array[T]) At(i int) T { return a.items[i] }

// With returns a copy of the array with the i-th element replaced.
func (a Array[T]) With(i int, v T) Array[T] {
	items := slices.Clone(a.items)
	items[i] = v
	return Array[T]{items: items}
}

// Items returns a copy of the elements.
func (a Array[T]) Items() []T { return slices.Clone(a.items) }

func (a Array[T]) All() iter.Seq[T] { return values(a.items) }

func values[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}
