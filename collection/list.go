package collection

import (
	"fmt"
	"iter"
	"slices"
)

// List is a mutable indexed collection. The zero value is an empty list.
type List[T any] struct {
	items []T
}

// NewList returns a list holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

func (*List[T]) CollectionKind() Kind { return KindList }

// Append adds v at the end of the list.
func (l *List[T]) Append(v T) { l.items = append(l.items, v) }

func (l *List[T]) AddAny(v any) { l.Append(As[T](v)) }

// Get returns the i-th element.
func (l *List[T]) Get(i int) T {
	l.check(i)
	return l.items[i]
}

// Set replaces the i-th element.
func (l *List[T]) Set(i int, v T) {
	l.check(i)
	l.items[i] = v
}

func (l *List[T]) Len() int { return len(l.items) }

// Items returns a copy of the elements.
func (l *List[T]) Items() []T { return slices.Clone(l.items) }

// All iterates the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *List[T]) check(i int) {
	if i < 0 || i >= len(l.items) {
		panic(fmt.Sprintf("collection: index %d out of range for list of length %d", i, len(l.items)))
	}
}
