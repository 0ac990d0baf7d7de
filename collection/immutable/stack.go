package immutable

import (
	"iter"

	"schema-caster/collection"
)

// Stack is an immutable LIFO stack. Stacks derived from one another share
// their common tail.
type Stack[T any] struct {
	top  *cell[T]
	size int
}

type cell[T any] struct {
	value T
	next  *cell[T]
}

// NewStack pushes items in order, so the last item ends up on top.
func NewStack[T any](items ...T) Stack[T] {
	var s Stack[T]
	for _, v := range items {
		s = s.Push(v)
	}

	return s
}

// FromSlice pushes items in order, so the last item ends up on top.
func (Stack[T]) FromSlice(items []T) Stack[T] {
	return NewStack(items...)
}

func (Stack[T]) CollectionKind() collection.Kind { return collection.KindImmutableStack }

func (s Stack[T]) Len() int { return s.size }

// Push returns a stack with v on top.
func (s Stack[T]) Push(v T) Stack[T] {
	return Stack[T]{top: &cell[T]{value: v, next: s.top}, size: s.size + 1}
}

// Peek returns the top element.
func (s Stack[T]) Peek() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}

	return s.top.value, true
}

// Pop returns the top element and the stack below it.
func (s Stack[T]) Pop() (T, Stack[T], bool) {
	if s.top == nil {
		var zero T
		return zero, s, false
	}

	return s.top.value, Stack[T]{top: s.top.next, size: s.size - 1}, true
}

// All iterates from top to bottom.
func (s Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := s.top; c != nil; c = c.next {
			if !yield(c.value) {
				return
			}
		}
	}
}
