package immutable

import (
	"iter"
	"slices"

	"schema-caster/collection"
)

// Queue is an immutable FIFO queue.
//
// Elements are dequeued from front and enqueued onto back; back is kept in
// reverse order and turned over once front runs out.
type Queue[T any] struct {
	front Stack[T]
	back  Stack[T]
}

// NewQueue enqueues items in order, so the first item is dequeued first.
func NewQueue[T any](items ...T) Queue[T] {
	var front Stack[T]
	for _, v := range slices.Backward(items) {
		front = front.Push(v)
	}

	return Queue[T]{front: front}
}

// FromSlice enqueues items in order, so the first item is dequeued first.
func (Queue[T]) FromSlice(items []T) Queue[T] {
	return NewQueue(items...)
}

func (Queue[T]) CollectionKind() collection.Kind { return collection.KindImmutableQueue }

func (q Queue[T]) Len() int { return q.front.Len() + q.back.Len() }

// Enqueue returns a queue with v at the end.
func (q Queue[T]) Enqueue(v T) Queue[T] {
	if q.front.Len() == 0 && q.back.Len() == 0 {
		return Queue[T]{front: q.front.Push(v)}
	}

	return Queue[T]{front: q.front, back: q.back.Push(v)}
}

// Peek returns the element at the head of the queue.
func (q Queue[T]) Peek() (T, bool) {
	return q.normalize().front.Peek()
}

// Dequeue returns the head element and the queue behind it.
func (q Queue[T]) Dequeue() (T, Queue[T], bool) {
	q = q.normalize()

	v, front, ok := q.front.Pop()
	if !ok {
		return v, q, false
	}

	return v, Queue[T]{front: front, back: q.back}, true
}

// All iterates from head to tail.
func (q Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range q.front.All() {
			if !yield(v) {
				return
			}
		}

		if q.back.Len() == 0 {
			return
		}

		tail := make([]T, 0, q.back.Len())
		for v := range q.back.All() {
			tail = append(tail, v)
		}

		for _, v := range slices.Backward(tail) {
			if !yield(v) {
				return
			}
		}
	}
}

func (q Queue[T]) normalize() Queue[T] {
	if q.front.Len() > 0 || q.back.Len() == 0 {
		return q
	}

	var front Stack[T]
	for v := range q.back.All() {
		front = front.Push(v)
	}

	return Queue[T]{front: front}
}
