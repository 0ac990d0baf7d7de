package collection

import (
	"fmt"
	"iter"
)

// Segment is a fixed-capacity window over a backing array.
type Segment[T any] struct {
	array  []T
	offset int
	count  int
}

// NewSegment returns the window array[offset:offset+count]. It panics when
// the window does not fit into the array.
func NewSegment[T any](array []T, offset, count int) Segment[T] {
	if offset < 0 || count < 0 || offset+count > len(array) {
		panic(fmt.Sprintf("collection: segment [%d:%d] out of range for length %d", offset, offset+count, len(array)))
	}

	return Segment[T]{array: array, offset: offset, count: count}
}

// FromSlice wraps items as a segment covering all of it, without copying.
func (Segment[T]) FromSlice(items []T) Segment[T] {
	return Segment[T]{array: items, count: len(items)}
}

func (Segment[T]) CollectionKind() Kind { return KindSegment }

// Len returns the number of elements in the window.
func (s Segment[T]) Len() int { return s.count }

// Offset returns the position of the window inside the backing array.
func (s Segment[T]) Offset() int { return s.offset }

// Array returns the backing array.
func (s Segment[T]) Array() []T { return s.array }

// At returns the i-th element of the window.
func (s Segment[T]) At(i int) T {
	if i < 0 || i >= s.count {
		panic(fmt.Sprintf("collection: index %d out of range for segment of length %d", i, s.count))
	}

	return s.array[s.offset+i]
}

// Slice returns the window as a slice sharing the backing array. Appending to
// the result never writes past the window.
func (s Segment[T]) Slice() []T {
	return s.array[s.offset : s.offset+s.count : s.offset+s.count]
}

// All iterates the window in order.
func (s Segment[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}
