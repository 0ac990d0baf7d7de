// Package collection declares the capabilities through which container types
// advertise themselves to the plan builder, and ships the mutable container
// families the builder knows how to fill directly.
//
// A container opts in by implementing Tagged. Everything else the builder
// needs (element type, builders, factories) is discovered from the method set
// once, when a plan is built.
package collection

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the family tag reported by a Tagged container.
type Kind int

const (
	KindNone Kind = iota
	KindSegment
	KindList
	KindSortedSet
	KindImmutableArray
	KindImmutableList
	KindImmutableSet
	KindImmutableSortedSet
	KindImmutableQueue
	KindImmutableStack
)

// IsImmutable reports whether containers of this kind never change after
// construction.
func (k Kind) IsImmutable() bool {
	switch k {
	default:
		return false
	case KindImmutableArray, KindImmutableList, KindImmutableSet, KindImmutableSortedSet,
		KindImmutableQueue, KindImmutableStack:
		return true
	}
}

// Tagged is implemented by containers that belong to a known family.
// CollectionKind must not depend on the receiver's contents: it is called on
// zero values.
type Tagged interface {
	CollectionKind() Kind
}

// Builder is the untyped face of a container builder. Values passed to AddAny
// must be of the container's element type, or nil when that type is an
// interface.
type Builder interface {
	AddAny(v any)
	Len() int
	// BuildAny snapshots the accumulated values into the immutable container.
	// The builder is reset afterwards.
	BuildAny() any
}

// Buildable is implemented by immutable containers that can hand out a
// builder from their zero value.
type Buildable interface {
	NewBuilder(capacity int) Builder
}

// Collector is implemented by mutable containers that accept values of their
// element type without reflection.
type Collector interface {
	AddAny(v any)
}

// As converts a value passed to AddAny to the element type T. A nil value
// becomes the zero T, which lets interface-typed containers hold nil.
func As[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}
