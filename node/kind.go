package node

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go
//go:generate go tool stringer -type=FamilyEnum -output=family_string.go

// ShapeEnum classifies a destination type by the container it denotes.
type ShapeEnum int

const (
	ShapeUnknown            ShapeEnum = iota
	ShapeArray                        // native [N]E
	ShapeSlice                        // native []E
	ShapeSegment                      // collection.Segment
	ShapeImmutableArray               // immutable.Array
	ShapeImmutableSet                 // immutable.Set
	ShapeImmutableList                // immutable.List
	ShapeImmutableSortedSet           // immutable.SortedSet
	ShapeImmutableQueue               // immutable.Queue
	ShapeImmutableStack               // immutable.Stack
	ShapeHashSet                      // map[E]struct{} or map[E]bool
	ShapeSortedSet                    // *collection.SortedSet
	ShapeIndexed                      // *collection.List or a pointer type with Append(E)
	ShapeSequence                     // anything else exposing All() iter.Seq[E]

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// FamilyEnum is the coarse construction family of a destination type.
type FamilyEnum int

const (
	FamilyNone          FamilyEnum = iota // native containers and Go maps
	FamilyBuilder                         // immutable containers handing out a collection.Builder
	FamilyImmutable                       // immutable containers built through a factory
	FamilyConstructible                   // everything else, filled directly or through a constructor
)

// IsImmutable reports whether the family holds immutable containers.
func (f FamilyEnum) IsImmutable() bool {
	return f == FamilyBuilder || f == FamilyImmutable
}
