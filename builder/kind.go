package builder

//go:generate go tool stringer -type=AccumulatorEnum -output=accumulator_string.go
//go:generate go tool stringer -type=FinalizerEnum -output=finalizer_string.go

// AccumulatorEnum is the intermediate container a sequence plan collects
// decoded elements into.
type AccumulatorEnum int

const (
	_ AccumulatorEnum = iota

	AccumulatorGrowableArray    // append-only slice, snapshotted once
	AccumulatorHashSetBuilder   // immutable set builder
	AccumulatorListBuilder      // immutable list builder
	AccumulatorSortedSetBuilder // immutable sorted set builder
	AccumulatorHashSet          // the destination Go map itself
	AccumulatorSortedSet        // the destination sorted set itself
	AccumulatorCollection       // the destination indexed collection itself
	AccumulatorList             // plain []E
)

// Direct reports whether the accumulator is the destination value.
func (a AccumulatorEnum) Direct() bool {
	return a == AccumulatorHashSet || a == AccumulatorSortedSet || a == AccumulatorCollection
}

// FinalizerEnum is the step turning a populated accumulator into the
// destination value.
type FinalizerEnum int

const (
	_ FinalizerEnum = iota

	FinalizerSnapshotSlice // the accumulated slice is the destination
	FinalizerSnapshotArray // copy into a fixed-size array
	FinalizerSnapshotWrap  // FromSlice factory of a segment or immutable array
	FinalizerQueueFactory  // FromSlice factory of an immutable queue
	FinalizerStackFactory  // FromSlice factory of an immutable stack
	FinalizerToImmutable   // builder snapshot
	FinalizerDirect        // the accumulator is the destination
	FinalizerConstructor   // registered constructor or From* factory
)
