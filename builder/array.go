package builder

import (
	"fmt"
	"reflect"

	"schema-caster/collection"
	"schema-caster/node"
	"schema-caster/primitive"
	"schema-caster/schema"
)

// ArrayCase builds plans for array schema nodes. It matches every array
// node: a destination that cannot hold a sequence fails the build instead of
// falling through to another case.
type ArrayCase struct{}

func (ArrayCase) Name() string { return "array" }

func (ArrayCase) Match(s schema.Node, _ reflect.Type) bool {
	return s.Kind() == schema.KindArray
}

func (ArrayCase) Build(sess *Session, s schema.Node, t reflect.Type) (*Plan, error) {
	arr, ok := s.(*schema.Array)
	if !ok {
		return nil, unsupported(s, t, "array node of type %T", s)
	}

	leave, err := sess.enterArray(s, t)
	if err != nil {
		return nil, err
	}
	defer leave()

	d, err := node.Describe(t)
	if err != nil {
		return nil, err
	}

	element, err := sess.Resolve(arr.Items, d.Elem)
	if err != nil {
		return nil, err
	}

	rule := chooseAccumulator(d)
	if rule.hashed && yieldsUnhashable(arr.Items, d.Elem) {
		return nil, unsupported(s, t, "%s elements of %s cannot be hashed", nodeName(arr.Items), typeName(d.Elem))
	}

	fin, err := chooseFinalizer(sess, s, d, rule.kind)
	if err != nil {
		return nil, err
	}

	seq := &SequencePlan{
		Elem:        d.Elem,
		Element:     element,
		Shape:       d.Shape,
		Accumulator: rule.kind,
		Finalizer:   fin.kind,
		newAcc:      rule.create(d),
		finalize:    fin.fn,
	}

	p := newPlan(s, t, ArrayCase{}.Name(), seq.convert)
	p.Sequence = seq
	return p, nil
}

type accumulatorRule struct {
	kind   AccumulatorEnum
	match  func(d node.Descriptor) bool
	create func(d node.Descriptor) func(capacity int) Accumulator
	// hashed accumulators use elements as map keys.
	hashed bool
}

// accumulatorRules is ordered by priority: the first matching rule wins.
var accumulatorRules = []accumulatorRule{
	{AccumulatorGrowableArray, isArrayLike, growableArray, false},
	{AccumulatorHashSetBuilder, buildableShape(node.ShapeImmutableSet), immutableBuilder, true},
	{AccumulatorListBuilder, buildableShape(node.ShapeImmutableList), immutableBuilder, false},
	{AccumulatorSortedSetBuilder, buildableShape(node.ShapeImmutableSortedSet), immutableBuilder, false},
	{AccumulatorHashSet, shape(node.ShapeHashSet), hashSet, true},
	{AccumulatorSortedSet, collectorShape(node.ShapeSortedSet), collector, false},
	{AccumulatorCollection, isIndexed, indexed, false},
	{AccumulatorList, func(node.Descriptor) bool { return true }, plainList, false},
}

func chooseAccumulator(d node.Descriptor) accumulatorRule {
	for _, rule := range accumulatorRules {
		if rule.match(d) {
			return rule
		}
	}

	panic("accumulator rules must end with a catch-all")
}

// yieldsUnhashable reports whether converting s into t can produce a value
// that panics when used as a map key. Only interface destinations hold
// dynamic types, and of the cases only bytes, arrays and maps produce
// incomparable ones.
func yieldsUnhashable(s schema.Node, t reflect.Type) bool {
	if t.Kind() != reflect.Interface {
		return !t.Comparable()
	}

	switch s.Kind() {
	case schema.KindBytes, schema.KindArray, schema.KindMap:
		return true
	case schema.KindUnion:
		if u, ok := s.(*schema.Union); ok {
			for _, branch := range u.Schemas {
				if branch != nil && yieldsUnhashable(branch, t) {
					return true
				}
			}
		}
	}

	return false
}

func isArrayLike(d node.Descriptor) bool {
	switch d.Shape {
	default:
		return false
	case node.ShapeSlice, node.ShapeArray, node.ShapeSegment, node.ShapeImmutableArray:
		return true
	}
}

func shape(want node.ShapeEnum) func(d node.Descriptor) bool {
	return func(d node.Descriptor) bool { return d.Shape == want }
}

func buildableShape(want node.ShapeEnum) func(d node.Descriptor) bool {
	return func(d node.Descriptor) bool { return d.Shape == want && d.Buildable() }
}

func collectorShape(want node.ShapeEnum) func(d node.Descriptor) bool {
	return func(d node.Descriptor) bool {
		return d.Shape == want && d.Type.Kind() == reflect.Ptr && d.Collector()
	}
}

func isIndexed(d node.Descriptor) bool {
	if d.Shape != node.ShapeIndexed || d.Type.Kind() != reflect.Ptr {
		return false
	}

	_, ok := node.AppendMethod(d.Type, d.Elem)
	return ok || d.Collector()
}

func growableArray(d node.Descriptor) func(capacity int) Accumulator {
	if d.Shape == node.ShapeSlice {
		return newSliceAccumulator(d.Type)
	}

	return newSliceAccumulator(reflect.SliceOf(d.Elem))
}

func immutableBuilder(d node.Descriptor) func(capacity int) Accumulator {
	return newBuilderAccumulator(node.Receiver(d.Type).Interface().(collection.Buildable))
}

func hashSet(d node.Descriptor) func(capacity int) Accumulator {
	return newMapSetAccumulator(d.Type)
}

func collector(d node.Descriptor) func(capacity int) Accumulator {
	return newCollectorAccumulator(d.Type)
}

func indexed(d node.Descriptor) func(capacity int) Accumulator {
	if m, ok := node.AppendMethod(d.Type, d.Elem); ok {
		return newAppendMethodAccumulator(d.Type, m)
	}

	return newCollectorAccumulator(d.Type)
}

func plainList(d node.Descriptor) func(capacity int) Accumulator {
	return newSliceAccumulator(reflect.SliceOf(d.Elem))
}

type finalizer struct {
	kind FinalizerEnum
	fn   func(acc Accumulator) (reflect.Value, error)
}

// chooseFinalizer picks how the populated accumulator becomes the
// destination value.
func chooseFinalizer(sess *Session, s schema.Node, d node.Descriptor, acc AccumulatorEnum) (finalizer, error) {
	switch {
	case d.Shape == node.ShapeSlice:
		return finalizer{FinalizerSnapshotSlice, snapshotSlice}, nil

	case d.Shape == node.ShapeArray:
		return finalizer{FinalizerSnapshotArray, snapshotArray(d.Type, sess.Categories())}, nil

	case d.Shape == node.ShapeSegment || d.Shape == node.ShapeImmutableArray:
		return factoryFinalizer(s, d, FinalizerSnapshotWrap)

	case d.Family.IsImmutable():
		switch {
		case d.Shape == node.ShapeImmutableQueue:
			return factoryFinalizer(s, d, FinalizerQueueFactory)
		case d.Shape == node.ShapeImmutableStack:
			return factoryFinalizer(s, d, FinalizerStackFactory)
		case acc == AccumulatorHashSetBuilder || acc == AccumulatorListBuilder || acc == AccumulatorSortedSetBuilder:
			return toImmutable(s, d)
		}

		return finalizer{}, unsupported(s, d.Type, "immutable %s has no builder", d.Shape)

	case acc.Direct():
		return finalizer{FinalizerDirect, direct}, nil
	}

	c, ok := sess.Constructor(d.Type, d.Elem)
	if !ok {
		return finalizer{}, unsupported(s, d.Type, "no constructor accepts a sequence of %s", d.Elem)
	}

	return finalizer{FinalizerConstructor, func(acc Accumulator) (reflect.Value, error) {
		items, err := accumulatedSlice(acc)
		if err != nil {
			return reflect.Value{}, err
		}

		return c.Call(items)
	}}, nil
}

func accumulatedSlice(acc Accumulator) (reflect.Value, error) {
	list, ok := acc.(*sliceAccumulator)
	if !ok {
		return reflect.Value{}, ErrCorruptAccumulator
	}

	return list.items, nil
}

func snapshotSlice(acc Accumulator) (reflect.Value, error) {
	return accumulatedSlice(acc)
}

func snapshotArray(t reflect.Type, categories primitive.CategoryEnum) func(acc Accumulator) (reflect.Value, error) {
	return func(acc Accumulator) (reflect.Value, error) {
		items, err := accumulatedSlice(acc)
		if err != nil {
			return reflect.Value{}, err
		}

		switch n := items.Len(); {
		case n < t.Len() && !categories.Has(primitive.CategorySafeArray),
			n > t.Len() && !categories.Has(primitive.CategoryUnsafeArray):
			return reflect.Value{}, fmt.Errorf("%w: %d elements for %s", ErrLengthMismatch, n, t)
		}

		out := reflect.New(t).Elem()
		reflect.Copy(out, items)
		return out, nil
	}
}

// factoryFinalizer wraps the accumulated slice with the FromSlice factory of
// the destination type.
func factoryFinalizer(s schema.Node, d node.Descriptor, kind FinalizerEnum) (finalizer, error) {
	c, ok := node.Factory(d.Type, "FromSlice", d.Elem)
	if !ok {
		return finalizer{}, unsupported(s, d.Type, "%s has no FromSlice factory", d.Shape)
	}

	return finalizer{kind, func(acc Accumulator) (reflect.Value, error) {
		items, err := accumulatedSlice(acc)
		if err != nil {
			return reflect.Value{}, err
		}

		return c.Call(items)
	}}, nil
}

// toImmutable snapshots a builder accumulator. The snapshot type is checked
// once here on an empty builder.
func toImmutable(s schema.Node, d node.Descriptor) (finalizer, error) {
	zero := node.Receiver(d.Type).Interface().(collection.Buildable)
	if got := reflect.TypeOf(zero.NewBuilder(0).BuildAny()); got != d.Type {
		return finalizer{}, unsupported(s, d.Type, "builder produces %s", typeName(got))
	}

	return finalizer{FinalizerToImmutable, func(acc Accumulator) (reflect.Value, error) {
		b, ok := acc.(*builderAccumulator)
		if !ok {
			return reflect.Value{}, ErrCorruptAccumulator
		}

		return reflect.ValueOf(b.builder.BuildAny()), nil
	}}, nil
}

func direct(acc Accumulator) (reflect.Value, error) {
	switch acc.(type) {
	case *mapSetAccumulator, *collectorAccumulator, *appendMethodAccumulator:
		return acc.Value(), nil
	}

	return reflect.Value{}, ErrCorruptAccumulator
}
