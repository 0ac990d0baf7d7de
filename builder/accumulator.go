package builder

import (
	"reflect"

	"schema-caster/collection"
)

// Accumulator receives the decoded elements of one sequence value.
type Accumulator interface {
	// Append adds an element of the plan's element type.
	Append(v reflect.Value)
	Len() int
	// Value is the accumulated container.
	Value() reflect.Value
}

// sliceAccumulator grows a slice of any slice type.
type sliceAccumulator struct {
	items reflect.Value
}

func newSliceAccumulator(sliceType reflect.Type) func(capacity int) Accumulator {
	return func(capacity int) Accumulator {
		return &sliceAccumulator{items: reflect.MakeSlice(sliceType, 0, capacity)}
	}
}

func (a *sliceAccumulator) Append(v reflect.Value) { a.items = reflect.Append(a.items, v) }
func (a *sliceAccumulator) Len() int               { return a.items.Len() }
func (a *sliceAccumulator) Value() reflect.Value   { return a.items }

// builderAccumulator feeds an immutable container builder.
type builderAccumulator struct {
	builder collection.Builder
}

func newBuilderAccumulator(zero collection.Buildable) func(capacity int) Accumulator {
	return func(capacity int) Accumulator {
		return &builderAccumulator{builder: zero.NewBuilder(capacity)}
	}
}

func (a *builderAccumulator) Append(v reflect.Value) { a.builder.AddAny(v.Interface()) }
func (a *builderAccumulator) Len() int               { return a.builder.Len() }
func (a *builderAccumulator) Value() reflect.Value   { return reflect.ValueOf(a.builder) }

// mapSetAccumulator fills a Go map used as a set.
type mapSetAccumulator struct {
	set     reflect.Value
	present reflect.Value
}

func newMapSetAccumulator(mapType reflect.Type) func(capacity int) Accumulator {
	present := reflect.New(mapType.Elem()).Elem()
	if present.Kind() == reflect.Bool {
		present.SetBool(true)
	}

	return func(capacity int) Accumulator {
		return &mapSetAccumulator{set: reflect.MakeMapWithSize(mapType, capacity), present: present}
	}
}

func (a *mapSetAccumulator) Append(v reflect.Value) { a.set.SetMapIndex(v, a.present) }
func (a *mapSetAccumulator) Len() int               { return a.set.Len() }
func (a *mapSetAccumulator) Value() reflect.Value   { return a.set }

// collectorAccumulator fills a fresh mutable container through
// collection.Collector.
type collectorAccumulator struct {
	container reflect.Value
	collector collection.Collector
	count     int
}

func newCollectorAccumulator(ptrType reflect.Type) func(capacity int) Accumulator {
	return func(int) Accumulator {
		container := reflect.New(ptrType.Elem())
		return &collectorAccumulator{container: container, collector: container.Interface().(collection.Collector)}
	}
}

func (a *collectorAccumulator) Append(v reflect.Value) {
	a.collector.AddAny(v.Interface())
	a.count++
}

func (a *collectorAccumulator) Len() int             { return a.count }
func (a *collectorAccumulator) Value() reflect.Value { return a.container }

// appendMethodAccumulator fills a fresh container through its Append(E)
// method.
type appendMethodAccumulator struct {
	container reflect.Value
	append    reflect.Value
	count     int
}

func newAppendMethodAccumulator(ptrType reflect.Type, method reflect.Method) func(capacity int) Accumulator {
	return func(int) Accumulator {
		container := reflect.New(ptrType.Elem())
		return &appendMethodAccumulator{container: container, append: container.Method(method.Index)}
	}
}

func (a *appendMethodAccumulator) Append(v reflect.Value) {
	a.append.Call([]reflect.Value{v})
	a.count++
}

func (a *appendMethodAccumulator) Len() int             { return a.count }
func (a *appendMethodAccumulator) Value() reflect.Value { return a.container }
