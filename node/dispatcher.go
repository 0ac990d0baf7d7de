package node

import (
	"reflect"

	"schema-caster/collection"
)

var (
	taggedType    = reflect.TypeFor[collection.Tagged]()
	buildableType = reflect.TypeFor[collection.Buildable]()
	collectorType = reflect.TypeFor[collection.Collector]()
)

// Descriptor is everything the builder needs to know about a sequence
// destination type.
type Descriptor struct {
	Type   reflect.Type
	Elem   reflect.Type
	Shape  ShapeEnum
	Family FamilyEnum
}

// Native reports whether the type is a plain Go slice or array.
func (d Descriptor) Native() bool {
	return d.Shape == ShapeSlice || d.Shape == ShapeArray
}

// Buildable reports whether the zero value of the type hands out a
// collection.Builder.
func (d Descriptor) Buildable() bool {
	return d.Type.Kind() != reflect.Interface && d.Type.Implements(buildableType)
}

// Collector reports whether values of the type accept elements through
// collection.Collector.
func (d Descriptor) Collector() bool {
	return d.Type.Implements(collectorType)
}

// Describe resolves the element type, shape and family of t. It fails with
// a *NotEnumerableError when t is not a sequence.
func Describe(t reflect.Type) (Descriptor, error) {
	elem, err := ElementType(t)
	if err != nil {
		return Descriptor{}, err
	}

	d := Descriptor{Type: t, Elem: elem, Shape: dispatch(t, elem)}

	switch {
	case d.Shape == ShapeSlice || d.Shape == ShapeArray || d.Shape == ShapeHashSet:
		d.Family = FamilyNone
	case d.Buildable() && isImmutable(t):
		d.Family = FamilyBuilder
	case isImmutable(t):
		d.Family = FamilyImmutable
	default:
		d.Family = FamilyConstructible
	}

	return d, nil
}

// Dispatch classifies t. Types that are not sequences are ShapeUnknown.
func Dispatch(t reflect.Type) ShapeEnum {
	elem, err := ElementType(t)
	if err != nil {
		return ShapeUnknown
	}

	return dispatch(t, elem)
}

func dispatch(t, elem reflect.Type) ShapeEnum {
	if kind, ok := CollectionKind(t); ok {
		switch kind {
		case collection.KindSegment:
			return ShapeSegment
		case collection.KindList:
			return ShapeIndexed
		case collection.KindSortedSet:
			return ShapeSortedSet
		case collection.KindImmutableArray:
			return ShapeImmutableArray
		case collection.KindImmutableList:
			return ShapeImmutableList
		case collection.KindImmutableSet:
			return ShapeImmutableSet
		case collection.KindImmutableSortedSet:
			return ShapeImmutableSortedSet
		case collection.KindImmutableQueue:
			return ShapeImmutableQueue
		case collection.KindImmutableStack:
			return ShapeImmutableStack
		}
	}

	switch t.Kind() {
	case reflect.Array:
		return ShapeArray
	case reflect.Slice:
		return ShapeSlice
	case reflect.Map:
		return ShapeHashSet
	}

	if _, ok := AppendMethod(t, elem); ok {
		return ShapeIndexed
	}

	return ShapeSequence
}

// CollectionKind returns the family tag of t when it implements
// collection.Tagged.
func CollectionKind(t reflect.Type) (collection.Kind, bool) {
	if t.Kind() == reflect.Interface || !t.Implements(taggedType) {
		return collection.KindNone, false
	}

	tagged, ok := Receiver(t).Interface().(collection.Tagged)
	if !ok {
		return collection.KindNone, false
	}

	return tagged.CollectionKind(), true
}

// AppendMethod finds an Append(E) method with no results on pointer type t.
func AppendMethod(t, elem reflect.Type) (reflect.Method, bool) {
	if t.Kind() != reflect.Ptr {
		return reflect.Method{}, false
	}

	m, ok := t.MethodByName("Append")
	if !ok {
		return reflect.Method{}, false
	}

	ft := m.Type
	if ft.NumIn() != 2 || ft.NumOut() != 0 || ft.In(1) != elem {
		return reflect.Method{}, false
	}

	return m, true
}

// Receiver returns a usable zero value of t to call methods on: a pointer to
// a fresh zero value for pointer types, the zero value otherwise.
func Receiver(t reflect.Type) reflect.Value {
	if t.Kind() == reflect.Ptr {
		return reflect.New(t.Elem())
	}

	return reflect.Zero(t)
}

func isImmutable(t reflect.Type) bool {
	kind, ok := CollectionKind(t)
	return ok && kind.IsImmutable()
}
