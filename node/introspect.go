// Package node is the type introspector of the plan builder. It answers,
// from reflect metadata only, whether a destination type is a sequence, what
// its elements are, which container shape it has and how it can be built.
package node

import (
	"errors"
	"reflect"
)

var ErrNotEnumerable = errors.New("type is not enumerable")

// NotEnumerableError is returned when a sequence destination was required
// but the type exposes no sequence capability.
type NotEnumerableError struct {
	Type reflect.Type
}

func (e *NotEnumerableError) Error() string {
	if e.Type == nil {
		return ErrNotEnumerable.Error() + ": <nil>"
	}

	return ErrNotEnumerable.Error() + ": " + e.Type.String()
}

func (e *NotEnumerableError) Unwrap() error { return ErrNotEnumerable }

// ElementType returns the element type of the sequence t denotes.
//
// Sequences are native slices and arrays, maps used as sets (value type
// struct{} or bool, element = key) and types with an All() iter.Seq[E] method.
func ElementType(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, &NotEnumerableError{}
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Elem(), nil
	case reflect.Map:
		if isSetValue(t.Elem()) {
			return t.Key(), nil
		}
	}

	if elem, ok := allMethodElem(t); ok {
		return elem, nil
	}

	return nil, &NotEnumerableError{Type: t}
}

// SeqElem reports E when t has the shape of iter.Seq[E].
func SeqElem(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return nil, false
	}

	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumIn() != 1 || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return nil, false
	}

	return yield.In(0), true
}

func allMethodElem(t reflect.Type) (reflect.Type, bool) {
	m, ok := t.MethodByName("All")
	if !ok {
		return nil, false
	}

	ft := m.Type
	if ft.NumIn() != receiverArgs(t) || ft.NumOut() != 1 {
		return nil, false
	}

	return SeqElem(ft.Out(0))
}
