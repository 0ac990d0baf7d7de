package node

import (
	"errors"
	"path"
	"reflect"
	"runtime"
	"strings"

	"schema-caster/utils"
)

//go:generate go tool stringer -type=InputEnum -output=input_string.go

var (
	ErrIsNotAConstructor         = errors.New("provided function is not a recognizable constructor")
	ErrConstructorIsNotAFunction = errors.New("provided constructor is not a function")
)

// InputEnum is the argument form a constructor accepts its elements in.
type InputEnum int

const (
	_ InputEnum = iota

	InputSlice      // func([]E) T
	InputNamedSlice // func(S) T where S is a named slice of E
	InputSeq        // func(iter.Seq[E]) T
)

// Constructor is a function able to produce a collection from a finite
// sequence of elements.
type Constructor struct {
	Fn           reflect.Value
	In, Out      reflect.Type
	Elem         reflect.Type
	Input        InputEnum
	PackageAlias string
	Name         string
	HasErr       bool
}

// ParseConstructor inspects the provided function and returns a Constructor
// if it is a valid constructor function.
//
// Supports interfaces:
//   - func(items []E) (dst Type)
//   - func(items []E) (dst Type, error)
//   - func(items S) (dst Type[, error]) where S is a named slice of E
//   - func(items iter.Seq[E]) (dst Type[, error])
func ParseConstructor(fn any) (Constructor, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))

	c, ok := inspect(fnVal, fnVal.Type(), 0)
	if !ok {
		return Constructor{}, ErrIsNotAConstructor
	}

	c.Name = name
	c.PackageAlias = utils.Second(path.Split(alias))
	return c, nil
}

func inspect(fn reflect.Value, fnType reflect.Type, skip int) (Constructor, bool) {
	if fnType.NumIn() != skip+1 {
		return Constructor{}, false
	}

	c := Constructor{Fn: fn, In: fnType.In(skip)}

	switch fnType.NumOut() {
	default:
		return Constructor{}, false
	case 1:
	case 2:
		if !isError(fnType.Out(1)) {
			return Constructor{}, false
		}
		c.HasErr = true
	}
	c.Out = fnType.Out(0)

	switch {
	case c.In.Kind() == reflect.Slice && c.In.Name() == "":
		c.Input, c.Elem = InputSlice, c.In.Elem()
	case c.In.Kind() == reflect.Slice:
		c.Input, c.Elem = InputNamedSlice, c.In.Elem()
	default:
		elem, ok := SeqElem(c.In)
		if !ok {
			return Constructor{}, false
		}
		c.Input, c.Elem = InputSeq, elem
	}

	return c, true
}

// Accepts reports whether the constructor produces t from elements of type
// elem.
func (c Constructor) Accepts(t, elem reflect.Type) bool {
	return c.Out == t && c.Elem == elem
}

// Call invokes the constructor with items, a slice value of element type
// c.Elem.
func (c Constructor) Call(items reflect.Value) (reflect.Value, error) {
	var arg reflect.Value

	switch c.Input {
	default:
		return reflect.Value{}, ErrIsNotAConstructor
	case InputSlice:
		arg = items
	case InputNamedSlice:
		arg = items.Convert(c.In)
	case InputSeq:
		arg = seqOf(c.In, items)
	}

	out := c.Fn.Call([]reflect.Value{arg})
	if c.HasErr && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}

	return out[0], nil
}

// seqOf builds an iter.Seq value of type seqType that yields the items.
func seqOf(seqType reflect.Type, items reflect.Value) reflect.Value {
	return reflect.MakeFunc(seqType, func(args []reflect.Value) []reflect.Value {
		yield := args[0]
		for i := range items.Len() {
			if !yield.Call([]reflect.Value{items.Index(i)})[0].Bool() {
				break
			}
		}
		return nil
	})
}

// FindFactory looks for an exported method of t whose name starts with
// "From" and which is a constructor of t from elements of type elem. The
// method is bound to the zero receiver of t.
func FindFactory(t, elem reflect.Type) (Constructor, bool) {
	return findFactory(t, elem, func(name string) bool { return strings.HasPrefix(name, "From") })
}

// Factory is FindFactory restricted to the method called name.
func Factory(t reflect.Type, name string, elem reflect.Type) (Constructor, bool) {
	return findFactory(t, elem, func(n string) bool { return n == name })
}

func findFactory(t, elem reflect.Type, accept func(name string) bool) (Constructor, bool) {
	if t.Kind() == reflect.Interface {
		return Constructor{}, false
	}

	recv := Receiver(t)
	rtype := recv.Type()
	for i := range rtype.NumMethod() {
		m := rtype.Method(i)
		if !accept(m.Name) {
			continue
		}

		c, ok := inspect(recv.Method(i), m.Type, 1)
		if !ok || !c.Accepts(t, elem) {
			continue
		}

		c.Name = m.Name
		c.PackageAlias = utils.Second(path.Split(t.PkgPath()))
		return c, true
	}

	return Constructor{}, false
}
