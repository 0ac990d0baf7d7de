package node_test

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"schema-caster/node"
)

type Bag struct{ items []int64 }

func (Bag) FromInts(items []int64) Bag { return Bag{items: slices.Clone(items)} }

type Ints []int64

func fromSlice(items []int64) Bag       { return Bag{items: items} }
func fromNamed(items Ints) (Bag, error) { return Bag{items: items}, nil }
func fromSeq(items iter.Seq[int64]) Bag { return Bag{items: slices.Collect(items)} }
func failing([]int64) (Bag, error)      { return Bag{}, errors.New("boom") }
func twoArgs([]int64, int) Bag          { panic("not implemented") }
func wrongResult([]int64) (Bag, bool)   { panic("not implemented") }
func notSequence(int64) Bag             { panic("not implemented") }

func ExampleParseConstructor() {
	desc, err := node.ParseConstructor(fromSlice)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Input, desc.Elem, desc.Out, desc.HasErr)

	desc, err = node.ParseConstructor(fromNamed)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Input, desc.Elem, desc.Out, desc.HasErr)

	desc, err = node.ParseConstructor(fromSeq)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Input, desc.Elem, desc.Out, desc.HasErr)

	desc, err = node.ParseConstructor(slices.Sorted[int64])
	fmt.Println(err, desc.PackageAlias, desc.Input, desc.Elem, desc.Out)

	_, err = node.ParseConstructor(twoArgs)
	fmt.Println(err)

	_, err = node.ParseConstructor(wrongResult)
	fmt.Println(err)

	_, err = node.ParseConstructor(notSequence)
	fmt.Println(err)

	_, err = node.ParseConstructor(42)
	fmt.Println(err)

	// Output:
	// <nil> node_test fromSlice InputSlice int64 node_test.Bag false
	// <nil> node_test fromNamed InputNamedSlice int64 node_test.Bag true
	// <nil> node_test fromSeq InputSeq int64 node_test.Bag false
	// <nil> slices InputSeq int64 []int64
	// provided function is not a recognizable constructor
	// provided function is not a recognizable constructor
	// provided function is not a recognizable constructor
	// provided constructor is not a function
}

func TestConstructorCall(t *testing.T) {
	items := reflect.ValueOf([]int64{3, 1, 2})

	for _, fn := range []any{fromSlice, fromNamed, fromSeq} {
		c, err := node.ParseConstructor(fn)
		require.NoError(t, err)

		out, err := c.Call(items)
		require.NoError(t, err)
		require.Equal(t, []int64{3, 1, 2}, out.Interface().(Bag).items, c.Name)
	}

	c, err := node.ParseConstructor(failing)
	require.NoError(t, err)
	_, err = c.Call(items)
	require.EqualError(t, err, "boom")
}

func TestFindFactory(t *testing.T) {
	bagType := reflect.TypeFor[Bag]()

	c, ok := node.FindFactory(bagType, reflect.TypeFor[int64]())
	require.True(t, ok)
	require.Equal(t, "FromInts", c.Name)
	require.True(t, c.Accepts(bagType, reflect.TypeFor[int64]()))

	out, err := c.Call(reflect.ValueOf([]int64{1, 2}))
	require.NoError(t, err)
	require.Equal(t, Bag{items: []int64{1, 2}}, out.Interface())

	_, ok = node.FindFactory(bagType, reflect.TypeFor[string]())
	require.False(t, ok)

	_, ok = node.FindFactory(reflect.TypeFor[fmt.Stringer](), reflect.TypeFor[int64]())
	require.False(t, ok)
}
