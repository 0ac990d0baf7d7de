package main

import (
	"cmp"
	"reflect"

	"schema-caster/collection"
	"schema-caster/collection/immutable"
	"schema-caster/schema"
)

type elemTarget struct {
	schema  schema.Node
	targets map[string]reflect.Type
}

var elems = map[string]elemTarget{
	"int":    {schema.Int, targetsFor[int32]()},
	"long":   {schema.Long, targetsFor[int64]()},
	"float":  {schema.Float, targetsFor[float32]()},
	"double": {schema.Double, targetsFor[float64]()},
	"string": {schema.String, targetsFor[string]()},
}

func targetsFor[E cmp.Ordered]() map[string]reflect.Type {
	return map[string]reflect.Type{
		"slice":                reflect.TypeFor[[]E](),
		"array":                reflect.TypeFor[[8]E](),
		"hash-set":             reflect.TypeFor[map[E]struct{}](),
		"list":                 reflect.TypeFor[*collection.List[E]](),
		"sorted-set":           reflect.TypeFor[*collection.SortedSet[E]](),
		"segment":              reflect.TypeFor[collection.Segment[E]](),
		"immutable-array":      reflect.TypeFor[immutable.Array[E]](),
		"immutable-list":       reflect.TypeFor[immutable.List[E]](),
		"set":                  reflect.TypeFor[immutable.Set[E]](),
		"immutable-sorted-set": reflect.TypeFor[immutable.SortedSet[E]](),
		"stack":                reflect.TypeFor[immutable.Stack[E]](),
		"queue":                reflect.TypeFor[immutable.Queue[E]](),
	}
}
