package builder

import (
	"reflect"

	"schema-caster/node"
	"schema-caster/schema"
)

// PointerCase allocates pointer destinations and converts into the pointed-to
// type. Unions are left to UnionCase, and pointer types that are sequences
// themselves to ArrayCase.
type PointerCase struct{}

func (PointerCase) Name() string { return "pointer" }

func (PointerCase) Match(s schema.Node, t reflect.Type) bool {
	return t.Kind() == reflect.Ptr && s.Kind() != schema.KindUnion && node.Dispatch(t) == node.ShapeUnknown
}

func (PointerCase) Build(sess *Session, s schema.Node, t reflect.Type) (*Plan, error) {
	elem, err := sess.ResolveIndirect(s, t.Elem())
	if err != nil {
		return nil, err
	}

	return newPlan(s, t, PointerCase{}.Name(), func(in any) (reflect.Value, error) {
		if in == nil {
			return reflect.Zero(t), nil
		}

		return pointerTo(t, elem, in)
	}), nil
}

func pointerTo(t reflect.Type, elem *Plan, in any) (reflect.Value, error) {
	v, err := elem.Convert(in)
	if err != nil {
		return reflect.Value{}, err
	}

	ptr := reflect.New(t.Elem())
	ptr.Elem().Set(v)
	return ptr, nil
}
