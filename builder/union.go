package builder

import (
	"reflect"

	"schema-caster/node"
	"schema-caster/schema"
)

// UnionCase handles optional values: unions of null and exactly one other
// branch. Null becomes a nil pointer or the zero value of the destination.
type UnionCase struct{}

func (UnionCase) Name() string { return "union" }

func (UnionCase) Match(s schema.Node, _ reflect.Type) bool {
	return s.Kind() == schema.KindUnion
}

func (UnionCase) Build(sess *Session, s schema.Node, t reflect.Type) (*Plan, error) {
	u, ok := s.(*schema.Union)
	if !ok {
		return nil, unsupported(s, t, "union node of type %T", s)
	}

	branch, ok := u.Nullable()
	if !ok {
		return nil, unsupported(s, t, "only unions of null and one other branch are supported")
	}

	if t.Kind() == reflect.Ptr && node.Dispatch(t) == node.ShapeUnknown {
		elem, err := sess.ResolveIndirect(branch, t.Elem())
		if err != nil {
			return nil, err
		}

		return newPlan(s, t, UnionCase{}.Name(), func(in any) (reflect.Value, error) {
			if in == nil {
				return reflect.Zero(t), nil
			}

			return pointerTo(t, elem, in)
		}), nil
	}

	plan, err := sess.Resolve(branch, t)
	if err != nil {
		return nil, err
	}

	return newPlan(s, t, UnionCase{}.Name(), func(in any) (reflect.Value, error) {
		if in == nil {
			return reflect.Zero(t), nil
		}

		return plan.Convert(in)
	}), nil
}
