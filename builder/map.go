package builder

import (
	"fmt"
	"reflect"

	"schema-caster/schema"
)

// MapCase converts schema maps into Go maps keyed by a string kind.
type MapCase struct{}

func (MapCase) Name() string { return "map" }

func (MapCase) Match(s schema.Node, _ reflect.Type) bool {
	return s.Kind() == schema.KindMap
}

func (MapCase) Build(sess *Session, s schema.Node, t reflect.Type) (*Plan, error) {
	m, ok := s.(*schema.Map)
	if !ok {
		return nil, unsupported(s, t, "map node of type %T", s)
	}

	if t.Kind() != reflect.Map || t.Key().Kind() != reflect.String {
		return nil, unsupported(s, t, "maps need a Go map with string keys")
	}

	values, err := sess.Resolve(m.Values, t.Elem())
	if err != nil {
		return nil, err
	}

	return newPlan(s, t, MapCase{}.Name(), func(in any) (reflect.Value, error) {
		seq, err := entries(in)
		if err != nil {
			return reflect.Value{}, err
		}

		out := reflect.MakeMap(t)
		for k, v := range seq {
			value, err := values.Convert(v)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("[%q]: %w", k, err)
			}

			out.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), value)
		}

		return out, nil
	}), nil
}
