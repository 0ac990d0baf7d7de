package builder

import (
	"fmt"
	"iter"
	"reflect"

	"schema-caster/primitive"
)

// entries iterates a decoded map. Decoders produce map[string]any or, for
// binary formats, map[any]any with string keys.
func entries(in any) (iter.Seq2[string, any], error) {
	switch m := in.(type) {
	case map[string]any:
		return func(yield func(string, any) bool) {
			for k, v := range m {
				if !yield(k, v) {
					return
				}
			}
		}, nil
	}

	rv := reflect.ValueOf(in)
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: expected a map, got %T", primitive.ErrInvalidValue, in)
	}

	keyKind := rv.Type().Key().Kind()
	if keyKind != reflect.String && keyKind != reflect.Interface {
		return nil, fmt.Errorf("%w: expected string keys, got %s", primitive.ErrInvalidValue, rv.Type())
	}

	for _, k := range rv.MapKeys() {
		if k.Kind() == reflect.Interface {
			k = k.Elem()
		}

		if k.Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key %v is not a string", primitive.ErrInvalidValue, k)
		}
	}

	return func(yield func(string, any) bool) {
		it := rv.MapRange()
		for it.Next() {
			k := it.Key()
			if k.Kind() == reflect.Interface {
				k = k.Elem()
			}

			if !yield(k.String(), it.Value().Interface()) {
				return
			}
		}
	}, nil
}

// fields returns a decoded map keyed by string.
func fields(in any) (map[string]any, error) {
	if m, ok := in.(map[string]any); ok {
		return m, nil
	}

	seq, err := entries(in)
	if err != nil {
		return nil, err
	}

	m := make(map[string]any)
	for k, v := range seq {
		m[k] = v
	}

	return m, nil
}
