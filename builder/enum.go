package builder

import (
	"fmt"
	"reflect"

	"schema-caster/primitive"
	"schema-caster/schema"
)

// EnumCase converts enum symbols. String-kinded destinations receive the
// symbol, integer-kinded ones its index. The decoded value may be either the
// symbol or its index. Destinations with IsValid() bool are validated.
type EnumCase struct{}

func (EnumCase) Name() string { return "enum" }

func (EnumCase) Match(s schema.Node, _ reflect.Type) bool {
	return s.Kind() == schema.KindEnum
}

func (EnumCase) Build(_ *Session, s schema.Node, t reflect.Type) (*Plan, error) {
	e, ok := s.(*schema.Enum)
	if !ok {
		return nil, unsupported(s, t, "enum node of type %T", s)
	}

	kind := primitive.FromReflectType(t)
	if kind == primitive.KindPrimitiveEnum {
		kind = primitive.FromReflectType(underlying(t))
	}

	switch {
	case kind == primitive.KindString, kind.IsInteger():
	default:
		return nil, unsupported(s, t, "enums need a string or integer kind")
	}

	return newPlan(s, t, EnumCase{}.Name(), func(in any) (reflect.Value, error) {
		index, err := symbolIndex(e, in)
		if err != nil {
			return reflect.Value{}, err
		}

		out := reflect.New(t).Elem()
		switch {
		case kind == primitive.KindString:
			out.SetString(e.Symbols[index])
		case kind.IsSigned():
			if out.OverflowInt(int64(index)) {
				return reflect.Value{}, fmt.Errorf("%w: index %d does not fit %s", primitive.ErrOverflow, index, t)
			}
			out.SetInt(int64(index))
		default:
			if out.OverflowUint(uint64(index)) {
				return reflect.Value{}, fmt.Errorf("%w: index %d does not fit %s", primitive.ErrOverflow, index, t)
			}
			out.SetUint(uint64(index))
		}

		if err = primitive.Validate(out); err != nil {
			return reflect.Value{}, err
		}

		return out, nil
	}), nil
}

func symbolIndex(e *schema.Enum, in any) (int, error) {
	if symbol, ok := in.(string); ok {
		index := e.Index(symbol)
		if index < 0 {
			return 0, fmt.Errorf("%w: %q is not a symbol of %s", primitive.ErrInvalidValue, symbol, e.Name)
		}

		return index, nil
	}

	n, err := primitive.Normalize(primitive.KindInt64, in)
	if err != nil {
		return 0, err
	}

	index := n.(int64)
	if index < 0 || index >= int64(len(e.Symbols)) {
		return 0, fmt.Errorf("%w: %d is not a symbol index of %s", primitive.ErrOverflow, index, e.Name)
	}

	return int(index), nil
}

// underlying returns the predeclared type with the same kind as t.
func underlying(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.String:
		return reflect.TypeFor[string]()
	case reflect.Int:
		return reflect.TypeFor[int]()
	case reflect.Int8:
		return reflect.TypeFor[int8]()
	case reflect.Int16:
		return reflect.TypeFor[int16]()
	case reflect.Int32:
		return reflect.TypeFor[int32]()
	case reflect.Int64:
		return reflect.TypeFor[int64]()
	case reflect.Uint:
		return reflect.TypeFor[uint]()
	case reflect.Uint8:
		return reflect.TypeFor[uint8]()
	case reflect.Uint16:
		return reflect.TypeFor[uint16]()
	case reflect.Uint32:
		return reflect.TypeFor[uint32]()
	case reflect.Uint64:
		return reflect.TypeFor[uint64]()
	}

	return t
}
