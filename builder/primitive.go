package builder

import (
	"fmt"
	"reflect"

	"schema-caster/primitive"
	"schema-caster/schema"
)

// wireKinds maps primitive schema kinds to the Go kind their values decode
// as.
var wireKinds = map[schema.Kind]primitive.KindEnum{
	schema.KindBoolean: primitive.KindBool,
	schema.KindInt:     primitive.KindInt32,
	schema.KindLong:    primitive.KindInt64,
	schema.KindFloat:   primitive.KindFloat32,
	schema.KindDouble:  primitive.KindFloat64,
	schema.KindString:  primitive.KindString,
}

// naturalTypes are the Go types interface destinations receive.
var naturalTypes = map[schema.Kind]reflect.Type{
	schema.KindBoolean: reflect.TypeFor[bool](),
	schema.KindInt:     reflect.TypeFor[int32](),
	schema.KindLong:    reflect.TypeFor[int64](),
	schema.KindFloat:   reflect.TypeFor[float32](),
	schema.KindDouble:  reflect.TypeFor[float64](),
	schema.KindString:  reflect.TypeFor[string](),
	schema.KindBytes:   reflect.TypeFor[[]byte](),
}

// PrimitiveCase converts primitive schema values. Which Go types a schema
// kind converts into is governed by the builder's conversion categories.
type PrimitiveCase struct{}

func (PrimitiveCase) Name() string { return "primitive" }

func (PrimitiveCase) Match(s schema.Node, _ reflect.Type) bool {
	return s.Kind().IsPrimitive()
}

func (c PrimitiveCase) Build(sess *Session, s schema.Node, t reflect.Type) (*Plan, error) {
	if s.Kind() == schema.KindNull {
		return newPlan(s, t, c.Name(), func(any) (reflect.Value, error) {
			return reflect.Zero(t), nil
		}), nil
	}

	target := t
	if t.Kind() == reflect.Interface {
		natural := naturalTypes[s.Kind()]
		if !natural.AssignableTo(t) {
			return nil, unsupported(s, t, "%s does not implement %s", natural, t)
		}
		target = natural
	}

	convert, err := primitiveConverter(sess, s, target)
	if err != nil {
		return nil, err
	}

	if target == t {
		return newPlan(s, t, c.Name(), convert), nil
	}

	return newPlan(s, t, c.Name(), func(in any) (reflect.Value, error) {
		v, err := convert(in)
		if err != nil {
			return reflect.Value{}, err
		}

		out := reflect.New(t).Elem()
		out.Set(v)
		return out, nil
	}), nil
}

func primitiveConverter(sess *Session, s schema.Node, t reflect.Type) (primitive.Converter, error) {
	if s.Kind() == schema.KindBytes {
		return bytesConverter(s, t)
	}

	from, ok := wireKinds[s.Kind()]
	if !ok {
		return nil, unsupported(s, t, "unknown primitive kind %s", s.Kind())
	}

	convert, ok := primitive.NewConverter(from, t, sess.Categories())
	if !ok {
		return nil, unsupported(s, t, "conversion %s -> %s is not enabled", from, primitive.FromReflectType(t))
	}

	return convert, nil
}

// bytesConverter copies bytes into byte slices or strings.
func bytesConverter(s schema.Node, t reflect.Type) (primitive.Converter, error) {
	isBytes := t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
	if !isBytes && t.Kind() != reflect.String {
		return nil, unsupported(s, t, "bytes need a byte slice or a string")
	}

	return func(in any) (reflect.Value, error) {
		var b []byte

		switch v := in.(type) {
		default:
			return reflect.Value{}, fmt.Errorf("%w: %T is not bytes", primitive.ErrInvalidValue, in)
		case []byte:
			b = v
		case string:
			b = []byte(v)
		}

		out := reflect.New(t).Elem()
		if isBytes {
			out.SetBytes(append([]byte(nil), b...))
		} else {
			out.SetString(string(b))
		}

		return out, nil
	}, nil
}
