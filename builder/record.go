package builder

import (
	"fmt"
	"reflect"
	"strings"

	"schema-caster/schema"
)

// RecordCase converts schema records into structs.
//
// A schema field binds to the exported struct field whose key matches its
// name. The key is taken from the `schema` tag, then the `json` tag, then the
// field name; "-" excludes a field. Schema fields without a struct field are
// skipped, and struct fields missing from the input keep their zero value.
type RecordCase struct{}

func (RecordCase) Name() string { return "record" }

func (RecordCase) Match(s schema.Node, _ reflect.Type) bool {
	return s.Kind() == schema.KindRecord
}

type fieldPlan struct {
	name  string
	index []int
	plan  *Plan
}

func (RecordCase) Build(sess *Session, s schema.Node, t reflect.Type) (*Plan, error) {
	r, ok := s.(*schema.Record)
	if !ok {
		return nil, unsupported(s, t, "record node of type %T", s)
	}

	if t.Kind() != reflect.Struct {
		return nil, unsupported(s, t, "records need a struct")
	}

	keys := fieldKeys(t)

	var plans []fieldPlan
	for _, f := range r.Fields {
		sf, ok := keys[f.Name]
		if !ok {
			continue
		}

		p, err := sess.Resolve(f.Type, sf.Type)
		if err != nil {
			return nil, err
		}

		plans = append(plans, fieldPlan{name: f.Name, index: sf.Index, plan: p})
	}

	return newPlan(s, t, RecordCase{}.Name(), func(in any) (reflect.Value, error) {
		m, err := fields(in)
		if err != nil {
			return reflect.Value{}, err
		}

		out := reflect.New(t).Elem()
		for _, fp := range plans {
			raw, found := m[fp.name]
			if !found {
				continue
			}

			v, err := fp.plan.Convert(raw)
			if err != nil {
				return reflect.Value{}, fmt.Errorf(".%s: %w", fp.name, err)
			}

			out.FieldByIndex(fp.index).Set(v)
		}

		return out, nil
	}), nil
}

func fieldKeys(t reflect.Type) map[string]reflect.StructField {
	keys := make(map[string]reflect.StructField)

	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous || throughPointer(t, sf.Index) {
			continue
		}

		key := sf.Name
		if tag, ok := tagName(sf, "json"); ok {
			key = tag
		}
		if tag, ok := tagName(sf, "schema"); ok {
			key = tag
		}

		if key == "-" {
			continue
		}

		if _, taken := keys[key]; !taken {
			keys[key] = sf
		}
	}

	return keys
}

func tagName(sf reflect.StructField, tag string) (string, bool) {
	value, ok := sf.Tag.Lookup(tag)
	if !ok {
		return "", false
	}

	name, _, _ := strings.Cut(value, ",")
	if name == "" {
		return "", false
	}

	return name, true
}

// throughPointer reports whether a promoted field is reached through an
// embedded pointer.
func throughPointer(t reflect.Type, index []int) bool {
	for i := 1; i < len(index); i++ {
		if t.FieldByIndex(index[:i]).Type.Kind() == reflect.Ptr {
			return true
		}
	}

	return false
}
