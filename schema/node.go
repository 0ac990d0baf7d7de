// Package schema is the minimal schema object model consumed by the plan
// builder. Nodes are compared by pointer identity: two structurally equal
// nodes are still distinct cache keys.
package schema

import (
	"strings"
)

// Node is a single shape in the wire format.
type Node interface {
	Kind() Kind
	String() string
}

// Primitive is a node without nested schemas.
type Primitive struct {
	kind Kind
}

// NewPrimitive returns a fresh primitive node. It panics when kind is not a
// primitive kind.
func NewPrimitive(kind Kind) *Primitive {
	if !kind.IsPrimitive() {
		panic("schema: " + kind.String() + " is not a primitive kind")
	}

	return &Primitive{kind: kind}
}

// Shared primitive nodes. Any other *Primitive with the same kind is an
// equally valid, but distinct, node.
var (
	Null    = NewPrimitive(KindNull)
	Boolean = NewPrimitive(KindBoolean)
	Int     = NewPrimitive(KindInt)
	Long    = NewPrimitive(KindLong)
	Float   = NewPrimitive(KindFloat)
	Double  = NewPrimitive(KindDouble)
	Bytes   = NewPrimitive(KindBytes)
	String  = NewPrimitive(KindString)
)

func (p *Primitive) Kind() Kind     { return p.kind }
func (p *Primitive) String() string { return Format(p) }

// Array is a sequence of values described by Items.
type Array struct {
	Items Node
}

// NewArray returns an array node of the given items schema.
func NewArray(items Node) *Array {
	return &Array{Items: items}
}

func (a *Array) Kind() Kind     { return KindArray }
func (a *Array) String() string { return Format(a) }

// Map is a string-keyed mapping to values described by Values.
type Map struct {
	Values Node
}

// NewMap returns a map node of the given values schema.
func NewMap(values Node) *Map {
	return &Map{Values: values}
}

func (m *Map) Kind() Kind     { return KindMap }
func (m *Map) String() string { return Format(m) }

// Enum is a named set of symbols.
type Enum struct {
	Name    string
	Symbols []string
}

// NewEnum returns an enum node.
func NewEnum(name string, symbols ...string) *Enum {
	return &Enum{Name: name, Symbols: symbols}
}

func (e *Enum) Kind() Kind     { return KindEnum }
func (e *Enum) String() string { return Format(e) }

// Index returns the position of symbol, or -1.
func (e *Enum) Index(symbol string) int {
	for i, s := range e.Symbols {
		if s == symbol {
			return i
		}
	}

	return -1
}

// Field is a single named member of a record.
type Field struct {
	Name string
	Type Node
}

// Record is a named product of fields.
type Record struct {
	Name   string
	Fields []Field
}

// NewRecord returns a record node.
func NewRecord(name string, fields ...Field) *Record {
	return &Record{Name: name, Fields: fields}
}

func (r *Record) Kind() Kind     { return KindRecord }
func (r *Record) String() string { return Format(r) }

// Union is a choice between the listed schemas.
type Union struct {
	Schemas []Node
}

// NewUnion returns a union node.
func NewUnion(schemas ...Node) *Union {
	return &Union{Schemas: schemas}
}

func (u *Union) Kind() Kind     { return KindUnion }
func (u *Union) String() string { return Format(u) }

// Nullable returns the single non-null branch of a union of null and exactly
// one other schema.
func (u *Union) Nullable() (Node, bool) {
	var other Node
	hasNull := false

	for _, s := range u.Schemas {
		switch {
		case s != nil && s.Kind() == KindNull && !hasNull:
			hasNull = true
		case other == nil:
			other = s
		default:
			return nil, false
		}
	}

	if !hasNull || other == nil {
		return nil, false
	}

	return other, true
}

// Format renders n in a compact notation. Nodes reached again while they are
// still being rendered are printed by name or as "...", so cyclic graphs are
// safe to format.
func Format(n Node) string {
	var b strings.Builder
	format(&b, n, map[Node]struct{}{})
	return b.String()
}

func format(b *strings.Builder, n Node, seen map[Node]struct{}) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}

	if _, ok := seen[n]; ok {
		switch t := n.(type) {
		case *Record:
			b.WriteString(t.Name)
		case *Enum:
			b.WriteString(t.Name)
		default:
			b.WriteString("...")
		}
		return
	}

	seen[n] = struct{}{}
	defer delete(seen, n)

	switch t := n.(type) {
	case *Primitive:
		b.WriteString(strings.ToLower(t.kind.String()))
	case *Array:
		b.WriteString("array<")
		format(b, t.Items, seen)
		b.WriteString(">")
	case *Map:
		b.WriteString("map<")
		format(b, t.Values, seen)
		b.WriteString(">")
	case *Enum:
		b.WriteString("enum ")
		b.WriteString(t.Name)
		b.WriteString("{")
		b.WriteString(strings.Join(t.Symbols, ","))
		b.WriteString("}")
	case *Record:
		b.WriteString("record ")
		b.WriteString(t.Name)
		b.WriteString("{")
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(f.Name)
			b.WriteString(":")
			format(b, f.Type, seen)
		}
		b.WriteString("}")
	case *Union:
		b.WriteString("union[")
		for i, s := range t.Schemas {
			if i > 0 {
				b.WriteString(",")
			}
			format(b, s, seen)
		}
		b.WriteString("]")
	default:
		b.WriteString(n.Kind().String())
	}
}
