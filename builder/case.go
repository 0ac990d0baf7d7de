package builder

import (
	"reflect"

	"schema-caster/schema"
)

// Case is one matching rule of the case chain. Match must not fail: it only
// reports whether the case is responsible for the pair. Build either returns
// a plan or an error that the chain returns to the caller unchanged.
type Case interface {
	Name() string
	Match(s schema.Node, t reflect.Type) bool
	Build(sess *Session, s schema.Node, t reflect.Type) (*Plan, error)
}

// DefaultCases returns the case chain used by New, in dispatch order.
func DefaultCases() []Case {
	return []Case{
		PointerCase{},
		ArrayCase{},
		MapCase{},
		RecordCase{},
		EnumCase{},
		UnionCase{},
		PrimitiveCase{},
	}
}
