package builder

import (
	"log/slog"
	"reflect"

	"schema-caster/node"
	"schema-caster/primitive"
	"schema-caster/schema"
)

// Key identifies a plan: the schema node by pointer identity and the
// destination type.
type Key struct {
	Schema schema.Node
	Type   reflect.Type
}

// Session resolves one top-level build request. Plans built during the
// session become visible to other requests only when the whole request
// succeeds.
type Session struct {
	builder *Builder
	visited map[Key]*Plan
	built   map[Key]*Plan
	// arrays holds the array nodes entered since the last pointer step.
	arrays map[schema.Node]struct{}
}

func newSession(b *Builder) *Session {
	return &Session{
		builder: b,
		visited: make(map[Key]*Plan),
		built:   make(map[Key]*Plan),
		arrays:  make(map[schema.Node]struct{}),
	}
}

// Resolve returns the plan for a nested pair. Reaching a pair that is still
// being resolved fails with a *RecursiveSchemaError.
func (sess *Session) Resolve(s schema.Node, t reflect.Type) (*Plan, error) {
	return sess.resolve(s, t, false)
}

// ResolveIndirect is Resolve for pairs reached through a pointer. A pair
// still being resolved yields its unfinished plan, which is complete by the
// time any value is converted.
func (sess *Session) ResolveIndirect(s schema.Node, t reflect.Type) (*Plan, error) {
	return sess.resolve(s, t, true)
}

func (sess *Session) resolve(s schema.Node, t reflect.Type, indirect bool) (*Plan, error) {
	if s == nil || t == nil {
		return nil, unsupported(s, t, "schema and type are required")
	}

	key := Key{Schema: s, Type: t}
	if p, ok := sess.built[key]; ok {
		return p, nil
	}

	if p, ok := sess.builder.cache.Peek(key); ok {
		return p, nil
	}

	if pending, ok := sess.visited[key]; ok {
		if indirect {
			return pending, nil
		}

		return nil, &RecursiveSchemaError{Schema: s, Type: t}
	}

	if indirect {
		outer := sess.arrays
		sess.arrays = make(map[schema.Node]struct{})
		defer func() { sess.arrays = outer }()
	}

	pending := &Plan{Schema: s, Type: t}
	sess.visited[key] = pending
	defer delete(sess.visited, key)

	c := sess.builder.dispatch(s, t)
	if c == nil {
		return nil, unsupported(s, t, "no case matches")
	}

	p, err := c.Build(sess, s, t)
	if err != nil {
		return nil, err
	}

	*pending = *p
	sess.built[key] = pending

	sess.Logger().Debug("built plan",
		slog.String("schema", nodeName(s)),
		slog.String("type", typeName(t)),
		slog.String("case", pending.Case))

	return pending, nil
}

// enterArray marks the array node s as being resolved into t. Entering it
// again before a pointer step fails with a *RecursiveSchemaError, whatever
// the destination type: such a schema has no finite value.
func (sess *Session) enterArray(s schema.Node, t reflect.Type) (leave func(), err error) {
	if _, ok := sess.arrays[s]; ok {
		return nil, &RecursiveSchemaError{Schema: s, Type: t}
	}

	arrays := sess.arrays
	arrays[s] = struct{}{}

	return func() { delete(arrays, s) }, nil
}

// Categories returns the primitive conversion categories of the builder.
func (sess *Session) Categories() primitive.CategoryEnum {
	return sess.builder.categories
}

// Constructor finds a constructor producing t from elements of type elem:
// registered constructors first, then the From* factories of t.
func (sess *Session) Constructor(t, elem reflect.Type) (node.Constructor, bool) {
	if c, ok := sess.builder.registered(t, elem); ok {
		return c, true
	}

	return node.FindFactory(t, elem)
}

func (sess *Session) Logger() *slog.Logger {
	return sess.builder.logger
}

func (sess *Session) commit() {
	for key, p := range sess.built {
		sess.builder.cache.Add(key, p)
	}
}
