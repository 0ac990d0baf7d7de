package builder_test

import (
	"bytes"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-caster/builder"
	"schema-caster/collection/immutable"
	"schema-caster/options"
	"schema-caster/primitive"
	"schema-caster/schema"
)

// countingCase counts the builds it performs on behalf of ArrayCase.
type countingCase struct {
	builder.ArrayCase
	builds *atomic.Int32
}

func (c countingCase) Name() string { return "counting" }

func (c countingCase) Build(sess *builder.Session, s schema.Node, t reflect.Type) (*builder.Plan, error) {
	c.builds.Add(1)
	return c.ArrayCase.Build(sess, s, t)
}

func TestBuildCachesPlans(t *testing.T) {
	t.Parallel()

	var builds atomic.Int32
	b := builder.New(builder.WithCase(countingCase{builds: &builds}))
	typ := reflect.TypeFor[immutable.Set[int32]]()

	first := build(t, b, ints, typ)
	assert.Equal(t, "array", first.Case)
	assert.Equal(t, int32(1), builds.Load())
	assert.True(t, b.Cached(ints, typ))
	assert.True(t, b.Cached(schema.Int, reflect.TypeFor[int32]()))
	assert.Equal(t, 2, b.Len())

	second := build(t, b, ints, typ)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), builds.Load())

	b.Purge()
	assert.Zero(t, b.Len())
	third := build(t, b, ints, typ)
	assert.NotSame(t, first, third)
	assert.Equal(t, int32(2), builds.Load())
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, typ := range []reflect.Type{
		reflect.TypeFor[[]int32](),
		reflect.TypeFor[[4]int64](),
		reflect.TypeFor[immutable.SortedSet[int32]](),
		reflect.TypeFor[immutable.Queue[int64]](),
		reflect.TypeFor[map[int32]bool](),
		reflect.TypeFor[Bag](),
	} {
		first := build(t, builder.New(), ints, typ)
		second := build(t, builder.New(), ints, typ)

		assert.NotSame(t, first, second)
		assert.Equal(t, first.String(), second.String())
		assert.Equal(t, first.Sequence.Accumulator, second.Sequence.Accumulator)
		assert.Equal(t, first.Sequence.Finalizer, second.Sequence.Finalizer)
	}
}

func TestBuildConcurrently(t *testing.T) {
	t.Parallel()

	var builds atomic.Int32
	b := builder.New(builder.WithCase(countingCase{builds: &builds}))
	typ := reflect.TypeFor[[]int64]()
	longs := schema.NewArray(schema.Long)

	const workers = 16
	plans := make([]*builder.Plan, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			p, err := b.Build(longs, typ)
			assert.NoError(t, err)
			plans[i] = p
		}()
	}
	wg.Wait()

	for _, p := range plans {
		assert.Same(t, plans[0], p)
	}
	assert.Equal(t, int32(1), builds.Load())
}

func TestFailedBuildCachesNothing(t *testing.T) {
	t.Parallel()

	b := builder.New()

	_, err := b.Build(ints, reflect.TypeFor[Opaque]())
	require.ErrorIs(t, err, builder.ErrUnsupportedConversion)
	assert.Zero(t, b.Len())
	assert.False(t, b.Cached(schema.Int, reflect.TypeFor[int32]()))

	require.NoError(t, b.RegisterConstructor(func(items []int32) Opaque { return Opaque{} }))
	build(t, b, ints, reflect.TypeFor[Opaque]())
	assert.Equal(t, 2, b.Len())
}

type Nested []Nested

type NestedRefs []*NestedRefs

type LinkedNode struct {
	Value int64       `schema:"value"`
	Next  *LinkedNode `schema:"next"`
}

func TestRecursiveSchemas(t *testing.T) {
	t.Parallel()

	self := &schema.Array{}
	self.Items = self

	t.Run("array of itself", func(t *testing.T) {
		t.Parallel()

		b := builder.New()
		_, err := b.Build(self, reflect.TypeFor[Nested]())
		require.ErrorIs(t, err, builder.ErrRecursiveSchema)

		var target *builder.RecursiveSchemaError
		require.ErrorAs(t, err, &target)
		assert.Same(t, self, target.Schema)
		assert.Equal(t, reflect.TypeFor[Nested](), target.Type)
		assert.EqualError(t, err, "recursive schema: array<...> -> builder_test.Nested")
		assert.Zero(t, b.Len())
	})

	t.Run("through a pointer", func(t *testing.T) {
		t.Parallel()

		p := build(t, builder.New(), self, reflect.TypeFor[NestedRefs]())
		out := convert(t, p, []any{[]any{}, nil, []any{[]any{}}}).(NestedRefs)

		require.Len(t, out, 3)
		assert.Empty(t, *out[0])
		assert.Nil(t, out[1])
		require.Len(t, *out[2], 1)
	})

	t.Run("linked records", func(t *testing.T) {
		t.Parallel()

		linked := schema.NewRecord("Node")
		linked.Fields = []schema.Field{
			{Name: "value", Type: schema.Long},
			{Name: "next", Type: schema.NewUnion(schema.Null, linked)},
		}

		p := build(t, builder.New(), linked, reflect.TypeFor[LinkedNode]())
		out := convert(t, p, map[string]any{
			"value": int64(1),
			"next": map[string]any{
				"value": int64(2),
				"next":  nil,
			},
		}).(LinkedNode)

		assert.Equal(t, LinkedNode{Value: 1, Next: &LinkedNode{Value: 2}}, out)
	})

	t.Run("transitive", func(t *testing.T) {
		t.Parallel()

		inner := &schema.Array{}
		outer := schema.NewArray(inner)
		inner.Items = outer

		_, err := builder.New().Build(outer, reflect.TypeFor[Nested]())
		require.ErrorIs(t, err, builder.ErrRecursiveSchema)
	})

	t.Run("any destination", func(t *testing.T) {
		t.Parallel()

		for _, typ := range []reflect.Type{reflect.TypeFor[[]any](), reflect.TypeFor[[][]int32](), reflect.TypeFor[immutable.List[any]]()} {
			b := builder.New()
			_, err := b.Build(self, typ)
			require.ErrorIs(t, err, builder.ErrRecursiveSchema, typ.String())

			var target *builder.RecursiveSchemaError
			require.ErrorAs(t, err, &target)
			assert.Same(t, self, target.Schema)
			assert.Zero(t, b.Len())
		}
	})

	t.Run("optional self", func(t *testing.T) {
		t.Parallel()

		optional := &schema.Array{}
		optional.Items = schema.NewUnion(schema.Null, optional)

		_, err := builder.New().Build(optional, reflect.TypeFor[[]any]())
		require.ErrorIs(t, err, builder.ErrRecursiveSchema)

		p := build(t, builder.New(), optional, reflect.TypeFor[NestedRefs]())
		out := convert(t, p, []any{nil, []any{}}).(NestedRefs)
		require.Len(t, out, 2)
		assert.Nil(t, out[0])
		assert.Empty(t, *out[1])
	})
}

func TestCaseChain(t *testing.T) {
	t.Parallel()

	b := builder.New(builder.WithCases(builder.PrimitiveCase{}))

	build(t, b, schema.Long, reflect.TypeFor[int64]())

	_, err := b.Build(ints, reflect.TypeFor[[]int32]())
	require.ErrorIs(t, err, builder.ErrUnsupportedConversion)
	assert.Contains(t, err.Error(), "no case matches")

	_, err = b.Build(nil, reflect.TypeFor[int64]())
	require.ErrorIs(t, err, builder.ErrUnsupportedConversion)

	_, err = b.Build(schema.Long, nil)
	require.ErrorIs(t, err, builder.ErrUnsupportedConversion)

	names := make([]string, 0)
	for _, c := range builder.DefaultCases() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"pointer", "array", "map", "record", "enum", "union", "primitive"}, names)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg, err := options.Parse([]byte("cache_size: 1\ncategories: [unsafe_number]\n"))
	require.NoError(t, err)

	b, err := builder.NewFromConfig(cfg)
	require.NoError(t, err)

	p := build(t, b, schema.Long, reflect.TypeFor[int8]())
	assert.Equal(t, int8(7), convert(t, p, int64(7)))

	build(t, b, schema.Double, reflect.TypeFor[float32]())
	assert.Equal(t, 1, b.Len())

	_, err = builder.NewFromConfig(options.Config{CacheSize: -1})
	require.Error(t, err)

	_, err = b.Build(schema.String, reflect.TypeFor[int8]())
	require.ErrorIs(t, err, builder.ErrUnsupportedConversion)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := builder.New(builder.WithLogger(logger))

	build(t, b, ints, reflect.TypeFor[[]int32]())
	build(t, b, ints, reflect.TypeFor[[]int32]())
	_, err := b.Build(ints, reflect.TypeFor[Opaque]())
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="built plan" schema=int type=int32 case=primitive`)
	assert.Contains(t, out, `msg="built plan" schema=array<int> type=[]int32 case=array`)
	assert.Contains(t, out, `msg="plan cache hit"`)
	assert.Contains(t, out, `msg="plan build failed"`)
}

func TestInto(t *testing.T) {
	t.Parallel()

	p := build(t, builder.New(), ints, reflect.TypeFor[[]int32]())

	var out []int32
	require.NoError(t, p.Into([]any{int64(1)}, &out))
	assert.Equal(t, []int32{1}, out)

	var wrong []int64
	require.ErrorIs(t, p.Into([]any{int64(1)}, &wrong), primitive.ErrInvalidValue)
	require.ErrorIs(t, p.Into([]any{int64(1)}, out), primitive.ErrInvalidValue)
}
