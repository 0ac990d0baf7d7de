package codec_test

import (
	"bytes"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-caster/builder"
	"schema-caster/codec"
	"schema-caster/collection"
	"schema-caster/collection/immutable"
	"schema-caster/primitive"
	"schema-caster/schema"
)

type Reading struct {
	Sensor  string                     `json:"sensor"`
	Values  []int64                    `json:"values"`
	Seen    immutable.SortedSet[int64] `json:"seen"`
	Payload []byte                     `json:"payload"`
	Note    *string                    `json:"note"`
}

var readingSchema = schema.NewRecord("Reading",
	schema.Field{Name: "sensor", Type: schema.String},
	schema.Field{Name: "values", Type: schema.NewArray(schema.Long)},
	schema.Field{Name: "seen", Type: schema.NewArray(schema.Long)},
	schema.Field{Name: "payload", Type: schema.Bytes},
	schema.Field{Name: "note", Type: schema.NewUnion(schema.Null, schema.String)},
)

func TestDecodeCBOR(t *testing.T) {
	t.Parallel()

	data, err := codec.MarshalCBOR(map[string]any{
		"sensor":  "t1",
		"values":  []int64{3, -1, 2},
		"seen":    []int64{5, 1, 5},
		"payload": []byte{0xCA, 0xFE},
		"note":    nil,
	})
	require.NoError(t, err)

	dec := codec.NewDecoder(builder.New())

	var out Reading
	require.NoError(t, dec.DecodeCBOR(data, readingSchema, &out))
	assert.Equal(t, "t1", out.Sensor)
	assert.Equal(t, []int64{3, -1, 2}, out.Values)
	assert.Equal(t, []int64{1, 5}, out.Seen.Items())
	assert.Equal(t, []byte{0xCA, 0xFE}, out.Payload)
	assert.Nil(t, out.Note)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	dec := codec.NewDecoder(builder.New())

	var out Reading
	err := dec.DecodeJSON([]byte(`{"sensor":"t2","values":[9007199254740993],"seen":[],"note":"hi"}`), readingSchema, &out)
	require.NoError(t, err)
	assert.Equal(t, []int64{9007199254740993}, out.Values)
	assert.Zero(t, out.Seen.Len())
	require.NotNil(t, out.Note)
	assert.Equal(t, "hi", *out.Note)

	err = dec.DecodeJSON([]byte(`{"values":[1.5]}`), readingSchema, &out)
	require.ErrorIs(t, err, primitive.ErrInvalidValue)

	err = dec.DecodeJSON([]byte(`{"values":`), readingSchema, &out)
	require.ErrorContains(t, err, "decode JSON")
}

func TestDecodeFamilies(t *testing.T) {
	t.Parallel()

	dec := codec.NewDecoder(builder.New())
	ints := schema.NewArray(schema.Int)

	data, err := codec.MarshalCBOR([]int{1, 2, 3, 2})
	require.NoError(t, err)

	var set immutable.Set[int32]
	require.NoError(t, dec.DecodeCBOR(data, ints, &set))
	assert.ElementsMatch(t, []int32{1, 2, 3}, slices.Collect(set.All()))

	var stack immutable.Stack[int32]
	require.NoError(t, dec.DecodeCBOR(data, ints, &stack))
	assert.Equal(t, []int32{2, 3, 2, 1}, slices.Collect(stack.All()))

	var queue immutable.Queue[int32]
	require.NoError(t, dec.DecodeJSON([]byte(`[1,2,3,2]`), ints, &queue))
	assert.Equal(t, []int32{1, 2, 3, 2}, slices.Collect(queue.All()))

	var sorted *collection.SortedSet[int32]
	require.NoError(t, dec.DecodeJSON([]byte(`[3,1,2]`), ints, &sorted))
	assert.Equal(t, []int32{1, 2, 3}, sorted.Items())

	var fixed [4]int32
	require.NoError(t, dec.DecodeJSON([]byte(`[7]`), ints, &fixed))
	assert.Equal(t, [4]int32{7}, fixed)

	require.Error(t, dec.DecodeJSON([]byte(`[7]`), ints, fixed))
	require.Error(t, dec.DecodeJSON([]byte(`[7]`), ints, nil))
}

func TestDecodeCBORStream(t *testing.T) {
	t.Parallel()

	var stream bytes.Buffer
	for _, item := range [][]int{{1}, {2, 3}, {}} {
		data, err := codec.MarshalCBOR(item)
		require.NoError(t, err)
		stream.Write(data)
	}

	dec := codec.NewDecoder(builder.New())

	var got [][]int64
	err := dec.DecodeCBORStream(&stream, schema.NewArray(schema.Long), reflect.TypeFor[[]int64](), func(v reflect.Value) error {
		got = append(got, v.Interface().([]int64))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1}, {2, 3}, {}}, got)

	err = dec.DecodeCBORStream(bytes.NewReader([]byte{0x81, 0x61, 0x78}), schema.NewArray(schema.Long), reflect.TypeFor[[]int64](),
		func(reflect.Value) error { return nil })
	require.ErrorIs(t, err, primitive.ErrInvalidValue)
	assert.Contains(t, err.Error(), "item 0: [0]: ")
}
