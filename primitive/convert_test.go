package primitive_test

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-caster/primitive"
)

func TestAllowed(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.Allowed(primitive.KindInt32, primitive.KindInt64, primitive.CategorySafeNumber))
	assert.True(t, primitive.Allowed(primitive.KindString, primitive.KindString, primitive.CategoryNone))
	assert.False(t, primitive.Allowed(primitive.KindInt64, primitive.KindInt32, primitive.CategorySafeNumber))
	assert.True(t, primitive.Allowed(primitive.KindInt64, primitive.KindInt32, primitive.CategoryUnsafeNumber))
	assert.False(t, primitive.Allowed(primitive.KindString, primitive.KindInt64, primitive.CategoryDefault))
	assert.True(t, primitive.Allowed(primitive.KindString, primitive.KindInt64, primitive.CategoryTextNumber))
	assert.True(t, primitive.Allowed(primitive.KindString, primitive.KindPrimitiveEnum, primitive.CategoryDefault))
	assert.False(t, primitive.Allowed(primitive.KindPrimitiveEnum, primitive.KindPrimitiveEnum, primitive.CategoryNone))
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	category, err := primitive.ParseCategory(" Safe_Number ")
	require.NoError(t, err)
	assert.Equal(t, primitive.CategorySafeNumber, category)

	category, err = primitive.ParseCategory("all")
	require.NoError(t, err)
	assert.True(t, category.Has(primitive.CategoryUnsafeArray|primitive.CategoryDatetime))

	_, err = primitive.ParseCategory("everything")
	require.EqualError(t, err, `unknown conversion category "everything"`)

	_, err = primitive.ParseCategory("safe_numbr")
	require.EqualError(t, err, `unknown conversion category "safe_numbr", did you mean "safe_number"?`)
}

func TestConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    primitive.KindEnum
		dst     reflect.Type
		allowed primitive.CategoryEnum
		in      any
		out     any
	}{
		{"int into int32", primitive.KindInt32, reflect.TypeFor[int32](), primitive.CategoryDefault, int64(3), int32(3)},
		{"int from float64", primitive.KindInt32, reflect.TypeFor[int64](), primitive.CategoryDefault, 42.0, int64(42)},
		{"long from json number", primitive.KindInt64, reflect.TypeFor[int64](), primitive.CategoryDefault, json.Number("-7"), int64(-7)},
		{"long from uint64", primitive.KindInt64, reflect.TypeFor[int64](), primitive.CategoryDefault, uint64(9), int64(9)},
		{"long into uint8", primitive.KindInt64, reflect.TypeFor[uint8](), primitive.CategoryUnsafeNumber, int64(200), uint8(200)},
		{"int into float64", primitive.KindInt32, reflect.TypeFor[float64](), primitive.CategoryDefault, int64(5), float64(5)},
		{"double into float32", primitive.KindFloat64, reflect.TypeFor[float32](), primitive.CategoryUnsafeNumber, 1.5, float32(1.5)},
		{"double truncated into int", primitive.KindFloat64, reflect.TypeFor[int](), primitive.CategoryUnsafeNumber, 2.75, 2},
		{"string identity", primitive.KindString, reflect.TypeFor[string](), primitive.CategoryNone, "x", "x"},
		{"bool identity", primitive.KindBool, reflect.TypeFor[bool](), primitive.CategoryNone, true, true},
		{"string into int", primitive.KindString, reflect.TypeFor[int16](), primitive.CategoryTextNumber, "-12", int16(-12)},
		{"long into string", primitive.KindInt64, reflect.TypeFor[string](), primitive.CategoryTextNumber, int64(12), "12"},
		{"long into bool", primitive.KindInt64, reflect.TypeFor[bool](), primitive.CategoryNumericBool, int64(1), true},
		{"string into bool", primitive.KindString, reflect.TypeFor[bool](), primitive.CategoryTextualBool, "Off", false},
		{"string into time", primitive.KindString, reflect.TypeFor[time.Time](), primitive.CategoryDatetime,
			"2024-01-02T03:04:05Z", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"long into time", primitive.KindInt64, reflect.TypeFor[time.Time](), primitive.CategoryTimestamp,
			int64(86400), time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"string into duration", primitive.KindString, reflect.TypeFor[time.Duration](), primitive.CategoryDuration, "2h45m", 165 * time.Minute},
		{"long into duration", primitive.KindInt64, reflect.TypeFor[time.Duration](), primitive.CategoryNanoseconds, int64(1500), 1500 * time.Nanosecond},
		{"double into duration", primitive.KindFloat64, reflect.TypeFor[time.Duration](), primitive.CategorySeconds, 1.5, 1500 * time.Millisecond},
		{"string into enum", primitive.KindString, reflect.TypeFor[Suit](), primitive.CategoryEnumString, "hearts", Suit("hearts")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			convert, ok := primitive.NewConverter(tt.from, tt.dst, tt.allowed)
			require.True(t, ok)

			out, err := convert(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.out, out.Interface(), spew.Sdump(out.Interface()))
		})
	}
}

func TestConverterErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    primitive.KindEnum
		dst     reflect.Type
		allowed primitive.CategoryEnum
		in      any
		err     error
	}{
		{"int out of int32", primitive.KindInt32, reflect.TypeFor[int64](), primitive.CategoryDefault, int64(1 << 40), primitive.ErrOverflow},
		{"long into narrow", primitive.KindInt64, reflect.TypeFor[int8](), primitive.CategoryUnsafeNumber, int64(300), primitive.ErrOverflow},
		{"negative into unsigned", primitive.KindInt64, reflect.TypeFor[uint](), primitive.CategoryUnsafeNumber, int64(-1), primitive.ErrOverflow},
		{"fraction into integer", primitive.KindInt64, reflect.TypeFor[int64](), primitive.CategoryDefault, 1.5, primitive.ErrInvalidValue},
		{"string into integer", primitive.KindInt64, reflect.TypeFor[int64](), primitive.CategoryDefault, "1", primitive.ErrInvalidValue},
		{"bad text number", primitive.KindString, reflect.TypeFor[int8](), primitive.CategoryTextNumber, "12a", primitive.ErrInvalidValue},
		{"text number overflow", primitive.KindString, reflect.TypeFor[int8](), primitive.CategoryTextNumber, "1000", primitive.ErrOverflow},
		{"numeric bool", primitive.KindInt64, reflect.TypeFor[bool](), primitive.CategoryNumericBool, int64(2), primitive.ErrInvalidValue},
		{"textual bool", primitive.KindString, reflect.TypeFor[bool](), primitive.CategoryTextualBool, "maybe", primitive.ErrInvalidValue},
		{"invalid enum", primitive.KindString, reflect.TypeFor[Suit](), primitive.CategoryEnumString, "clubs", primitive.ErrInvalidValue},
		{"float32 overflow", primitive.KindFloat64, reflect.TypeFor[float32](), primitive.CategoryUnsafeNumber, 1e300, primitive.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			convert, ok := primitive.NewConverter(tt.from, tt.dst, tt.allowed)
			require.True(t, ok)

			_, err := convert(tt.in)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestConverterNotAllowed(t *testing.T) {
	t.Parallel()

	_, ok := primitive.NewConverter(primitive.KindInt64, reflect.TypeFor[int32](), primitive.CategorySafeNumber)
	assert.False(t, ok)

	_, ok = primitive.NewConverter(primitive.KindString, reflect.TypeFor[struct{}](), primitive.CategoryAll)
	assert.False(t, ok)

	_, ok = primitive.NewConverter(primitive.KindString, reflect.TypeFor[Level](), primitive.CategoryNone)
	assert.False(t, ok)
}
