package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"schema-caster/utils"
)

var (
	ErrInvalidValue = errors.New("invalid primitive value")
	ErrOverflow     = errors.New("value out of range")
)

// Converter turns a decoded value into a value of its destination type.
type Converter func(v any) (reflect.Value, error)

// NewConverter returns a converter from decoded values of kind from into dst.
// It reports false when dst is not primitive or the pair is not admitted by
// the allowed categories.
func NewConverter(from KindEnum, dst reflect.Type, allowed CategoryEnum) (Converter, bool) {
	to := FromReflectType(dst)
	if to == 0 || !Allowed(from, to, allowed) {
		return nil, false
	}

	return func(v any) (reflect.Value, error) {
		src, err := Normalize(from, v)
		if err != nil {
			return reflect.Value{}, err
		}

		out := reflect.New(dst).Elem()
		if err = assign(out, to, src); err != nil {
			return reflect.Value{}, err
		}

		return out, nil
	}, true
}

// Normalize brings a decoded value of kind k into its canonical Go form:
// int64 for signed integers, uint64 for unsigned ones, float64 for floats.
// Booleans, strings, time.Time and time.Duration are returned as is.
func Normalize(k KindEnum, v any) (any, error) {
	switch {
	case k.IsSigned():
		i, err := toInt64(v)
		if err != nil {
			return nil, err
		}

		if min, max := k.Range(); !utils.IsInRange(min, i, max) {
			return nil, fmt.Errorf("%w: %d does not fit %s", ErrOverflow, i, k)
		}
		return i, nil

	case k.IsUnsigned():
		i, err := toInt64(v)
		if err == nil && i < 0 {
			return nil, fmt.Errorf("%w: %d does not fit %s", ErrOverflow, i, k)
		}

		u, err := toUint64(v)
		if err != nil {
			return nil, err
		}

		if u > k.MaxUnsigned() {
			return nil, fmt.Errorf("%w: %d does not fit %s", ErrOverflow, u, k)
		}
		return u, nil

	case k.IsFloat():
		f, err := toFloat64(v)
		if err != nil {
			return nil, err
		}

		if k == KindFloat32 && !fitsFloat32(f) {
			return nil, fmt.Errorf("%w: %g does not fit %s", ErrOverflow, f, k)
		}
		return f, nil
	}

	rv := reflect.ValueOf(v)
	switch k {
	case KindBool:
		if rv.Kind() == reflect.Bool {
			return rv.Bool(), nil
		}
	case KindString, KindPrimitiveEnum:
		if rv.Kind() == reflect.String {
			return rv.String(), nil
		}
	case KindTime:
		if t, ok := v.(time.Time); ok {
			return t, nil
		}
	case KindDuration:
		if d, ok := v.(time.Duration); ok {
			return d, nil
		}
	}

	return nil, fmt.Errorf("%w: %T is not a %s", ErrInvalidValue, v, k)
}

type jsonNumber interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

func toInt64(v any) (int64, error) {
	if n, ok := v.(jsonNumber); ok {
		i, err := n.Int64()
		if err == nil {
			return i, nil
		}

		f, ferr := n.Float64()
		if ferr != nil {
			return 0, fmt.Errorf("%w: %s is not a number", ErrInvalidValue, n.String())
		}
		return floatToInt64(f)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d does not fit int64", ErrOverflow, rv.Uint())
		}
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return floatToInt64(rv.Float())
	}

	return 0, fmt.Errorf("%w: %T is not an integer", ErrInvalidValue, v)
}

func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %g is not an integer", ErrInvalidValue, f)
	}

	if !fitsInt64(f) {
		return 0, fmt.Errorf("%w: %g does not fit int64", ErrOverflow, f)
	}

	return int64(f), nil
}

func toUint64(v any) (uint64, error) {
	if n, ok := v.(jsonNumber); ok {
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not an unsigned integer", ErrInvalidValue, n.String())
		}
		return u, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	}

	i, err := toInt64(v)
	if err != nil {
		return 0, err
	}
	return uint64(i), nil
}

func toFloat64(v any) (float64, error) {
	if n, ok := v.(jsonNumber); ok {
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not a number", ErrInvalidValue, n.String())
		}
		return f, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	}

	return 0, fmt.Errorf("%w: %T is not a number", ErrInvalidValue, v)
}

// fitsInt64 keeps the upper bound exclusive: float64(math.MaxInt64) rounds up
// to 1<<63.
func fitsInt64(f float64) bool {
	return f >= math.MinInt64 && f < 1<<63
}

func fitsFloat32(f float64) bool {
	return math.IsInf(f, 0) || math.IsNaN(f) || utils.IsInRange(-math.MaxFloat32, f, math.MaxFloat32)
}

// assign stores the canonical value src into out, whose kind is to.
func assign(out reflect.Value, to KindEnum, src any) error {
	switch {
	case to.IsSigned():
		return assignSigned(out, to, src)
	case to.IsUnsigned():
		return assignUnsigned(out, to, src)
	case to.IsFloat():
		return assignFloat(out, to, src)
	}

	switch to {
	default:
		return fmt.Errorf("%w: cannot assign %T to %s", ErrInvalidValue, src, out.Type())
	case KindBool:
		return assignBool(out, src)
	case KindString:
		return assignString(out, src)
	case KindTime:
		return assignTime(out, src)
	case KindDuration:
		return assignDuration(out, src)
	case KindPrimitiveEnum:
		return assignEnum(out, src)
	}
}

func assignSigned(out reflect.Value, to KindEnum, src any) error {
	var i int64

	switch v := src.(type) {
	default:
		return fmt.Errorf("%w: cannot assign %T to %s", ErrInvalidValue, src, out.Type())
	case int64:
		i = v
	case uint64:
		if v > math.MaxInt64 {
			return fmt.Errorf("%w: %d does not fit %s", ErrOverflow, v, out.Type())
		}
		i = int64(v)
	case float64:
		if !fitsInt64(v) {
			return fmt.Errorf("%w: %g does not fit %s", ErrOverflow, v, out.Type())
		}
		i = int64(v)
	case bool:
		if v {
			i = 1
		}
	case string:
		parsed, err := strconv.ParseInt(v, 10, to.Bits())
		if err != nil {
			return parseError(err, v, out.Type())
		}
		i = parsed
	case time.Time:
		i = v.Unix()
	case time.Duration:
		i = v.Nanoseconds()
	}

	if min, max := to.Range(); !utils.IsInRange(min, i, max) {
		return fmt.Errorf("%w: %d does not fit %s", ErrOverflow, i, out.Type())
	}

	out.SetInt(i)
	return nil
}

func assignUnsigned(out reflect.Value, to KindEnum, src any) error {
	var u uint64

	switch v := src.(type) {
	default:
		return fmt.Errorf("%w: cannot assign %T to %s", ErrInvalidValue, src, out.Type())
	case int64:
		if v < 0 {
			return fmt.Errorf("%w: %d does not fit %s", ErrOverflow, v, out.Type())
		}
		u = uint64(v)
	case uint64:
		u = v
	case float64:
		if v < 0 || v >= 1<<64 {
			return fmt.Errorf("%w: %g does not fit %s", ErrOverflow, v, out.Type())
		}
		u = uint64(v)
	case bool:
		if v {
			u = 1
		}
	case string:
		parsed, err := strconv.ParseUint(v, 10, to.Bits())
		if err != nil {
			return parseError(err, v, out.Type())
		}
		u = parsed
	}

	if u > to.MaxUnsigned() {
		return fmt.Errorf("%w: %d does not fit %s", ErrOverflow, u, out.Type())
	}

	out.SetUint(u)
	return nil
}

func assignFloat(out reflect.Value, to KindEnum, src any) error {
	var f float64

	switch v := src.(type) {
	default:
		return fmt.Errorf("%w: cannot assign %T to %s", ErrInvalidValue, src, out.Type())
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case float64:
		f = v
	case bool:
		if v {
			f = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(v, to.Bits())
		if err != nil {
			return parseError(err, v, out.Type())
		}
		f = parsed
	case time.Duration:
		f = v.Seconds()
	}

	if to == KindFloat32 && !fitsFloat32(f) {
		return fmt.Errorf("%w: %g does not fit %s", ErrOverflow, f, out.Type())
	}

	out.SetFloat(f)
	return nil
}

func assignBool(out reflect.Value, src any) error {
	switch v := src.(type) {
	case bool:
		out.SetBool(v)
		return nil

	case int64:
		return assignNumericBool(out, v == 0, v == 1, v)
	case uint64:
		return assignNumericBool(out, v == 0, v == 1, v)

	case string:
		switch strings.ToLower(v) {
		case "true", "yes", "on":
			out.SetBool(true)
			return nil
		case "false", "no", "off":
			out.SetBool(false)
			return nil
		}
		return fmt.Errorf("%w: only strings true/false, yes/no, on/off are allowed for bool, got: %s", ErrInvalidValue, v)
	}

	return fmt.Errorf("%w: cannot assign %T to %s", ErrInvalidValue, src, out.Type())
}

// 0, 1 - valid, other numbers is error
func assignNumericBool(out reflect.Value, zero, one bool, v any) error {
	if !zero && !one {
		return fmt.Errorf("%w: only numbers 0 and 1 are allowed for bool, got: %v", ErrInvalidValue, v)
	}

	out.SetBool(one)
	return nil
}

func assignString(out reflect.Value, src any) error {
	switch v := src.(type) {
	default:
		return fmt.Errorf("%w: cannot assign %T to %s", ErrInvalidValue, src, out.Type())
	case string:
		out.SetString(v)
	case int64:
		out.SetString(strconv.FormatInt(v, 10))
	case uint64:
		out.SetString(strconv.FormatUint(v, 10))
	case float64:
		out.SetString(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		out.SetString(strconv.FormatBool(v))
	case time.Time:
		out.SetString(v.Format(time.RFC3339Nano))
	case time.Duration:
		out.SetString(v.String())
	}

	return nil
}

func assignTime(out reflect.Value, src any) error {
	var t time.Time

	switch v := src.(type) {
	default:
		return fmt.Errorf("%w: cannot assign %T to %s", ErrInvalidValue, src, out.Type())
	case time.Time:
		t = v
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		t = parsed
	case int64:
		t = time.Unix(v, 0).UTC()
	case uint64:
		if v > math.MaxInt64 {
			return fmt.Errorf("%w: %d does not fit %s", ErrOverflow, v, out.Type())
		}
		t = time.Unix(int64(v), 0).UTC()
	}

	out.Set(reflect.ValueOf(t))
	return nil
}

func assignDuration(out reflect.Value, src any) error {
	var d time.Duration

	switch v := src.(type) {
	default:
		return fmt.Errorf("%w: cannot assign %T to %s", ErrInvalidValue, src, out.Type())
	case time.Duration:
		d = v
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		d = parsed
	case int64:
		d = time.Duration(v)
	case uint64:
		if v > math.MaxInt64 {
			return fmt.Errorf("%w: %d does not fit %s", ErrOverflow, v, out.Type())
		}
		d = time.Duration(v)
	case float64:
		seconds := v * float64(time.Second)
		if !fitsInt64(seconds) {
			return fmt.Errorf("%w: %gs does not fit %s", ErrOverflow, v, out.Type())
		}
		d = time.Duration(seconds)
	}

	out.SetInt(int64(d))
	return nil
}

func assignEnum(out reflect.Value, src any) error {
	s, ok := src.(string)
	if !ok || out.Kind() != reflect.String {
		return fmt.Errorf("%w: cannot assign %T to %s", ErrInvalidValue, src, out.Type())
	}

	out.SetString(s)
	return Validate(out)
}

// Validate runs IsValid() bool on values that provide it.
func Validate(v reflect.Value) error {
	valid, ok := v.Interface().(interface{ IsValid() bool })
	if ok && !valid.IsValid() {
		return fmt.Errorf("%w: %v is not a valid value for %s", ErrInvalidValue, v.Interface(), v.Type())
	}

	return nil
}

func parseError(err error, text string, t reflect.Type) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q does not fit %s", ErrOverflow, text, t)
	}

	return fmt.Errorf("%w: %q is not a %s", ErrInvalidValue, text, t)
}
