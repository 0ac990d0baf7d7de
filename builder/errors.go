package builder

import (
	"errors"
	"fmt"
	"reflect"

	"schema-caster/schema"
)

var (
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrRecursiveSchema       = errors.New("recursive schema")
	ErrLengthMismatch        = errors.New("sequence length does not match array length")
	ErrCorruptAccumulator    = errors.New("corrupt accumulator")
)

// UnsupportedConversionError reports that nothing bridges a schema node and
// a destination type.
type UnsupportedConversionError struct {
	Schema schema.Node
	Type   reflect.Type
	Reason string
}

func unsupported(s schema.Node, t reflect.Type, format string, args ...any) *UnsupportedConversionError {
	return &UnsupportedConversionError{Schema: s, Type: t, Reason: fmt.Sprintf(format, args...)}
}

func (e *UnsupportedConversionError) Error() string {
	msg := fmt.Sprintf("%s: %s -> %s", ErrUnsupportedConversion, nodeName(e.Schema), typeName(e.Type))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *UnsupportedConversionError) Unwrap() error { return ErrUnsupportedConversion }

// RecursiveSchemaError reports a schema that reaches itself for the same
// destination type without a pointer in between.
type RecursiveSchemaError struct {
	Schema schema.Node
	Type   reflect.Type
}

func (e *RecursiveSchemaError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrRecursiveSchema, nodeName(e.Schema), typeName(e.Type))
}

func (e *RecursiveSchemaError) Unwrap() error { return ErrRecursiveSchema }

func nodeName(s schema.Node) string {
	if s == nil {
		return "<nil>"
	}

	return s.String()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
