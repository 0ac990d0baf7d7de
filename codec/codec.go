package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"

	"schema-caster/builder"
	"schema-caster/schema"
)

// encMode is the CBOR encoder configured with Core Deterministic Encoding.
var encMode cbor.EncMode

// decMode decodes into generic values. Maps become map[string]any.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes v to CBOR using Core Deterministic Encoding.
func MarshalCBOR(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Decoder decodes documents through plans of a builder.
type Decoder struct {
	builder *builder.Builder
}

func NewDecoder(b *builder.Builder) *Decoder {
	return &Decoder{builder: b}
}

// DecodeCBOR decodes one CBOR item of schema s into out, a non-nil pointer.
func (d *Decoder) DecodeCBOR(data []byte, s schema.Node, out any) error {
	var generic any
	if err := decMode.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("decode CBOR: %w", err)
	}

	return d.into(generic, s, out)
}

// DecodeJSON decodes one JSON document of schema s into out, a non-nil
// pointer. Numbers keep their textual form until converted, so 64-bit
// integers survive.
func (d *Decoder) DecodeJSON(data []byte, s schema.Node, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}

	return d.into(generic, s, out)
}

// DecodeCBORStream decodes a CBOR sequence of items of schema s into values
// of type t and passes each to fn. It stops at the end of r or at the first
// error.
func (d *Decoder) DecodeCBORStream(r io.Reader, s schema.Node, t reflect.Type, fn func(v reflect.Value) error) error {
	plan, err := d.builder.Build(s, t)
	if err != nil {
		return err
	}

	dec := decMode.NewDecoder(r)
	for i := 0; ; i++ {
		var generic any
		err = dec.Decode(&generic)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode CBOR item %d: %w", i, err)
		}

		v, err := plan.Convert(generic)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}

		if err = fn(v); err != nil {
			return err
		}
	}
}

// Decode converts an already decoded generic value into out.
func (d *Decoder) Decode(generic any, s schema.Node, out any) error {
	return d.into(generic, s, out)
}

func (d *Decoder) into(generic any, s schema.Node, out any) error {
	ptr := reflect.ValueOf(out)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return fmt.Errorf("codec: out must be a non-nil pointer, got %T", out)
	}

	plan, err := d.builder.Build(s, ptr.Type().Elem())
	if err != nil {
		return err
	}

	return plan.Into(generic, out)
}
