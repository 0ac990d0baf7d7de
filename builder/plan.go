package builder

import (
	"fmt"
	"reflect"

	"schema-caster/node"
	"schema-caster/primitive"
	"schema-caster/schema"
)

// Plan is the compiled conversion of decoded values of one schema node into
// one destination type. Plans are immutable once built and safe for
// concurrent use.
type Plan struct {
	Schema schema.Node
	Type   reflect.Type
	// Case is the name of the case that built the plan.
	Case string
	// Sequence is set for plans built by the array case.
	Sequence *SequencePlan

	convert func(in any) (reflect.Value, error)
}

func newPlan(s schema.Node, t reflect.Type, name string, convert func(in any) (reflect.Value, error)) *Plan {
	return &Plan{Schema: s, Type: t, Case: name, convert: convert}
}

// Convert turns a decoded value into a value of p.Type.
func (p *Plan) Convert(in any) (reflect.Value, error) {
	return p.convert(in)
}

// Into converts in and stores the result in out, a non-nil pointer to a
// value of p.Type.
func (p *Plan) Into(in, out any) error {
	ptr := reflect.ValueOf(out)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() || ptr.Type().Elem() != p.Type {
		return fmt.Errorf("%w: Into needs a non-nil *%s, got %T", primitive.ErrInvalidValue, p.Type, out)
	}

	v, err := p.Convert(in)
	if err != nil {
		return err
	}

	ptr.Elem().Set(v)
	return nil
}

func (p *Plan) String() string {
	s := fmt.Sprintf("%s -> %s via %s", nodeName(p.Schema), typeName(p.Type), p.Case)
	if p.Sequence != nil {
		s += " (" + p.Sequence.String() + ")"
	}

	return s
}

// SequencePlan is the accumulate and finalize strategy chosen for a sequence
// destination.
type SequencePlan struct {
	Elem        reflect.Type
	Element     *Plan
	Shape       node.ShapeEnum
	Accumulator AccumulatorEnum
	Finalizer   FinalizerEnum

	newAcc   func(capacity int) Accumulator
	finalize func(acc Accumulator) (reflect.Value, error)
}

func (p *SequencePlan) String() string {
	return fmt.Sprintf("%s, %s, %s", p.Shape, p.Accumulator, p.Finalizer)
}

// NewAccumulator returns an empty accumulator sized for capacity elements.
// It must be finalized or dropped within the decode call that created it.
func (p *SequencePlan) NewAccumulator(capacity int) Accumulator {
	return p.newAcc(max(capacity, 0))
}

// Accumulate converts one decoded element and appends it to acc.
func (p *SequencePlan) Accumulate(acc Accumulator, elem any) (Accumulator, error) {
	v, err := p.Element.Convert(elem)
	if err != nil {
		return acc, err
	}

	acc.Append(v)
	return acc, nil
}

// Finalize turns a populated accumulator into the destination value.
func (p *SequencePlan) Finalize(acc Accumulator) (reflect.Value, error) {
	if acc == nil {
		return reflect.Value{}, ErrCorruptAccumulator
	}

	return p.finalize(acc)
}

// convert runs the whole sequence plan over a decoded slice or array.
func (p *SequencePlan) convert(in any) (reflect.Value, error) {
	if items, ok := in.([]any); ok {
		acc := p.NewAccumulator(len(items))
		for i, item := range items {
			if _, err := p.Accumulate(acc, item); err != nil {
				return reflect.Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
		}

		return p.Finalize(acc)
	}

	rv := reflect.ValueOf(in)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return reflect.Value{}, fmt.Errorf("%w: expected a sequence, got %T", primitive.ErrInvalidValue, in)
	}

	acc := p.NewAccumulator(rv.Len())
	for i := range rv.Len() {
		if _, err := p.Accumulate(acc, rv.Index(i).Interface()); err != nil {
			return reflect.Value{}, fmt.Errorf("[%d]: %w", i, err)
		}
	}

	return p.Finalize(acc)
}
