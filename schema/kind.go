package schema

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the tag of a schema node.
type Kind int

const (
	_ Kind = iota // zero value is reserved as an invalid kind

	KindNull
	KindBoolean
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindBytes
	KindString
	KindArray
	KindMap
	KindEnum
	KindRecord
	KindUnion

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsPrimitive reports whether nodes of this kind carry no nested schemas.
func (k Kind) IsPrimitive() bool {
	switch k {
	default:
		return false
	case KindNull, KindBoolean, KindInt, KindLong, KindFloat, KindDouble, KindBytes, KindString:
		return true
	}
}
