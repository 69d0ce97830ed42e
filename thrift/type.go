package thrift

// FieldType is implemented by every Thrift type reference: the nine
// primitives, the three container generics (Map, List, Set), and
// IdentifierType for an unresolved reference to a named type.
type FieldType interface {
	fieldTypeNode()
}

// PrimitiveKind enumerates Thrift's scalar built-in types.
type PrimitiveKind int

const (
	PrimitiveBool PrimitiveKind = iota
	PrimitiveByte
	PrimitiveI8
	PrimitiveI16
	PrimitiveI32
	PrimitiveI64
	PrimitiveDouble
	PrimitiveString
	PrimitiveBinary
)

// String renders the primitive using its Thrift source spelling.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBool:
		return "bool"
	case PrimitiveByte:
		return "byte"
	case PrimitiveI8:
		return "i8"
	case PrimitiveI16:
		return "i16"
	case PrimitiveI32:
		return "i32"
	case PrimitiveI64:
		return "i64"
	case PrimitiveDouble:
		return "double"
	case PrimitiveString:
		return "string"
	case PrimitiveBinary:
		return "binary"
	default:
		return "?"
	}
}

// PrimitiveType is a leaf FieldType for one of the nine Thrift scalars.
type PrimitiveType struct {
	Kind PrimitiveKind
}

// IdentifierType is an unresolved reference to a named type, dots
// preserved verbatim (e.g. "a.A"). Resolution against included files is
// out of scope for this package.
type IdentifierType struct {
	Name string
}

// MapType is `map<Key, Value>`, with an optional `cpp_type` annotation
// captured after the closing angle bracket.
type MapType struct {
	Key     FieldType
	Value   FieldType
	CppType *string
}

// ListType is `list<Element>`, with an optional `cpp_type` annotation.
type ListType struct {
	Element FieldType
	CppType *string
}

// SetType is `set<Element>`, with an optional `cpp_type` annotation.
type SetType struct {
	Element FieldType
	CppType *string
}

func (*PrimitiveType) fieldTypeNode()  {}
func (*IdentifierType) fieldTypeNode() {}
func (*MapType) fieldTypeNode()        {}
func (*ListType) fieldTypeNode()       {}
func (*SetType) fieldTypeNode()        {}
