// Package thrift is the AST for a single Thrift IDL document.
//
// Every type here is a passive data definition; nothing in this package
// walks, validates, or transforms the tree. Downstream consumers dispatch
// on the concrete type behind a Definition/FieldType/ConstValue/Comment
// interface rather than through polymorphic methods — the tagged-variant
// shape spec.md calls for, rendered the way a Go AST usually is.
package thrift

// Document is the root of a parsed Thrift IDL source file: an ordered
// sequence of top-level definitions, exactly as they appeared in source.
type Document struct {
	Definitions []Definition
}

// Definition is implemented by every top-level Thrift construct:
// Namespace, Include, CppInclude, Const, Typedef, Enum, Struct (which also
// represents union and exception, see StructKind), and Service.
type Definition interface {
	definitionNode()
}

// Namespace is a `namespace <scope> <name>` declaration. Scope selects the
// target language ("go", "java", "*", ...); Name is preserved verbatim,
// dots included.
type Namespace struct {
	Scope string
	Name  string
}

// Include is an `include "<path>"` declaration. Path is stored exactly as
// written; no resolution against the filesystem is performed.
type Include struct {
	Path string
}

// CppInclude is a `cpp_include "<path>"` declaration, identical in shape
// to Include but distinguished by keyword so callers can tell them apart.
type CppInclude struct {
	Path string
}

// Const is a `const <type> <name> = <value>` declaration.
type Const struct {
	Name        string
	ConstType   FieldType
	Value       ConstValue
	Comments    []Comment
	Annotations *Annotations
}

// Typedef is a `typedef <type> <name>` declaration.
type Typedef struct {
	Name        string
	AliasType   FieldType
	Comments    []Comment
	Annotations *Annotations
}

// Enum is an `enum <name> { ... }` declaration.
type Enum struct {
	Name        string
	Members     []*EnumMember
	Comments    []Comment
	Annotations *Annotations
}

// EnumMember is a single member of an Enum. Initializer is nil when the
// source omitted the `= <n>` suffix; the inherited-value computation
// (previous + 1, or 0 for the first member) is a downstream concern, not
// performed here.
type EnumMember struct {
	Name        string
	Initializer *IntegerLiteral
	Comments    []Comment
	Annotations *Annotations
}

// StructKind distinguishes the three struct-shaped definitions, which
// otherwise share an identical field list shape.
type StructKind int

const (
	StructKindStruct StructKind = iota
	StructKindUnion
	StructKindException
)

// Struct is a `struct|union|exception <name> { ... }` declaration. Kind
// records which of the three keywords introduced it.
type Struct struct {
	Kind        StructKind
	Name        string
	Fields      []*FieldDefinition
	Comments    []Comment
	Annotations *Annotations
}

// Service is a `service <name> [extends <base>] { ... }` declaration.
type Service struct {
	Name        string
	Extends     *string
	Functions   []*FunctionDefinition
	Comments    []Comment
	Annotations *Annotations
}

func (*Namespace) definitionNode()  {}
func (*Include) definitionNode()    {}
func (*CppInclude) definitionNode() {}
func (*Const) definitionNode()      {}
func (*Typedef) definitionNode()    {}
func (*Enum) definitionNode()       {}
func (*Struct) definitionNode()     {}
func (*Service) definitionNode()    {}
