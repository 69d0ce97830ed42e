package thrift

// Requiredness is a field's `required`/`optional`/(absent) modifier.
// Absent defaults to RequirednessDefault, matching the grammar's own
// treatment of the modifier as optional.
type Requiredness int

const (
	RequirednessDefault Requiredness = iota
	RequirednessRequired
	RequirednessOptional
)

// FieldDefinition is a single field inside a struct/union/exception body,
// or inside a function's parameter list or throws clause.
//
// FieldID is nil when the source omitted the numeric `<n>:` prefix —
// older Thrift grammar allows this, and the AST preserves the omission
// rather than fabricating an ID.
type FieldDefinition struct {
	FieldID      *int64
	Requiredness Requiredness
	FieldType    FieldType
	Name         string
	DefaultValue ConstValue
	Comments     []Comment
	Annotations  *Annotations
}

// FunctionDefinition is a single RPC method inside a service body.
// ReturnType is nil when the function returns `void`.
type FunctionDefinition struct {
	Oneway      bool
	ReturnType  FieldType
	Name        string
	Fields      []*FieldDefinition
	Throws      []*FieldDefinition
	Comments    []Comment
	Annotations *Annotations
}
