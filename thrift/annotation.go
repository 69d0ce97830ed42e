package thrift

// Annotations is the parenthesized `(key = "value", ...)` clause attached
// to a type, field, enum, enum member, struct, function, or service.
//
// A nil *Annotations means the clause was absent from source. There is no
// way to distinguish "clause absent" from "clause present but empty" —
// the grammar requires at least one pair inside `(...)`, so an empty
// clause never parses successfully in the first place.
type Annotations struct {
	Annotations []Annotation
}

// Annotation is a single `name = "value"` pair. Name may itself be dotted
// (e.g. "api.get").
type Annotation struct {
	Name  string
	Value string
}
