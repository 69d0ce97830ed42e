// Package utils holds small formatting helpers shared by printer and the
// host CLI. Trimmed down from the teacher's own utils package: the
// OpenAPI-specific reflection helpers (StructToOption and its supporting
// isZeroValue/ToSnakeCase machinery) had no analog once the input format
// stopped being OpenAPI — see DESIGN.md.
package utils

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/thrift-tools/thriftidl/thrift"
)

// Stringify renders a ConstValue back to Thrift literal syntax: the shape
// printer.Print needs for default values, const bodies, and annotation
// values. (Annotation values are plain strings and are quoted by printer
// directly.) Numeric lexemes are emitted verbatim — never reformatted —
// matching the AST's own no-precision-loss guarantee.
func Stringify(value thrift.ConstValue) string {
	switch v := value.(type) {
	case *thrift.IntegerLiteral:
		return v.Lexeme
	case *thrift.DoubleLiteral:
		return v.Lexeme
	case *thrift.StringLiteral:
		return fmt.Sprintf("%q", v.Value)
	case *thrift.BoolLiteral:
		return fmt.Sprintf("%t", v.Value)
	case *thrift.IdentifierValue:
		return v.Name
	case *thrift.ListValue:
		parts := make([]string, len(v.Elements))
		for i, e := range v.Elements {
			parts[i] = Stringify(e)
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case *thrift.MapValue:
		parts := make([]string, len(v.Entries))
		for i, entry := range v.Entries {
			parts[i] = fmt.Sprintf("%s: %s", Stringify(entry.Key), Stringify(entry.Value))
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CaseStyle selects an identifier-casing transform for presentation-layer
// output only (e.g. the host CLI's JSON rendering). It never touches the
// AST itself: renaming identifiers there would violate spec.md invariant
// 3 ("any Identifier value is preserved as written ... no normalization").
type CaseStyle string

const (
	CaseNone  CaseStyle = "none"
	CaseCamel CaseStyle = "camel"
	CaseSnake CaseStyle = "snake"
)

// ApplyCase renders name in the requested display case. CaseNone returns
// name unchanged.
func ApplyCase(name string, style CaseStyle) string {
	switch style {
	case CaseCamel:
		return strcase.ToLowerCamel(name)
	case CaseSnake:
		return strcase.ToSnake(name)
	default:
		return name
	}
}
