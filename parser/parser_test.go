package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thrift-tools/thriftidl/lexer"
	"github.com/thrift-tools/thriftidl/parser"
	"github.com/thrift-tools/thriftidl/thrift"
)

func i64(n int64) *int64 { return &n }

func TestParseNamespace(t *testing.T) {
	doc, err := parser.Parse([]byte(`namespace go example.thrift`))
	require.Nil(t, err)
	require.Len(t, doc.Definitions, 1)
	ns, ok := doc.Definitions[0].(*thrift.Namespace)
	require.True(t, ok)
	require.Equal(t, "go", ns.Scope)
	require.Equal(t, "example.thrift", ns.Name)
}

func TestParseNamespaceWildcardScope(t *testing.T) {
	doc, err := parser.Parse([]byte(`namespace * example.thrift`))
	require.Nil(t, err)
	ns := doc.Definitions[0].(*thrift.Namespace)
	require.Equal(t, "*", ns.Scope)
}

func TestParseInclude(t *testing.T) {
	doc, err := parser.Parse([]byte(`include "shared.thrift"`))
	require.Nil(t, err)
	inc, ok := doc.Definitions[0].(*thrift.Include)
	require.True(t, ok)
	require.Equal(t, "shared.thrift", inc.Path)
}

func TestParseEnumWithTwoMembers(t *testing.T) {
	src := `
enum Color {
  RED = 1,
  GREEN = 2,
}
`
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err)
	e := doc.Definitions[0].(*thrift.Enum)
	require.Equal(t, "Color", e.Name)
	require.Len(t, e.Members, 2)
	require.Equal(t, "RED", e.Members[0].Name)
	require.Equal(t, "1", e.Members[0].Initializer.Lexeme)
	require.Equal(t, "GREEN", e.Members[1].Name)
	require.Equal(t, "2", e.Members[1].Initializer.Lexeme)
}

func TestParseEnumMemberWithoutInitializer(t *testing.T) {
	doc, err := parser.Parse([]byte("enum Color {\n  RED,\n  GREEN,\n}\n"))
	require.Nil(t, err)
	e := doc.Definitions[0].(*thrift.Enum)
	require.Nil(t, e.Members[0].Initializer)
	require.Nil(t, e.Members[1].Initializer)
}

func TestParseStructWithOptionalMapField(t *testing.T) {
	src := `
struct Widget {
  1: required string name,
  2: optional map<string, i32> counts,
}
`
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err)
	s := doc.Definitions[0].(*thrift.Struct)
	require.Equal(t, thrift.StructKindStruct, s.Kind)
	require.Len(t, s.Fields, 2)

	f0 := s.Fields[0]
	require.Equal(t, i64(1), f0.FieldID)
	require.Equal(t, thrift.RequirednessRequired, f0.Requiredness)
	require.IsType(t, &thrift.PrimitiveType{}, f0.FieldType)

	f1 := s.Fields[1]
	require.Equal(t, i64(2), f1.FieldID)
	require.Equal(t, thrift.RequirednessOptional, f1.Requiredness)
	mapType, ok := f1.FieldType.(*thrift.MapType)
	require.True(t, ok)
	require.IsType(t, &thrift.PrimitiveType{}, mapType.Key)
	require.IsType(t, &thrift.PrimitiveType{}, mapType.Value)
}

func TestParseStructWithFieldAnnotation(t *testing.T) {
	src := `
struct Widget {
  1: string name (go.tag = "json:\"name\"")
}
`
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err)
	s := doc.Definitions[0].(*thrift.Struct)
	field := s.Fields[0]
	require.NotNil(t, field.Annotations)
	require.Len(t, field.Annotations.Annotations, 1)
	require.Equal(t, "go.tag", field.Annotations.Annotations[0].Name)
	require.Equal(t, `json:"name"`, field.Annotations.Annotations[0].Value)
}

func TestParseServiceWithCommentAndAnnotations(t *testing.T) {
	src := `
// Provides widget operations.
service WidgetService {
  // Fetches one widget.
  Widget getWidget(1: i64 id) throws (1: NotFoundError notFound) (api.get = "/widgets/{id}"),
  oneway void ping(),
} (api.version = "1")
`
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err)
	svc := doc.Definitions[0].(*thrift.Service)
	require.Equal(t, "WidgetService", svc.Name)
	require.Len(t, svc.Comments, 1)
	require.Equal(t, thrift.LineComment{Value: "Provides widget operations."}, svc.Comments[0])
	require.NotNil(t, svc.Annotations)
	require.Equal(t, "api.version", svc.Annotations.Annotations[0].Name)

	require.Len(t, svc.Functions, 2)
	getWidget := svc.Functions[0]
	require.Equal(t, "getWidget", getWidget.Name)
	require.False(t, getWidget.Oneway)
	require.Len(t, getWidget.Fields, 1)
	require.Len(t, getWidget.Throws, 1)
	require.Equal(t, "NotFoundError", getWidget.Throws[0].FieldType.(*thrift.IdentifierType).Name)
	require.NotNil(t, getWidget.Annotations)
	require.Len(t, getWidget.Comments, 1)

	ping := svc.Functions[1]
	require.True(t, ping.Oneway)
	require.Nil(t, ping.ReturnType)
}

func TestParseDuplicateFieldIDsPreserved(t *testing.T) {
	src := `
struct Weird {
  1: string a,
  1: string b,
}
`
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err)
	s := doc.Definitions[0].(*thrift.Struct)
	require.Len(t, s.Fields, 2)
	require.Equal(t, i64(1), s.Fields[0].FieldID)
	require.Equal(t, i64(1), s.Fields[1].FieldID)
}

func TestParseEmptyStruct(t *testing.T) {
	doc, err := parser.Parse([]byte("struct Empty {}\n"))
	require.Nil(t, err)
	s := doc.Definitions[0].(*thrift.Struct)
	require.Empty(t, s.Fields)
}

func TestParseEmptyAnnotationsRejected(t *testing.T) {
	_, err := parser.Parse([]byte("struct Widget {} ()\n"))
	require.NotNil(t, err)
}

func TestParseTrailingSeparatorsTolerated(t *testing.T) {
	src := `
struct Widget {
  1: string a,,;,
  2: string b,
}
`
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err)
	s := doc.Definitions[0].(*thrift.Struct)
	require.Len(t, s.Fields, 2)
}

func TestParseNestedContainerTypes(t *testing.T) {
	doc, err := parser.Parse([]byte("typedef map<string, list<set<i32>>> Nested\n"))
	require.Nil(t, err)
	td := doc.Definitions[0].(*thrift.Typedef)
	mapType := td.AliasType.(*thrift.MapType)
	listType := mapType.Value.(*thrift.ListType)
	_, ok := listType.Element.(*thrift.SetType)
	require.True(t, ok)
}

func TestParseCppType(t *testing.T) {
	doc, err := parser.Parse([]byte(`typedef list<i32> cpp_type "std::vector<i32>" IntVector`))
	require.Nil(t, err)
	td := doc.Definitions[0].(*thrift.Typedef)
	listType := td.AliasType.(*thrift.ListType)
	require.NotNil(t, listType.CppType)
	require.Equal(t, "std::vector<i32>", *listType.CppType)
}

func TestParseCommentBeforeClosingBraceDiscarded(t *testing.T) {
	src := `
struct Widget {
  1: string a,
  // trailing, unattached
}
`
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err)
	s := doc.Definitions[0].(*thrift.Struct)
	require.Len(t, s.Fields, 1)
}

func TestParseUnexpectedTokenError(t *testing.T) {
	_, err := parser.Parse([]byte("struct 123 {}\n"))
	require.NotNil(t, err)
	require.Equal(t, parser.UnexpectedToken, err.Kind)
	require.Equal(t, lexer.IntegerLiteral, err.Found)
}

func TestParseUnexpectedEndOfInput(t *testing.T) {
	_, err := parser.Parse([]byte("struct Widget {\n  1: string a\n"))
	require.NotNil(t, err)
	require.Equal(t, parser.UnexpectedEndOfInput, err.Kind)
}

func TestParseUnterminatedStringPropagates(t *testing.T) {
	_, err := parser.Parse([]byte(`include "unterminated`))
	require.NotNil(t, err)
	require.Equal(t, parser.UnterminatedString, err.Kind)
}

func TestParseInvalidCharacter(t *testing.T) {
	_, err := parser.Parse([]byte("struct Widget { 1: @ a }\n"))
	require.NotNil(t, err)
	require.Equal(t, parser.InvalidCharacter, err.Kind)
}

func TestParseConstListAndMapValues(t *testing.T) {
	src := `
const list<i32> NUMS = [1, 2, 3]
const map<string, i32> LOOKUP = {"a": 1, "b": 2}
`
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err)
	require.Len(t, doc.Definitions, 2)

	nums := doc.Definitions[0].(*thrift.Const)
	listVal := nums.Value.(*thrift.ListValue)
	require.Len(t, listVal.Elements, 3)

	lookup := doc.Definitions[1].(*thrift.Const)
	mapVal := lookup.Value.(*thrift.MapValue)
	require.Len(t, mapVal.Entries, 2)
}

func TestParseUnionAndException(t *testing.T) {
	src := `
union Payload {
  1: string text,
  2: binary raw,
}

exception NotFoundError {
  1: string message,
}
`
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err)
	require.Equal(t, thrift.StructKindUnion, doc.Definitions[0].(*thrift.Struct).Kind)
	require.Equal(t, thrift.StructKindException, doc.Definitions[1].(*thrift.Struct).Kind)
}

func TestParseServiceExtends(t *testing.T) {
	doc, err := parser.Parse([]byte("service Derived extends Base {}\n"))
	require.Nil(t, err)
	svc := doc.Definitions[0].(*thrift.Service)
	require.NotNil(t, svc.Extends)
	require.Equal(t, "Base", *svc.Extends)
}

func TestParseIdenticalInputYieldsEqualStructure(t *testing.T) {
	src := "struct Widget {\n  1: string name,\n}\n"
	doc1, err1 := parser.Parse([]byte(src))
	doc2, err2 := parser.Parse([]byte(src))
	require.Nil(t, err1)
	require.Nil(t, err2)
	require.Equal(t, doc1, doc2)
}
