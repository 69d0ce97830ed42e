package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thrift-tools/thriftidl/thrift"
	"github.com/thrift-tools/thriftidl/utils"
)

func TestStringifyLiterals(t *testing.T) {
	require.Equal(t, "42", utils.Stringify(&thrift.IntegerLiteral{Lexeme: "42"}))
	require.Equal(t, "0x2A", utils.Stringify(&thrift.IntegerLiteral{Lexeme: "0x2A"}))
	require.Equal(t, "3.14", utils.Stringify(&thrift.DoubleLiteral{Lexeme: "3.14"}))
	require.Equal(t, `"hi"`, utils.Stringify(&thrift.StringLiteral{Value: "hi"}))
	require.Equal(t, "true", utils.Stringify(&thrift.BoolLiteral{Value: true}))
	require.Equal(t, "SOME_CONST", utils.Stringify(&thrift.IdentifierValue{Name: "SOME_CONST"}))
}

func TestStringifyListAndMap(t *testing.T) {
	list := &thrift.ListValue{Elements: []thrift.ConstValue{
		&thrift.IntegerLiteral{Lexeme: "1"},
		&thrift.IntegerLiteral{Lexeme: "2"},
	}}
	require.Equal(t, "[1, 2]", utils.Stringify(list))

	m := &thrift.MapValue{Entries: []thrift.MapEntry{
		{Key: &thrift.StringLiteral{Value: "a"}, Value: &thrift.IntegerLiteral{Lexeme: "1"}},
	}}
	require.Equal(t, `{"a": 1}`, utils.Stringify(m))
}

func TestApplyCase(t *testing.T) {
	require.Equal(t, "widget_name", utils.ApplyCase("WidgetName", utils.CaseSnake))
	require.Equal(t, "widgetName", utils.ApplyCase("widget_name", utils.CaseCamel))
	require.Equal(t, "WidgetName", utils.ApplyCase("WidgetName", utils.CaseNone))
}
