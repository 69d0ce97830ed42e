package printer_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thrift-tools/thriftidl/parser"
	"github.com/thrift-tools/thriftidl/printer"
)

// roundTrip asserts parse(print(parse(src))) == parse(src): printing a
// parsed document and reparsing it must reproduce an AST equal (by value,
// not by pointer identity) to the one it was printed from.
func roundTrip(t *testing.T, src string) {
	t.Helper()
	doc, err := parser.Parse([]byte(src))
	require.Nil(t, err, "first parse: %v", err)

	printed := printer.Print(doc)

	reparsed, err := parser.Parse([]byte(printed))
	require.Nil(t, err, "reparse of printed output failed: %v\n---\n%s", err, printed)

	require.True(t, reflect.DeepEqual(doc, reparsed), "round trip mismatch:\noriginal: %#v\nreparsed: %#v\nprinted:\n%s", doc, reparsed, printed)
}

func TestRoundTripNamespaceAndInclude(t *testing.T) {
	roundTrip(t, `
namespace go example.thrift
namespace py example.thrift
include "shared.thrift"
cpp_include "shared.h"
`)
}

func TestRoundTripEnum(t *testing.T) {
	roundTrip(t, `
enum Color {
  RED = 1,
  GREEN = 2,
  BLUE,
}
`)
}

func TestRoundTripStructWithMapField(t *testing.T) {
	roundTrip(t, `
struct Widget {
  1: required string name,
  2: optional map<string, list<i32>> counts,
  3: i64 id = 0,
}
`)
}

func TestRoundTripStructWithAnnotation(t *testing.T) {
	roundTrip(t, `
struct Widget {
  1: string name (go.tag = "json:\"name\"")
} (thrift.deprecated = "use WidgetV2")
`)
}

func TestRoundTripServiceWithThrowsAndOneway(t *testing.T) {
	roundTrip(t, `
// Fetches a widget by id.
service WidgetService {
  Widget getWidget(1: i64 id) throws (1: NotFoundError notFound),
  oneway void ping(),
} (api.version = "1")
`)
}

func TestRoundTripConstAndTypedef(t *testing.T) {
	roundTrip(t, `
typedef i64 WidgetId
const list<string> DEFAULT_TAGS = ["a", "b", "c"]
const map<string, i32> LIMITS = {"max": 10, "min": 1}
`)
}

func TestRoundTripEnumWithAnnotation(t *testing.T) {
	roundTrip(t, `
enum Color {
  RED = 1,
} (deprecated = "use ColorV2")
`)
}

func TestRoundTripStructWithBlockComment(t *testing.T) {
	roundTrip(t, `
struct Account {
  /**
   * Balance in the account's local currency.
   */
  1: double money,
  3: bool is_ok,
}
`)
}

func TestRoundTripSample(t *testing.T) {
	roundTrip(t, `
service ThriftService {
  // fetch data
  GetDataRes GetData(1: GetDataReq req) (api.get = "/api/get-data", other = "something")
}
`)
}

func TestRoundTripUnionAndException(t *testing.T) {
	roundTrip(t, `
union Payload {
  1: string text,
  2: binary raw,
}

exception NotFoundError {
  1: string message,
}
`)
}
