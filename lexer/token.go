package lexer

import "fmt"

// TokenKind identifies the syntactic category of a Token.
type TokenKind int

const (
	EOF TokenKind = iota

	Identifier
	IntegerLiteral
	DoubleLiteral
	StringLiteral
	LineComment
	BlockComment

	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	LAngle
	RAngle
	Comma
	Semicolon
	Colon
	Equals

	KwNamespace
	KwInclude
	KwCppInclude
	KwConst
	KwTypedef
	KwEnum
	KwStruct
	KwUnion
	KwException
	KwService
	KwExtends
	KwRequired
	KwOptional
	KwOneway
	KwThrows
	KwVoid
	KwBool
	KwByte
	KwI8
	KwI16
	KwI32
	KwI64
	KwDouble
	KwString
	KwBinary
	KwMap
	KwList
	KwSet
	KwTrue
	KwFalse
	KwCppType
)

// keywords maps the identifier spelling of every reserved word to its
// token kind. An identifier lexeme not present here stays Identifier.
var keywords = map[string]TokenKind{
	"namespace":   KwNamespace,
	"include":     KwInclude,
	"cpp_include": KwCppInclude,
	"const":       KwConst,
	"typedef":     KwTypedef,
	"enum":        KwEnum,
	"struct":      KwStruct,
	"union":       KwUnion,
	"exception":   KwException,
	"service":     KwService,
	"extends":     KwExtends,
	"required":    KwRequired,
	"optional":    KwOptional,
	"oneway":      KwOneway,
	"throws":      KwThrows,
	"void":        KwVoid,
	"bool":        KwBool,
	"byte":        KwByte,
	"i8":          KwI8,
	"i16":         KwI16,
	"i32":         KwI32,
	"i64":         KwI64,
	"double":      KwDouble,
	"string":      KwString,
	"binary":      KwBinary,
	"map":         KwMap,
	"list":        KwList,
	"set":         KwSet,
	"true":        KwTrue,
	"false":       KwFalse,
	"cpp_type":    KwCppType,
}

var kindNames = map[TokenKind]string{
	EOF:            "EOF",
	Identifier:     "Identifier",
	IntegerLiteral: "IntegerLiteral",
	DoubleLiteral:  "DoubleLiteral",
	StringLiteral:  "StringLiteral",
	LineComment:    "LineComment",
	BlockComment:   "BlockComment",
	LBrace:         "{",
	RBrace:         "}",
	LParen:         "(",
	RParen:         ")",
	LBracket:       "[",
	RBracket:       "]",
	LAngle:         "<",
	RAngle:         ">",
	Comma:          ",",
	Semicolon:      ";",
	Colon:          ":",
	Equals:         "=",
	KwNamespace:    "namespace",
	KwInclude:      "include",
	KwCppInclude:   "cpp_include",
	KwConst:        "const",
	KwTypedef:      "typedef",
	KwEnum:         "enum",
	KwStruct:       "struct",
	KwUnion:        "union",
	KwException:    "exception",
	KwService:      "service",
	KwExtends:      "extends",
	KwRequired:     "required",
	KwOptional:     "optional",
	KwOneway:       "oneway",
	KwThrows:       "throws",
	KwVoid:         "void",
	KwBool:         "bool",
	KwByte:         "byte",
	KwI8:           "i8",
	KwI16:          "i16",
	KwI32:          "i32",
	KwI64:          "i64",
	KwDouble:       "double",
	KwString:       "string",
	KwBinary:       "binary",
	KwMap:          "map",
	KwList:         "list",
	KwSet:          "set",
	KwTrue:         "true",
	KwFalse:        "false",
	KwCppType:      "cpp_type",
}

// String renders the token kind using its Thrift source spelling where one
// exists, or a descriptive name for structural/literal kinds.
func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved-word kinds — every
// keyword still carries its spelling in Token.Text, so a caller expecting
// a plain identifier in a position where reservation doesn't apply
// (namespace names, "true"/"false" outside a ConstValue) can fall back to
// treating the token as an identifier by reading Text.
func (k TokenKind) IsKeyword() bool {
	return k >= KwNamespace && k <= KwCppType
}

// Token is a single lexed token with its byte span in the source buffer.
//
// Text carries the token's payload: the identifier or literal spelling
// for Identifier/IntegerLiteral/DoubleLiteral/keyword kinds, the decoded
// value for StringLiteral, and the trimmed comment body for LineComment.
// BlockComment instead populates Lines, one entry per source line with
// its leading `*` and surrounding whitespace trimmed; Text is empty for
// BlockComment tokens.
type Token struct {
	Kind  TokenKind
	Text  string
	Lines []string
	Start int
	End   int
}

func (t Token) String() string {
	if t.Kind == BlockComment {
		return fmt.Sprintf("%s%v@[%d,%d)", t.Kind, t.Lines, t.Start, t.End)
	}
	return fmt.Sprintf("%s(%q)@[%d,%d)", t.Kind, t.Text, t.Start, t.End)
}
