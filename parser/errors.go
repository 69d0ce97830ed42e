package parser

import (
	"fmt"
	"strings"

	"github.com/thrift-tools/thriftidl/lexer"
)

// ErrorKind identifies why Parse stopped before producing a document.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEndOfInput
	UnterminatedString
	UnterminatedBlockComment
	InvalidCharacter
	InvalidInteger
)

// ParseError is the single error type Parse returns. Position is a byte
// offset into the source buffer passed to Parse. No recovery or
// synchronization is attempted past the first ParseError: Parse halts at
// the point of failure.
type ParseError struct {
	Kind     ErrorKind
	Position int
	Expected []string
	Found    lexer.TokenKind
	Char     rune
	Lexeme   string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("byte %d: expected %s, found %s", e.Position, strings.Join(e.Expected, " or "), e.Found)
	case UnexpectedEndOfInput:
		return fmt.Sprintf("byte %d: unexpected end of input, expected %s", e.Position, strings.Join(e.Expected, " or "))
	case UnterminatedString:
		return fmt.Sprintf("byte %d: unterminated string literal", e.Position)
	case UnterminatedBlockComment:
		return fmt.Sprintf("byte %d: unterminated block comment", e.Position)
	case InvalidCharacter:
		return fmt.Sprintf("byte %d: invalid character %q", e.Position, e.Char)
	case InvalidInteger:
		return fmt.Sprintf("byte %d: invalid integer literal %q", e.Position, e.Lexeme)
	default:
		return fmt.Sprintf("byte %d: parse error", e.Position)
	}
}

// fromLexError translates a *lexer.Error, encountered while pulling the
// next token, into the equivalent *ParseError. The kinds are 1:1; parser
// errors just add the Expected/Found context lexer errors don't have.
func fromLexError(err *lexer.Error) *ParseError {
	pe := &ParseError{Position: err.Position, Char: err.Char}
	switch err.Kind {
	case lexer.UnterminatedString:
		pe.Kind = UnterminatedString
	case lexer.UnterminatedBlockComment:
		pe.Kind = UnterminatedBlockComment
	case lexer.InvalidCharacter:
		pe.Kind = InvalidCharacter
	}
	return pe
}
