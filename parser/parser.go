// Package parser is a recursive-descent consumer of the lexer's token
// stream, producing a *thrift.Document or the first *ParseError it hits.
//
// Parse is a pure function of its input: no shared state, no goroutines,
// nothing left running after it returns. A Parser value is single-use.
package parser

import (
	"github.com/thrift-tools/thriftidl/lexer"
	"github.com/thrift-tools/thriftidl/thrift"
)

// Parser threads one token of lookahead and a pending-comment buffer
// through every production. pendingComments accumulates LineComment/
// BlockComment tokens as they're encountered; each definition parser
// takes ownership of the buffer via takeComments, which is how "comments
// precede the declaration they attach to" falls out as a structural
// property of the algorithm rather than a rule checked after the fact.
type Parser struct {
	lex             lexer.Lexer
	cur             lexer.Token
	pendingComments []thrift.Comment
}

// Parse tokenizes and parses a single Thrift IDL document. Identical
// input text yields byte-identical AST structure: ordering of every
// sequence in the result matches source order exactly.
func Parse(source []byte) (*thrift.Document, *ParseError) {
	p := &Parser{lex: *lexer.New(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	doc := &thrift.Document{}
	for {
		if err := p.drainComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.EOF {
			break
		}
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, def)
	}
	return doc, nil
}

func (p *Parser) parseDefinition() (thrift.Definition, *ParseError) {
	switch p.cur.Kind {
	case lexer.KwNamespace:
		return p.parseNamespace()
	case lexer.KwInclude:
		return p.parseInclude()
	case lexer.KwCppInclude:
		return p.parseCppInclude()
	case lexer.KwConst:
		return p.parseConst()
	case lexer.KwTypedef:
		return p.parseTypedef()
	case lexer.KwEnum:
		return p.parseEnum()
	case lexer.KwStruct:
		return p.parseStructLike(thrift.StructKindStruct)
	case lexer.KwUnion:
		return p.parseStructLike(thrift.StructKindUnion)
	case lexer.KwException:
		return p.parseStructLike(thrift.StructKindException)
	case lexer.KwService:
		return p.parseService()
	default:
		return nil, p.unexpected([]string{"namespace", "include", "cpp_include", "const", "typedef", "enum", "struct", "union", "exception", "service"})
	}
}

// advance fetches the next token from the lexer into p.cur, translating a
// lex-time failure into the equivalent *ParseError.
func (p *Parser) advance() *ParseError {
	tok, err := p.lex.Next()
	if err != nil {
		if lexErr, ok := err.(*lexer.Error); ok {
			return fromLexError(lexErr)
		}
		return &ParseError{Kind: InvalidCharacter, Position: p.cur.End}
	}
	p.cur = tok
	return nil
}

// drainComments appends every LineComment/BlockComment token at the
// current position to pendingComments, leaving p.cur on the first
// non-comment token.
func (p *Parser) drainComments() *ParseError {
	for p.cur.Kind == lexer.LineComment || p.cur.Kind == lexer.BlockComment {
		p.pendingComments = append(p.pendingComments, commentFromToken(p.cur))
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// takeComments hands ownership of the pending-comment buffer to the
// caller and clears it.
func (p *Parser) takeComments() []thrift.Comment {
	c := p.pendingComments
	p.pendingComments = nil
	return c
}

// discardComments drops the pending-comment buffer without attaching it
// anywhere. Used when a container closes with no following declaration to
// hand trailing comments to (see DESIGN.md's Open Question decision on
// comments directly before a closing brace).
func (p *Parser) discardComments() {
	p.pendingComments = nil
}

func commentFromToken(tok lexer.Token) thrift.Comment {
	if tok.Kind == lexer.BlockComment {
		return thrift.BlockComment{Lines: tok.Lines}
	}
	return thrift.LineComment{Value: tok.Text}
}

// expect consumes p.cur if it has the given kind, or fails with an
// UnexpectedToken/UnexpectedEndOfInput ParseError naming what was wanted.
func (p *Parser) expect(kind lexer.TokenKind) *ParseError {
	if p.cur.Kind != kind {
		return p.unexpected([]string{kind.String()})
	}
	return p.advance()
}

// expectIdentifier consumes an Identifier token, or "true"/"false" (which
// are reserved only inside ConstValue position — everywhere else they
// remain ordinary identifiers, per the grammar's own scoping of those two
// keywords), returning its text.
func (p *Parser) expectIdentifier() (string, *ParseError) {
	switch p.cur.Kind {
	case lexer.Identifier, lexer.KwTrue, lexer.KwFalse:
		text := p.cur.Text
		if err := p.advance(); err != nil {
			return "", err
		}
		return text, nil
	default:
		return "", p.unexpected([]string{"identifier"})
	}
}

// skipSeparators consumes zero or more consecutive ',' or ';' tokens.
// Multiple consecutive separators are tolerated as empty entries, and a
// missing separator (end of container) is equally acceptable.
func (p *Parser) skipSeparators() *ParseError {
	for p.cur.Kind == lexer.Comma || p.cur.Kind == lexer.Semicolon {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) unexpected(expected []string) *ParseError {
	if p.cur.Kind == lexer.EOF {
		return &ParseError{Kind: UnexpectedEndOfInput, Position: p.cur.Start, Expected: expected}
	}
	return &ParseError{Kind: UnexpectedToken, Position: p.cur.Start, Expected: expected, Found: p.cur.Kind, Lexeme: p.cur.Text}
}
