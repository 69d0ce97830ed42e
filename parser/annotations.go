package parser

import (
	"github.com/thrift-tools/thriftidl/lexer"
	"github.com/thrift-tools/thriftidl/thrift"
)

// tryParseAnnotations recognizes an annotation clause using purely local
// lookahead: the decision never depends on what construct preceded it,
// only on what follows the '(' right here. A function's parameter list
// also starts with '(' immediately after a name, so the rule that tells
// them apart is: an annotation clause's '(' is always followed by an
// Identifier and then '=' — a parameter list's '(' is followed by either
// ')' (no parameters) or a field, which never starts with "identifier =".
//
// The lookahead is done by forking the lexer: Lexer holds nothing but a
// byte slice and an offset, so copying it to peek ahead is cheap and
// leaves the real token stream untouched if the guess is wrong.
func (p *Parser) tryParseAnnotations() (*thrift.Annotations, *ParseError) {
	if p.cur.Kind != lexer.LParen {
		return nil, nil
	}

	fork := p.lex
	first, err := fork.Next()
	if err != nil || first.Kind != lexer.Identifier {
		return nil, nil
	}
	second, err := fork.Next()
	if err != nil || second.Kind != lexer.Equals {
		return nil, nil
	}

	return p.parseAnnotations()
}

// parseAnnotations assumes p.cur is the opening '(' of a clause already
// confirmed (by tryParseAnnotations) to contain at least one pair; an
// empty `()` is therefore never accepted, matching the grammar's
// requirement of at least one "name = value" pair.
func (p *Parser) parseAnnotations() (*thrift.Annotations, *ParseError) {
	if err := p.advance(); err != nil { // '('
		return nil, err
	}

	var annotations []thrift.Annotation
	for {
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.Equals); err != nil {
			return nil, err
		}
		if p.cur.Kind != lexer.StringLiteral {
			return nil, p.unexpected([]string{"string literal"})
		}
		value := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		annotations = append(annotations, thrift.Annotation{Name: name, Value: value})

		if p.cur.Kind != lexer.Comma && p.cur.Kind != lexer.Semicolon {
			break
		}
		if err := p.skipSeparators(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.RParen {
			break
		}
	}

	if err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return &thrift.Annotations{Annotations: annotations}, nil
}
