package parser

import (
	"strconv"

	"github.com/thrift-tools/thriftidl/lexer"
	"github.com/thrift-tools/thriftidl/thrift"
)

// parseField parses `[id ':'] [requiredness] type name ['=' value]
// [annotations] [terminator]`. Every piece except type and name is
// optional; the terminator is any of ',', ';', or nothing at all.
func (p *Parser) parseField() (*thrift.FieldDefinition, *ParseError) {
	comments := p.takeComments()

	var fieldID *int64
	if p.cur.Kind == lexer.IntegerLiteral {
		idTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}
		id, convErr := strconv.ParseInt(idTok.Text, 0, 64)
		if convErr != nil {
			return nil, &ParseError{Kind: InvalidInteger, Position: idTok.Start, Lexeme: idTok.Text}
		}
		fieldID = &id
	}

	requiredness := thrift.RequirednessDefault
	switch p.cur.Kind {
	case lexer.KwRequired:
		requiredness = thrift.RequirednessRequired
		if err := p.advance(); err != nil {
			return nil, err
		}
	case lexer.KwOptional:
		requiredness = thrift.RequirednessOptional
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	fieldType, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	var defaultValue thrift.ConstValue
	if p.cur.Kind == lexer.Equals {
		if err := p.advance(); err != nil {
			return nil, err
		}
		defaultValue, err = p.parseConstValue()
		if err != nil {
			return nil, err
		}
	}

	annotations, err := p.tryParseAnnotations()
	if err != nil {
		return nil, err
	}

	if err := p.skipSeparators(); err != nil {
		return nil, err
	}

	return &thrift.FieldDefinition{
		FieldID:      fieldID,
		Requiredness: requiredness,
		FieldType:    fieldType,
		Name:         name,
		DefaultValue: defaultValue,
		Comments:     comments,
		Annotations:  annotations,
	}, nil
}

// parseFieldList consumes fields up to (and including) the matching
// closing token, draining and discarding a trailing comment run that
// precedes the close (see DESIGN.md's Open Question decision).
func (p *Parser) parseFieldList(close lexer.TokenKind) ([]*thrift.FieldDefinition, *ParseError) {
	var fields []*thrift.FieldDefinition
	for {
		if err := p.drainComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind == close {
			p.discardComments()
			break
		}
		if p.cur.Kind == lexer.EOF {
			return nil, p.unexpected([]string{close.String()})
		}
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, p.expect(close)
}

// parseFunction parses a single service method: leading comments,
// optional 'oneway', a return type ('void' or a FieldType), a parameter
// list, an optional 'throws' clause, optional annotations, and an
// optional terminator.
func (p *Parser) parseFunction() (*thrift.FunctionDefinition, *ParseError) {
	comments := p.takeComments()

	oneway := false
	if p.cur.Kind == lexer.KwOneway {
		oneway = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	var returnType thrift.FieldType
	if p.cur.Kind == lexer.KwVoid {
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else {
		var err *ParseError
		returnType, err = p.parseFieldType()
		if err != nil {
			return nil, err
		}
	}

	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	fields, err := p.parseFieldList(lexer.RParen)
	if err != nil {
		return nil, err
	}

	var throws []*thrift.FieldDefinition
	if p.cur.Kind == lexer.KwThrows {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.LParen); err != nil {
			return nil, err
		}
		throws, err = p.parseFieldList(lexer.RParen)
		if err != nil {
			return nil, err
		}
	}

	annotations, err := p.tryParseAnnotations()
	if err != nil {
		return nil, err
	}

	if err := p.skipSeparators(); err != nil {
		return nil, err
	}

	return &thrift.FunctionDefinition{
		Oneway:      oneway,
		ReturnType:  returnType,
		Name:        name,
		Fields:      fields,
		Throws:      throws,
		Comments:    comments,
		Annotations: annotations,
	}, nil
}
