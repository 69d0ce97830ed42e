package parser

import (
	"github.com/thrift-tools/thriftidl/lexer"
	"github.com/thrift-tools/thriftidl/thrift"
)

// parseConstValue dispatches purely on lookahead, per spec: an integer,
// double, or string literal token, true/false, a '[' list, a '{' map, or
// a bare identifier naming another constant.
func (p *Parser) parseConstValue() (thrift.ConstValue, *ParseError) {
	switch p.cur.Kind {
	case lexer.IntegerLiteral:
		lexeme := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &thrift.IntegerLiteral{Lexeme: lexeme}, nil
	case lexer.DoubleLiteral:
		lexeme := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &thrift.DoubleLiteral{Lexeme: lexeme}, nil
	case lexer.StringLiteral:
		value := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &thrift.StringLiteral{Value: value}, nil
	case lexer.KwTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &thrift.BoolLiteral{Value: true}, nil
	case lexer.KwFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &thrift.BoolLiteral{Value: false}, nil
	case lexer.LBracket:
		return p.parseListValue()
	case lexer.LBrace:
		return p.parseMapValue()
	case lexer.Identifier:
		name := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &thrift.IdentifierValue{Name: name}, nil
	default:
		return nil, p.unexpected([]string{"constant value"})
	}
}

func (p *Parser) parseListValue() (thrift.ConstValue, *ParseError) {
	if err := p.advance(); err != nil { // '['
		return nil, err
	}
	var elements []thrift.ConstValue
	for p.cur.Kind != lexer.RBracket {
		if p.cur.Kind == lexer.EOF {
			return nil, p.unexpected([]string{"']'"})
		}
		v, err := p.parseConstValue()
		if err != nil {
			return nil, err
		}
		elements = append(elements, v)
		if err := p.skipSeparators(); err != nil {
			return nil, err
		}
	}
	if err := p.advance(); err != nil { // ']'
		return nil, err
	}
	return &thrift.ListValue{Elements: elements}, nil
}

func (p *Parser) parseMapValue() (thrift.ConstValue, *ParseError) {
	if err := p.advance(); err != nil { // '{'
		return nil, err
	}
	var entries []thrift.MapEntry
	for p.cur.Kind != lexer.RBrace {
		if p.cur.Kind == lexer.EOF {
			return nil, p.unexpected([]string{"'}'"})
		}
		key, err := p.parseConstValue()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}
		value, err := p.parseConstValue()
		if err != nil {
			return nil, err
		}
		entries = append(entries, thrift.MapEntry{Key: key, Value: value})
		if err := p.skipSeparators(); err != nil {
			return nil, err
		}
	}
	if err := p.advance(); err != nil { // '}'
		return nil, err
	}
	return &thrift.MapValue{Entries: entries}, nil
}
