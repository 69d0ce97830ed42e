package parser

import (
	"github.com/thrift-tools/thriftidl/lexer"
	"github.com/thrift-tools/thriftidl/thrift"
)

var primitiveKeywords = map[lexer.TokenKind]thrift.PrimitiveKind{
	lexer.KwBool:   thrift.PrimitiveBool,
	lexer.KwByte:   thrift.PrimitiveByte,
	lexer.KwI8:     thrift.PrimitiveI8,
	lexer.KwI16:    thrift.PrimitiveI16,
	lexer.KwI32:    thrift.PrimitiveI32,
	lexer.KwI64:    thrift.PrimitiveI64,
	lexer.KwDouble: thrift.PrimitiveDouble,
	lexer.KwString: thrift.PrimitiveString,
	lexer.KwBinary: thrift.PrimitiveBinary,
}

// parseFieldType parses a primitive, container generic, or unresolved
// type identifier. Nested generics (map<K, list<V>>) fall out naturally
// from the recursive calls; there is no "<<"/">>" ambiguity because the
// lexer never merges adjacent angle brackets into a single token.
func (p *Parser) parseFieldType() (thrift.FieldType, *ParseError) {
	if kind, ok := primitiveKeywords[p.cur.Kind]; ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &thrift.PrimitiveType{Kind: kind}, nil
	}

	switch p.cur.Kind {
	case lexer.KwMap:
		return p.parseMapType()
	case lexer.KwList:
		return p.parseListType()
	case lexer.KwSet:
		return p.parseSetType()
	case lexer.Identifier:
		name := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &thrift.IdentifierType{Name: name}, nil
	default:
		return nil, p.unexpected([]string{"type"})
	}
}

func (p *Parser) parseMapType() (thrift.FieldType, *ParseError) {
	if err := p.advance(); err != nil { // 'map'
		return nil, err
	}
	if err := p.expect(lexer.LAngle); err != nil {
		return nil, err
	}
	key, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.Comma); err != nil {
		return nil, err
	}
	value, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RAngle); err != nil {
		return nil, err
	}
	cppType, err := p.tryParseCppType()
	if err != nil {
		return nil, err
	}
	return &thrift.MapType{Key: key, Value: value, CppType: cppType}, nil
}

func (p *Parser) parseListType() (thrift.FieldType, *ParseError) {
	if err := p.advance(); err != nil { // 'list'
		return nil, err
	}
	if err := p.expect(lexer.LAngle); err != nil {
		return nil, err
	}
	element, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RAngle); err != nil {
		return nil, err
	}
	cppType, err := p.tryParseCppType()
	if err != nil {
		return nil, err
	}
	return &thrift.ListType{Element: element, CppType: cppType}, nil
}

func (p *Parser) parseSetType() (thrift.FieldType, *ParseError) {
	if err := p.advance(); err != nil { // 'set'
		return nil, err
	}
	if err := p.expect(lexer.LAngle); err != nil {
		return nil, err
	}
	element, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RAngle); err != nil {
		return nil, err
	}
	cppType, err := p.tryParseCppType()
	if err != nil {
		return nil, err
	}
	return &thrift.SetType{Element: element, CppType: cppType}, nil
}

// tryParseCppType consumes an optional `cpp_type "literal"` suffix after
// a container's closing angle bracket.
func (p *Parser) tryParseCppType() (*string, *ParseError) {
	if p.cur.Kind != lexer.KwCppType {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.StringLiteral {
		return nil, p.unexpected([]string{"string literal"})
	}
	text := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &text, nil
}
