package parser

import (
	"github.com/thrift-tools/thriftidl/lexer"
	"github.com/thrift-tools/thriftidl/thrift"
)

// parseNamespace parses `namespace <scope> <name>`. Namespace has no
// Comments field in the AST (spec.md §3 doesn't give it one); any pending
// comments are discarded rather than silently attached somewhere they
// weren't asked to be.
func (p *Parser) parseNamespace() (thrift.Definition, *ParseError) {
	p.discardComments()
	if err := p.advance(); err != nil { // 'namespace'
		return nil, err
	}
	scope, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	return &thrift.Namespace{Scope: scope, Name: name}, nil
}

func (p *Parser) parseInclude() (thrift.Definition, *ParseError) {
	p.discardComments()
	if err := p.advance(); err != nil { // 'include'
		return nil, err
	}
	path, err := p.expectStringLiteral()
	if err != nil {
		return nil, err
	}
	return &thrift.Include{Path: path}, nil
}

func (p *Parser) parseCppInclude() (thrift.Definition, *ParseError) {
	p.discardComments()
	if err := p.advance(); err != nil { // 'cpp_include'
		return nil, err
	}
	path, err := p.expectStringLiteral()
	if err != nil {
		return nil, err
	}
	return &thrift.CppInclude{Path: path}, nil
}

func (p *Parser) expectStringLiteral() (string, *ParseError) {
	if p.cur.Kind != lexer.StringLiteral {
		return "", p.unexpected([]string{"string literal"})
	}
	text := p.cur.Text
	if err := p.advance(); err != nil {
		return "", err
	}
	return text, nil
}

func (p *Parser) parseConst() (thrift.Definition, *ParseError) {
	comments := p.takeComments()
	if err := p.advance(); err != nil { // 'const'
		return nil, err
	}
	constType, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.Equals); err != nil {
		return nil, err
	}
	value, err := p.parseConstValue()
	if err != nil {
		return nil, err
	}
	annotations, err := p.tryParseAnnotations()
	if err != nil {
		return nil, err
	}
	if err := p.skipSeparators(); err != nil {
		return nil, err
	}
	return &thrift.Const{Name: name, ConstType: constType, Value: value, Comments: comments, Annotations: annotations}, nil
}

func (p *Parser) parseTypedef() (thrift.Definition, *ParseError) {
	comments := p.takeComments()
	if err := p.advance(); err != nil { // 'typedef'
		return nil, err
	}
	aliasType, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	annotations, err := p.tryParseAnnotations()
	if err != nil {
		return nil, err
	}
	return &thrift.Typedef{Name: name, AliasType: aliasType, Comments: comments, Annotations: annotations}, nil
}

func (p *Parser) parseEnum() (thrift.Definition, *ParseError) {
	comments := p.takeComments()
	if err := p.advance(); err != nil { // 'enum'
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	members, err := p.parseEnumMembers()
	if err != nil {
		return nil, err
	}
	annotations, err := p.tryParseAnnotations()
	if err != nil {
		return nil, err
	}
	return &thrift.Enum{Name: name, Members: members, Comments: comments, Annotations: annotations}, nil
}

func (p *Parser) parseEnumMembers() ([]*thrift.EnumMember, *ParseError) {
	var members []*thrift.EnumMember
	for {
		if err := p.drainComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.RBrace {
			p.discardComments()
			break
		}
		if p.cur.Kind == lexer.EOF {
			return nil, p.unexpected([]string{"'}'"})
		}
		member, err := p.parseEnumMember()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, p.expect(lexer.RBrace)
}

func (p *Parser) parseEnumMember() (*thrift.EnumMember, *ParseError) {
	comments := p.takeComments()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	var initializer *thrift.IntegerLiteral
	if p.cur.Kind == lexer.Equals {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind != lexer.IntegerLiteral {
			return nil, p.unexpected([]string{"integer literal"})
		}
		initializer = &thrift.IntegerLiteral{Lexeme: p.cur.Text}
		if err := p.advance(); err != nil {
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

	return &thrift.EnumMember{Name: name, Initializer: initializer, Comments: comments, Annotations: annotations}, nil
}

func (p *Parser) parseStructLike(kind thrift.StructKind) (thrift.Definition, *ParseError) {
	comments := p.takeComments()
	if err := p.advance(); err != nil { // 'struct' | 'union' | 'exception'
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	fields, err := p.parseFieldList(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	annotations, err := p.tryParseAnnotations()
	if err != nil {
		return nil, err
	}
	return &thrift.Struct{Kind: kind, Name: name, Fields: fields, Comments: comments, Annotations: annotations}, nil
}

func (p *Parser) parseService() (thrift.Definition, *ParseError) {
	comments := p.takeComments()
	if err := p.advance(); err != nil { // 'service'
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	var extends *string
	if p.cur.Kind == lexer.KwExtends {
		if err := p.advance(); err != nil {
			return nil, err
		}
		base, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		extends = &base
	}

	if err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	functions, err := p.parseFunctions()
	if err != nil {
		return nil, err
	}
	annotations, err := p.tryParseAnnotations()
	if err != nil {
		return nil, err
	}
	return &thrift.Service{Name: name, Extends: extends, Functions: functions, Comments: comments, Annotations: annotations}, nil
}

func (p *Parser) parseFunctions() ([]*thrift.FunctionDefinition, *ParseError) {
	var functions []*thrift.FunctionDefinition
	for {
		if err := p.drainComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.RBrace {
			p.discardComments()
			break
		}
		if p.cur.Kind == lexer.EOF {
			return nil, p.unexpected([]string{"'}'"})
		}
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		functions = append(functions, fn)
	}
	return functions, p.expect(lexer.RBrace)
}
