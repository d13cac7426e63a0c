package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

// parseClass parses `class Name { members }`.
func (p *Parser) parseClass(mods ast.ModifierList) (ast.Decl, bool) {
	kw := p.advance() // 'class'
	name, _, ok := p.parseIdent()
	if !ok {
		return nil, false
	}

	if _, ok = p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after class name"); !ok {
		return nil, false
	}

	decl := &ast.ClassDecl{
		Mods: mods,
		Name: name,
	}
	p.parseMembers(decl.Name, false, &decl.Members)

	closeTok, _ := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close class body")
	decl.Span = kw.Span.Cover(closeTok.Span)
	if mods.Flags != 0 {
		decl.Span = decl.Span.Cover(mods.Span)
	}
	return decl, true
}

// parseInterface parses `interface Name { members }`.
func (p *Parser) parseInterface(mods ast.ModifierList) (ast.Decl, bool) {
	kw := p.advance() // 'interface'
	name, _, ok := p.parseIdent()
	if !ok {
		return nil, false
	}

	if _, ok = p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after interface name"); !ok {
		return nil, false
	}

	decl := &ast.InterfaceDecl{
		Mods: mods,
		Name: name,
	}
	p.parseMembers(decl.Name, true, &decl.Members)

	closeTok, _ := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close interface body")
	decl.Span = kw.Span.Cover(closeTok.Span)
	if mods.Flags != 0 {
		decl.Span = decl.Span.Cover(mods.Span)
	}
	return decl, true
}

// parseDelegate parses `delegate Type Name(params);`.
func (p *Parser) parseDelegate(mods ast.ModifierList) (*ast.DelegateDecl, bool) {
	kw := p.advance() // 'delegate'

	ret, ok := p.parseTypeRef()
	if !ok {
		return nil, false
	}
	name, _, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after delegate name"); !ok {
		return nil, false
	}
	params, ok := p.parseParamList(token.RParen)
	if !ok {
		return nil, false
	}
	semiTok, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after delegate declaration")

	span := kw.Span.Cover(semiTok.Span)
	if mods.Flags != 0 {
		span = span.Cover(mods.Span)
	}
	return &ast.DelegateDecl{
		Mods:   mods,
		Return: ret,
		Name:   name,
		Params: params,
		Span:   span,
	}, true
}

// parseMembers loops over member declarations until '}' or EOF.
func (p *Parser) parseMembers(typeName string, inInterface bool, out *[]ast.Member) {
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		member, ok := p.parseMember(typeName, inInterface)
		if !ok {
			p.resyncMember()
			continue
		}
		*out = append(*out, member)
	}
}

// resyncMember recovers after a bad member: skip to ';' (consumed), a
// balanced '{...}' block (consumed), or the closing '}' of the type body.
func (p *Parser) resyncMember() {
	for {
		switch p.peek().Kind {
		case token.EOF, token.RBrace:
			return
		case token.Semicolon:
			p.advance()
			return
		case token.LBrace:
			p.skipBalancedBraces()
			return
		default:
			p.advance()
		}
	}
}
