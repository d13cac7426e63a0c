package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

// parseMember parses one class or interface member. typeName is the enclosing
// type's name, used to recognize constructors.
func (p *Parser) parseMember(typeName string, inInterface bool) (ast.Member, bool) {
	mods := p.parseModifiers()

	if p.at(token.KwDelegate) {
		return p.parseDelegate(mods)
	}

	// Constructor: the type name directly followed by '('.
	if p.at(token.Ident) && p.peek().Text == typeName && p.peekAt(1).Kind == token.LParen {
		return p.parseCtor(mods)
	}

	ret, ok := p.parseTypeRef()
	if !ok {
		return nil, false
	}

	switch p.peek().Kind {
	case token.KwOperator:
		return p.parseOperator(mods, ret)
	case token.KwThis:
		return p.parseIndexer(mods, ret)
	}

	name, _, ok := p.parseIdent()
	if !ok {
		return nil, false
	}

	switch p.peek().Kind {
	case token.LParen:
		return p.parseMethod(mods, ret, name, inInterface)
	case token.LBrace:
		return p.parseProperty(mods, ret, name)
	default:
		return p.parseField(mods, ret, name)
	}
}

func (p *Parser) parseMethod(mods ast.ModifierList, ret *ast.TypeRef, name string, inInterface bool) (ast.Member, bool) {
	p.advance() // '('
	params, ok := p.parseParamList(token.RParen)
	if !ok {
		return nil, false
	}

	body, bodyOK := p.parseOptionalBody(mods, inInterface)
	if !bodyOK {
		return nil, false
	}

	span := ret.Span.Cover(p.lastSpan)
	if mods.Flags != 0 {
		span = span.Cover(mods.Span)
	}
	return &ast.MethodDecl{
		Mods:   mods,
		Return: ret,
		Name:   name,
		Params: params,
		Body:   body,
		Span:   span,
	}, true
}

func (p *Parser) parseCtor(mods ast.ModifierList) (ast.Member, bool) {
	nameTok := p.advance() // type name
	p.advance()            // '('
	params, ok := p.parseParamList(token.RParen)
	if !ok {
		return nil, false
	}

	body, bodyOK := p.parseOptionalBody(mods, false)
	if !bodyOK {
		return nil, false
	}

	span := nameTok.Span.Cover(p.lastSpan)
	if mods.Flags != 0 {
		span = span.Cover(mods.Span)
	}
	return &ast.CtorDecl{
		Mods:   mods,
		Name:   nameTok.Text,
		Params: params,
		Body:   body,
		Span:   span,
	}, true
}

func (p *Parser) parseOperator(mods ast.ModifierList, ret *ast.TypeRef) (ast.Member, bool) {
	p.advance() // 'operator'

	var op string
	switch p.peek().Kind {
	case token.Plus, token.Minus, token.Star, token.Slash,
		token.EqEq, token.BangEq, token.Lt, token.Gt, token.Bang:
		op = p.advance().Text
	default:
		p.err(diag.SynUnexpectedToken, "expected operator symbol after 'operator'")
		return nil, false
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after operator symbol"); !ok {
		return nil, false
	}
	params, ok := p.parseParamList(token.RParen)
	if !ok {
		return nil, false
	}

	body, bodyOK := p.parseOptionalBody(mods, false)
	if !bodyOK {
		return nil, false
	}

	span := ret.Span.Cover(p.lastSpan)
	if mods.Flags != 0 {
		span = span.Cover(mods.Span)
	}
	return &ast.OperatorDecl{
		Mods:   mods,
		Return: ret,
		Op:     op,
		Params: params,
		Body:   body,
		Span:   span,
	}, true
}

func (p *Parser) parseIndexer(mods ast.ModifierList, ret *ast.TypeRef) (ast.Member, bool) {
	p.advance() // 'this'
	if _, ok := p.expect(token.LBracket, diag.SynUnexpectedToken, "expected '[' after 'this'"); !ok {
		return nil, false
	}
	params, ok := p.parseParamList(token.RBracket)
	if !ok {
		return nil, false
	}

	if _, ok = p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open accessor list"); !ok {
		return nil, false
	}
	accessors, ok := p.parseAccessors()
	if !ok {
		return nil, false
	}

	span := ret.Span.Cover(p.lastSpan)
	if mods.Flags != 0 {
		span = span.Cover(mods.Span)
	}
	return &ast.IndexerDecl{
		Mods:      mods,
		Return:    ret,
		Params:    params,
		Accessors: accessors,
		Span:      span,
	}, true
}

func (p *Parser) parseProperty(mods ast.ModifierList, typ *ast.TypeRef, name string) (ast.Member, bool) {
	p.advance() // '{'
	accessors, ok := p.parseAccessors()
	if !ok {
		return nil, false
	}

	span := typ.Span.Cover(p.lastSpan)
	if mods.Flags != 0 {
		span = span.Cover(mods.Span)
	}
	return &ast.PropertyDecl{
		Mods:      mods,
		Type:      typ,
		Name:      name,
		Accessors: accessors,
		Span:      span,
	}, true
}

// parseField finishes a field declarator. Anything that is not `= expr` or
// `;` after the name falls into the generic comma-or-semicolon error — this
// is where an annotation glued to a property or field name lands, since the
// declarator grammar has no annotation slot.
func (p *Parser) parseField(mods ast.ModifierList, typ *ast.TypeRef, name string) (ast.Member, bool) {
	var initExpr ast.Expr
	if p.at(token.Assign) {
		p.advance()
		expr, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		initExpr = expr
	}

	if _, ok := p.expect(token.Semicolon, diag.SynExpectCommaOrSemicolon,
		"expected ',' or ';' after declarator"); !ok {
		return nil, false
	}

	span := typ.Span.Cover(p.lastSpan)
	if mods.Flags != 0 {
		span = span.Cover(mods.Span)
	}
	return &ast.FieldDecl{
		Mods: mods,
		Type: typ,
		Name: name,
		Init: initExpr,
		Span: span,
	}, true
}

// parseAccessors parses the accessor list after '{' was consumed.
func (p *Parser) parseAccessors() ([]*ast.Accessor, bool) {
	accessors := make([]*ast.Accessor, 0, 2)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		var kind ast.AccessorKind
		switch p.peek().Kind {
		case token.KwGet:
			kind = ast.AccessorGet
		case token.KwSet:
			kind = ast.AccessorSet
		default:
			p.err(diag.SynExpectAccessor, "expected 'get' or 'set' accessor")
			p.resyncUntil(token.KwGet, token.KwSet, token.RBrace, token.Semicolon)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		kwTok := p.advance()

		acc := &ast.Accessor{Kind: kind, Span: kwTok.Span}
		if p.at(token.LBrace) {
			body, ok := p.parseBlock()
			if !ok {
				return nil, false
			}
			acc.Body = body
			acc.Span = acc.Span.Cover(body.Span)
		} else {
			semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after auto accessor")
			if !ok {
				continue
			}
			acc.Span = acc.Span.Cover(semiTok.Span)
		}
		accessors = append(accessors, acc)
	}

	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close accessor list"); !ok {
		return nil, false
	}
	return accessors, true
}

// parseOptionalBody parses `{ ... }` or `;` after a member signature.
// Bodiless members are fine in interfaces and for abstract/extern/partial
// modifiers; the binder decides what the missing body means.
func (p *Parser) parseOptionalBody(mods ast.ModifierList, inInterface bool) (*ast.Block, bool) {
	if p.at(token.LBrace) {
		return p.parseBlock()
	}
	if p.at(token.Semicolon) {
		p.advance()
		if !inInterface && !mods.Has(ast.ModAbstract) && !mods.Has(ast.ModExtern) && !mods.Has(ast.ModPartial) {
			p.report(diag.SynMethodNeedsBody, diag.SevError, p.lastSpan,
				"method without abstract, extern or partial modifier must declare a body")
		}
		return nil, true
	}
	p.err(diag.SynMethodNeedsBody, "expected method body or ';'")
	return nil, false
}
