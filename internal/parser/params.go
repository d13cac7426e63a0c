package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

// parseParamList parses the parameters of a method, constructor, operator,
// indexer, delegate, or anonymous method. The opening delimiter is already
// consumed; close is RParen or RBracket.
func (p *Parser) parseParamList(close token.Kind) (params []*ast.Param, ok bool) {
	params = make([]*ast.Param, 0, 2)

	if p.at(close) {
		p.advance()
		return params, true
	}

	for {
		param, paramOK := p.parseParam()
		if !paramOK {
			p.resyncParamList(close)
			return params, false
		}
		params = append(params, param)

		if p.at(token.Comma) {
			commaTok := p.advance()
			if param.IsArglist {
				p.report(diag.SynArglistMustBeLast, diag.SevError, commaTok.Span,
					"__arglist must be the last parameter in the list")
				p.resyncParamList(close)
				return params, false
			}
			continue
		}

		// An annotation stuck to `__arglist` lands here: the keyword's slot
		// has no attachable annotation point, so the grammar sees a stray '!'
		// and reports the generic comma-or-close error.
		if _, closeOK := p.expect(close, diag.SynExpectCommaOrParen,
			"expected ',' or '"+close.String()+"' in parameter list"); !closeOK {
			p.resyncParamList(close)
			return params, false
		}
		break
	}

	return params, true
}

func (p *Parser) resyncParamList(close token.Kind) {
	p.resyncUntil(close, token.Semicolon, token.LBrace, token.RBrace)
	if p.at(close) {
		p.advance()
	}
}

// parseParam parses one typed parameter declarator:
// `__arglist` | Type name [`!!`] [`=` expr].
func (p *Parser) parseParam() (*ast.Param, bool) {
	param := &ast.Param{}

	if p.at(token.KwArglist) {
		tok := p.advance()
		param.Name = tok.Text
		param.NameSpan = tok.Span
		param.IsArglist = true
		param.Span = tok.Span
		return param, true
	}

	typeRef, ok := p.parseTypeRef()
	if !ok {
		return nil, false
	}
	param.Type = typeRef

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	param.Name = name
	param.NameSpan = nameSpan
	param.Span = typeRef.Span.Cover(nameSpan)

	if !p.parseNullCheckAndDefault(param) {
		return nil, false
	}
	return param, true
}

// parseNullCheckAndDefault handles the tail of a parameter declarator: the
// optional `!!` annotation followed by an optional `= expr` default clause.
//
// The annotation has a lexical ambiguity with `!=`: maximal munch turns the
// byte sequence `!!=` into `!` `!=`, swallowing the annotation. That shape
// gets a dedicated error demanding a space before `=`; the parameter is then
// treated as unannotated and the default clause is still parsed, so recovery
// stays on track.
func (p *Parser) parseNullCheckAndDefault(param *ast.Param) bool {
	if p.at(token.Bang) {
		bang1 := p.advance()
		switch {
		case p.at(token.Bang) && bang1.Span.Adjacent(p.peek().Span):
			bang2 := p.advance()
			param.NullCheck = true
			param.NullCheckSpan = bang1.Span.Cover(bang2.Span)
			param.Span = param.Span.Cover(bang2.Span)

		case p.at(token.BangEq) && bang1.Span.Adjacent(p.peek().Span):
			beq := p.advance()
			p.report(diag.SynNeedSpaceAfterNullCheck, diag.SevError, bang1.Span.Cover(beq.Span),
				"a space is required between '!!' and '='")
			expr, exprOK := p.parseExpr()
			if !exprOK {
				return false
			}
			param.Default = expr
			param.Span = param.Span.Cover(expr.ExprSpan())
			return true

		default:
			p.report(diag.SynUnexpectedToken, diag.SevError, bang1.Span,
				"unexpected '!' in parameter list")
			return false
		}
	}

	if p.at(token.Assign) {
		p.advance()
		expr, exprOK := p.parseExpr()
		if !exprOK {
			return false
		}
		param.Default = expr
		param.Span = param.Span.Cover(expr.ExprSpan())
	}
	return true
}

// parseLambdaParam parses one parenthesized-lambda parameter, which may be
// typed (`string s!!`) or untyped (`s!!`); discards parse like names.
func (p *Parser) parseLambdaParam() (*ast.Param, bool) {
	param := &ast.Param{}

	// Untyped when the token after the leading identifier cannot continue a
	// type reference (a second identifier, '.', or '?').
	untyped := p.atOr(token.Ident, token.Underscore) &&
		p.peekAt(1).Kind != token.Ident &&
		p.peekAt(1).Kind != token.Underscore &&
		p.peekAt(1).Kind != token.Dot &&
		p.peekAt(1).Kind != token.Question

	if !untyped {
		typeRef, ok := p.parseTypeRef()
		if !ok {
			return nil, false
		}
		param.Type = typeRef
	}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	param.Name = name
	param.NameSpan = nameSpan
	if param.Type != nil {
		param.Span = param.Type.Span.Cover(nameSpan)
	} else {
		param.Span = nameSpan
	}

	if !p.parseNullCheckAndDefault(param) {
		return nil, false
	}
	return param, true
}
