package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

// parseExpr parses an expression. Lambda shapes are disambiguated first:
//   - `x => ...` and `x!! => ...` (simple lambda, name or discard)
//   - `( ... ) => ...` (parenthesized lambda, typed or untyped)
//   - `delegate (params) { ... }` (anonymous method)
func (p *Parser) parseExpr() (ast.Expr, bool) {
	if lam, ok, matched := p.tryParseSimpleLambda(); matched {
		return lam, ok
	}
	if p.at(token.LParen) && p.parenLambdaAhead() {
		return p.parseParenLambda()
	}
	if p.at(token.KwDelegate) {
		return p.parseAnonymousMethod()
	}
	return p.parseAssign()
}

// tryParseSimpleLambda matches `name [!!] =>` by lookahead; matched is false
// when the tokens do not form a simple lambda head.
func (p *Parser) tryParseSimpleLambda() (ast.Expr, bool, bool) {
	if !p.atOr(token.Ident, token.Underscore) {
		return nil, false, false
	}
	// name =>
	plain := p.peekAt(1).Kind == token.FatArrow
	// name!! =>
	annotated := p.peekAt(1).Kind == token.Bang &&
		p.peekAt(2).Kind == token.Bang &&
		p.peekAt(1).Span.Adjacent(p.peekAt(2).Span) &&
		p.peekAt(3).Kind == token.FatArrow
	if !plain && !annotated {
		return nil, false, false
	}

	nameTok := p.advance()
	param := &ast.Param{
		Name:     nameTok.Text,
		NameSpan: nameTok.Span,
		Span:     nameTok.Span,
	}
	if annotated {
		bang1 := p.advance()
		bang2 := p.advance()
		param.NullCheck = true
		param.NullCheckSpan = bang1.Span.Cover(bang2.Span)
		param.Span = param.Span.Cover(bang2.Span)
	}
	p.advance() // '=>'

	body, ok := p.parseLambdaBody()
	if !ok {
		return nil, false, true
	}

	span := nameTok.Span.Cover(p.lastSpan)
	return &ast.SimpleLambda{Param: param, Body: body, Span: span}, true, true
}

// parenLambdaAhead reports whether the '(' at the cursor opens a lambda
// parameter list, i.e. its matching ')' is directly followed by '=>'.
func (p *Parser) parenLambdaAhead() bool {
	depth := 0
	for i := 0; ; i++ {
		tok := p.peekAt(i)
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return p.peekAt(i+1).Kind == token.FatArrow
			}
		case token.EOF:
			return false
		}
	}
}

func (p *Parser) parseParenLambda() (ast.Expr, bool) {
	openTok := p.advance() // '('

	params := make([]*ast.Param, 0, 2)
	if !p.at(token.RParen) {
		for {
			param, ok := p.parseLambdaParam()
			if !ok {
				p.resyncParamList(token.RParen)
				return nil, false
			}
			params = append(params, param)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectCommaOrParen,
		"expected ',' or ')' in lambda parameter list"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>' after lambda parameters"); !ok {
		return nil, false
	}

	body, ok := p.parseLambdaBody()
	if !ok {
		return nil, false
	}
	return &ast.ParenLambda{
		Params: params,
		Body:   body,
		Span:   openTok.Span.Cover(p.lastSpan),
	}, true
}

func (p *Parser) parseAnonymousMethod() (ast.Expr, bool) {
	kwTok := p.advance() // 'delegate'

	anon := &ast.AnonymousMethod{}
	if p.at(token.LParen) {
		p.advance()
		params, ok := p.parseParamList(token.RParen)
		if !ok {
			return nil, false
		}
		anon.Params = params
		anon.HasParams = true
	}

	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected '{' to open anonymous method body")
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	anon.Body = body
	anon.Span = kwTok.Span.Cover(body.Span)
	return anon, true
}

func (p *Parser) parseLambdaBody() (ast.LambdaBody, bool) {
	if p.at(token.LBrace) {
		block, ok := p.parseBlock()
		if !ok {
			return ast.LambdaBody{}, false
		}
		return ast.LambdaBody{Block: block}, true
	}
	expr, ok := p.parseExpr()
	if !ok {
		return ast.LambdaBody{}, false
	}
	return ast.LambdaBody{Expr: expr}, true
}

// parseAssign parses `binary ['=' expr]` (right-associative).
func (p *Parser) parseAssign() (ast.Expr, bool) {
	left, ok := p.parseBinary()
	if !ok {
		return nil, false
	}
	if p.at(token.Assign) {
		p.advance()
		right, rightOK := p.parseExpr()
		if !rightOK {
			return nil, false
		}
		return &ast.AssignExpr{
			Target: left,
			Value:  right,
			Span:   left.ExprSpan().Cover(right.ExprSpan()),
		}, true
	}
	return left, true
}

// parseBinary parses a flat chain of infix operators. A front end focused on
// declarations does not need full precedence; bodies only have to survive
// round-tripping to find lambdas.
func (p *Parser) parseBinary() (ast.Expr, bool) {
	left, ok := p.parsePostfix()
	if !ok {
		return nil, false
	}
	for p.atOr(token.Plus, token.Minus, token.Star, token.Slash,
		token.EqEq, token.BangEq, token.Lt, token.Gt) {
		opTok := p.advance()
		right, rightOK := p.parsePostfix()
		if !rightOK {
			return nil, false
		}
		left = &ast.BinaryExpr{
			Op:   opTok.Text,
			X:    left,
			Y:    right,
			Span: left.ExprSpan().Cover(right.ExprSpan()),
		}
	}
	return left, true
}

// parsePostfix parses call and suffix-'!' forms after a primary expression.
// Postfix '!' here is use-site null suppression on an argument or value; it
// never marks a parameter.
func (p *Parser) parsePostfix() (ast.Expr, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		switch p.peek().Kind {
		case token.LParen:
			p.advance()
			args := make([]ast.Expr, 0, 2)
			if !p.at(token.RParen) {
				for {
					arg, argOK := p.parseExpr()
					if !argOK {
						return nil, false
					}
					args = append(args, arg)
					if p.at(token.Comma) {
						p.advance()
						continue
					}
					break
				}
			}
			closeTok, closeOK := p.expect(token.RParen, diag.SynExpectCommaOrParen,
				"expected ',' or ')' in argument list")
			if !closeOK {
				return nil, false
			}
			call := &ast.CallExpr{
				Callee: expr,
				Args:   args,
				Span:   expr.ExprSpan().Cover(closeTok.Span),
			}
			if id, isIdent := expr.(*ast.IdentExpr); isIdent && id.Name == "__arglist" {
				call.Arglist = true
			}
			expr = call
		case token.Bang:
			bangTok := p.advance()
			expr = &ast.SuppressExpr{
				X:    expr,
				Span: expr.ExprSpan().Cover(bangTok.Span),
			}
		default:
			return expr, true
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	switch p.peek().Kind {
	case token.KwNull:
		tok := p.advance()
		return &ast.Literal{Kind: ast.LitNull, Text: tok.Text, Span: tok.Span}, true
	case token.KwTrue, token.KwFalse:
		tok := p.advance()
		return &ast.Literal{Kind: ast.LitBool, Text: tok.Text, Span: tok.Span}, true
	case token.IntLit:
		tok := p.advance()
		return &ast.Literal{Kind: ast.LitInt, Text: tok.Text, Span: tok.Span}, true
	case token.StringLit:
		tok := p.advance()
		return &ast.Literal{Kind: ast.LitString, Text: tok.Text, Span: tok.Span}, true
	case token.Minus:
		opTok := p.advance()
		x, ok := p.parsePostfix()
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{Op: opTok.Text, X: x, Span: opTok.Span.Cover(x.ExprSpan())}, true
	case token.KwThis:
		tok := p.advance()
		return &ast.IdentExpr{Name: tok.Text, Span: tok.Span}, true
	case token.KwArglist:
		// __arglist(...) at a call site.
		tok := p.advance()
		return &ast.IdentExpr{Name: tok.Text, Span: tok.Span}, true
	case token.Ident, token.Underscore:
		tok := p.advance()
		name := tok.Text
		span := tok.Span
		for p.at(token.Dot) && p.peekAt(1).Kind == token.Ident {
			p.advance()
			seg := p.advance()
			name += "." + seg.Text
			span = span.Cover(seg.Span)
		}
		return &ast.IdentExpr{Name: name, Span: span}, true
	case token.LParen:
		openTok := p.advance()
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		closeTok, closeOK := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close expression")
		if !closeOK {
			return nil, false
		}
		return &ast.ParenExpr{X: x, Span: openTok.Span.Cover(closeTok.Span)}, true
	default:
		p.err(diag.SynExpectExpression, "expected expression, got \""+p.peek().Text+"\"")
		return nil, false
	}
}
