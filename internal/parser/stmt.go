package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

func (p *Parser) parseBlock() (*ast.Block, bool) {
	openTok, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open block")
	if !ok {
		return nil, false
	}

	block := &ast.Block{}
	for {
		switch p.peek().Kind {
		case token.RBrace:
			closeTok := p.advance()
			block.Span = openTok.Span.Cover(closeTok.Span)
			return block, true
		case token.EOF:
			p.err(diag.SynUnclosedBrace, "expected '}' to close block")
			block.Span = openTok.Span.Cover(p.lastSpan)
			return block, true
		}
		stmt, stmtOK := p.parseStmt()
		if !stmtOK {
			p.resyncStmt()
			if p.opts.Enough() {
				block.Span = openTok.Span.Cover(p.lastSpan)
				return block, true
			}
			continue
		}
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}
}

// parseStmt returns (nil, true) for an empty statement.
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	switch p.peek().Kind {
	case token.Semicolon:
		p.advance()
		return nil, true
	case token.LBrace:
		block, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return block, true
	case token.KwReturn:
		return p.parseReturn()
	case token.KwVar:
		return p.parseLocalVar()
	default:
		expr, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		semiTok, semiOK := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression")
		if !semiOK {
			return nil, false
		}
		return &ast.ExprStmt{X: expr, Span: expr.ExprSpan().Cover(semiTok.Span)}, true
	}
}

func (p *Parser) parseReturn() (ast.Stmt, bool) {
	kwTok := p.advance()
	stmt := &ast.ReturnStmt{}
	if !p.at(token.Semicolon) {
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt.Value = value
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return")
	if !ok {
		return nil, false
	}
	stmt.Span = kwTok.Span.Cover(semiTok.Span)
	return stmt, true
}

func (p *Parser) parseLocalVar() (ast.Stmt, bool) {
	kwTok := p.advance()
	name, _, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in local variable declaration"); !ok {
		return nil, false
	}
	init, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after local variable declaration")
	if !ok {
		return nil, false
	}
	return &ast.LocalVarStmt{
		Name: name,
		Init: init,
		Span: kwTok.Span.Cover(semiTok.Span),
	}, true
}

// resyncStmt skips to the next statement boundary inside a block. It stops
// after a ';', or before '}' so the enclosing block can close.
func (p *Parser) resyncStmt() {
	depth := 0
	for {
		switch p.peek().Kind {
		case token.Semicolon:
			p.advance()
			if depth == 0 {
				return
			}
		case token.LBrace:
			depth++
			p.advance()
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
			p.advance()
		case token.EOF:
			return
		default:
			p.advance()
		}
	}
}
