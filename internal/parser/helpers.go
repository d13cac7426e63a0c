package parser

import (
	"slices"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/token"
)

// peek returns the current token without consuming it.
func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekAt returns the token n positions ahead; past the end it returns EOF.
func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		idx = len(p.toks) - 1
	}
	return p.toks[idx]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance consumes the current token and updates lastSpan.
// It never moves past EOF.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		if tok.Kind != token.Invalid {
			p.lastSpan = tok.Span
		}
	}
	return tok
}

// getDiagnosticSpan returns the best span for an error at the current token.
// At EOF it points just past the last consumed token.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports and returns (invalid, false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.peek().Text}, false
}

// err reports an error at the current position.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// resyncUntil skips tokens until one of the stop kinds or EOF.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		p.advance()
	}
}

// skipBalancedBraces consumes a '{' and everything up to its matching '}'.
func (p *Parser) skipBalancedBraces() {
	if !p.at(token.LBrace) {
		return
	}
	depth := 0
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// parseIdent expects an identifier (or '_') and returns its text.
func (p *Parser) parseIdent() (string, source.Span, bool) {
	if p.atOr(token.Ident, token.Underscore) {
		tok := p.advance()
		return tok.Text, tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.peek().Text+"\"")
	return "", p.getDiagnosticSpan(), false
}

// parseModifiers consumes a run of modifier keywords into a bitset.
func (p *Parser) parseModifiers() ast.ModifierList {
	var mods ast.ModifierList
	for p.peek().IsModifier() {
		tok := p.advance()
		var flag ast.Modifiers
		switch tok.Kind {
		case token.KwPublic:
			flag = ast.ModPublic
		case token.KwPrivate:
			flag = ast.ModPrivate
		case token.KwStatic:
			flag = ast.ModStatic
		case token.KwAbstract:
			flag = ast.ModAbstract
		case token.KwVirtual:
			flag = ast.ModVirtual
		case token.KwOverride:
			flag = ast.ModOverride
		case token.KwExtern:
			flag = ast.ModExtern
		case token.KwPartial:
			flag = ast.ModPartial
		}
		if mods.Flags == 0 {
			mods.Span = tok.Span
		} else {
			mods.Span = mods.Span.Cover(tok.Span)
		}
		mods.Flags |= flag
	}
	return mods
}
