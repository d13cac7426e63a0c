package parser

import (
	"strings"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

// parseTypeRef parses `Ident ('.' Ident)* ('?')?`.
func (p *Parser) parseTypeRef() (*ast.TypeRef, bool) {
	if !p.at(token.Ident) {
		p.err(diag.SynExpectType, "expected type, got \""+p.peek().Text+"\"")
		return nil, false
	}
	first := p.advance()
	span := first.Span
	var sb strings.Builder
	sb.WriteString(first.Text)

	for p.at(token.Dot) && p.peekAt(1).Kind == token.Ident {
		p.advance() // '.'
		seg := p.advance()
		sb.WriteByte('.')
		sb.WriteString(seg.Text)
		span = span.Cover(seg.Span)
	}

	nullable := false
	if p.at(token.Question) {
		q := p.advance()
		nullable = true
		span = span.Cover(q.Span)
	}

	return &ast.TypeRef{
		Name:     sb.String(),
		Nullable: nullable,
		Span:     span,
	}, true
}
