package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit was reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File *ast.File
	Bag  *diag.Bag
}

// Parser holds the state for parsing one file. The whole token stream is
// buffered up front: lambda discrimination needs arbitrary-distance lookahead
// past a parenthesized parameter list.
type Parser struct {
	toks     []token.Token
	pos      int
	file     *ast.File
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// ParseFile is the entry point for parsing one file.
// It requires an already-created lexer (over a source.File).
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	toks := make([]token.Token, 0, 256)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	p := Parser{
		toks:     toks,
		file:     &ast.File{},
		fs:       fs,
		opts:     opts,
		lastSpan: toks[0].Span,
	}
	if len(toks) > 0 {
		p.file.FileID = toks[0].Span.File
	}

	p.parseDecls()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

// parseDecls is the top-level loop: until EOF, parse one declaration.
func (p *Parser) parseDecls() {
	startSpan := p.peek().Span
	for !p.at(token.EOF) {
		decl, ok := p.parseDecl()
		if !ok {
			p.resyncTop()
			continue
		}
		p.file.Decls = append(p.file.Decls, decl)
	}
	p.file.Span = startSpan.Cover(p.peek().Span)
}

// parseDecl dispatches on the first significant token of a top-level
// declaration: class, interface, or delegate, each with optional modifiers.
func (p *Parser) parseDecl() (ast.Decl, bool) {
	mods := p.parseModifiers()
	switch p.peek().Kind {
	case token.KwClass:
		return p.parseClass(mods)
	case token.KwInterface:
		return p.parseInterface(mods)
	case token.KwDelegate:
		return p.parseDelegate(mods)
	default:
		p.report(diag.SynUnexpectedTopLevel, diag.SevError, p.peek().Span,
			"expected 'class', 'interface' or 'delegate' at top level")
		return nil, false
	}
}

// resyncTop recovers after a top-level error: skip until a declaration
// starter, a ';' (consumed), or EOF.
func (p *Parser) resyncTop() {
	for {
		switch p.peek().Kind {
		case token.EOF, token.KwClass, token.KwInterface, token.KwDelegate:
			return
		case token.Semicolon:
			p.advance()
			return
		case token.LBrace:
			p.skipBalancedBraces()
		default:
			p.advance()
		}
	}
}
