package lexer

import (
	"sable/internal/token"
)

// Greedy scan: two-byte operators first, then single-byte. Maximal munch is
// what makes the character sequence `!!=` lex as `!` `!=` rather than
// `!!` `=` — the parameter-list parser relies on that exact split to report
// the missing-space error for null-check annotations.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try2('=', '>'):
		return emit(token.FatArrow)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case ',':
		return emit(token.Comma)
	case ';':
		return emit(token.Semicolon)
	case '.':
		return emit(token.Dot)
	case '?':
		return emit(token.Question)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report("UnknownChar", sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}
