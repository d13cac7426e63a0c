package lexer

import (
	"sable/internal/token"
)

// scanString scans a double-quoted string literal with \-escapes.
// Token.Text keeps the raw source slice including quotes; unescaping happens
// at constant folding.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		lx.cursor.Bump()
		if b == '"' {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report("UnterminatedString", sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
