package lexer

import (
	"sable/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token:
//   - runs of ' '/'\t' coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline
//   - //... up to \n -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (no nesting; unterminated is reported
//     and truncated at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		// lone \r (normalizeCRLF keeps them) is treated as space
		if b == '\r' {
			lx.cursor.Bump()
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '/' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
				lx.pushTrivia(token.TriviaLineComment, start)
				continue
			}
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '*' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed := false
				for !lx.cursor.EOF() {
					if lx.cursor.Eat('*') {
						if lx.cursor.Eat('/') {
							closed = true
							break
						}
						continue
					}
					lx.cursor.Bump()
				}
				if !closed {
					lx.report("UnterminatedBlockComment", lx.cursor.SpanFrom(start), "unterminated block comment")
				}
				lx.pushTrivia(token.TriviaBlockComment, start)
				continue
			}
		}

		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
