package token

import (
	"sable/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, null, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit, KwNull, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwClass, KwInterface, KwDelegate, KwOperator, KwThis, KwGet, KwSet,
		KwVar, KwReturn, KwNull, KwTrue, KwFalse, KwPublic, KwPrivate, KwStatic,
		KwAbstract, KwVirtual, KwOverride, KwExtern, KwPartial, KwArglist:
		return true
	default:
		return false
	}
}

// IsModifier reports whether the token is a declaration modifier keyword.
func (t Token) IsModifier() bool {
	switch t.Kind {
	case KwPublic, KwPrivate, KwStatic, KwAbstract, KwVirtual, KwOverride,
		KwExtern, KwPartial:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
