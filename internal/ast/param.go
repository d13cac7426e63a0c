package ast

import (
	"sable/internal/source"
)

// Param is one formal parameter declarator. Type is nil for untyped lambda
// parameters; Name may be "_" for discards. NullCheck records whether the
// `!!` annotation was recognized in the source — a swallowed or misplaced
// annotation leaves it false.
type Param struct {
	Name          string
	NameSpan      source.Span
	Type          *TypeRef // nil for untyped lambda params and __arglist
	NullCheck     bool
	NullCheckSpan source.Span // span of the `!!` token pair when NullCheck
	Default       Expr        // nil when no default clause
	IsArglist     bool        // the `__arglist` parameter slot
	Span          source.Span
}

// TypeDisplay returns the declared type's display name, or "?" when the
// parameter has no declared type.
func (p *Param) TypeDisplay() string {
	return p.Type.Display()
}
