package ast

import (
	"sable/internal/source"
)

// TypeRef is a (possibly dotted, possibly nullable) type reference.
type TypeRef struct {
	Name     string // dotted name as written, e.g. "System.String"
	Nullable bool   // trailing '?'
	Span     source.Span
}

// Display returns the type as the user wrote it, for diagnostics.
func (t *TypeRef) Display() string {
	if t == nil {
		return "?"
	}
	if t.Nullable {
		return t.Name + "?"
	}
	return t.Name
}
