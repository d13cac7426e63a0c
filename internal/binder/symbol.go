package binder

import (
	"sable/internal/ast"
	"sable/internal/source"
)

// ParamSymbol is the bound form of one parameter. IsNullChecked is set once
// during binding and never mutated afterwards; a rejected annotation binds as
// not checked.
type ParamSymbol struct {
	Name          string
	TypeName      string // declared type display, "?" when untyped
	NameSpan      source.Span
	NullCheckSpan source.Span
	IsNullChecked bool
	HasDefault    bool
	Default       ast.Expr
}

// MemberSymbol groups the parameters of one parameter-bearing declaration
// together with the context they were bound in.
type MemberSymbol struct {
	Name    string // member name, "" for lambdas and anonymous methods
	Context ContextKind
	HasBody bool
	Params  []*ParamSymbol
}

// Result is the output of binding one file.
type Result struct {
	Members []*MemberSymbol
}

// NullCheckedParams returns every bound parameter whose annotation survived
// binding, across all members.
func (r *Result) NullCheckedParams() []*ParamSymbol {
	var out []*ParamSymbol
	for _, m := range r.Members {
		for _, p := range m.Params {
			if p.IsNullChecked {
				out = append(out, p)
			}
		}
	}
	return out
}
