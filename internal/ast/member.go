package ast

import (
	"sable/internal/source"
)

// Member is a class or interface member declaration.
type Member interface {
	MemberSpan() source.Span
	memberNode()
}

// MethodDecl is an ordinary, abstract, extern, partial, or interface method.
// Body is nil when the declaration ends with ';'.
type MethodDecl struct {
	Mods   ModifierList
	Return *TypeRef
	Name   string
	Params []*Param
	Body   *Block
	Span   source.Span
}

// CtorDecl is an instance constructor.
type CtorDecl struct {
	Mods   ModifierList
	Name   string // always the enclosing type's name
	Params []*Param
	Body   *Block
	Span   source.Span
}

// OperatorDecl is a user-defined operator.
type OperatorDecl struct {
	Mods   ModifierList
	Return *TypeRef
	Op     string // operator token text, e.g. "+"
	Params []*Param
	Body   *Block
	Span   source.Span
}

// IndexerDecl is `Type this[params] { accessors }`.
type IndexerDecl struct {
	Mods      ModifierList
	Return    *TypeRef
	Params    []*Param
	Accessors []*Accessor
	Span      source.Span
}

// PropertyDecl is a property with accessors (auto or bodied).
type PropertyDecl struct {
	Mods      ModifierList
	Type      *TypeRef
	Name      string
	Accessors []*Accessor
	Span      source.Span
}

// FieldDecl is a field declarator, possibly with an initializer.
type FieldDecl struct {
	Mods ModifierList
	Type *TypeRef
	Name string
	Init Expr
	Span source.Span
}

// AccessorKind distinguishes get from set.
type AccessorKind uint8

const (
	AccessorGet AccessorKind = iota
	AccessorSet
)

// Accessor is a get/set accessor; Body is nil for the auto form `get;`.
type Accessor struct {
	Kind AccessorKind
	Body *Block
	Span source.Span
}

// HasBody reports whether any accessor in the list declares a body.
func AnyAccessorBody(accessors []*Accessor) bool {
	for _, a := range accessors {
		if a.Body != nil {
			return true
		}
	}
	return false
}

func (m *MethodDecl) MemberSpan() source.Span   { return m.Span }
func (m *CtorDecl) MemberSpan() source.Span     { return m.Span }
func (m *OperatorDecl) MemberSpan() source.Span { return m.Span }
func (m *IndexerDecl) MemberSpan() source.Span  { return m.Span }
func (m *PropertyDecl) MemberSpan() source.Span { return m.Span }
func (m *FieldDecl) MemberSpan() source.Span    { return m.Span }
func (m *DelegateDecl) MemberSpan() source.Span { return m.Span }

func (*MethodDecl) memberNode()   {}
func (*CtorDecl) memberNode()     {}
func (*OperatorDecl) memberNode() {}
func (*IndexerDecl) memberNode()  {}
func (*PropertyDecl) memberNode() {}
func (*FieldDecl) memberNode()    {}
func (*DelegateDecl) memberNode() {}
