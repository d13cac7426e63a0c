package ast

import (
	"sable/internal/source"
)

// Decl is a top-level declaration.
type Decl interface {
	DeclSpan() source.Span
	declNode()
}

// ClassDecl is a class with its members.
type ClassDecl struct {
	Mods    ModifierList
	Name    string
	Members []Member
	Span    source.Span
}

// InterfaceDecl is an interface; members may carry default bodies.
type InterfaceDecl struct {
	Mods    ModifierList
	Name    string
	Members []Member
	Span    source.Span
}

// DelegateDecl is a delegate type declaration, top-level or nested.
type DelegateDecl struct {
	Mods   ModifierList
	Return *TypeRef
	Name   string
	Params []*Param
	Span   source.Span
}

func (d *ClassDecl) DeclSpan() source.Span     { return d.Span }
func (d *InterfaceDecl) DeclSpan() source.Span { return d.Span }
func (d *DelegateDecl) DeclSpan() source.Span  { return d.Span }

func (*ClassDecl) declNode()     {}
func (*InterfaceDecl) declNode() {}
func (*DelegateDecl) declNode()  {}
