package ast

import (
	"sable/internal/source"
)

// Expr is an expression node.
type Expr interface {
	ExprSpan() source.Span
	exprNode()
}

// LitKind classifies literal expressions.
type LitKind uint8

const (
	LitNull LitKind = iota
	LitInt
	LitString
	LitBool
)

// Literal is a null, integer, string, or boolean literal.
// Text is the raw source slice (including quotes for strings).
type Literal struct {
	Kind LitKind
	Text string
	Span source.Span
}

// IdentExpr is a (possibly dotted) name used as an expression.
type IdentExpr struct {
	Name string
	Span source.Span
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	X    Expr
	Span source.Span
}

// UnaryExpr is a prefix operator expression ('-' or '!').
type UnaryExpr struct {
	Op   string
	X    Expr
	Span source.Span
}

// SuppressExpr is a postfix '!' applied to an expression (null suppression at
// a use site). It is unrelated to the `!!` parameter annotation and binds no
// parameter flag.
type SuppressExpr struct {
	X    Expr
	Span source.Span
}

// BinaryExpr is a two-operand infix expression.
type BinaryExpr struct {
	Op   string
	X, Y Expr
	Span source.Span
}

// AssignExpr is `target = value`.
type AssignExpr struct {
	Target Expr
	Value  Expr
	Span   source.Span
}

// CallExpr is `callee(args...)`. Arglist is true for `__arglist(...)` at a
// call site.
type CallExpr struct {
	Callee  Expr
	Args    []Expr
	Arglist bool
	Span    source.Span
}

// SimpleLambda is `x => body` or `x!! => body`.
type SimpleLambda struct {
	Param *Param
	Body  LambdaBody
	Span  source.Span
}

// ParenLambda is `(params) => body`, typed or untyped.
type ParenLambda struct {
	Params []*Param
	Body   LambdaBody
	Span   source.Span
}

// AnonymousMethod is `delegate (params) { ... }`; Params is nil when the
// parameter list is omitted entirely.
type AnonymousMethod struct {
	Params    []*Param
	HasParams bool
	Body      *Block
	Span      source.Span
}

// LambdaBody is either an expression or a block.
type LambdaBody struct {
	Expr  Expr
	Block *Block
}

func (e *Literal) ExprSpan() source.Span         { return e.Span }
func (e *IdentExpr) ExprSpan() source.Span       { return e.Span }
func (e *ParenExpr) ExprSpan() source.Span       { return e.Span }
func (e *UnaryExpr) ExprSpan() source.Span       { return e.Span }
func (e *SuppressExpr) ExprSpan() source.Span    { return e.Span }
func (e *BinaryExpr) ExprSpan() source.Span      { return e.Span }
func (e *AssignExpr) ExprSpan() source.Span      { return e.Span }
func (e *CallExpr) ExprSpan() source.Span        { return e.Span }
func (e *SimpleLambda) ExprSpan() source.Span    { return e.Span }
func (e *ParenLambda) ExprSpan() source.Span     { return e.Span }
func (e *AnonymousMethod) ExprSpan() source.Span { return e.Span }

func (*Literal) exprNode()         {}
func (*IdentExpr) exprNode()       {}
func (*ParenExpr) exprNode()       {}
func (*UnaryExpr) exprNode()       {}
func (*SuppressExpr) exprNode()    {}
func (*BinaryExpr) exprNode()      {}
func (*AssignExpr) exprNode()      {}
func (*CallExpr) exprNode()        {}
func (*SimpleLambda) exprNode()    {}
func (*ParenLambda) exprNode()     {}
func (*AnonymousMethod) exprNode() {}
