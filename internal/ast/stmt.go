package ast

import (
	"sable/internal/source"
)

// Stmt is a statement node.
type Stmt interface {
	StmtSpan() source.Span
	stmtNode()
}

// Block is `{ stmts }`.
type Block struct {
	Stmts []Stmt
	Span  source.Span
}

// LocalVarStmt is `var name = init;`.
type LocalVarStmt struct {
	Name string
	Init Expr
	Span source.Span
}

// ReturnStmt is `return [expr];`.
type ReturnStmt struct {
	Value Expr // nil for bare return
	Span  source.Span
}

// ExprStmt is `expr;`.
type ExprStmt struct {
	X    Expr
	Span source.Span
}

func (s *Block) StmtSpan() source.Span        { return s.Span }
func (s *LocalVarStmt) StmtSpan() source.Span { return s.Span }
func (s *ReturnStmt) StmtSpan() source.Span   { return s.Span }
func (s *ExprStmt) StmtSpan() source.Span     { return s.Span }

func (*Block) stmtNode()        {}
func (*LocalVarStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()     {}
