package binder

import (
	"strconv"

	"sable/internal/ast"
)

// ValueKind classifies folded constant values.
type ValueKind uint8

const (
	ValUnknown ValueKind = iota
	ValNull
	ValInt
	ValString
	ValBool
)

// Value is a folded compile-time constant. Non-constant expressions fold to
// ValUnknown rather than an error; only known-null results matter downstream.
type Value struct {
	Kind ValueKind
	Int  int64
	Str  string
	Bool bool
}

// Fold evaluates expr as far as constant folding allows. Parentheses and
// unary minus fold through; anything involving names or calls is unknown.
func Fold(expr ast.Expr) Value {
	switch e := expr.(type) {
	case *ast.Literal:
		return foldLiteral(e)
	case *ast.ParenExpr:
		return Fold(e.X)
	case *ast.UnaryExpr:
		if e.Op != "-" {
			return Value{}
		}
		inner := Fold(e.X)
		if inner.Kind != ValInt {
			return Value{}
		}
		return Value{Kind: ValInt, Int: -inner.Int}
	default:
		return Value{}
	}
}

func foldLiteral(lit *ast.Literal) Value {
	switch lit.Kind {
	case ast.LitNull:
		return Value{Kind: ValNull}
	case ast.LitInt:
		n, err := strconv.ParseInt(lit.Text, 10, 64)
		if err != nil {
			return Value{}
		}
		return Value{Kind: ValInt, Int: n}
	case ast.LitString:
		return Value{Kind: ValString, Str: unquote(lit.Text)}
	case ast.LitBool:
		return Value{Kind: ValBool, Bool: lit.Text == "true"}
	}
	return Value{}
}

// unquote strips the surrounding quotes and resolves the simple escapes the
// lexer admits.
func unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			out = append(out, c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '\\':
			out = append(out, '\\')
		case '"':
			out = append(out, '"')
		case '0':
			out = append(out, 0)
		default:
			out = append(out, body[i])
		}
	}
	return string(out)
}
