package binder_test

import (
	"testing"

	"sable/internal/ast"
	"sable/internal/binder"
)

func TestFoldLiterals(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want binder.Value
	}{
		{"null", &ast.Literal{Kind: ast.LitNull, Text: "null"}, binder.Value{Kind: binder.ValNull}},
		{"int", &ast.Literal{Kind: ast.LitInt, Text: "42"}, binder.Value{Kind: binder.ValInt, Int: 42}},
		{"string", &ast.Literal{Kind: ast.LitString, Text: `"hi"`}, binder.Value{Kind: binder.ValString, Str: "hi"}},
		{"true", &ast.Literal{Kind: ast.LitBool, Text: "true"}, binder.Value{Kind: binder.ValBool, Bool: true}},
		{"false", &ast.Literal{Kind: ast.LitBool, Text: "false"}, binder.Value{Kind: binder.ValBool, Bool: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := binder.Fold(tt.expr); got != tt.want {
				t.Errorf("Fold() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFoldParens(t *testing.T) {
	expr := &ast.ParenExpr{X: &ast.ParenExpr{X: &ast.Literal{Kind: ast.LitNull, Text: "null"}}}
	if got := binder.Fold(expr); got.Kind != binder.ValNull {
		t.Errorf("expected ValNull through parens, got %+v", got)
	}
}

func TestFoldNegation(t *testing.T) {
	expr := &ast.UnaryExpr{Op: "-", X: &ast.Literal{Kind: ast.LitInt, Text: "7"}}
	got := binder.Fold(expr)
	if got.Kind != binder.ValInt || got.Int != -7 {
		t.Errorf("expected -7, got %+v", got)
	}
}

func TestFoldStringEscapes(t *testing.T) {
	expr := &ast.Literal{Kind: ast.LitString, Text: `"a\n\"b\""`}
	got := binder.Fold(expr)
	if got.Str != "a\n\"b\"" {
		t.Errorf("unexpected unescape: %q", got.Str)
	}
}

func TestFoldUnknown(t *testing.T) {
	exprs := []ast.Expr{
		&ast.IdentExpr{Name: "Config.fallback"},
		&ast.CallExpr{Callee: &ast.IdentExpr{Name: "f"}},
		&ast.BinaryExpr{Op: "+", X: &ast.Literal{Kind: ast.LitInt, Text: "1"}, Y: &ast.Literal{Kind: ast.LitInt, Text: "2"}},
		&ast.UnaryExpr{Op: "-", X: &ast.IdentExpr{Name: "x"}},
	}
	for _, expr := range exprs {
		if got := binder.Fold(expr); got.Kind != binder.ValUnknown {
			t.Errorf("expected ValUnknown for %T, got %+v", expr, got)
		}
	}
}
