// Package binder resolves parameter declarations to symbols and enforces the
// legality of the `!!` null-check annotation per declaration context.
package binder

import (
	"fmt"

	"sable/internal/ast"
	"sable/internal/diag"
)

type binder struct {
	reporter diag.Reporter
	result   *Result
}

// BindFile binds every parameter-bearing declaration in file, including
// lambdas and anonymous methods found inside bodies and initializers.
// Diagnostics go to r. Binding is pure over the AST: binding the same file
// twice yields fresh symbols and the same diagnostics.
func BindFile(file *ast.File, r diag.Reporter) *Result {
	b := &binder{reporter: r, result: &Result{}}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.ClassDecl:
			b.bindTypeMembers(d.Members, false)
		case *ast.InterfaceDecl:
			b.bindTypeMembers(d.Members, true)
		case *ast.DelegateDecl:
			b.bindMember(d.Name, ContextDelegate, false, d.Params)
		}
	}
	return b.result
}

func (b *binder) bindTypeMembers(members []ast.Member, inInterface bool) {
	for _, member := range members {
		switch m := member.(type) {
		case *ast.MethodDecl:
			b.bindMethod(m, inInterface)
		case *ast.CtorDecl:
			b.bindMember(m.Name, ContextConstructor, m.Body != nil, m.Params)
			b.bindBlock(m.Body)
		case *ast.OperatorDecl:
			b.bindMember("operator "+m.Op, ContextOperator, m.Body != nil, m.Params)
			b.bindBlock(m.Body)
		case *ast.IndexerDecl:
			kind := ContextAccessorNoBody
			if ast.AnyAccessorBody(m.Accessors) {
				kind = ContextAccessorBody
			}
			b.bindMember("this[]", kind, kind == ContextAccessorBody, m.Params)
			for _, acc := range m.Accessors {
				b.bindBlock(acc.Body)
			}
		case *ast.PropertyDecl:
			for _, acc := range m.Accessors {
				b.bindBlock(acc.Body)
			}
		case *ast.FieldDecl:
			b.bindExpr(m.Init)
		case *ast.DelegateDecl:
			b.bindMember(m.Name, ContextDelegate, false, m.Params)
		}
	}
}

func (b *binder) bindMethod(m *ast.MethodDecl, inInterface bool) {
	hasBody := m.Body != nil
	var kind ContextKind
	switch {
	case inInterface:
		kind = ContextInterfaceMethod
	case m.Mods.Flags.Has(ast.ModAbstract):
		kind = ContextAbstractMethod
	case m.Mods.Flags.Has(ast.ModExtern):
		kind = ContextExternMethod
	case m.Mods.Flags.Has(ast.ModPartial):
		if hasBody {
			kind = ContextPartialImplementing
		} else {
			kind = ContextPartialDeclaring
		}
	case hasBody:
		kind = ContextMethodBody
	default:
		kind = ContextMethodNoBody
	}
	b.bindMember(m.Name, kind, hasBody, m.Params)
	b.bindBlock(m.Body)
}

// bindMember builds the member symbol and runs the legality check on each
// annotated parameter. A rejected annotation binds as not null-checked so
// downstream phases never see the flag.
func (b *binder) bindMember(name string, kind ContextKind, hasBody bool, params []*ast.Param) *MemberSymbol {
	sym := &MemberSymbol{
		Name:    name,
		Context: kind,
		HasBody: hasBody,
		Params:  make([]*ParamSymbol, 0, len(params)),
	}
	verdict := Classify(kind, hasBody)
	for _, p := range params {
		ps := &ParamSymbol{
			Name:          p.Name,
			TypeName:      p.TypeDisplay(),
			NameSpan:      p.NameSpan,
			NullCheckSpan: p.NullCheckSpan,
			HasDefault:    p.Default != nil,
			Default:       p.Default,
		}
		if p.NullCheck {
			if verdict == SignatureOnly {
				b.reporter.Report(diag.BindNullCheckSignatureOnly, diag.SevError, p.NullCheckSpan,
					fmt.Sprintf("parameter '%s' cannot be null-checked in a %s, which has no body to run the check", p.Name, kind),
					nil)
			} else {
				ps.IsNullChecked = true
			}
		}
		sym.Params = append(sym.Params, ps)
		b.bindExpr(p.Default)
	}
	b.result.Members = append(b.result.Members, sym)
	return sym
}

func (b *binder) bindBlock(block *ast.Block) {
	if block == nil {
		return
	}
	for _, stmt := range block.Stmts {
		b.bindStmt(stmt)
	}
}

func (b *binder) bindStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		b.bindBlock(s)
	case *ast.LocalVarStmt:
		b.bindExpr(s.Init)
	case *ast.ReturnStmt:
		b.bindExpr(s.Value)
	case *ast.ExprStmt:
		b.bindExpr(s.X)
	}
}

// bindExpr descends into an expression binding every lambda and anonymous
// method it contains. Each closes over its own parameter list; nesting depth
// is unbounded.
func (b *binder) bindExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case nil:
	case *ast.ParenExpr:
		b.bindExpr(e.X)
	case *ast.UnaryExpr:
		b.bindExpr(e.X)
	case *ast.SuppressExpr:
		b.bindExpr(e.X)
	case *ast.BinaryExpr:
		b.bindExpr(e.X)
		b.bindExpr(e.Y)
	case *ast.AssignExpr:
		b.bindExpr(e.Target)
		b.bindExpr(e.Value)
	case *ast.CallExpr:
		b.bindExpr(e.Callee)
		for _, arg := range e.Args {
			b.bindExpr(arg)
		}
	case *ast.SimpleLambda:
		b.bindMember("", ContextLambda, true, []*ast.Param{e.Param})
		b.bindLambdaBody(e.Body)
	case *ast.ParenLambda:
		b.bindMember("", ContextLambda, true, e.Params)
		b.bindLambdaBody(e.Body)
	case *ast.AnonymousMethod:
		b.bindMember("", ContextAnonymousMethod, true, e.Params)
		b.bindBlock(e.Body)
	}
}

func (b *binder) bindLambdaBody(body ast.LambdaBody) {
	if body.Block != nil {
		b.bindBlock(body.Block)
		return
	}
	b.bindExpr(body.Expr)
}
