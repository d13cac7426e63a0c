package binder_test

import (
	"strings"
	"testing"

	"sable/internal/ast"
	"sable/internal/binder"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/source"
)

func parseFile(t *testing.T, input string) *ast.File {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sb", []byte(input))

	bag := diag.NewBag(64)
	adapter := lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: adapter.Reporter()})
	result := parser.ParseFile(fs, lx, parser.Options{
		MaxErrors: 64,
		Reporter:  diag.BagReporter{Bag: bag},
	})
	if bag.HasErrors() {
		t.Fatalf("parse errors in test input:\n%s", input)
	}
	return result.File
}

func bindSource(t *testing.T, input string) (*binder.Result, *diag.Bag) {
	t.Helper()
	file := parseFile(t, input)
	bag := diag.NewBag(64)
	result := binder.BindFile(file, diag.BagReporter{Bag: bag})
	return result, bag
}

// memberByContext returns the first bound member with the given context.
func memberByContext(t *testing.T, result *binder.Result, kind binder.ContextKind) *binder.MemberSymbol {
	t.Helper()
	for _, m := range result.Members {
		if m.Context == kind {
			return m
		}
	}
	t.Fatalf("no member bound with context %v", kind)
	return nil
}

func TestBindMethodWithBody(t *testing.T) {
	result, bag := bindSource(t, `class C { void M(string s!!) { } }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", bag.Len())
	}
	m := memberByContext(t, result, binder.ContextMethodBody)
	if !m.Params[0].IsNullChecked {
		t.Error("expected IsNullChecked on an implementation-bearing method")
	}
}

func TestBindSignatureOnlyContexts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		context binder.ContextKind
	}{
		{"abstract method", `class C { abstract void M(string s!!); }`, binder.ContextAbstractMethod},
		{"extern method", `class C { extern void M(string s!!); }`, binder.ContextExternMethod},
		{"partial declaring", `class C { partial void M(string s!!); }`, binder.ContextPartialDeclaring},
		{"interface method", `interface I { void M(string s!!); }`, binder.ContextInterfaceMethod},
		{"delegate", `delegate void H(string s!!);`, binder.ContextDelegate},
		{"auto indexer", `class C { string this[string k!!] { get; set; } }`, binder.ContextAccessorNoBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, bag := bindSource(t, tt.input)
			if got := bag.CountBy(diag.BindNullCheckSignatureOnly); got != 1 {
				t.Fatalf("expected one signature-only error, got %d (total %d)", got, bag.Len())
			}
			m := memberByContext(t, result, tt.context)
			if m.Params[0].IsNullChecked {
				t.Error("rejected annotation must bind as not null-checked")
			}
		})
	}
}

func TestBindImplementationContexts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		context binder.ContextKind
	}{
		{"constructor", `class C { C(string s!!) { } }`, binder.ContextConstructor},
		{"operator", `class C { public static C operator +(C s!!, C b) { return s; } }`, binder.ContextOperator},
		{"indexer with bodies", `class C { string this[string s!!] { get { return s; } } }`, binder.ContextAccessorBody},
		{"partial implementing", `class C { partial void M(string s!!) { } }`, binder.ContextPartialImplementing},
		{"interface default body", `interface I { void M(string s!!) { } }`, binder.ContextInterfaceMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, bag := bindSource(t, tt.input)
			if bag.CountBy(diag.BindNullCheckSignatureOnly) != 0 {
				t.Fatalf("unexpected signature-only error for %s", tt.name)
			}
			m := memberByContext(t, result, tt.context)
			if !m.Params[0].IsNullChecked {
				t.Error("expected IsNullChecked to survive binding")
			}
		})
	}
}

func TestSignatureOnlyErrorQuotesParamName(t *testing.T) {
	_, bag := bindSource(t, `class C { abstract void M(string widget!!); }`)
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	msg := bag.Items()[0].Message
	if !strings.Contains(msg, "'widget'") {
		t.Errorf("error should quote the parameter name, got %q", msg)
	}
}

func TestSignatureOnlyErrorSpansAnnotation(t *testing.T) {
	input := `class C { abstract void M(string s!!); }`
	_, bag := bindSource(t, input)
	span := bag.Items()[0].Primary
	if got := input[span.Start:span.End]; got != "!!" {
		t.Errorf("error span should cover the annotation, got %q", got)
	}
}

func TestBindLambdaParams(t *testing.T) {
	result, bag := bindSource(t, `class C { void M() { var f = (string a!!, string b) => a; } }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", bag.Len())
	}
	lam := memberByContext(t, result, binder.ContextLambda)
	if len(lam.Params) != 2 {
		t.Fatalf("expected 2 lambda params, got %d", len(lam.Params))
	}
	if !lam.Params[0].IsNullChecked || lam.Params[1].IsNullChecked {
		t.Errorf("expected [true false], got [%v %v]",
			lam.Params[0].IsNullChecked, lam.Params[1].IsNullChecked)
	}
}

func TestBindBothLambdaParamsAnnotated(t *testing.T) {
	result, _ := bindSource(t, `class C { void M() { var f = (a!!, b!!) => a; } }`)
	lam := memberByContext(t, result, binder.ContextLambda)
	if !lam.Params[0].IsNullChecked || !lam.Params[1].IsNullChecked {
		t.Error("expected both untyped lambda params null-checked")
	}
}

func TestBindDiscardLambda(t *testing.T) {
	result, bag := bindSource(t, `class C { void M() { var f = _!! => null; } }`)
	if bag.HasErrors() {
		t.Fatal("a discard binds like any other name")
	}
	lam := memberByContext(t, result, binder.ContextLambda)
	if lam.Params[0].Name != "_" || !lam.Params[0].IsNullChecked {
		t.Errorf("expected annotated discard symbol, got %+v", lam.Params[0])
	}
}

func TestBindNestedLambda(t *testing.T) {
	result, bag := bindSource(t, `class C { void M() { var f = a!! => b!! => a; } }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", bag.Len())
	}
	count := 0
	for _, m := range result.Members {
		if m.Context == binder.ContextLambda {
			count++
			if !m.Params[0].IsNullChecked {
				t.Errorf("expected nested lambda param %q null-checked", m.Params[0].Name)
			}
		}
	}
	if count != 2 {
		t.Errorf("expected 2 lambdas bound, got %d", count)
	}
}

func TestBindAnonymousMethod(t *testing.T) {
	result, bag := bindSource(t, `class C { void M() { var f = delegate (string s!!) { return s; }; } }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", bag.Len())
	}
	anon := memberByContext(t, result, binder.ContextAnonymousMethod)
	if !anon.Params[0].IsNullChecked {
		t.Error("expected annotated anonymous-method param")
	}
}

func TestBindLambdaInFieldInitializer(t *testing.T) {
	result, _ := bindSource(t, `class C { object f = x!! => x; }`)
	lam := memberByContext(t, result, binder.ContextLambda)
	if !lam.Params[0].IsNullChecked {
		t.Error("expected lambda inside a field initializer to be bound")
	}
}

// Binding is pure over the AST: a second bind of the same file produces fresh
// symbols and the same diagnostics.
func TestBindIdempotent(t *testing.T) {
	file := parseFile(t, `class C { abstract void M(string s!!); void N(string t!!) { } }`)

	bag1 := diag.NewBag(64)
	res1 := binder.BindFile(file, diag.BagReporter{Bag: bag1})
	bag2 := diag.NewBag(64)
	res2 := binder.BindFile(file, diag.BagReporter{Bag: bag2})

	if bag1.Len() != bag2.Len() {
		t.Fatalf("diagnostic counts differ: %d vs %d", bag1.Len(), bag2.Len())
	}
	if len(res1.Members) != len(res2.Members) {
		t.Fatalf("member counts differ: %d vs %d", len(res1.Members), len(res2.Members))
	}
	for i := range res1.Members {
		if res1.Members[i] == res2.Members[i] {
			t.Fatal("expected fresh symbols per bind")
		}
		for j := range res1.Members[i].Params {
			if res1.Members[i].Params[j].IsNullChecked != res2.Members[i].Params[j].IsNullChecked {
				t.Error("IsNullChecked differs across binds")
			}
		}
	}
}

func TestNullCheckedParams(t *testing.T) {
	result, _ := bindSource(t, `class C { void M(string a!!, string b) { } void N(string c!!) { } }`)
	checked := result.NullCheckedParams()
	if len(checked) != 2 {
		t.Fatalf("expected 2 null-checked params, got %d", len(checked))
	}
	if checked[0].Name != "a" || checked[1].Name != "c" {
		t.Errorf("unexpected params: %q, %q", checked[0].Name, checked[1].Name)
	}
}
