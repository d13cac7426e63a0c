package binder_test

import (
	"testing"

	"sable/internal/binder"
)

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		name    string
		kind    binder.ContextKind
		hasBody bool
		want    binder.Classification
	}{
		{"method with body", binder.ContextMethodBody, true, binder.Implementation},
		{"method without body", binder.ContextMethodNoBody, false, binder.SignatureOnly},
		{"constructor", binder.ContextConstructor, true, binder.Implementation},
		{"operator", binder.ContextOperator, true, binder.Implementation},
		{"indexer accessor with body", binder.ContextAccessorBody, true, binder.Implementation},
		{"auto indexer", binder.ContextAccessorNoBody, false, binder.SignatureOnly},
		{"lambda", binder.ContextLambda, true, binder.Implementation},
		{"anonymous method", binder.ContextAnonymousMethod, true, binder.Implementation},
		{"delegate", binder.ContextDelegate, false, binder.SignatureOnly},
		{"abstract method", binder.ContextAbstractMethod, false, binder.SignatureOnly},
		{"extern method", binder.ContextExternMethod, false, binder.SignatureOnly},
		{"interface method without body", binder.ContextInterfaceMethod, false, binder.SignatureOnly},
		{"interface method with default body", binder.ContextInterfaceMethod, true, binder.Implementation},
		{"partial declaring", binder.ContextPartialDeclaring, false, binder.SignatureOnly},
		{"partial implementing", binder.ContextPartialImplementing, true, binder.Implementation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := binder.Classify(tt.kind, tt.hasBody); got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.kind, tt.hasBody, got, tt.want)
			}
		})
	}
}

// Only interface methods look at hasBody; every other kind keeps its verdict
// under both values.
func TestClassifyIgnoresBodyExceptInterfaces(t *testing.T) {
	kinds := []binder.ContextKind{
		binder.ContextMethodBody,
		binder.ContextMethodNoBody,
		binder.ContextConstructor,
		binder.ContextOperator,
		binder.ContextAccessorBody,
		binder.ContextAccessorNoBody,
		binder.ContextLambda,
		binder.ContextAnonymousMethod,
		binder.ContextDelegate,
		binder.ContextAbstractMethod,
		binder.ContextExternMethod,
		binder.ContextPartialDeclaring,
		binder.ContextPartialImplementing,
	}
	for _, kind := range kinds {
		if binder.Classify(kind, true) != binder.Classify(kind, false) {
			t.Errorf("%v: verdict depends on hasBody", kind)
		}
	}
	if binder.Classify(binder.ContextInterfaceMethod, true) == binder.Classify(binder.ContextInterfaceMethod, false) {
		t.Error("interface methods must flip on hasBody")
	}
}
