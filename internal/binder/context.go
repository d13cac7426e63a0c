package binder

// ContextKind identifies the declaration position a parameter list appears in.
// The classifier below is the single source of truth for whether `!!` is legal
// in that position.
type ContextKind uint8

const (
	ContextMethodBody ContextKind = iota
	ContextMethodNoBody
	ContextConstructor
	ContextOperator
	ContextAccessorBody
	ContextAccessorNoBody
	ContextLambda
	ContextAnonymousMethod
	ContextDelegate
	ContextAbstractMethod
	ContextExternMethod
	ContextInterfaceMethod
	ContextPartialDeclaring
	ContextPartialImplementing
)

func (k ContextKind) String() string {
	switch k {
	case ContextMethodBody:
		return "method"
	case ContextMethodNoBody:
		return "bodiless method"
	case ContextConstructor:
		return "constructor"
	case ContextOperator:
		return "operator"
	case ContextAccessorBody:
		return "indexer accessor"
	case ContextAccessorNoBody:
		return "auto indexer"
	case ContextLambda:
		return "lambda"
	case ContextAnonymousMethod:
		return "anonymous method"
	case ContextDelegate:
		return "delegate"
	case ContextAbstractMethod:
		return "abstract method"
	case ContextExternMethod:
		return "extern method"
	case ContextInterfaceMethod:
		return "interface method"
	case ContextPartialDeclaring:
		return "partial method declaration"
	case ContextPartialImplementing:
		return "partial method implementation"
	}
	return "unknown"
}

// Classification is the legality verdict for `!!` in a given context.
type Classification uint8

const (
	// Implementation: the declaration carries the body that would run the
	// check, so the annotation is legal.
	Implementation Classification = iota
	// SignatureOnly: the declaration is a bare signature; the annotation has
	// no body to run in and is rejected.
	SignatureOnly
)

// Classify maps a context to its legality verdict. hasBody is consulted only
// for interface methods, where a default body turns the signature into an
// implementation; every other kind has a fixed verdict regardless of how the
// member was written.
func Classify(kind ContextKind, hasBody bool) Classification {
	switch kind {
	case ContextMethodBody,
		ContextConstructor,
		ContextOperator,
		ContextAccessorBody,
		ContextLambda,
		ContextAnonymousMethod,
		ContextPartialImplementing:
		return Implementation
	case ContextMethodNoBody,
		ContextAccessorNoBody,
		ContextDelegate,
		ContextAbstractMethod,
		ContextExternMethod,
		ContextPartialDeclaring:
		return SignatureOnly
	case ContextInterfaceMethod:
		if hasBody {
			return Implementation
		}
		return SignatureOnly
	}
	return SignatureOnly
}
