package token

var keywords = map[string]Kind{
	"class":     KwClass,
	"interface": KwInterface,
	"delegate":  KwDelegate,
	"operator":  KwOperator,
	"this":      KwThis,
	"get":       KwGet,
	"set":       KwSet,
	"var":       KwVar,
	"return":    KwReturn,
	"null":      KwNull,
	"true":      KwTrue,
	"false":     KwFalse,
	"public":    KwPublic,
	"private":   KwPrivate,
	"static":    KwStatic,
	"abstract":  KwAbstract,
	"virtual":   KwVirtual,
	"override":  KwOverride,
	"extern":    KwExtern,
	"partial":   KwPartial,
	"__arglist": KwArglist,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
