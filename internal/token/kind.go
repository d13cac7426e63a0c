package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Underscore represents a lone '_' (a discard).
	Underscore

	// IntLit represents an integer literal.
	IntLit
	// StringLit represents a double-quoted string literal.
	StringLit

	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwDelegate represents the 'delegate' keyword.
	KwDelegate // delegate
	// KwOperator represents the 'operator' keyword.
	KwOperator // operator
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwGet represents the 'get' accessor keyword.
	KwGet // get
	// KwSet represents the 'set' accessor keyword.
	KwSet // set
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwNull represents the 'null' literal keyword.
	KwNull // null
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwPublic represents the 'public' modifier.
	KwPublic // public
	// KwPrivate represents the 'private' modifier.
	KwPrivate // private
	// KwStatic represents the 'static' modifier.
	KwStatic // static
	// KwAbstract represents the 'abstract' modifier.
	KwAbstract // abstract
	// KwVirtual represents the 'virtual' modifier.
	KwVirtual // virtual
	// KwOverride represents the 'override' modifier.
	KwOverride // override
	// KwExtern represents the 'extern' modifier.
	KwExtern // extern
	// KwPartial represents the 'partial' modifier.
	KwPartial // partial
	// KwArglist represents the '__arglist' keyword.
	KwArglist // __arglist

	// Punctuation and operators.

	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Comma     // ,
	Semicolon // ;
	Dot       // .
	Question  // ?
	Assign    // =
	FatArrow  // =>
	EqEq      // ==
	Bang      // !
	BangEq    // !=
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Lt        // <
	Gt        // >
)

// String returns a stable name for the kind, used in dumps and tests.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Underscore:
		return "Underscore"
	case IntLit:
		return "IntLit"
	case StringLit:
		return "StringLit"
	case KwClass:
		return "class"
	case KwInterface:
		return "interface"
	case KwDelegate:
		return "delegate"
	case KwOperator:
		return "operator"
	case KwThis:
		return "this"
	case KwGet:
		return "get"
	case KwSet:
		return "set"
	case KwVar:
		return "var"
	case KwReturn:
		return "return"
	case KwNull:
		return "null"
	case KwTrue:
		return "true"
	case KwFalse:
		return "false"
	case KwPublic:
		return "public"
	case KwPrivate:
		return "private"
	case KwStatic:
		return "static"
	case KwAbstract:
		return "abstract"
	case KwVirtual:
		return "virtual"
	case KwOverride:
		return "override"
	case KwExtern:
		return "extern"
	case KwPartial:
		return "partial"
	case KwArglist:
		return "__arglist"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Comma:
		return ","
	case Semicolon:
		return ";"
	case Dot:
		return "."
	case Question:
		return "?"
	case Assign:
		return "="
	case FatArrow:
		return "=>"
	case EqEq:
		return "=="
	case Bang:
		return "!"
	case BangEq:
		return "!="
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Lt:
		return "<"
	case Gt:
		return ">"
	default:
		return "Unknown"
	}
}
