package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
)

func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sb", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	adapter := lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: adapter.Reporter()})
	return lx, bag
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %d",
			len(expected), len(tokens), input, tokensToString(tokens), bag.Len())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"foo", token.Ident, "foo"},
		{"_bar", token.Ident, "_bar"},
		{"x123", token.Ident, "x123"},
		{"camelCase", token.Ident, "camelCase"},
		{"UPPER", token.Ident, "UPPER"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.text)
		})
	}
}

func TestUnderscoreSingle(t *testing.T) {
	expectSingleToken(t, "_", token.Underscore, "_")
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"class", token.KwClass},
		{"interface", token.KwInterface},
		{"delegate", token.KwDelegate},
		{"operator", token.KwOperator},
		{"this", token.KwThis},
		{"get", token.KwGet},
		{"set", token.KwSet},
		{"var", token.KwVar},
		{"return", token.KwReturn},
		{"null", token.KwNull},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"public", token.KwPublic},
		{"private", token.KwPrivate},
		{"static", token.KwStatic},
		{"abstract", token.KwAbstract},
		{"virtual", token.KwVirtual},
		{"override", token.KwOverride},
		{"extern", token.KwExtern},
		{"partial", token.KwPartial},
		{"__arglist", token.KwArglist},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestKeywordsCaseSensitive(t *testing.T) {
	expectSingleToken(t, "Class", token.Ident, "Class")
	expectSingleToken(t, "NULL", token.Ident, "NULL")
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"=>", []token.Kind{token.FatArrow}},
		{"==", []token.Kind{token.EqEq}},
		{"!=", []token.Kind{token.BangEq}},
		{"!", []token.Kind{token.Bang}},
		{"=", []token.Kind{token.Assign}},
		{"?", []token.Kind{token.Question}},
		{"+ - * /", []token.Kind{token.Plus, token.Minus, token.Star, token.Slash}},
		{"( ) { } [ ]", []token.Kind{token.LParen, token.RParen, token.LBrace, token.RBrace, token.LBracket, token.RBracket}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

// Maximal munch: the lexer never produces a combined `!!` token; the parser
// assembles the annotation from two adjacent Bang tokens.
func TestBangSequences(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"!!", []token.Kind{token.Bang, token.Bang}},
		{"!!!", []token.Kind{token.Bang, token.Bang, token.Bang}},
		{"!!=", []token.Kind{token.Bang, token.BangEq}},
		{"!! =", []token.Kind{token.Bang, token.Bang, token.Assign}},
		{"!!==", []token.Kind{token.Bang, token.BangEq, token.Assign}},
		{"!= =", []token.Kind{token.BangEq, token.Assign}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestBangAdjacency(t *testing.T) {
	lx, _ := makeTestLexer("x!! y! !")
	toks := collectAllTokens(lx)

	// x !! are adjacent
	if !toks[1].Span.Adjacent(toks[2].Span) {
		t.Errorf("expected adjacent bangs in %q", "x!!")
	}
	// y! and lone ! are separated by a space
	if toks[4].Span.Adjacent(toks[5].Span) {
		t.Errorf("expected non-adjacent bangs in %q", "y! !")
	}
}

func TestParamDeclTokens(t *testing.T) {
	expectTokens(t, "string name!! = null", []token.Kind{
		token.Ident, token.Ident, token.Bang, token.Bang, token.Assign, token.KwNull,
	})
	expectTokens(t, "string name!!= null", []token.Kind{
		token.Ident, token.Ident, token.Bang, token.BangEq, token.KwNull,
	})
}

func TestNumbers(t *testing.T) {
	expectSingleToken(t, "0", token.IntLit, "0")
	expectSingleToken(t, "12345", token.IntLit, "12345")
}

func TestBadNumber(t *testing.T) {
	lx, bag := makeTestLexer("123abc")
	collectAllTokens(lx)
	if bag.CountBy(diag.LexBadNumber) != 1 {
		t.Errorf("expected one LexBadNumber, got %d diagnostics", bag.Len())
	}
}

func TestStrings(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, `"hello"`)
	expectSingleToken(t, `"with \"escape\""`, token.StringLit, `"with \"escape\""`)
	expectSingleToken(t, `""`, token.StringLit, `""`)
}

func TestUnterminatedString(t *testing.T) {
	lx, bag := makeTestLexer(`"oops`)
	collectAllTokens(lx)
	if bag.CountBy(diag.LexUnterminatedString) != 1 {
		t.Errorf("expected one LexUnterminatedString, got %d diagnostics", bag.Len())
	}
}

func TestComments(t *testing.T) {
	expectTokens(t, "a // comment\nb", []token.Kind{token.Ident, token.Ident})
	expectTokens(t, "a /* block */ b", []token.Kind{token.Ident, token.Ident})
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, bag := makeTestLexer("a /* never closed")
	collectAllTokens(lx)
	if bag.CountBy(diag.LexUnterminatedBlockComment) != 1 {
		t.Errorf("expected one LexUnterminatedBlockComment, got %d diagnostics", bag.Len())
	}
}

func TestLeadingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("  // doc\n  x")
	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
	var kinds []token.TriviaKind
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline, token.TriviaSpace}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d trivia, got %v", len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("trivia %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}
}

func TestUnknownChar(t *testing.T) {
	lx, bag := makeTestLexer("a @ b")
	collectAllTokens(lx)
	if bag.CountBy(diag.LexUnknownChar) != 1 {
		t.Errorf("expected one LexUnknownChar, got %d diagnostics", bag.Len())
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("x")
	lx.Next()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
}
