package driver

import (
	"fmt"

	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
)

// TokenizeResult carries the token stream for one file along with any lexical
// diagnostics.
type TokenizeResult struct {
	Tokens  []token.Token
	Bag     *diag.Bag
	FileSet *source.FileSet
	FileID  source.FileID
}

// Tokenize lexes one file to EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", path, err)
	}

	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	adapter := lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: adapter.Reporter()})

	toks := make([]token.Token, 0, 256)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		Tokens:  toks,
		Bag:     bag,
		FileSet: fs,
		FileID:  fileID,
	}, nil
}
