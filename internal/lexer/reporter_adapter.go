package lexer

import (
	"sable/internal/diag"
	"sable/internal/source"
)

// ReporterAdapter bridges the lexer's string-keyed reporter onto a diag.Bag.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a lexer.Reporter that maps lexical error kinds to diag codes.
func (r *ReporterAdapter) Reporter() Reporter {
	return bagLexReporter{bag: r.Bag}
}

type bagLexReporter struct {
	bag *diag.Bag
}

func (r bagLexReporter) Report(kind string, span source.Span, msg string) {
	if r.bag == nil {
		return
	}
	code := diag.LexInfo
	switch kind {
	case "UnknownChar":
		code = diag.LexUnknownChar
	case "UnterminatedString":
		code = diag.LexUnterminatedString
	case "UnterminatedBlockComment":
		code = diag.LexUnterminatedBlockComment
	case "BadNumber":
		code = diag.LexBadNumber
	}
	r.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
