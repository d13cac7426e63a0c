// Package driver sequences the front-end phases over files and directories.
package driver

import (
	"fmt"

	"sable/internal/ast"
	"sable/internal/binder"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/source"
)

// CheckOptions tunes a check run.
type CheckOptions struct {
	MaxDiagnostics int // 0 selects DefaultMaxDiagnostics
}

// DefaultMaxDiagnostics caps each phase's bag when the caller does not.
const DefaultMaxDiagnostics = 256

func (o CheckOptions) limit() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// CheckResult carries the outcome of checking one file. Diagnostics are split
// by phase: DeclBag holds lexical, syntactic and binding diagnostics; EmitBag
// holds the post-fold default-value warnings. The split is structural, so an
// emit warning can never be reported before a declaration error for the same
// parameter.
type CheckResult struct {
	FileID  source.FileID
	File    *ast.File
	Bind    *binder.Result
	DeclBag *diag.Bag
	EmitBag *diag.Bag
}

// Merged returns declaration diagnostics followed by emit diagnostics.
func (r *CheckResult) Merged() *diag.Bag {
	out := diag.NewBag(r.DeclBag.Len() + r.EmitBag.Len())
	out.Merge(r.DeclBag)
	out.Merge(r.EmitBag)
	return out
}

// HasErrors reports whether any phase produced an error.
func (r *CheckResult) HasErrors() bool {
	return r.DeclBag.HasErrors() || r.EmitBag.HasErrors()
}

// CheckSource runs lex, parse, bind and the emit pass over one file already
// in the set.
func CheckSource(fs *source.FileSet, fileID source.FileID, opts CheckOptions) *CheckResult {
	limit := opts.limit()
	declBag := diag.NewBag(limit)
	emitBag := diag.NewBag(limit)

	file := fs.Get(fileID)
	adapter := lexer.ReporterAdapter{Bag: declBag}
	lx := lexer.New(file, lexer.Options{Reporter: adapter.Reporter()})

	parseRes := parser.ParseFile(fs, lx, parser.Options{
		MaxErrors: uint(limit),
		Reporter:  diag.BagReporter{Bag: declBag},
	})

	bindRes := binder.BindFile(parseRes.File, diag.BagReporter{Bag: declBag})
	binder.CheckDefaults(bindRes, diag.BagReporter{Bag: emitBag})

	declBag.Sort()
	emitBag.Sort()

	return &CheckResult{
		FileID:  fileID,
		File:    parseRes.File,
		Bind:    bindRes,
		DeclBag: declBag,
		EmitBag: emitBag,
	}
}

// CheckFile loads path into fs and checks it. A load failure is reported as a
// diagnostic, not an error return, so callers render it like any other.
func CheckFile(fs *source.FileSet, path string, opts CheckOptions) *CheckResult {
	fileID, err := fs.Load(path)
	if err != nil {
		return loadFailure(path, err, opts)
	}
	return CheckSource(fs, fileID, opts)
}

func loadFailure(path string, err error, opts CheckOptions) *CheckResult {
	declBag := diag.NewBag(opts.limit())
	declBag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
		fmt.Sprintf("cannot load %s: %v", path, err)))
	return &CheckResult{
		DeclBag: declBag,
		EmitBag: diag.NewBag(opts.limit()),
	}
}
