package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"sable/internal/diag"
	"sable/internal/source"
)

// Pretty renders diagnostics human-readably, one per block:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  <caret underline over the span>
//
// Iterates bag.Items() in order (call bag.Sort() first). Notes follow the
// same shape, indented. Color applies to the severity and the carets.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, d.Severity, d.Code, d.Message, d.Primary, fs, opts)
		writeSnippet(w, d.Primary, d.Severity, fs, opts, "  ")
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeader(w, diag.SevInfo, 0, note.Msg, note.Span, fs, opts)
				writeSnippet(w, note.Span, diag.SevInfo, fs, opts, "    ")
			}
		}
	}
}

func writeHeader(w io.Writer, sev diag.Severity, code diag.Code, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	loc := "<unknown>"
	if !span.Empty() || span.File != 0 || span.Start != 0 {
		f := fs.Get(span.File)
		start, _ := fs.Resolve(span)
		path := f.FormatPath(opts.PathMode.formatMode(), fs.BaseDir())
		loc = fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
	}

	sevText := sev.String()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}

	if code == 0 {
		fmt.Fprintf(w, "%s: %s: %s\n", loc, sevText, msg)
		return
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", loc, sevText, code.ID(), msg)
}

func writeSnippet(w io.Writer, span source.Span, sev diag.Severity, fs *source.FileSet, opts PrettyOpts, indent string) {
	if span.Empty() && span.Start == 0 {
		return
	}
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "%s%s\n", indent, line)

	// Underline only the part of the span on its first line.
	caretStart := int(start.Col) - 1
	caretLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		caretLen = int(end.Col - start.Col)
	} else if end.Line > start.Line {
		caretLen = len(line) - caretStart
	}
	if caretStart < 0 || caretStart > len(line) {
		return
	}
	if caretLen < 1 {
		caretLen = 1
	}

	pad := strings.Repeat(" ", caretStart)
	carets := "^"
	if caretLen > 1 {
		carets += strings.Repeat("~", caretLen-1)
	}
	if opts.Color {
		carets = severityColor(sev).Sprint(carets)
	}
	fmt.Fprintf(w, "%s%s%s\n", indent, pad, carets)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
