package ast

import (
	"sable/internal/source"
)

// File is the root of one parsed source file.
type File struct {
	FileID source.FileID
	Span   source.Span
	Decls  []Decl
}
