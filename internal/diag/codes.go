package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntax
	SynInfo                    Code = 2000
	SynUnexpectedToken         Code = 2001
	SynUnexpectedTopLevel      Code = 2002
	SynExpectIdentifier        Code = 2003
	SynExpectSemicolon         Code = 2004
	SynExpectCommaOrParen      Code = 2005
	SynUnclosedParen           Code = 2006
	SynUnclosedBrace           Code = 2007
	SynExpectType              Code = 2008
	SynExpectExpression        Code = 2009
	SynMethodNeedsBody         Code = 2010
	SynExpectAccessor          Code = 2011
	SynArglistMustBeLast       Code = 2012
	SynExpectCommaOrSemicolon  Code = 2013
	SynNeedSpaceAfterNullCheck Code = 2014

	// Binding / semantic
	SemInfo                    Code = 3000
	BindNullCheckSignatureOnly Code = 3001
	EmitNullCheckedNullDefault Code = 3002

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown diagnostic",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	SynExpectIdentifier:         "Identifier expected",
	SynExpectSemicolon:          "Semicolon expected",
	SynExpectCommaOrParen:       "Comma or closing parenthesis expected",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynExpectType:               "Type expected",
	SynExpectExpression:         "Expression expected",
	SynMethodNeedsBody:          "Method requires a body",
	SynExpectAccessor:           "Accessor expected",
	SynArglistMustBeLast:        "__arglist must be the last parameter",
	SynExpectCommaOrSemicolon:   "Comma or semicolon expected",
	SynNeedSpaceAfterNullCheck:  "Space required between '!!' and '='",
	SemInfo:                     "Semantic information",
	BindNullCheckSignatureOnly:  "Null-check annotation requires an implementation",
	EmitNullCheckedNullDefault:  "Null-checked parameter defaults to null",
	IOLoadFileError:             "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
