// Package token defines the lexical vocabulary of sable source files:
// token kinds, the keyword table, and trivia attached to tokens.
package token
