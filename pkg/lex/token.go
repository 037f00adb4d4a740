package lex

import "github.com/sxlang/sx/pkg/diag"

// Kind enumerates the kinds of tokens.
type Kind uint8

const (
	// Integer is a run of ASCII digits.
	Integer Kind = iota
	// Identifier is a name; see Lex for the allowed character set.
	Identifier
	// Syntax is one of the single characters "(" and ")".
	Syntax
)

// String returns a human-readable name of the kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Identifier:
		return "identifier"
	case Syntax:
		return "syntax"
	default:
		return "bad kind"
	}
}

// Token is a single lexical unit. It is immutable once produced, and carries
// the byte range of the text it was produced from.
type Token struct {
	Kind Kind
	Text string
	diag.Ranging
}
