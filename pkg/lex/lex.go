// Package lex converts source text into tokens.
package lex

import (
	"fmt"

	"github.com/sxlang/sx/pkg/diag"
)

// ErrorTag parameterizes [diag.Error] to define [Error].
type ErrorTag struct{}

// ErrorTag returns "lex error".
func (ErrorTag) ErrorTag() string { return "lex error" }

// Error is the type of errors returned by Lex.
type Error = diag.Error[ErrorTag]

// Lex converts code into an ordered sequence of tokens. The name is only used
// in error contexts. Lexing is total and deterministic: the only failure mode
// is a character that starts no token, reported as an *Error.
//
// Whitespace (space, tab, newline, carriage return) separates tokens and is
// discarded. "(" and ")" are single-character Syntax tokens. A maximal run of
// ASCII digits is an Integer token; the text is kept verbatim and converted
// to a number only at evaluation time. An Identifier starts with a character
// from [a-zA-Z+\-*&$%<=] followed by more characters from that set or digits.
// Notably the operator characters are ordinary identifier characters, so
// multi-character names like <= are single tokens, and < or = alone are
// well-formed identifiers even though nothing defines them.
func Lex(name, code string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(code); {
		c := code[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(' || c == ')':
			tokens = append(tokens, token(Syntax, code, i, i+1))
			i++
		case isDigit(c):
			end := i + 1
			for end < len(code) && isDigit(code[end]) {
				end++
			}
			tokens = append(tokens, token(Integer, code, i, end))
			i = end
		case isIdentifierHead(c):
			end := i + 1
			for end < len(code) && (isIdentifierHead(code[end]) || isDigit(code[end])) {
				end++
			}
			tokens = append(tokens, token(Identifier, code, i, end))
			i = end
		default:
			return nil, &Error{
				Message: fmt.Sprintf("unrecognized character %q", c),
				Context: *diag.NewContext(name, code, diag.Ranging{From: i, To: i + 1}),
			}
		}
	}
	return tokens, nil
}

func token(kind Kind, code string, from, to int) Token {
	return Token{kind, code[from:to], diag.Ranging{From: from, To: to}}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentifierHead(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	}
	switch c {
	case '+', '-', '*', '&', '$', '%', '<', '=':
		return true
	}
	return false
}
