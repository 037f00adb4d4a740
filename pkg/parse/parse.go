// Package parse turns source text into cons-cell trees.
//
// It builds on [github.com/sxlang/sx/pkg/lex] for tokenization; paren
// matching is this package's job, and the lexer has no knowledge of it.
package parse

import (
	"fmt"

	"github.com/sxlang/sx/pkg/diag"
	"github.com/sxlang/sx/pkg/lex"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string
}

// ErrorTag parameterizes [diag.Error] to define [Error].
type ErrorTag struct{}

// ErrorTag returns "parse error".
func (ErrorTag) ErrorTag() string { return "parse error" }

// Error is the type of errors returned for structural problems. Parse can
// also return a *[lex.Error] when tokenization itself fails.
type Error = diag.Error[ErrorTag]

// Parse lexes and parses src. A program is zero or more top-level forms
// back-to-back, each either a parenthesized form or a bare atom; all of them
// are wrapped into one implicit sequencing form whose operator is the
// identifier begin, so the whole program evaluates as a single expression.
func Parse(src Source) (Sexp, error) {
	tokens, err := lex.Lex(src.Name, src.Code)
	if err != nil {
		return nil, err
	}

	begin := &Atom{Token: lex.Token{Kind: lex.Identifier, Text: "begin"}}
	program := Append(begin, nil)
	for cursor := 0; cursor < len(tokens); cursor++ {
		t := tokens[cursor]
		var form Sexp
		switch {
		case t.Kind == lex.Syntax && t.Text == "(":
			var err error
			cursor, form, err = parseForm(src, tokens, cursor)
			if err != nil {
				return nil, err
			}
		case t.Kind == lex.Syntax:
			return nil, parseError(src, t, "unexpected ')'")
		default:
			form = &Atom{Token: t}
		}
		program = Append(program, form)
	}
	return program, nil
}

// parseForm parses one parenthesized form starting at cursor, which must be
// at an opening parenthesis. It consumes tokens up to and including the
// matching close paren and returns its index, together with the accumulated
// sibling chain (nil for an empty form).
func parseForm(src Source, tokens []lex.Token, cursor int) (int, Sexp, error) {
	open := tokens[cursor]
	if !(open.Kind == lex.Syntax && open.Text == "(") {
		return 0, nil, parseError(src, open, "expected opening parenthesis, got %q", open.Text)
	}

	var chain Sexp
	for cursor++; cursor < len(tokens); cursor++ {
		t := tokens[cursor]
		switch {
		case t.Kind == lex.Syntax && t.Text == "(":
			end, child, err := parseForm(src, tokens, cursor)
			if err != nil {
				return 0, nil, err
			}
			chain = Append(chain, child)
			cursor = end
		case t.Kind == lex.Syntax:
			// The whole form gets the range from "(" to ")".
			if p, ok := chain.(*Pair); ok {
				p.From, p.To = open.From, t.To
			}
			return cursor, chain, nil
		default:
			chain = Append(chain, &Atom{Token: t})
		}
	}
	return 0, nil, parseError(src,
		diag.Ranging{From: open.From, To: len(src.Code)}, "unterminated form")
}

func parseError(src Source, r diag.Ranger, format string, args ...any) error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(src.Name, src.Code, r),
	}
}
