package parse

import (
	"github.com/sxlang/sx/pkg/diag"
	"github.com/sxlang/sx/pkg/lex"
)

// Sexp is a node in a cons-cell tree: either an *Atom or a *Pair. The empty
// list is represented by a nil Sexp. A well-formed expression list is a
// right-leaning chain of Pairs terminated by nil; the parser produces no
// other shape.
type Sexp interface {
	diag.Ranger
	// Repr returns the textual representation of the node.
	Repr() string
}

// Atom is a leaf holding exactly one Integer or Identifier token; Syntax
// tokens never become atoms.
type Atom struct {
	Token lex.Token
}

// Range returns the range of the underlying token.
func (a *Atom) Range() diag.Ranging { return a.Token.Range() }

// Repr returns the token text verbatim.
func (a *Atom) Repr() string { return a.Token.Text }

// Pair is a cons cell. Head and Tail may be nil.
type Pair struct {
	Head Sexp
	Tail Sexp
	diag.Ranging
}

// Repr returns "(<head> . <tail>)", with nil rendered as "nil".
func (p *Pair) Repr() string {
	return "(" + Repr(p.Head) + " . " + Repr(p.Tail) + ")"
}

// Repr is like [Sexp.Repr], but also accepts the nil Sexp.
func Repr(s Sexp) string {
	if s == nil {
		return "nil"
	}
	return s.Repr()
}

// Append appends second to the sibling chain rooted at first and returns the
// new chain. The chain is treated as immutable: appending to an Atom wraps it
// into a new Pair, and appending to a Pair rebuilds its spine down to the end
// of the tail chain, where second is attached as a new element. Appending to
// nil starts a chain of one element. Siblings therefore keep their
// left-to-right source order, at the cost of an O(n) tail walk per append.
func Append(first, second Sexp) Sexp {
	switch first := first.(type) {
	case *Atom:
		return &Pair{Head: first, Tail: second}
	case *Pair:
		return &Pair{Head: first.Head, Tail: Append(first.Tail, second), Ranging: first.Ranging}
	default:
		return &Pair{Head: second, Tail: nil}
	}
}
