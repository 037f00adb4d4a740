// Package eval handles evaluation of parsed trees and the runtime data
// structures.
package eval

import (
	"fmt"
	"strconv"

	"github.com/sxlang/sx/pkg/diag"
	"github.com/sxlang/sx/pkg/lex"
	"github.com/sxlang/sx/pkg/parse"
)

// ErrorTag parameterizes [diag.Error] to define [Error].
type ErrorTag struct{}

// ErrorTag returns "eval error".
func (ErrorTag) ErrorTag() string { return "eval error" }

// Error is the type of errors returned by evaluation. Every error is fatal to
// the whole evaluation; there is no local recovery and no partial result.
type Error = diag.Error[ErrorTag]

// Callable is a value that can be applied. It receives the unevaluated
// argument chain and the caller's environment, and is fully responsible for
// deciding which arguments to evaluate and when; this is how if and lambda
// get their non-strict behavior. Builtins and lambda-produced closures
// satisfy Callable identically and are interchangeable.
type Callable interface {
	Call(fm *Frame, args parse.Sexp, env *Env) (any, error)
}

// Evaler provides the entry point to evaluation. It owns the shared top-level
// environment, which persists across Eval calls; the interactive mode relies
// on this to keep definitions from previous lines visible.
type Evaler struct {
	env *Env
}

// NewEvaler creates a new Evaler with an empty top-level environment.
func NewEvaler() *Evaler {
	return &Evaler{env: NewEnv()}
}

// Eval parses and evaluates a program source, returning the value of its
// final top-level form. The returned error, if non-nil, is a lex, parse or
// eval error carrying source context.
func (ev *Evaler) Eval(src Source) (any, error) {
	program, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	fm := &Frame{src: src}
	return fm.eval(program, ev.env)
}

// Source is an alias of [parse.Source], re-exported for convenience.
type Source = parse.Source

// Frame carries the state shared by all evaluations of one program: the
// source for error contexts, and the range of the form currently being
// applied, which anchors errors that have no better position of their own.
type Frame struct {
	src Source
	at  diag.Ranging
}

func (fm *Frame) eval(expr parse.Sexp, env *Env) (any, error) {
	switch expr := expr.(type) {
	case nil:
		// The empty list evaluates to the empty sentinel.
		return nil, nil
	case *parse.Atom:
		return fm.evalAtom(expr, env)
	case *parse.Pair:
		op, err := fm.eval(expr.Head, env)
		if err != nil {
			return nil, err
		}
		callable, ok := op.(Callable)
		if !ok {
			return nil, fm.errorpf(expr, "unknown operator: %s", parse.Repr(expr.Head))
		}
		saved := fm.at
		fm.at = expr.Ranging
		v, err := callable.Call(fm, expr.Tail, env)
		fm.at = saved
		return v, err
	default:
		return nil, fm.errorpf(expr, "cannot evaluate node of type %T", expr)
	}
}

func (fm *Frame) evalAtom(atom *parse.Atom, env *Env) (any, error) {
	t := atom.Token
	if t.Kind == lex.Integer {
		n, err := strconv.Atoi(t.Text)
		if err != nil {
			return nil, fm.errorpf(atom, "integer literal out of range: %s", t.Text)
		}
		return n, nil
	}
	// The environment shadows the builtin table, so def can rebind a builtin
	// name.
	if v, ok := env.Get(t.Text); ok {
		return v, nil
	}
	if b, ok := builtins[t.Text]; ok {
		return b, nil
	}
	return nil, fm.errorpf(atom, "undefined value: %s", t.Text)
}

// errorf returns an eval error anchored at the form currently being applied.
func (fm *Frame) errorf(format string, args ...any) error {
	return fm.errorpf(fm.at, format, args...)
}

// errorpf is like errorf, with an explicit position.
func (fm *Frame) errorpf(r diag.Ranger, format string, args ...any) error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(fm.src.Name, fm.src.Code, r),
	}
}

// evalChain evaluates every element of a right-leaning sibling chain in
// order, strictly and left-to-right, returning the values as a slice.
func (fm *Frame) evalChain(args parse.Sexp, env *Env) ([]any, error) {
	var vs []any
	for _, node := range chainNodes(args) {
		v, err := fm.eval(node, env)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// chainNodes flattens a right-leaning sibling chain into a slice of its
// element nodes, without evaluating anything. A chain ending in an atom
// instead of nil contributes the atom as a final element; the parser never
// produces that shape, but callables can be handed arbitrary trees.
func chainNodes(chain parse.Sexp) []parse.Sexp {
	var nodes []parse.Sexp
	for chain != nil {
		p, ok := chain.(*parse.Pair)
		if !ok {
			return append(nodes, chain)
		}
		nodes = append(nodes, p.Head)
		chain = p.Tail
	}
	return nodes
}
