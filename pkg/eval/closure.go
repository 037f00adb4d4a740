package eval

import (
	"github.com/sxlang/sx/pkg/parse"
)

// Closure is a callable produced by the lambda builtin. It captures only its
// parameter names and body; deliberately, it does not retain its definition
// environment. Each call copies the caller's live environment instead, so
// free variables in the body resolve against whatever is in scope at the call
// site. This is the language's scoping rule, not an oversight: recursive
// self-reference through def depends on it, and it must not be "fixed" into
// conventional lexical closures.
type Closure struct {
	params []string
	body   parse.Sexp
}

// Call evaluates all actual arguments strictly, left-to-right, in the
// caller's environment, binds them positionally into a fresh copy of that
// same environment, and evaluates the body as an implicit begin against the
// copy.
func (c *Closure) Call(fm *Frame, args parse.Sexp, env *Env) (any, error) {
	vs, err := fm.evalChain(args, env)
	if err != nil {
		return nil, err
	}
	if len(vs) != len(c.params) {
		return nil, fm.errorf("arity mismatch: needs %d arguments, got %d",
			len(c.params), len(vs))
	}
	local := env.Clone()
	for i, name := range c.params {
		local.Set(name, vs[i])
	}
	return fm.evalBody(c.body, local)
}

// Repr identifies the value as a closure without printing its body.
func (c *Closure) Repr() string { return "<closure>" }

// Kind returns "fn".
func (c *Closure) Kind() string { return "fn" }
