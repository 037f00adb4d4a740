package eval

import (
	"sort"

	"github.com/sxlang/sx/pkg/diag"
	"github.com/sxlang/sx/pkg/eval/vals"
	"github.com/sxlang/sx/pkg/lex"
	"github.com/sxlang/sx/pkg/parse"
)

// The fixed builtin table. It contains exactly these seven operators;
// everything else must be defined by the program itself. The table is
// populated in init because the implementation functions read it back through
// evalAtom, which makes a package-level map literal an initialization cycle.
var builtins = make(map[string]Callable)

func init() {
	for _, b := range []*builtinFn{
		{"<=", lessEqual},
		{"if", ifForm},
		{"def", defForm},
		{"lambda", lambdaForm},
		{"begin", beginForm},
		{"+", add},
		{"-", subtract},
	} {
		builtins[b.name] = b
	}
}

// BuiltinNames returns the names in the builtin table, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builtinFn adapts a Go function into a Callable, mirroring exactly how
// user-defined callables are invoked: unevaluated argument chain in, value
// out.
type builtinFn struct {
	name string
	impl func(fm *Frame, args parse.Sexp, env *Env) (any, error)
}

func (b *builtinFn) Call(fm *Frame, args parse.Sexp, env *Env) (any, error) {
	return b.impl(fm, args, env)
}

func (b *builtinFn) Repr() string { return "<builtin " + b.name + ">" }

func (b *builtinFn) Kind() string { return "fn" }

func lessEqual(fm *Frame, args parse.Sexp, env *Env) (any, error) {
	vs, err := fm.evalChain(args, env)
	if err != nil {
		return nil, err
	}
	if len(vs) != 2 {
		return nil, fm.errorf("arity mismatch: <= needs 2 arguments, got %d", len(vs))
	}
	a, err := fm.asInt("<=", vs[0])
	if err != nil {
		return nil, err
	}
	b, err := fm.asInt("<=", vs[1])
	if err != nil {
		return nil, err
	}
	return a <= b, nil
}

func ifForm(fm *Frame, args parse.Sexp, env *Env) (any, error) {
	nodes := chainNodes(args)
	if len(nodes) != 3 {
		return nil, fm.errorf("bad if form: needs test, then and else, got %d arguments", len(nodes))
	}
	test, err := fm.eval(nodes[0], env)
	if err != nil {
		return nil, err
	}
	// Only the chosen branch is ever evaluated.
	if vals.Bool(test) {
		return fm.eval(nodes[1], env)
	}
	return fm.eval(nodes[2], env)
}

func defForm(fm *Frame, args parse.Sexp, env *Env) (any, error) {
	nodes := chainNodes(args)
	if len(nodes) != 2 {
		return nil, fm.errorf("bad def form: needs a name and a value, got %d arguments", len(nodes))
	}
	atom, ok := nodes[0].(*parse.Atom)
	if !ok || atom.Token.Kind != lex.Identifier {
		return nil, fm.errorpf(nodeRange(fm, nodes[0]),
			"bad def form: name must be an identifier, got %s", parse.Repr(nodes[0]))
	}
	v, err := fm.eval(nodes[1], env)
	if err != nil {
		return nil, err
	}
	// Mutates the shared environment in place; the binding is visible to
	// everything holding the same reference afterwards.
	env.Set(atom.Token.Text, v)
	return v, nil
}

func lambdaForm(fm *Frame, args parse.Sexp, env *Env) (any, error) {
	p, ok := args.(*parse.Pair)
	if !ok {
		return nil, fm.errorf("bad lambda form: needs a parameter list and a body")
	}
	params, err := paramNames(fm, p.Head)
	if err != nil {
		return nil, err
	}
	if p.Tail == nil {
		return nil, fm.errorf("bad lambda form: needs at least one body expression")
	}
	return &Closure{params: params, body: p.Tail}, nil
}

func paramNames(fm *Frame, chain parse.Sexp) ([]string, error) {
	var names []string
	for _, node := range chainNodes(chain) {
		atom, ok := node.(*parse.Atom)
		if !ok || atom.Token.Kind != lex.Identifier {
			return nil, fm.errorpf(nodeRange(fm, node),
				"bad lambda form: parameter must be an identifier, got %s", parse.Repr(node))
		}
		names = append(names, atom.Token.Text)
	}
	return names, nil
}

func beginForm(fm *Frame, args parse.Sexp, env *Env) (any, error) {
	return fm.evalBody(args, env)
}

// evalBody evaluates each expression of a chain in order, discarding all but
// the last value. An empty chain yields the empty sentinel.
func (fm *Frame) evalBody(body parse.Sexp, env *Env) (any, error) {
	var last any
	for _, node := range chainNodes(body) {
		v, err := fm.eval(node, env)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

func add(fm *Frame, args parse.Sexp, env *Env) (any, error) {
	vs, err := fm.evalChain(args, env)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, v := range vs {
		n, err := fm.asInt("+", v)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return sum, nil
}

func subtract(fm *Frame, args parse.Sexp, env *Env) (any, error) {
	vs, err := fm.evalChain(args, env)
	if err != nil {
		return nil, err
	}
	if len(vs) == 0 {
		return nil, fm.errorf("arity mismatch: - needs at least 1 argument")
	}
	res, err := fm.asInt("-", vs[0])
	if err != nil {
		return nil, err
	}
	if len(vs) == 1 {
		return -res, nil
	}
	for _, v := range vs[1:] {
		n, err := fm.asInt("-", v)
		if err != nil {
			return nil, err
		}
		res -= n
	}
	return res, nil
}

func (fm *Frame) asInt(op string, v any) (int, error) {
	n, ok := v.(int)
	if !ok {
		return 0, fm.errorf("bad value: %s needs numbers, got %s", op, vals.Kind(v))
	}
	return n, nil
}

// nodeRange returns the best available range for a node: its own if it has
// one, or the range of the enclosing form for nil.
func nodeRange(fm *Frame, node parse.Sexp) diag.Ranger {
	if node == nil {
		return fm.at
	}
	return node
}
