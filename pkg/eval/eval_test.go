package eval_test

import (
	"strings"
	"testing"

	"github.com/sxlang/sx/pkg/eval"
	"github.com/sxlang/sx/pkg/eval/vals"
)

func evalCode(code string) (any, error) {
	return eval.NewEvaler().Eval(eval.Source{Name: "[test]", Code: code})
}

// Results are compared via vals.Repr, which distinguishes 0, false, nil and
// callables.
var evalTests = []struct {
	name string
	code string
	want string
}{
	{"integer literal", "7", "7"},
	{"integer literal with leading zeros", "007", "7"},
	{"empty program", "", "nil"},
	{"empty form as argument", "(begin ())", "nil"},

	{"addition", "(+ 1 2 3)", "6"},
	{"addition of nothing", "(+)", "0"},
	{"subtraction", "(- 10 1 2)", "7"},
	{"negation", "(- 5)", "-5"},
	{"nested arithmetic", "(+ (- 10 4) (+ 1 1))", "8"},

	{"comparison true", "(<= 1 2)", "true"},
	{"comparison equal", "(<= 2 2)", "true"},
	{"comparison false", "(<= 2 1)", "false"},

	{"if true branch", "(if (<= 1 2) 10 20)", "10"},
	{"if false branch", "(if (<= 2 1) 10 20)", "20"},
	{"zero is falsy", "(if 0 1 2)", "2"},
	{"nonzero is truthy", "(if 7 1 2)", "1"},
	{"callable is truthy", "(if (lambda () 0) 1 2)", "1"},
	{"unchosen branch is not evaluated", "(if 1 10 (boom))", "10"},

	{"def returns the bound value", "(def x 5)", "5"},
	{"def binds for later forms", "(def x 5)(+ x 1)", "6"},
	{"def can rebind", "(def x 1)(def x (+ x 1))(+ x 0)", "2"},
	{"def result prints as closure", "(def f (lambda (n) n))", "<closure>"},

	{"lambda application", "((lambda (n) (+ n 1)) 41)", "42"},
	{"lambda with no parameters", "((lambda () 9))", "9"},
	{"lambda body is an implicit begin",
		"((lambda (n) (def m (+ n 1)) (+ m 1)) 1)", "3"},
	{"lambda returning lambda", "(def make (lambda () (lambda () 5)))((make))", "5"},

	{"begin returns the last value", "(begin 1 2 3)", "3"},
	{"begin of nothing", "(begin)", "nil"},

	{"builtin as value", "(def le <=)(le 1 2)", "true"},

	{"recursive self-reference",
		"(def f (lambda (n) (if (<= n 0) 0 (+ n (f (- n 1))))))(f 3)", "6"},
	{"deeper recursion",
		"(def f (lambda (n) (if (<= n 0) 0 (+ n (f (- n 1))))))(f 10)", "55"},
	{"free variables resolve at the call site",
		"(def getx (lambda () x))(def withx (lambda (x) (getx)))(withx 42)", "42"},
	{"def inside a call does not leak to the caller",
		"(def x 1)(def y ((lambda () (def x 99) x)))(+ x y)", "100"},
}

func TestEval(t *testing.T) {
	for _, test := range evalTests {
		t.Run(test.name, func(t *testing.T) {
			v, err := evalCode(test.code)
			if err != nil {
				t.Fatalf("eval(%q) -> error %v, want nil", test.code, err)
			}
			if got := vals.Repr(v); got != test.want {
				t.Errorf("eval(%q) -> %s, want %s", test.code, got, test.want)
			}
		})
	}
}

func TestBuiltins_AreAllResolvable(t *testing.T) {
	names := eval.BuiltinNames()
	want := []string{"+", "-", "<=", "begin", "def", "if", "lambda"}
	if len(names) != len(want) {
		t.Fatalf("BuiltinNames() = %v, want %v", names, want)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("BuiltinNames() = %v, want %v", names, want)
		}
	}
	// Each name must also evaluate to the corresponding callable in an empty
	// environment.
	for _, name := range names {
		v, err := evalCode(name)
		if err != nil {
			t.Errorf("eval(%q) -> error %v, want a builtin value", name, err)
			continue
		}
		if got, want := vals.Repr(v), "<builtin "+name+">"; got != want {
			t.Errorf("eval(%q) -> %s, want %s", name, got, want)
		}
	}
}

var evalErrorTests = []struct {
	name string
	code string
	want string
}{
	{"undefined identifier", "x", "undefined value: x"},
	{"undefined operator", "(frob 1)", "undefined value: frob"},
	{"undefined value inside lambda body at call time",
		"(def sq (lambda (n) (* n n)))(sq 3)", "undefined value: *"},
	{"integer as operator", "(5 1)", "unknown operator: 5"},
	{"rebound builtin is no longer callable", "(def begin 1)(begin 2)",
		"unknown operator: begin"},

	{"subtraction needs an argument", "(-)", "arity mismatch"},
	{"comparison needs exactly two arguments", "(<= 1 2 3)", "arity mismatch"},
	{"comparison needs two arguments", "(<= 1)", "arity mismatch"},
	{"too few call arguments", "((lambda (a b) a) 1)", "arity mismatch"},
	{"too many call arguments", "((lambda () 1) 2)", "arity mismatch"},

	{"if needs three arguments", "(if 1 2)", "bad if form"},
	{"def needs two arguments", "(def x)", "bad def form"},
	{"def name must be an identifier", "(def 5 1)", "name must be an identifier"},
	{"lambda needs a body", "(lambda (n))", "at least one body expression"},
	{"lambda needs arguments", "(lambda)", "bad lambda form"},
	{"lambda parameters must be identifiers", "(lambda (1) 1)",
		"parameter must be an identifier"},

	{"arithmetic needs numbers", "(+ 1 (lambda () 1))", "needs numbers, got fn"},
	{"comparison needs numbers", "(<= 1 (lambda () 1))", "needs numbers, got fn"},
	{"integer literal out of range", "99999999999999999999", "out of range"},
}

func TestEval_Errors(t *testing.T) {
	for _, test := range evalErrorTests {
		t.Run(test.name, func(t *testing.T) {
			_, err := evalCode(test.code)
			if err == nil {
				t.Fatalf("eval(%q) -> nil error, want eval error", test.code)
			}
			if _, ok := err.(*eval.Error); !ok {
				t.Fatalf("eval(%q) -> error of type %T, want *eval.Error",
					test.code, err)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("eval(%q) -> error %q, want it to contain %q",
					test.code, err.Error(), test.want)
			}
		})
	}
}

func TestEval_Idempotent(t *testing.T) {
	// The same program evaluated with fresh environments yields identical
	// results; nothing leaks across runs.
	const code = "(def x 5)(def f (lambda (n) (+ n x)))(f 2)"
	first, err := evalCode(code)
	if err != nil {
		t.Fatal(err)
	}
	second, err := evalCode(code)
	if err != nil {
		t.Fatal(err)
	}
	if vals.Repr(first) != vals.Repr(second) {
		t.Errorf("got %s then %s, want identical results",
			vals.Repr(first), vals.Repr(second))
	}
}

func TestEval_EnvironmentPersistsAcrossEvalCalls(t *testing.T) {
	ev := eval.NewEvaler()
	if _, err := ev.Eval(eval.Source{Name: "[1]", Code: "(def x 5)"}); err != nil {
		t.Fatal(err)
	}
	v, err := ev.Eval(eval.Source{Name: "[2]", Code: "(+ x 1)"})
	if err != nil {
		t.Fatal(err)
	}
	if got := vals.Repr(v); got != "6" {
		t.Errorf("got %s, want 6", got)
	}
}
