package run

import (
	"fmt"
	"os"

	"github.com/sxlang/sx/pkg/diag"
	"github.com/sxlang/sx/pkg/eval"
	"github.com/sxlang/sx/pkg/eval/vals"
	"github.com/sxlang/sx/pkg/parse"
	"github.com/sxlang/sx/pkg/prog"
)

// script runs a single program given as an argument string, printing the
// value of its final form. Any lex, parse or eval error is fatal: it is shown
// on stderr and the process exits with a non-zero status.
func script(fds [3]*os.File, code string, parseOnly bool) error {
	src := parse.Source{Name: "code from argument", Code: code}

	if parseOnly {
		tree, err := parse.Parse(src)
		if err != nil {
			diag.ShowError(fds[2], err)
			return prog.Exit(2)
		}
		fmt.Fprintln(fds[1], parse.Repr(tree))
		return nil
	}

	v, err := eval.NewEvaler().Eval(src)
	if err != nil {
		diag.ShowError(fds[2], err)
		return prog.Exit(2)
	}
	fmt.Fprintln(fds[1], vals.Repr(v))
	return nil
}
