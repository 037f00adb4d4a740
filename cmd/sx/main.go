// Sx is an interpreter for a minimal parenthesized S-expression language:
// arithmetic, comparison, conditionals, definitions, lambdas and sequencing
// over integer atoms. It evaluates a program given as its sole argument, runs
// an interactive session when invoked without one, and doubles as a language
// server with -lsp.
package main

import (
	"os"

	"github.com/sxlang/sx/pkg/buildinfo"
	"github.com/sxlang/sx/pkg/lsp"
	"github.com/sxlang/sx/pkg/prog"
	"github.com/sxlang/sx/pkg/run"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &lsp.Program{}, &run.Program{})))
}
