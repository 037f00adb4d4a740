// Package run is the entry point for the interpreter proper: it evaluates a
// program given as the sole command-line argument, and starts an interactive
// session when there is none.
package run

import (
	"os"

	"github.com/sxlang/sx/pkg/prog"
)

// Program is the interpreter subprogram.
type Program struct {
	parseOnly bool
	db        string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.parseOnly, "parse", false,
		"parse the program and print its tree without evaluating")
	fs.StringVar(&p.db, "db", "",
		"record interactive history in the named file")
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 1 {
		return prog.BadUsage("want a single program argument")
	}
	if len(args) == 1 {
		return script(fds, args[0], p.parseOnly)
	}
	return interact(fds, p.db)
}
