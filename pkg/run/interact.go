package run

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/sxlang/sx/pkg/diag"
	"github.com/sxlang/sx/pkg/eval"
	"github.com/sxlang/sx/pkg/eval/vals"
	"github.com/sxlang/sx/pkg/logutil"
	"github.com/sxlang/sx/pkg/parse"
	"github.com/sxlang/sx/pkg/store"
)

var logger = logutil.GetLogger("[run] ")

const prompt = "> "

// interact runs an interactive session: one program per line, evaluated
// against a shared environment that persists for the whole session. Errors
// are shown but do not end the session; EOF does. The prompt is only written
// when stdin is a terminal, so piping programs into the process stays clean.
// If dbPath is non-empty, every non-blank line is recorded in the history
// store before it is evaluated.
func interact(fds [3]*os.File, dbPath string) error {
	var st store.Store
	if dbPath != "" {
		var err error
		st, err = store.NewStore(dbPath)
		if err != nil {
			diag.Complainf(fds[2], "cannot open history store: %v", err)
			diag.Complain(fds[2], "history will not be recorded")
		} else {
			defer st.Close()
		}
	}

	terminal := isatty.IsTerminal(fds[0].Fd())
	ev := eval.NewEvaler()
	in := bufio.NewScanner(fds[0])
	for cmdNum := 1; ; cmdNum++ {
		if terminal {
			fmt.Fprint(fds[1], prompt)
		}
		if !in.Scan() {
			break
		}
		line := in.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if st != nil {
			if _, err := st.AddCmd(line); err != nil {
				logger.Println("cannot record history:", err)
			}
		}
		v, err := ev.Eval(parse.Source{
			Name: fmt.Sprintf("[tty %d]", cmdNum), Code: line})
		if err != nil {
			diag.ShowError(fds[2], err)
			continue
		}
		fmt.Fprintln(fds[1], vals.Repr(v))
	}
	return in.Err()
}
