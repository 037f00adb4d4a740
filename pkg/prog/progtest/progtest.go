// Package progtest provides utilities for testing subprograms: it runs a
// [prog.Program] against pipe-backed file descriptors and checks the exit
// status and outputs.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sxlang/sx/pkg/must"
	"github.com/sxlang/sx/pkg/prog"
)

// Case describes one invocation of the program under test. It is created by
// ThatSx, augmented by chained setters, and checked by Test.
type Case struct {
	args  []string
	stdin string

	wantExit           int
	wantStdout         *string
	wantStdoutContains []string
	wantStderr         *string
	wantStderrContains []string
}

// ThatSx returns a Case with the given command-line arguments.
func ThatSx(args ...string) *Case {
	return &Case{args: args}
}

// WithStdin makes the case feed s to the program's standard input.
func (c *Case) WithStdin(s string) *Case {
	c.stdin = s
	return c
}

// DoesNothing requires the program to exit with 0 and write no output. It is
// a no-op since that is the default requirement, but makes tests readable.
func (c *Case) DoesNothing() *Case { return c }

// ExitsWith requires the program to exit with the given status.
func (c *Case) ExitsWith(exit int) *Case {
	c.wantExit = exit
	return c
}

// WritesStdout requires the program's stdout to be exactly s.
func (c *Case) WritesStdout(s string) *Case {
	c.wantStdout = &s
	return c
}

// WritesStdoutContaining requires the program's stdout to contain s.
func (c *Case) WritesStdoutContaining(s string) *Case {
	c.wantStdoutContains = append(c.wantStdoutContains, s)
	return c
}

// WritesStderr requires the program's stderr to be exactly s.
func (c *Case) WritesStderr(s string) *Case {
	c.wantStderr = &s
	return c
}

// WritesStderrContaining requires the program's stderr to contain s.
func (c *Case) WritesStderrContaining(s string) *Case {
	c.wantStderrContains = append(c.wantStderrContains, s)
	return c
}

// Test runs each case against the program and reports mismatches.
func Test(t *testing.T, p prog.Program, cases ...*Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.args, c.stdin)
			if exit != c.wantExit {
				t.Errorf("got exit %d, want %d", exit, c.wantExit)
			}
			checkOutput(t, "stdout", stdout, c.wantStdout, c.wantStdoutContains)
			checkOutput(t, "stderr", stderr, c.wantStderr, c.wantStderrContains)
		})
	}
}

func checkOutput(t *testing.T, what, got string, want *string, wantContains []string) {
	t.Helper()
	if want != nil && got != *want {
		t.Errorf("got %s %q, want %q", what, got, *want)
	}
	if want == nil && len(wantContains) == 0 && got != "" {
		t.Errorf("got %s %q, want none", what, got)
	}
	for _, s := range wantContains {
		if !strings.Contains(got, s) {
			t.Errorf("got %s %q, want it to contain %q", what, got, s)
		}
	}
}

// Run runs a program with the given arguments and stdin content, and returns
// its exit status and what it wrote to stdout and stderr.
func Run(p prog.Program, args []string, stdin string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	// Feed stdin and drain the outputs concurrently, so that the program
	// never blocks on a full pipe buffer.
	go func() {
		defer w0.Close()
		w0.WriteString(stdin)
	}()
	outCh := drain(r1)
	errCh := drain(r2)

	exit = prog.Run([3]*os.File{r0, w1, w2}, append([]string{"sx"}, args...), p)
	w1.Close()
	w2.Close()
	stdout, stderr = <-outCh, <-errCh
	r0.Close()
	return exit, stdout, stderr
}

func drain(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}
