// Package prog provides the entry point to sx. Its subprograms - the
// interpreter proper, the language server and version reporting - are
// composed in the main package and tried in order for each invocation.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sxlang/sx/pkg/logutil"
)

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers the subprogram's flags.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram, or returns ErrNextProgram to pass control to
	// the next one in a Composite.
	Run(fds [3]*os.File, args []string) error
}

// FlagSet wraps a [flag.FlagSet] for subprograms to register their flags on.
type FlagSet struct {
	*flag.FlagSet
}

// Run parses command-line flags and runs the program, returning the exit
// status for the process. It handles the flags shared by all subprograms
// (-help and -log) itself.
func Run(fds [3]*os.File, args []string, p Program) int {
	fs := flag.NewFlagSet("sx", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	var help bool
	var logFile string
	fs.BoolVar(&help, "help", false, "show usage help and quit")
	fs.StringVar(&logFile, "log", "", "write a debug log to the named file")
	p.RegisterFlags(&FlagSet{fs})

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h was requested but
			// not defined. We define -help but not -h, so handle this by
			// printing the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if logFile != "" {
		if err := logutil.SetOutputFile(logFile); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
	case exitError:
		return err.exit
	}
	return 2
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: sx [flags] [program]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNextProgram.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) RegisterFlags(fs *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(fs)
	}
}

func (cp compositeProgram) Run(fds [3]*os.File, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, args)
		if err != ErrNextProgram {
			return err
		}
	}
	// If we have reached here, all subprograms have passed.
	return ErrNextProgram
}

// ErrNextProgram is a special error that may be returned by [Program.Run], to
// signify that control should pass to the next program in a Composite. If all
// programs do this, its message is what the user sees.
var ErrNextProgram = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by [Program.Run]. It
// causes the main function to print out the message, the usage information
// and exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by [Program.Run]. It
// causes the main function to exit with the given code without printing any
// error messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
