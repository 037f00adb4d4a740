// Package buildinfo contains build information.
package buildinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sxlang/sx/pkg/prog"
)

// Version identifies the version of sx.
const Version = "0.1.0"

// VersionSuffix is appended to Version to build the full version string. It
// can be overridden with -ldflags when building a release.
var VersionSuffix = "-dev"

// Program is the version-reporting subprogram.
type Program struct {
	version, buildinfo bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false, "show build information and quit")
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	switch {
	case p.buildinfo:
		fmt.Fprintln(fds[1], "Version:", Version+VersionSuffix)
		fmt.Fprintln(fds[1], "Go version:", runtime.Version())
		return nil
	case p.version:
		fmt.Fprintln(fds[1], Version+VersionSuffix)
		return nil
	}
	return prog.ErrNextProgram
}
