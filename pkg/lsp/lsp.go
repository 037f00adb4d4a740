// Package lsp implements a language server for sx, speaking the Language
// Server Protocol over stdin and stdout.
package lsp

import (
	"context"
	"os"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/sxlang/sx/pkg/prog"
)

// Program is the LSP subprogram.
type Program struct {
	run bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "lsp", false, "run a language server instead of the interpreter")
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	if !p.run {
		return prog.ErrNextProgram
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(transport{fds[0], fds[1]}, jsonrpc2.VSCodeObjectCodec{}),
		handler(newServer()))
	<-conn.DisconnectNotify()
	return nil
}

type transport struct{ in, out *os.File }

func (t transport) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t transport) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t transport) Close() error {
	if err := t.in.Close(); err != nil {
		t.out.Close()
		return err
	}
	return t.out.Close()
}
