package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/interp"
)

// Run executes a single Lox source file: I/O failures print to stdout and
// exit 66, compile-time errors exit 65, runtime errors exit 70.
func (c *Cmd) Run(_ context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(stdio.Stderr, "Usage: lox [script]")
		return newExit(64, fmt.Errorf("usage: lox [script]"))
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stdio.Stdout, "Error: could not open file %s\n", args[0])
		return newExit(66, err)
	}

	in := interner.New()
	errs := &diag.List{}
	stmts, dist := compile(src, in, errs)
	if errs.HasErrors() {
		printDiags(stdio, errs)
		return newExit(65, errs.Err())
	}

	it := interp.New(in, stdio.Stdout)
	if rerr := it.Interpret(stmts, dist); rerr != nil {
		fmt.Fprintln(stdio.Stderr, rerr.Error())
		return newExit(70, rerr)
	}
	return nil
}
