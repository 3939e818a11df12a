package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/parser"
)

// Parse runs the scanner and parser phases and prints the resulting syntax
// tree, for pipeline inspection.
func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("parse: expected exactly one file argument")
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "parse: %s\n", err)
		return err
	}

	in := interner.New()
	errs := &diag.List{}
	toks := scan(src, in, errs)
	stmts := parser.Parse(toks, in, errs)

	p := ast.Printer{Output: stdio.Stdout, Interner: in}
	p.Print(stmts)

	if errs.HasErrors() {
		printDiags(stdio, errs)
		return errs.Err()
	}
	return nil
}
