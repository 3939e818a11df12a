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
	"github.com/mna/lox/lang/resolver"
)

// Resolve runs the scanner, parser and resolver phases and prints the
// syntax tree annotated with every variable-use's resolved lexical
// distance, for pipeline inspection.
func (c *Cmd) Resolve(_ context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("resolve: expected exactly one file argument")
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "resolve: %s\n", err)
		return err
	}

	in := interner.New()
	errs := &diag.List{}
	toks := scan(src, in, errs)
	stmts := parser.Parse(toks, in, errs)

	var dist resolver.Distances
	if !errs.HasErrors() {
		dist = resolver.Resolve(stmts, in, errs)
	}

	p := ast.Printer{Output: stdio.Stdout, Interner: in, Distances: dist}
	p.Print(stmts)

	if errs.HasErrors() {
		printDiags(stdio, errs)
		return errs.Err()
	}
	return nil
}
