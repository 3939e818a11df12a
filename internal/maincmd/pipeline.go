package maincmd

import (
	"fmt"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

// scan runs the scanner phase over src using in, reporting errors to errs.
func scan(src []byte, in *interner.Interner, errs *diag.List) []token.Token {
	return scanner.New(src, in, errs).ScanTokens()
}

// compile runs the scanner, parser and resolver phases over src, in that
// order, stopping at the first phase that reports a diagnostic: the
// resolver is skipped if the scan/parse already failed.
func compile(src []byte, in *interner.Interner, errs *diag.List) ([]ast.Stmt, resolver.Distances) {
	toks := scan(src, in, errs)
	if errs.HasErrors() {
		return nil, nil
	}
	stmts := parser.Parse(toks, in, errs)
	if errs.HasErrors() {
		return nil, nil
	}
	dist := resolver.Resolve(stmts, in, errs)
	if errs.HasErrors() {
		return nil, nil
	}
	return stmts, dist
}

// printDiags writes every diagnostic in errs to stderr, sorted by line.
func printDiags(stdio mainer.Stdio, errs *diag.List) {
	errs.Sort()
	for _, e := range errs.Errs() {
		fmt.Fprintln(stdio.Stderr, e.Error())
	}
}
