package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/mna/mainer"

	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/interp"
)

// Repl runs the interactive read-eval-print loop: prompt, read a line,
// run it, clear the compile-error state, repeat. The interpreter and
// interner are created once and persist for the whole session; each
// line is otherwise scanned, parsed and resolved independently.
// End-of-stream on stdin exits with status 0.
func (c *Cmd) Repl(_ context.Context, stdio mainer.Stdio, _ []string) error {
	in := interner.New()
	it := interp.New(in, stdio.Stdout)

	prompt := color.New(color.FgGreen).SprintFunc()
	errColor := color.New(color.FgRed)

	scanner := bufio.NewScanner(stdio.Stdin)
	for {
		fmt.Fprint(stdio.Stdout, prompt("> "))
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()

		errs := &diag.List{}
		stmts, dist := compile([]byte(line), in, errs)
		if errs.HasErrors() {
			errs.Sort()
			for _, e := range errs.Errs() {
				errColor.Fprintln(stdio.Stderr, e.Error())
			}
			continue
		}

		if rerr := it.Interpret(stmts, dist); rerr != nil {
			errColor.Fprintln(stdio.Stderr, rerr.Error())
		}
	}
}
