package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/token"
)

// Tokenize runs the scanner phase only and prints the resulting tokens, one
// per line, for pipeline inspection.
func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("tokenize: expected exactly one file argument")
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "tokenize: %s\n", err)
		return err
	}

	in := interner.New()
	errs := &diag.List{}
	toks := scan(src, in, errs)
	for _, tok := range toks {
		printToken(stdio, in, tok)
	}
	if errs.HasErrors() {
		printDiags(stdio, errs)
		return errs.Err()
	}
	return nil
}

func printToken(stdio mainer.Stdio, in *interner.Interner, tok token.Token) {
	if tok.Kind == token.EOF {
		fmt.Fprintf(stdio.Stdout, "%d EOF\n", tok.Line)
		return
	}
	fmt.Fprintf(stdio.Stdout, "%d %s %s\n", tok.Line, tok.Kind, in.Resolve(tok.Lexeme))
}
