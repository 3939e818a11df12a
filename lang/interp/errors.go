package interp

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

// RuntimeError is a Lox runtime fault: an operation that type-checked
// syntactically but failed once values were known (bad operand types, an
// undefined variable, calling a non-callable, accessing a missing
// property...). It carries the token closest to the failure so the
// top-level driver can report "[line N] message", and propagates as a Go
// error through exec/eval rather than unwinding via panic/recover.
type RuntimeError struct {
	Token token.Token
	Msg   string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Token.Line)
}

func newError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Msg: fmt.Sprintf(format, args...)}
}
