// Package maincmd implements the lox command-line tool: a REPL, a file
// runner, and the `tokenize`/`parse`/`resolve` pipeline-inspection
// subcommands, with subcommands discovered by reflection and argument
// parsing and process plumbing handled by github.com/mna/mainer.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<command>] [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<command>] [<path>]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language.

With no command and no path, starts an interactive REPL. With a single
path and no command, runs that file as a Lox program.

The <command> can be one of:
       run <path>                Execute <path> as a Lox program.
       tokenize <path>           Run the scanner phase only and print
                                 the resulting tokens.
       parse <path>              Run the scanner and parser phases and
                                 print the resulting syntax tree.
       resolve <path>            Run the scanner, parser and resolver
                                 phases and print the syntax tree
                                 annotated with resolved variable
                                 distances.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

More information on the %[1]s repository:
       https://github.com/mna/lox
`, binName)
)

// Cmd holds the command-line tool's parsed flags and dispatches to the
// subcommand matching argv[0] (or, with no subcommand and a single
// remaining argument, to Run; with no subcommand and no argument, to Repl).
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) { c.flags = flags }

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	commands := buildCmds(c)
	switch len(c.args) {
	case 0:
		c.cmdFn = c.Repl
	case 1:
		if _, ok := commands[c.args[0]]; ok {
			return fmt.Errorf("%s: missing required <path> argument", c.args[0])
		}
		c.cmdFn = c.Run
	case 2:
		fn, ok := commands[c.args[0]]
		if !ok {
			return fmt.Errorf("unknown command: %s", c.args[0])
		}
		c.cmdFn = fn
		c.args = c.args[1:]
	default:
		return errors.New("usage: lox [script]")
	}
	return nil
}

// exitError carries a specific process exit code past the generic
// error-return signature every subcommand shares, for the exit codes this
// tool needs (64 usage, 65 compile error, 66 I/O error, 70 runtime error).
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newExit(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: strings.ToUpper(binName) + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(64)
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return mainer.ExitCode(ee.code)
		}
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds discovers the Cmd methods usable as subcommands: those taking
// (context.Context, mainer.Stdio, []string) and returning error.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		name := strings.ToLower(m.Name)
		if name == "repl" {
			continue // takes no <path>: reached only via the no-argument dispatch in Validate
		}
		cmds[name] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
