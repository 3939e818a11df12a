// Package diag implements the compile-time diagnostics channel shared by the
// scanner, parser and resolver. It is modeled on go/scanner.ErrorList: errors
// are appended as they are discovered instead of aborting the pass, so that
// a single run can surface many diagnostics at once.
package diag

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a single compile-time diagnostic: a source line, an origin
// description (empty for scanner errors, " at end"/" at 'lexeme'" for parser
// and resolver errors), and a message.
type Error struct {
	Line   int
	Origin string
	Msg    string
}

func (e Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Origin, e.Msg)
}

// List accumulates Errors in the order they are reported, and implements
// error so a pipeline stage can return it directly.
type List struct {
	errs []Error
}

// Add appends a new diagnostic to the list.
func (l *List) Add(line int, origin, msg string) {
	l.errs = append(l.errs, Error{Line: line, Origin: origin, Msg: msg})
}

// Len reports how many diagnostics have been collected.
func (l *List) Len() int { return len(l.errs) }

// HasErrors reports whether any diagnostic has been collected.
func (l *List) HasErrors() bool { return len(l.errs) > 0 }

// Errs returns the collected diagnostics in report order.
func (l *List) Errs() []Error { return l.errs }

// Sort orders the diagnostics by line number, stable otherwise, matching
// go/scanner.ErrorList.Sort.
func (l *List) Sort() {
	sort.SliceStable(l.errs, func(i, j int) bool { return l.errs[i].Line < l.errs[j].Line })
}

// Err returns l as an error if it has collected at least one diagnostic, or
// nil otherwise — the idiom used throughout the pipeline to decide whether to
// keep going to the next stage.
func (l *List) Err() error {
	if l == nil || len(l.errs) == 0 {
		return nil
	}
	return l
}

// Error implements the error interface, printing one diagnostic per line.
func (l *List) Error() string {
	var sb strings.Builder
	for i, e := range l.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}
