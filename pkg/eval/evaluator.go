// Package eval is the stack-walking evaluator: the `run` loop that
// resolves symbols, dispatches built-ins through pkg/catalog, manages
// the binding table, and surfaces runtime errors. Grounded on the
// reference's interpreter.rs, restructured around a narrow
// catalog.Env implementation so pkg/catalog never needs to import
// pkg/eval.
package eval

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bprog-lang/bprog/pkg/catalog"
	"github.com/bprog-lang/bprog/pkg/stack"
	"github.com/bprog-lang/bprog/pkg/value"
)

// Binding is a named entry in the evaluator's binding table: either a
// plain value (installed by `:=`) or a function body (installed by
// `fun`, re-run on every lookup of the name).
type Binding struct {
	IsFunction bool
	Value      value.Parsed
}

// Evaluator owns the operand stack and binding table for one running
// program. Recursion into a quotation or a user-defined function
// reuses the same Stack and Bindings (spec §5) — there is no lexical
// scoping.
type Evaluator struct {
	Stack    *stack.Stack[value.Parsed]
	Bindings map[string]Binding
	Fatal    bool
	Debug    bool

	out io.Writer
	in  *bufio.Reader
}

// New constructs an Evaluator writing `print` output to out and
// reading `read` input from in. fatal selects whether a top-of-stack
// error terminates the caller (non-interactive mode) or merely halts
// the current input queue (REPL mode).
func New(out io.Writer, in io.Reader, fatal bool) *Evaluator {
	return &Evaluator{
		Stack:    stack.New[value.Parsed](),
		Bindings: make(map[string]Binding),
		Fatal:    fatal,
		out:      out,
		in:       bufio.NewReader(in),
	}
}

func (e *Evaluator) Lookup(name string) (value.Parsed, bool, bool) {
	b, ok := e.Bindings[name]
	if !ok {
		return value.Parsed{}, false, false
	}
	return b.Value, b.IsFunction, true
}

func (e *Evaluator) Define(name string, val value.Parsed, isFunction bool) {
	e.Bindings[name] = Binding{IsFunction: isFunction, Value: val}
}

func (e *Evaluator) Print(s string) {
	fmt.Fprintf(e.out, "output: %s\n", s)
}

func (e *Evaluator) ReadLine() (string, bool) {
	fmt.Fprint(e.out, "input: ")
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return trimNewline(line), true
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

var _ catalog.Env = (*Evaluator)(nil)
