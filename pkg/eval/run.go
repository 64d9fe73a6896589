package eval

import (
	"fmt"

	"github.com/bprog-lang/bprog/pkg/catalog"
	"github.com/bprog-lang/bprog/pkg/types"
	"github.com/bprog-lang/bprog/pkg/value"
)

// queue is the pending-input cursor for Run's main dispatch loop. The
// only operator that still pulls from it mid-dispatch is `'`, whose
// modifier must be the raw, undispatched token immediately following
// it — every other higher-order operator's modifier is an ordinary
// value already sitting on the stack by the time the operator runs
// (see gatherModifiers).
type queue struct {
	items []value.Parsed
	pos   int
}

func (q *queue) popFront() (value.Parsed, bool) {
	if q.pos >= len(q.items) {
		return value.Parsed{}, false
	}
	p := q.items[q.pos]
	q.pos++
	return p, true
}

// Run consumes input front-to-back against e's stack and binding
// table (spec §4.3). halted reports whether an Error reached the
// stack top during this call, so a recursive caller knows the
// diagnostic has already been reported and must not repeat it. err is
// non-nil only in fatal mode, once an Error has surfaced — the caller
// (cmd/bprog) is expected to terminate the process on it.
func Run(e *Evaluator, input []value.Parsed) (halted bool, err error) {
	q := &queue{items: input}
	for {
		p, ok := q.popFront()
		if !ok {
			return false, nil
		}

		reported := false
		switch p.Kind {
		case value.KError:
			e.Stack.Push(p)
		case value.KSymbol:
			if val, isFunction, ok := e.Lookup(p.Sym); ok {
				if isFunction {
					h, ferr := Run(e, append([]value.Parsed(nil), val.Quote...))
					if ferr != nil {
						return true, ferr
					}
					reported = h
				} else {
					e.Stack.Push(val)
				}
			} else {
				e.Stack.Push(p)
			}
		case value.KList:
			resolved := make([]value.Parsed, len(p.List))
			for i, item := range p.List {
				resolved[i] = resolveShallow(e, item)
			}
			e.Stack.Push(value.List(resolved))
		case value.KFunction:
			h, ferr := e.execOp(p.Op, q)
			if ferr != nil {
				return true, ferr
			}
			reported = h
		default:
			e.Stack.Push(p)
		}

		if top, ok := e.Stack.Top(); ok && top.Kind == value.KError {
			if !reported {
				e.report(top)
			}
			if e.Fatal {
				return true, fmt.Errorf("%s", top.Err.String())
			}
			return true, nil
		}
	}
}

// resolveShallow substitutes a bound Symbol with its value one level
// deep (used for List elements, spec §4.3 point 3) — it never
// recurses into nested lists/quotations and never invokes function
// bindings.
func resolveShallow(e *Evaluator, p value.Parsed) value.Parsed {
	if p.Kind != value.KSymbol {
		return p
	}
	if val, _, ok := e.Lookup(p.Sym); ok {
		return val
	}
	return p
}

func (e *Evaluator) report(top value.Parsed) {
	fmt.Fprintln(e.out, top.Err.String())
}

// execOp dispatches one Function(op) token: gathers its modifiers (see
// gatherModifiers), pops its stack operands, checks constraints, invokes the
// catalog executor, and disposes of the result (spec §4.4).
func (e *Evaluator) execOp(op types.Op, q *queue) (halted bool, err error) {
	sig := op.GetSignature()

	mods, mismatch := e.gatherModifiers(op, sig.Modifiers, q)
	if mismatch.Kind == value.KError {
		e.Stack.Push(mismatch)
		return false, nil
	}

	var arg, arg2 value.Parsed
	switch sig.StackArgs.Arity {
	case 1:
		a, ok := e.Stack.Pop()
		if !ok {
			e.Stack.Push(value.Err(value.NewSimpleError(value.PopEmpty)))
			return false, nil
		}
		arg = a
	case 2:
		a, ok := e.Stack.Pop()
		if !ok {
			e.Stack.Push(value.Err(value.NewSimpleError(value.PopEmpty)))
			return false, nil
		}
		arg = a
		a2, ok := e.Stack.Pop()
		if !ok {
			e.Stack.Push(value.Err(value.NewSimpleError(value.PopEmpty)))
			return false, nil
		}
		arg2 = a2
	}

	var ret value.Parsed
	switch sig.StackArgs.Arity {
	case 0:
		ret = catalog.ExecNullary(op, mods, e)
	case 1:
		if !sig.StackArgs.C1.IsSatisfiedBy(arg.GetType()) {
			e.Stack.Push(value.Err(argMismatchUnary(op, arg, true)))
			return false, nil
		}
		ret = catalog.ExecUnary(op, arg, mods, e)
	case 2:
		lhsOK := sig.StackArgs.C1.IsSatisfiedBy(arg2.GetType())
		rhsOK := sig.StackArgs.C2.IsSatisfiedBy(arg.GetType())
		if !lhsOK || !rhsOK {
			e.Stack.Push(value.Err(argMismatchBinary(op, arg2, arg, lhsOK, rhsOK, true)))
			return false, nil
		}
		ret = catalog.ExecBinary(op, arg2, arg, mods, e)
	}

	if ret.Kind == value.KNum && ret.Num.Kind == value.NumErrorKind {
		ret = value.Err(ret.Num.Err)
	}

	switch ret.Kind {
	case value.KVoid:
		return false, nil
	case value.KQuotation:
		if autoSplices(op) {
			return Run(e, append([]value.Parsed(nil), ret.Quote...))
		}
		e.Stack.Push(ret)
		return false, nil
	default:
		e.Stack.Push(ret)
		return false, nil
	}
}

// autoSplices reports whether op's returned Quotation runs immediately
// rather than sitting on the stack as an ordinary value. if, dup, and
// swap use the Quotation-splice purely as a mechanism to restage the
// stack transparently, and exec's entire purpose is to force a value
// to run now, so all four always splice. each likewise always splices
// — its whole point is to run its modifier once per element for
// effect, not to hand back a reusable program. eval must splice too:
// looking up a function-bound symbol and evaluating it is the entire
// point of `eval`, not a value-producing operation a caller chooses to
// run later. times, map, and foldl instead build a reusable program
// quotation and leave it on the stack for the caller to invoke
// explicitly (spec §8's seed scenarios for times and map both end in
// an explicit `exec`).
func autoSplices(op types.Op) bool {
	switch op {
	case types.OpIf, types.OpDup, types.OpSwap, types.OpExec, types.OpEach, types.OpEvalSymbol:
		return true
	default:
		return false
	}
}

// gatherModifiers collects expected.arity modifier values for op. The
// `'` operator is the one exception to the rule below: its modifier is
// the raw, undispatched token right after it in the program text, read
// straight off q before ordinary Symbol resolution ever sees it — that
// is the only way `'` can quote a name that is already bound to
// something else.
//
// Every other higher-order operator's modifier quotation is written
// immediately before the operator in program order (`{ ... } times`,
// `{ ... } { ... } if`), so by the time the operator is dispatched it
// has already been pushed onto the stack by the ordinary per-token
// dispatch loop. Those modifiers are therefore popped off the stack,
// not read from q, in the same right-to-left order as stack_args: for
// a Binary modifier signature the most-recently-pushed value (the
// "second" slot, e.g. if's else-branch) comes off first.
func (e *Evaluator) gatherModifiers(op types.Op, expected types.Params, q *queue) (catalog.Modifiers, value.Parsed) {
	if op == types.OpAsSymbol {
		m, ok := q.popFront()
		if !ok {
			return catalog.Modifiers{}, value.Err(value.NewSimpleError(value.PrematureEnd))
		}
		if !expected.C1.IsSatisfiedBy(m.GetType()) {
			return catalog.Modifiers{}, value.Err(argMismatchUnary(op, m, false))
		}
		return catalog.UnaryModifier(m), value.Void()
	}

	switch expected.Arity {
	case 0:
		return catalog.NoModifiers(), value.Void()
	case 1:
		m, ok := e.Stack.Pop()
		if !ok {
			return catalog.Modifiers{}, value.Err(value.NewSimpleError(value.PopEmpty))
		}
		if !expected.C1.IsSatisfiedBy(m.GetType()) {
			return catalog.Modifiers{}, value.Err(argMismatchUnary(op, m, false))
		}
		return catalog.UnaryModifier(m), value.Void()
	case 2:
		m2, ok := e.Stack.Pop()
		if !ok {
			return catalog.Modifiers{}, value.Err(value.NewSimpleError(value.PopEmpty))
		}
		m1, ok := e.Stack.Pop()
		if !ok {
			return catalog.Modifiers{}, value.Err(value.NewSimpleError(value.PopEmpty))
		}
		ok1 := expected.C1.IsSatisfiedBy(m1.GetType())
		ok2 := expected.C2.IsSatisfiedBy(m2.GetType())
		if !ok1 || !ok2 {
			return catalog.Modifiers{}, value.Err(argMismatchBinary(op, m1, m2, ok1, ok2, false))
		}
		return catalog.BinaryModifiers(m1, m2), value.Void()
	default:
		panic("bug: modifier arity above 2 is not defined")
	}
}
