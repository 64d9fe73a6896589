package catalog

import (
	"github.com/bprog-lang/bprog/pkg/types"
	"github.com/bprog-lang/bprog/pkg/value"
)

// execExec forces arg into Quotation shape so the caller's Quotation ->
// splice rule runs it immediately, rather than pushing it as a value.
func execExec(arg value.Parsed) value.Parsed {
	q := arg.Coerce(types.TQuotation)
	if q.Kind != value.KQuotation {
		return q
	}
	return value.Quotation(q.Quote)
}

// execIf picks the then- or else-modifier by arg's truth value and
// coerces the chosen branch to a Quotation, so it splices into the
// input stream exactly like exec would.
func execIf(arg value.Parsed, mods Modifiers) value.Parsed {
	branch := mods.Second
	if arg.IsTrue() {
		branch = mods.First
	}
	return branch.Coerce(types.TQuotation)
}

// execTimes builds a quotation that repeats the modifier quotation
// arg.Num times, each repetition followed by an Exec so the splice
// mechanism runs every copy in turn. arg itself is re-pushed at the
// front of the built quotation: times only consumes it to learn the
// repeat count, it is not data the operator itself is entitled to
// remove from play, and the repeated body is what decides whether (or
// how) the count value gets used.
func execTimes(arg value.Parsed, mods Modifiers) value.Parsed {
	if arg.Kind != value.KNum || arg.Num.Kind != value.NumInteger {
		return value.Err(value.NewSimpleError(value.TypeMismatch))
	}
	n := arg.Num.Int.Int64()
	quot := mods.First.Coerce(types.TQuotation)
	out := make([]value.Parsed, 0, 1+n*2)
	out = append(out, arg)
	for i := int64(0); i < n; i++ {
		out = append(out, quot, value.Function(types.OpExec))
	}
	return value.Quotation(out)
}

// execMap builds a quotation that, once spliced, rebuilds the mapped
// list element by element: start from an empty List, and for every
// source element push it, run the modifier on it, wrap the single
// result back into a list with cons, then append that onto the
// accumulator built so far.
func execMap(arg value.Parsed, mods Modifiers) value.Parsed {
	elems := arg.List
	out := make([]value.Parsed, 0, 1+len(elems)*6)
	out = append(out, value.List(nil))
	quot := mods.First.Coerce(types.TQuotation)
	for _, elem := range elems {
		out = append(out,
			elem,
			quot,
			value.Function(types.OpExec),
			value.List(nil),
			value.Function(types.OpCons),
			value.Function(types.OpAppend),
		)
	}
	return value.Quotation(out)
}

// execEach builds a quotation that, once spliced, pushes every source
// element in turn followed immediately by the modifier quotation and
// an Exec, so the modifier runs once per element for its side effects
// or return value.
func execEach(arg value.Parsed, mods Modifiers) value.Parsed {
	elems := arg.List
	out := make([]value.Parsed, 0, len(elems)*3)
	quot := mods.First.Coerce(types.TQuotation)
	for _, elem := range elems {
		out = append(out, elem, quot, value.Function(types.OpExec))
	}
	return value.Quotation(out)
}

// execFoldl builds a quotation that seeds the accumulator with rhs,
// then for every element of the lhs list pushes the element followed
// by the modifier quotation and an Exec — the modifier is responsible
// for combining the running accumulator (already on the stack) with
// the freshly pushed element.
func execFoldl(lhs, rhs value.Parsed, mods Modifiers) value.Parsed {
	elems := lhs.List
	out := make([]value.Parsed, 0, 1+len(elems)*3)
	out = append(out, rhs)
	quot := mods.First.Coerce(types.TQuotation)
	for _, elem := range elems {
		out = append(out, elem, quot, value.Function(types.OpExec))
	}
	return value.Quotation(out)
}
