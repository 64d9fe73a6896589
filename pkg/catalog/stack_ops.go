package catalog

import "github.com/bprog-lang/bprog/pkg/value"

// execDup returns a two-element Quotation that, once spliced, pushes
// arg twice — the quotation-splice mechanism is how a unary executor
// puts more than one value back on the stack (spec §4.4).
func execDup(arg value.Parsed) value.Parsed {
	return value.Quotation([]value.Parsed{arg, arg})
}

// execSwap returns a Quotation that restages the stack with the two
// operands in reverse order. lhs is the deeper (left) operand, rhs the
// shallower (right, most-recently-pushed) operand.
func execSwap(lhs, rhs value.Parsed) value.Parsed {
	return value.Quotation([]value.Parsed{rhs, lhs})
}

func execPop(_ value.Parsed) value.Parsed {
	return value.Void()
}
