package eval

import (
	"fmt"
	"strings"

	"github.com/bprog-lang/bprog/pkg/types"
	"github.com/bprog-lang/bprog/pkg/value"
)

// argMismatchUnary builds a TypeMismatch diagnostic naming the
// offending operand's type and value, the failing operator, and its
// full signature. stackArg selects whether the mismatched operand was
// a stack argument or a modifier, which only changes which half of
// the printed signature is highlighted. Grounded on the reference's
// arg_mismatch (stack_error.rs), with the ANSI color codes dropped.
func argMismatchUnary(op types.Op, actual value.Parsed, stackArg bool) value.ErrorKind {
	sig := op.GetSignature()
	var expected types.Params
	if stackArg {
		expected = sig.StackArgs
	} else {
		expected = sig.Modifiers
	}

	msg := fmt.Sprintf(
		"err: argument of type %s with value %s does not satisfy constraint in the function %s, with signature",
		actual.GetType(), actual, op,
	)
	if stackArg {
		msg += fmt.Sprintf(" <(%s)::(%s) -> %s>.", expected.C1, sig.Modifiers, sig.Ret)
	} else {
		msg += fmt.Sprintf(" <(%s)::(%s) -> %s>.", sig.StackArgs, expected.C1, sig.Ret)
	}
	return value.NewTypeMismatch(msg)
}

// argMismatchBinary mirrors argMismatchUnary for a two-operand
// dispatch, naming whichever of the two operands (or both) failed
// its constraint.
func argMismatchBinary(op types.Op, first, second value.Parsed, firstOK, secondOK bool, stackArg bool) value.ErrorKind {
	sig := op.GetSignature()
	var expected types.Params
	if stackArg {
		expected = sig.StackArgs
	} else {
		expected = sig.Modifiers
	}

	lhsBad, rhsBad := !firstOK, !secondOK

	var b strings.Builder
	b.WriteString("err: ")
	if lhsBad {
		fmt.Fprintf(&b, "first argument of type %s with value of %s ", first.GetType(), first)
	}
	if lhsBad && rhsBad {
		b.WriteString("and ")
	}
	if rhsBad {
		fmt.Fprintf(&b, "second argument of type %s with value %s ", second.GetType(), second)
	}
	verb := "does"
	if lhsBad && rhsBad {
		verb = "do"
	}
	fmt.Fprintf(&b, "%s not match constraints in the function %s, with signature ", verb, op)

	if stackArg {
		fmt.Fprintf(&b, "<(%s, %s)::(%s) -> %s)>", expected.C1, expected.C2, sig.Modifiers, sig.Ret)
	} else {
		fmt.Fprintf(&b, "<(%s)::(%s, %s) -> %s)>", sig.StackArgs, expected.C1, expected.C2, sig.Ret)
	}
	return value.NewTypeMismatch(b.String())
}
