// Package catalog is the closed enumeration of bprog built-ins: for
// every types.Op, the executor that implements it once its arity and
// constraints have already been checked by the evaluator (spec §4.2,
// §4.4). Executors are chosen by arity, exactly like the reference's
// exec_nullary/exec_unary/exec_binary split (op.rs).
package catalog

import (
	"github.com/bprog-lang/bprog/pkg/types"
	"github.com/bprog-lang/bprog/pkg/value"
)

// Env is the evaluator's binding table, as seen by the handful of
// built-ins (`:=`, `fun`, `eval`) that read or write bindings. Kept as
// a narrow interface so the catalog package never imports the
// evaluator.
type Env interface {
	Lookup(name string) (val value.Parsed, isFunction bool, ok bool)
	Define(name string, val value.Parsed, isFunction bool)
	// Print and ReadLine are the scoped handles for the `print`/`read`
	// built-ins' standard-out/in access (spec §5: scoped handles with
	// guaranteed release on all exit paths — the evaluator never
	// retains a file handle across invocations).
	Print(s string)
	ReadLine() (string, bool)
}

// Modifiers holds the already-constraint-checked modifier arguments
// the evaluator gathered: popped off the stack for every higher-order
// operator, or read raw from the pending input stream for `'`.
type Modifiers struct {
	Arity  int
	First  value.Parsed
	Second value.Parsed
}

func NoModifiers() Modifiers              { return Modifiers{} }
func UnaryModifier(m value.Parsed) Modifiers { return Modifiers{Arity: 1, First: m} }
func BinaryModifiers(m1, m2 value.Parsed) Modifiers {
	return Modifiers{Arity: 2, First: m1, Second: m2}
}

// ExecNullary, ExecUnary, and ExecBinary dispatch op to its executor.
// Calling the wrong arity for op's signature is a programmer bug
// (spec §4.6 reserves panics for that), never a user-facing error.

func ExecNullary(op types.Op, mods Modifiers, env Env) value.Parsed {
	switch op {
	case types.OpRead:
		return execRead(env)
	case types.OpLoop:
		return value.Err(value.NewSimpleError(value.Undefined))
	case types.OpAsSymbol:
		return execAsSymbol(mods)
	default:
		panic("bug: exec_nullary called for op " + op.String())
	}
}

func ExecUnary(op types.Op, arg value.Parsed, mods Modifiers, env Env) value.Parsed {
	switch op {
	case types.OpPrint:
		return execPrint(arg, env)
	case types.OpParseInteger:
		return execParseInteger(arg)
	case types.OpParseFloat:
		return execParseFloat(arg)
	case types.OpWords:
		return execWords(arg)
	case types.OpNot:
		return execNot(arg)
	case types.OpHead:
		return execHead(arg)
	case types.OpTail:
		return execTail(arg)
	case types.OpEmpty:
		return execEmpty(arg)
	case types.OpLength:
		return arg.Size()
	case types.OpExec:
		return execExec(arg)
	case types.OpIf:
		return execIf(arg, mods)
	case types.OpTimes:
		return execTimes(arg, mods)
	case types.OpMap:
		return execMap(arg, mods)
	case types.OpEach:
		return execEach(arg, mods)
	case types.OpEvalSymbol:
		return execEvalSymbol(arg, env)
	case types.OpDup:
		return execDup(arg)
	case types.OpPop:
		return execPop(arg)
	default:
		panic("bug: exec_unary called for op " + op.String())
	}
}

func ExecBinary(op types.Op, lhs, rhs value.Parsed, mods Modifiers, env Env) value.Parsed {
	switch op {
	case types.OpAdd:
		return execAdd(lhs, rhs)
	case types.OpSub:
		return execSub(lhs, rhs)
	case types.OpMul:
		return execMul(lhs, rhs)
	case types.OpDiv:
		return execDiv(lhs, rhs)
	case types.OpIntDiv:
		return execIntDiv(lhs, rhs)
	case types.OpLT:
		return execLT(lhs, rhs)
	case types.OpGT:
		return execGT(lhs, rhs)
	case types.OpEQ:
		return execEQ(lhs, rhs)
	case types.OpAnd:
		return execAnd(lhs, rhs)
	case types.OpOr:
		return execOr(lhs, rhs)
	case types.OpCons:
		return execCons(lhs, rhs)
	case types.OpAppend:
		return execAppend(lhs, rhs)
	case types.OpSwap:
		return execSwap(lhs, rhs)
	case types.OpFoldl:
		return execFoldl(lhs, rhs, mods)
	case types.OpAssign:
		return execAssign(lhs, rhs, env)
	case types.OpAssignFunc:
		return execAssignFunc(lhs, rhs, env)
	default:
		panic("bug: exec_binary called for op " + op.String())
	}
}
