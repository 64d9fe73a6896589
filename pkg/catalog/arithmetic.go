package catalog

import "github.com/bprog-lang/bprog/pkg/value"

// toNumeric coerces an operand already known to satisfy the Num
// typeclass (Integer, Float, or Bool) into a Numeric, per the
// Bool+Integer -> Integer / Bool+Float -> Float promotion rule of
// spec §4.5.
func toNumeric(p value.Parsed) value.Numeric {
	switch p.Kind {
	case value.KNum:
		return p.Num
	case value.KBool:
		if p.Bool {
			return value.NewInteger(1)
		}
		return value.NewInteger(0)
	default:
		return value.NewNumError(value.NewSimpleError(value.TypeMismatch))
	}
}

// execAdd implements the overloaded `+`: numeric addition, string
// concatenation, list concatenation, and prepending a non-list onto a
// list. Grounded on the reference's Add impl for Parsed (parsed.rs).
func execAdd(lhs, rhs value.Parsed) value.Parsed {
	if lhs.Kind == value.KBool || rhs.Kind == value.KBool {
		return value.Num(value.Add(toNumeric(lhs), toNumeric(rhs)))
	}
	return lhs.Add(rhs)
}

func execSub(lhs, rhs value.Parsed) value.Parsed {
	return value.Num(value.Sub(toNumeric(lhs), toNumeric(rhs)))
}

func execMul(lhs, rhs value.Parsed) value.Parsed {
	return value.Num(value.Mul(toNumeric(lhs), toNumeric(rhs)))
}

func execDiv(lhs, rhs value.Parsed) value.Parsed {
	return value.Num(value.Div(toNumeric(lhs), toNumeric(rhs)))
}

func execIntDiv(lhs, rhs value.Parsed) value.Parsed {
	return value.Num(value.IntDiv(toNumeric(lhs), toNumeric(rhs)))
}

func execLT(lhs, rhs value.Parsed) value.Parsed { return value.Bool(lhs.Less(rhs)) }
func execGT(lhs, rhs value.Parsed) value.Parsed { return value.Bool(lhs.Greater(rhs)) }
func execEQ(lhs, rhs value.Parsed) value.Parsed { return value.Bool(lhs.Equal(rhs)) }

func execAnd(lhs, rhs value.Parsed) value.Parsed {
	return value.Bool(lhs.IsTrue() && rhs.IsTrue())
}

func execOr(lhs, rhs value.Parsed) value.Parsed {
	return value.Bool(lhs.IsTrue() || rhs.IsTrue())
}

// execNot implements numeric negation for numbers and logical negation
// for booleans — both satisfy the `not` built-in's Unary(Num)
// signature since Bool implements the Num typeclass.
func execNot(arg value.Parsed) value.Parsed {
	if arg.Kind == value.KBool {
		return value.Bool(!arg.Bool)
	}
	return value.Num(value.Neg(toNumeric(arg)))
}
