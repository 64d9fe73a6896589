package value

import (
	"fmt"
	"math/big"
)

// NumKind tags which alternative of Numeric is populated.
type NumKind int

const (
	NumInteger NumKind = iota
	NumFloat
	NumErrorKind
)

// Numeric backs Parsed's Num variant. Integer arithmetic is performed
// in exact arbitrary-precision arithmetic via math/big.Int — spec §9's
// corrected behavior relative to the reference, which silently routed
// integer math through float64 and lost precision past 2^53. Go's
// standard library is the natural home for this: no arbitrary-precision
// integer type ships in the language itself, and no third-party bignum
// library appears anywhere in the retrieved corpus, so there is no
// ecosystem alternative to ground this on (see DESIGN.md).
type Numeric struct {
	Kind NumKind
	Int  *big.Int
	Flt  float64
	Err  ErrorKind
}

func NewInteger(i int64) Numeric       { return Numeric{Kind: NumInteger, Int: big.NewInt(i)} }
func NewBigInteger(i *big.Int) Numeric { return Numeric{Kind: NumInteger, Int: i} }
func NewFloat(f float64) Numeric       { return Numeric{Kind: NumFloat, Flt: f} }
func NewNumError(e ErrorKind) Numeric  { return Numeric{Kind: NumErrorKind, Err: e} }

func (n Numeric) IsTrue() bool {
	switch n.Kind {
	case NumInteger:
		return n.Int.Sign() != 0
	case NumFloat:
		return n.Flt != 0.0
	default:
		return false
	}
}

// AsFloat coerces Integer to Float; Float and NumError pass through.
func (n Numeric) AsFloat() Numeric {
	if n.Kind == NumInteger {
		f, _ := new(big.Float).SetInt(n.Int).Float64()
		return NewFloat(f)
	}
	return n
}

// AsInteger coerces Float to Integer via truncation; Integer and
// NumError pass through.
func (n Numeric) AsInteger() Numeric {
	if n.Kind == NumFloat {
		bi, _ := big.NewFloat(n.Flt).Int(nil)
		return NewBigInteger(bi)
	}
	return n
}

func (n Numeric) String() string {
	switch n.Kind {
	case NumInteger:
		return n.Int.String()
	case NumFloat:
		if n.Flt == float64(int64(n.Flt)) {
			return fmt.Sprintf("%d.0", int64(n.Flt))
		}
		return fmt.Sprintf("%g", n.Flt)
	case NumErrorKind:
		return n.Err.String()
	default:
		return "?"
	}
}

func (n Numeric) Equal(o Numeric) bool {
	switch {
	case n.Kind == NumErrorKind && o.Kind == NumErrorKind:
		return n.Err.Equal(o.Err)
	case n.Kind == NumInteger && o.Kind == NumInteger:
		return n.Int.Cmp(o.Int) == 0
	case n.Kind == NumFloat && o.Kind == NumFloat:
		return n.Flt == o.Flt
	case n.Kind == NumInteger && o.Kind == NumFloat:
		f, _ := new(big.Float).SetInt(n.Int).Float64()
		return f == o.Flt
	case n.Kind == NumFloat && o.Kind == NumInteger:
		f, _ := new(big.Float).SetInt(o.Int).Float64()
		return n.Flt == f
	default:
		return false
	}
}

// Less implements numeric ordering with float promotion (spec §4.5).
func (n Numeric) Less(o Numeric) bool {
	nf, of := n.AsFloat(), o.AsFloat()
	if nf.Kind != NumFloat || of.Kind != NumFloat {
		return false
	}
	return nf.Flt < of.Flt
}

func (n Numeric) Greater(o Numeric) bool {
	nf, of := n.AsFloat(), o.AsFloat()
	if nf.Kind != NumFloat || of.Kind != NumFloat {
		return false
	}
	return nf.Flt > of.Flt
}

// binaryNumerical implements the promotion table from spec §4.5:
// Integer op Integer stays exact Integer arithmetic; any Float operand
// promotes both sides to Float; a NumError operand on either side
// propagates.
func binaryNumerical(lhs, rhs Numeric, intOp func(a, b *big.Int) (*big.Int, ErrorKind, bool), fltOp func(a, b float64) (float64, ErrorKind, bool)) Numeric {
	if lhs.Kind == NumErrorKind {
		return lhs
	}
	if rhs.Kind == NumErrorKind {
		return rhs
	}
	if lhs.Kind == NumInteger && rhs.Kind == NumInteger {
		result, errKind, ok := intOp(lhs.Int, rhs.Int)
		if !ok {
			return NewNumError(errKind)
		}
		return NewBigInteger(result)
	}
	lf, rf := lhs.AsFloat(), rhs.AsFloat()
	result, errKind, ok := fltOp(lf.Flt, rf.Flt)
	if !ok {
		return NewNumError(errKind)
	}
	return NewFloat(result)
}

func Add(lhs, rhs Numeric) Numeric {
	return binaryNumerical(lhs, rhs,
		func(a, b *big.Int) (*big.Int, ErrorKind, bool) { return new(big.Int).Add(a, b), ErrorKind{}, true },
		func(a, b float64) (float64, ErrorKind, bool) { return a + b, ErrorKind{}, true })
}

func Sub(lhs, rhs Numeric) Numeric {
	return binaryNumerical(lhs, rhs,
		func(a, b *big.Int) (*big.Int, ErrorKind, bool) { return new(big.Int).Sub(a, b), ErrorKind{}, true },
		func(a, b float64) (float64, ErrorKind, bool) { return a - b, ErrorKind{}, true })
}

func Mul(lhs, rhs Numeric) Numeric {
	return binaryNumerical(lhs, rhs,
		func(a, b *big.Int) (*big.Int, ErrorKind, bool) { return new(big.Int).Mul(a, b), ErrorKind{}, true },
		func(a, b float64) (float64, ErrorKind, bool) { return a * b, ErrorKind{}, true })
}

// Div always produces a Float per spec §4.2's built-in table, even
// for two Integer operands.
func Div(lhs, rhs Numeric) Numeric {
	if lhs.Kind == NumErrorKind {
		return lhs
	}
	if rhs.Kind == NumErrorKind {
		return rhs
	}
	lf, rf := lhs.AsFloat(), rhs.AsFloat()
	if rf.Flt == 0.0 {
		return NewNumError(NewSimpleError(ZeroDiv))
	}
	return NewFloat(lf.Flt / rf.Flt)
}

// IntDiv implements the `div` built-in: exact integer division,
// truncating toward zero.
func IntDiv(lhs, rhs Numeric) Numeric {
	if lhs.Kind == NumErrorKind {
		return lhs
	}
	if rhs.Kind == NumErrorKind {
		return rhs
	}
	li, ri := lhs.AsInteger(), rhs.AsInteger()
	if ri.Int.Sign() == 0 {
		return NewNumError(NewSimpleError(ZeroDiv))
	}
	return NewBigInteger(new(big.Int).Quo(li.Int, ri.Int))
}

func Neg(n Numeric) Numeric {
	switch n.Kind {
	case NumInteger:
		return NewBigInteger(new(big.Int).Neg(n.Int))
	case NumFloat:
		return NewFloat(-n.Flt)
	default:
		return n
	}
}
