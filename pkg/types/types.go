// Package types defines bprog's type and constraint discipline: the
// exact type tags every value carries, the typeclass-style constraints
// a built-in's operands must satisfy, and the Signature describing a
// built-in's arity and return type.
package types

import "fmt"

// Type is the exact runtime tag of a Parsed value. Unlike Constraint,
// a Type never describes a typeclass — it is what GetType returns.
type Type int

const (
	Void Type = iota
	TString
	TList
	TInteger
	TFloat
	TBool
	TQuotation
	TError
	TSymbol
	TFunction
)

func (t Type) String() string {
	switch t {
	case Void:
		return "Void"
	case TString:
		return "String"
	case TList:
		return "List"
	case TInteger:
		return "Integer"
	case TFloat:
		return "Float"
	case TBool:
		return "Bool"
	case TQuotation:
		return "Quotation"
	case TError:
		return "Error"
	case TSymbol:
		return "Symbol"
	case TFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Constraint is either an exact type tag or a typeclass. A built-in's
// Signature names the constraints its operands and return value must
// satisfy, never concrete types directly (other than the exact-tag
// constraints, which coincide one-to-one with a Type).
type Constraint int

const (
	// Exact types
	CVoid Constraint = iota
	CString
	CList
	CInteger
	CFloat
	CBool
	CQuotation
	CError
	CSymbol
	CFunction

	// Typeclasses
	CAny
	COrd
	CEq
	CNum
	CFunctor
	CBoolean
	CEnum
	CDisplay
	CExecutable
	CSized
)

func (c Constraint) String() string {
	switch c {
	case CVoid:
		return "Void"
	case CString:
		return "String"
	case CList:
		return "List"
	case CInteger:
		return "Integer"
	case CFloat:
		return "Float"
	case CBool:
		return "Bool"
	case CQuotation:
		return "Quotation"
	case CError:
		return "Error"
	case CSymbol:
		return "Symbol"
	case CFunction:
		return "Function"
	case CAny:
		return "Any"
	case COrd:
		return "Ord"
	case CEq:
		return "Eq"
	case CNum:
		return "Num"
	case CFunctor:
		return "Functor"
	case CBoolean:
		return "Boolean"
	case CEnum:
		return "Enum"
	case CDisplay:
		return "Display"
	case CExecutable:
		return "Executable"
	case CSized:
		return "Sized"
	default:
		return "Unknown"
	}
}

// typeClassMembership is the authoritative implementation table from
// the type/constraint discipline: which typeclasses each exact Type
// implements.
var typeClassMembership = map[Type]map[Constraint]bool{
	TInteger:   {CAny: true, COrd: true, CEq: true, CNum: true, CBoolean: true, CDisplay: true},
	TFloat:     {CAny: true, COrd: true, CEq: true, CNum: true, CBoolean: true, CDisplay: true},
	TBool:      {CAny: true, COrd: true, CEq: true, CNum: true, CBoolean: true, CEnum: true, CDisplay: true},
	TString:    {CAny: true, CEq: true, CBoolean: true, CDisplay: true, CSized: true},
	TList:      {CAny: true, CEq: true, CFunctor: true, CBoolean: true, CDisplay: true, CSized: true},
	TQuotation: {CAny: true, CBoolean: true, CDisplay: true, CExecutable: true, CSized: true},
	TSymbol:    {CAny: true, CDisplay: true},
	TFunction:  {CAny: true, CExecutable: true},
	TError:     {CAny: true, CBoolean: true, CDisplay: true},
	Void:       {CAny: true, CEq: true, CDisplay: true},
}

// exactConstraintFor maps an exact-tag Constraint onto the Type it pins.
var exactConstraintFor = map[Constraint]Type{
	CVoid:      Void,
	CString:    TString,
	CList:      TList,
	CInteger:   TInteger,
	CFloat:     TFloat,
	CBool:      TBool,
	CQuotation: TQuotation,
	CError:     TError,
	CSymbol:    TSymbol,
	CFunction:  TFunction,
}

// IsSatisfiedBy reports whether a value of type t satisfies constraint
// c: t's exact tag equals c, or t implements the typeclass c names.
func (c Constraint) IsSatisfiedBy(t Type) bool {
	if exact, ok := exactConstraintFor[c]; ok {
		return exact == t
	}
	return typeClassMembership[t][c]
}

// Params is the arity of a Signature's stack arguments or modifiers:
// Nullary, Unary(c), or Binary(c1, c2).
type Params struct {
	Arity int // 0, 1, or 2
	C1    Constraint
	C2    Constraint
}

func Nullary() Params                      { return Params{Arity: 0} }
func Unary(c Constraint) Params            { return Params{Arity: 1, C1: c} }
func Binary(c1, c2 Constraint) Params      { return Params{Arity: 2, C1: c1, C2: c2} }
func HomogenousBinary(c Constraint) Params { return Binary(c, c) }

func (p Params) String() string {
	switch p.Arity {
	case 0:
		return "Void"
	case 1:
		return p.C1.String()
	case 2:
		return fmt.Sprintf("%s, %s", p.C1, p.C2)
	default:
		return "?"
	}
}

// Signature is the declared arity/constraint contract of a built-in:
// how many values it pops from the stack as ordinary operands, how
// many additional modifier values (the quotations a combinator like
// `if`/`times`/`map` runs) it requires, and what its return must
// satisfy. See pkg/eval's gatherModifiers for where modifiers actually
// come from at dispatch time.
type Signature struct {
	StackArgs Params
	Modifiers Params
	Ret       Constraint
}

func (s Signature) String() string {
	return fmt.Sprintf("(%s -> %s)", s.StackArgs, s.Ret)
}

func NewNullarySig(ret Constraint) Signature {
	return Signature{StackArgs: Nullary(), Modifiers: Nullary(), Ret: ret}
}

func NewUnarySig(arg, ret Constraint) Signature {
	return Signature{StackArgs: Unary(arg), Modifiers: Nullary(), Ret: ret}
}

func NewHomogenousBinarySig(arg, ret Constraint) Signature {
	return Signature{StackArgs: HomogenousBinary(arg), Modifiers: Nullary(), Ret: ret}
}

func NewHeterogeneousBinarySig(c1, c2, ret Constraint) Signature {
	return Signature{StackArgs: Binary(c1, c2), Modifiers: Nullary(), Ret: ret}
}
