package value

import (
	"fmt"
	"strings"

	"github.com/bprog-lang/bprog/pkg/types"
)

// Kind tags which alternative of Parsed is populated. Parsed is a
// closed tagged variant with explicit discriminants rather than an
// interface — dispatch on the value universe is a switch over Kind,
// never virtual method dispatch, keeping the evaluator
// allocation-sparse (spec §9 Design Notes).
type Kind int

const (
	KVoid Kind = iota
	KNum
	KString
	KBool
	KSymbol
	KList
	KQuotation
	KError
	KFunction
)

// Parsed is the tagged value universe every bprog stack slot, list
// element, and quotation item belongs to.
type Parsed struct {
	Kind  Kind
	Num   Numeric
	Str   string
	Bool  bool
	Sym   string
	List  []Parsed
	Quote []Parsed
	Err   ErrorKind
	Op    types.Op
}

func Void() Parsed                  { return Parsed{Kind: KVoid} }
func Num(n Numeric) Parsed          { return Parsed{Kind: KNum, Num: n} }
func Str(s string) Parsed           { return Parsed{Kind: KString, Str: s} }
func Bool(b bool) Parsed            { return Parsed{Kind: KBool, Bool: b} }
func Symbol(s string) Parsed        { return Parsed{Kind: KSymbol, Sym: s} }
func List(xs []Parsed) Parsed       { return Parsed{Kind: KList, List: xs} }
func Quotation(xs []Parsed) Parsed  { return Parsed{Kind: KQuotation, Quote: xs} }
func Err(e ErrorKind) Parsed        { return Parsed{Kind: KError, Err: e} }
func Function(op types.Op) Parsed   { return Parsed{Kind: KFunction, Op: op} }

// GetType returns the exact runtime Type of p.
func (p Parsed) GetType() types.Type {
	switch p.Kind {
	case KVoid:
		return types.Void
	case KNum:
		switch p.Num.Kind {
		case NumInteger:
			return types.TInteger
		case NumFloat:
			return types.TFloat
		default:
			return types.TError
		}
	case KString:
		return types.TString
	case KBool:
		return types.TBool
	case KSymbol:
		return types.TSymbol
	case KList:
		return types.TList
	case KQuotation:
		return types.TQuotation
	case KError:
		return types.TError
	case KFunction:
		return types.TFunction
	default:
		return types.Void
	}
}

// IsTrue defines which Parsed values are considered true by boolean
// coercion (used by `&&`, `||`, and `if`'s condition).
func (p Parsed) IsTrue() bool {
	switch p.Kind {
	case KNum:
		return p.Num.IsTrue()
	case KBool:
		return p.Bool
	case KString:
		return p.Str != ""
	case KList:
		return len(p.List) != 0
	case KQuotation:
		return len(p.Quote) != 0
	case KError:
		return false
	default:
		return false
	}
}

// Size implements the Sized typeclass: String, List, and Quotation
// report their element count as an Integer; anything else is not
// sized.
func (p Parsed) Size() Parsed {
	switch p.Kind {
	case KString:
		return Num(NewInteger(int64(len([]rune(p.Str)))))
	case KList:
		return Num(NewInteger(int64(len(p.List))))
	case KQuotation:
		return Num(NewInteger(int64(len(p.Quote))))
	default:
		return Err(NewSimpleError(TypeMismatch))
	}
}

// Equal implements the Eq typeclass: structural equality for
// booleans, strings, lists, quotations, and errors; cross-numeric
// equality with float coercion for numbers (5 == 5.0 is true).
func (p Parsed) Equal(o Parsed) bool {
	switch {
	case p.Kind == KNum && o.Kind == KNum:
		return p.Num.Equal(o.Num)
	case p.Kind == KString && o.Kind == KString:
		return p.Str == o.Str
	case p.Kind == KBool && o.Kind == KBool:
		return p.Bool == o.Bool
	case p.Kind == KList && o.Kind == KList:
		return equalSlices(p.List, o.List)
	case p.Kind == KQuotation && o.Kind == KQuotation:
		return equalSlices(p.Quote, o.Quote)
	case p.Kind == KError && o.Kind == KError:
		return p.Err.Equal(o.Err)
	case p.Kind == KVoid && o.Kind == KVoid:
		return true
	default:
		return false
	}
}

func equalSlices(a, b []Parsed) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Less/Greater implement the Ord typeclass via Numeric's float-promoted
// comparison. Only numeric and boolean operands are ordered; anything
// else reports false (the caller has already checked the Ord
// constraint before calling this).
func (p Parsed) Less(o Parsed) bool    { return p.asOrderable().Less(o.asOrderable()) }
func (p Parsed) Greater(o Parsed) bool { return p.asOrderable().Greater(o.asOrderable()) }

func (p Parsed) asOrderable() Numeric {
	switch p.Kind {
	case KNum:
		return p.Num
	case KBool:
		if p.Bool {
			return NewInteger(1)
		}
		return NewInteger(0)
	default:
		return NewNumError(NewSimpleError(TypeMismatch))
	}
}

// Add implements `+`: numeric addition, string concatenation, list
// concatenation, and non-list-prepended-to-list — the overloaded
// behavior spec §4.2 assigns to the single `+` built-in, grounded on
// the reference's Add impl for Parsed (parsed.rs).
func (p Parsed) Add(o Parsed) Parsed {
	switch {
	case p.Kind == KNum && o.Kind == KNum:
		return Num(Add(p.Num, o.Num))
	case p.Kind == KString && o.Kind == KString:
		return Str(p.Str + o.Str)
	case p.Kind == KList && o.Kind == KList:
		return List(append(append([]Parsed{}, p.List...), o.List...))
	case o.Kind == KList:
		return List(append([]Parsed{p}, o.List...))
	default:
		return Err(NewSimpleError(TypeMismatch))
	}
}

// Coerce attempts to reinterpret p as target, used where a modifier or
// return value must be forced into Quotation/Integer/Float form (e.g.
// `if`'s branches, `exec`'s argument).
func (p Parsed) Coerce(target types.Type) Parsed {
	switch target {
	case types.TQuotation:
		if p.Kind == KQuotation {
			return p
		}
		return Err(NewSimpleError(InvalidCoercion))
	case types.TInteger:
		if p.Kind == KNum {
			return Num(p.Num.AsInteger())
		}
		return Err(NewSimpleError(InvalidCoercion))
	case types.TFloat:
		if p.Kind == KNum {
			return Num(p.Num.AsFloat())
		}
		return Err(NewSimpleError(InvalidCoercion))
	default:
		return p
	}
}

// String implements Display for every Parsed variant, used both by
// the `print` built-in and by diagnostic messages.
func (p Parsed) String() string {
	switch p.Kind {
	case KVoid:
		return "Void"
	case KNum:
		return p.Num.String()
	case KString:
		return p.Str
	case KBool:
		if p.Bool {
			return "True"
		}
		return "False"
	case KSymbol:
		return p.Sym
	case KList:
		parts := make([]string, len(p.List))
		for i, v := range p.List {
			parts[i] = v.String()
		}
		return "[ " + strings.Join(parts, " ") + " ]"
	case KQuotation:
		parts := make([]string, len(p.Quote))
		for i, v := range p.Quote {
			parts[i] = v.String()
		}
		return "{ " + strings.Join(parts, " ") + " }"
	case KError:
		return p.Err.String()
	case KFunction:
		return p.Op.String()
	default:
		return fmt.Sprintf("<unknown kind %d>", p.Kind)
	}
}
