package catalog

import (
	"github.com/bprog-lang/bprog/pkg/types"
	"github.com/bprog-lang/bprog/pkg/value"
)

// execAssign establishes a non-function binding: lhs names the symbol,
// rhs is stored as-is and pushed back verbatim on every later lookup.
func execAssign(lhs, rhs value.Parsed, env Env) value.Parsed {
	env.Define(lhs.Sym, rhs, false)
	return value.Void()
}

// execAssignFunc establishes a function binding: lhs names the symbol,
// rhs is the quotation body run on every later lookup of that name.
func execAssignFunc(lhs, rhs value.Parsed, env Env) value.Parsed {
	env.Define(lhs.Sym, rhs, true)
	return value.Void()
}

// execAsSymbol turns whatever raw token the evaluator gathered as `'`'s
// modifier into a literal Symbol, bypassing the usual binding-table
// resolution those tokens would otherwise get (spec §4.2's `'` row).
// An already-Symbol token is passed through unchanged; anything else
// (an operator name, a literal) is quoted via its Display form.
func execAsSymbol(mods Modifiers) value.Parsed {
	raw := mods.First
	if raw.Kind == value.KSymbol {
		return raw
	}
	return value.Symbol(raw.String())
}

// execEvalSymbol looks the symbol up in the binding table and resolves
// it exactly like the evaluator's general Symbol-dispatch rule: a
// function binding's body is returned as a Quotation so the caller's
// splice mechanism runs it against the live stack, a value binding is
// returned as-is to be pushed, and an unbound symbol is pushed back
// literally.
func execEvalSymbol(arg value.Parsed, env Env) value.Parsed {
	val, isFunction, ok := env.Lookup(arg.Sym)
	if !ok {
		return arg
	}
	if isFunction {
		return val.Coerce(types.TQuotation)
	}
	if val.Kind == value.KQuotation {
		// Wrapped so the splice pushes the quotation instead of running it.
		return value.Quotation([]value.Parsed{val})
	}
	return val
}
