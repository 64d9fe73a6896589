package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSatisfiedByExactTag(t *testing.T) {
	assert.True(t, CInteger.IsSatisfiedBy(TInteger))
	assert.False(t, CInteger.IsSatisfiedBy(TFloat))
}

func TestIsSatisfiedByTypeclass(t *testing.T) {
	tests := []struct {
		name       string
		constraint Constraint
		typ        Type
		want       bool
	}{
		{"integer satisfies Num", CNum, TInteger, true},
		{"string does not satisfy Num", CNum, TString, false},
		{"quotation satisfies Executable", CExecutable, TQuotation, true},
		{"function satisfies Executable", CExecutable, TFunction, true},
		{"symbol does not satisfy Executable", CExecutable, TSymbol, false},
		{"list satisfies Functor", CFunctor, TList, true},
		{"quotation does not satisfy Functor", CFunctor, TQuotation, false},
		{"bool satisfies Enum", CEnum, TBool, true},
		{"integer does not satisfy Enum", CEnum, TInteger, false},
		{"everything satisfies Any", CAny, TError, true},
		{"void satisfies Eq", CEq, Void, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.constraint.IsSatisfiedBy(tc.typ))
		})
	}
}

func TestParamsConstructors(t *testing.T) {
	assert.Equal(t, Params{Arity: 0}, Nullary())
	assert.Equal(t, Params{Arity: 1, C1: CInteger}, Unary(CInteger))
	assert.Equal(t, Params{Arity: 2, C1: CNum, C2: CNum}, HomogenousBinary(CNum))
	assert.Equal(t, Params{Arity: 2, C1: CSymbol, C2: CAny}, Binary(CSymbol, CAny))
}

func TestSignatureConstructorsDefaultToNullaryModifiers(t *testing.T) {
	sig := NewUnarySig(CInteger, CInteger)
	assert.Equal(t, Nullary(), sig.Modifiers)
	assert.Equal(t, Unary(CInteger), sig.StackArgs)
	assert.Equal(t, CInteger, sig.Ret)
}
