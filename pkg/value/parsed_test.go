package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bprog-lang/bprog/pkg/types"
)

func TestAddIsOverloadedBySide(t *testing.T) {
	tests := []struct {
		name string
		a, b Parsed
		want string
	}{
		{"numbers", Num(NewInteger(1)), Num(NewInteger(2)), "3"},
		{"strings", Str("foo"), Str("bar"), "foobar"},
		{"lists", List([]Parsed{Num(NewInteger(1))}), List([]Parsed{Num(NewInteger(2))}), "[ 1 2 ]"},
		{"value onto list", Num(NewInteger(0)), List([]Parsed{Num(NewInteger(1))}), "[ 0 1 ]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Add(tc.b).String())
		})
	}
}

func TestAddMismatchedKindsIsTypeMismatch(t *testing.T) {
	result := Str("x").Add(Num(NewInteger(1)))
	assert.Equal(t, KError, result.Kind)
	assert.Equal(t, TypeMismatch, result.Err.Tag)
}

func TestIsTrueByKind(t *testing.T) {
	assert.True(t, Bool(true).IsTrue())
	assert.False(t, Bool(false).IsTrue())
	assert.True(t, Num(NewInteger(1)).IsTrue())
	assert.False(t, Num(NewInteger(0)).IsTrue())
	assert.True(t, Str("x").IsTrue())
	assert.False(t, Str("").IsTrue())
	assert.False(t, List(nil).IsTrue())
	assert.True(t, List([]Parsed{Void()}).IsTrue())
}

func TestSizeOnlyDefinedForSizedKinds(t *testing.T) {
	assert.Equal(t, "3", List([]Parsed{Void(), Void(), Void()}).Size().String())
	assert.Equal(t, "5", Str("hello").Size().String())

	result := Num(NewInteger(1)).Size()
	assert.Equal(t, KError, result.Kind)
	assert.Equal(t, TypeMismatch, result.Err.Tag)
}

func TestCoerceToQuotationRejectsNonQuotation(t *testing.T) {
	result := Num(NewInteger(1)).Coerce(types.TQuotation)
	assert.Equal(t, KError, result.Kind)
	assert.Equal(t, InvalidCoercion, result.Err.Tag)

	q := Quotation([]Parsed{Num(NewInteger(1))})
	assert.Equal(t, q, q.Coerce(types.TQuotation))
}

func TestEqualStructurallyComparesLists(t *testing.T) {
	a := List([]Parsed{Num(NewInteger(1)), Num(NewInteger(2))})
	b := List([]Parsed{Num(NewInteger(1)), Num(NewFloat(2.0))})
	assert.True(t, a.Equal(b))

	c := List([]Parsed{Num(NewInteger(1))})
	assert.False(t, a.Equal(c))
}

func TestStringFormatsBracketsAndBraces(t *testing.T) {
	assert.Equal(t, "[ 1 2 ]", List([]Parsed{Num(NewInteger(1)), Num(NewInteger(2))}).String())
	assert.Equal(t, "{ 1 2 }", Quotation([]Parsed{Num(NewInteger(1)), Num(NewInteger(2))}).String())
	assert.Equal(t, "True", Bool(true).String())
	assert.Equal(t, "False", Bool(false).String())
}

func TestGetTypeMatchesKind(t *testing.T) {
	assert.Equal(t, types.TInteger, Num(NewInteger(1)).GetType())
	assert.Equal(t, types.TFloat, Num(NewFloat(1.5)).GetType())
	assert.Equal(t, types.TString, Str("x").GetType())
	assert.Equal(t, types.TBool, Bool(true).GetType())
	assert.Equal(t, types.TList, List(nil).GetType())
	assert.Equal(t, types.TQuotation, Quotation(nil).GetType())
	assert.Equal(t, types.TSymbol, Symbol("x").GetType())
}
