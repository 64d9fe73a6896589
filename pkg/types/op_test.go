package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupOpResolvesReservedNames(t *testing.T) {
	op, ok := LookupOp("+")
	require.True(t, ok)
	assert.Equal(t, OpAdd, op)

	op, ok = LookupOp("times")
	require.True(t, ok)
	assert.Equal(t, OpTimes, op)

	_, ok = LookupOp("notAnOp")
	assert.False(t, ok)
}

func TestStringRoundTripsThroughLookupOp(t *testing.T) {
	for op := OpPrint; op <= OpPop; op++ {
		name := op.String()
		require.NotEqual(t, "<unknown op>", name, "op %d has no name", op)
		resolved, ok := LookupOp(name)
		require.True(t, ok, "name %q does not resolve back to an op", name)
		assert.Equal(t, op, resolved)
	}
}

func TestTimesSignatureTakesAnExecutableModifier(t *testing.T) {
	sig := OpTimes.GetSignature()
	assert.Equal(t, Unary(CInteger), sig.StackArgs)
	assert.Equal(t, Unary(CExecutable), sig.Modifiers)
}

func TestIfSignatureTakesTwoModifiers(t *testing.T) {
	sig := OpIf.GetSignature()
	assert.Equal(t, Unary(CBoolean), sig.StackArgs)
	assert.Equal(t, Binary(CAny, CAny), sig.Modifiers)
}

func TestAssignFuncRequiresSymbolAndQuotation(t *testing.T) {
	sig := OpAssignFunc.GetSignature()
	assert.Equal(t, Binary(CSymbol, CQuotation), sig.StackArgs)
	assert.Equal(t, Nullary(), sig.Modifiers)
}
