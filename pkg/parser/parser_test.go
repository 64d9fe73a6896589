package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bprog-lang/bprog/pkg/types"
	"github.com/bprog-lang/bprog/pkg/value"
)

func TestParseAtomsClassifiesLiterals(t *testing.T) {
	parsed, err := ParseString("3 3.14 True False x +")
	require.NoError(t, err)
	require.Len(t, parsed, 6)

	assert.Equal(t, value.KNum, parsed[0].Kind)
	assert.Equal(t, value.NumInteger, parsed[0].Num.Kind)
	assert.Equal(t, "3", parsed[0].String())

	assert.Equal(t, value.KNum, parsed[1].Kind)
	assert.Equal(t, value.NumFloat, parsed[1].Num.Kind)

	assert.Equal(t, value.KBool, parsed[2].Kind)
	assert.True(t, parsed[2].Bool)

	assert.Equal(t, value.KBool, parsed[3].Kind)
	assert.False(t, parsed[3].Bool)

	assert.Equal(t, value.KSymbol, parsed[4].Kind)
	assert.Equal(t, "x", parsed[4].Sym)

	assert.Equal(t, value.KFunction, parsed[5].Kind)
	assert.Equal(t, types.OpAdd, parsed[5].Op)
}

func TestParseNestedQuotationsAndLists(t *testing.T) {
	parsed, err := ParseString("[ 1 { 2 3 } ]")
	require.NoError(t, err)
	require.Len(t, parsed, 1)

	list := parsed[0]
	require.Equal(t, value.KList, list.Kind)
	require.Len(t, list.List, 2)
	assert.Equal(t, "1", list.List[0].String())

	quot := list.List[1]
	require.Equal(t, value.KQuotation, quot.Kind)
	require.Len(t, quot.Quote, 2)
	assert.Equal(t, "2", quot.Quote[0].String())
	assert.Equal(t, "3", quot.Quote[1].String())
}

func TestParseStringLiteralJoinsWordsWithSpaces(t *testing.T) {
	parsed, err := ParseString(`" hello world "`)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, value.KString, parsed[0].Kind)
	assert.Equal(t, "hello world", parsed[0].Str)
}

func TestParseUnterminatedStringIsAnError(t *testing.T) {
	_, err := ParseString(`" hello`)
	assert.Error(t, err)
}

func TestParseUnbalancedBracketsDoNotError(t *testing.T) {
	parsed, err := ParseString("{ 1 2")
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, value.KQuotation, parsed[0].Kind)
	assert.Len(t, parsed[0].Quote, 2)
}

func TestParseIntegerPrecedesFloat(t *testing.T) {
	parsed, err := ParseString("42")
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, value.NumInteger, parsed[0].Num.Kind)
}

func TestParseReservedNameNeverBecomesASymbol(t *testing.T) {
	parsed, err := ParseString("dup")
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, value.KFunction, parsed[0].Kind)
	assert.Equal(t, types.OpDup, parsed[0].Op)
}
