package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bprog-lang/bprog/pkg/value"
)

func TestExecParseIntegerRejectsNonDigits(t *testing.T) {
	result := execParseInteger(value.Str("not a number"))
	require.Equal(t, value.KError, result.Kind)
	assert.Equal(t, value.Overflow, result.Err.Tag)
}

func TestExecParseIntegerAcceptsLeadingWhitespace(t *testing.T) {
	result := execParseInteger(value.Str(" 42 "))
	assert.Equal(t, "42", result.String())
}

func TestExecParseFloatRejectsGarbage(t *testing.T) {
	result := execParseFloat(value.Str("nope"))
	require.Equal(t, value.KError, result.Kind)
	assert.Equal(t, value.Overflow, result.Err.Tag)
}

func TestExecWordsSplitsOnWhitespace(t *testing.T) {
	result := execWords(value.Str(" hello   world "))
	require.Equal(t, value.KList, result.Kind)
	require.Len(t, result.List, 2)
	assert.Equal(t, "hello", result.List[0].Str)
	assert.Equal(t, "world", result.List[1].Str)
}
