package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bprog-lang/bprog/pkg/value"
)

func TestExecHeadOnEmptyListIsHeadEmpty(t *testing.T) {
	result := execHead(value.List(nil))
	require.Equal(t, value.KError, result.Kind)
	assert.Equal(t, value.HeadEmpty, result.Err.Tag)
}

func TestExecTailOnEmptyListIsTailEmpty(t *testing.T) {
	result := execTail(value.List(nil))
	require.Equal(t, value.KError, result.Kind)
	assert.Equal(t, value.TailEmpty, result.Err.Tag)
}

func TestExecHeadAndTail(t *testing.T) {
	list := value.List([]value.Parsed{value.Num(value.NewInteger(1)), value.Num(value.NewInteger(2))})
	assert.Equal(t, "1", execHead(list).String())
	assert.Equal(t, "[ 2 ]", execTail(list).String())
}

func TestExecConsPrependsOntoTheList(t *testing.T) {
	list := value.List([]value.Parsed{value.Num(value.NewInteger(2))})
	result := execCons(value.Num(value.NewInteger(1)), list)
	assert.Equal(t, "[ 1 2 ]", result.String())
}

func TestExecEmptyReportsListEmptiness(t *testing.T) {
	assert.True(t, execEmpty(value.List(nil)).Bool)
	assert.False(t, execEmpty(value.List([]value.Parsed{value.Void()})).Bool)
}
