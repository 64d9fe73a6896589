package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopIsLIFO(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestPopOnEmptyStackReportsNotOK(t *testing.T) {
	s := New[string]()
	_, ok := s.Pop()
	assert.False(t, ok)
}

func TestTopDoesNotRemove(t *testing.T) {
	s := New[int]()
	s.Push(42)
	v, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, s.Size())
}

func TestClearEmptiesTheStack(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Size())
}

func TestItemsReturnsBottomToTopCopy(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	items := s.Items()
	assert.Equal(t, []int{1, 2}, items)

	items[0] = 99
	v, _ := s.Top()
	assert.Equal(t, 2, v)
	bottom, _ := s.Pop()
	_ = bottom
}
