package lisp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallStack(t *testing.T) {
	s := &CallStack{MaxHeight: 2}
	assert.Nil(t, s.Top())
	require.NoError(t, s.Push("a", Nil()))
	require.NoError(t, s.Push("b", Nil()))
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, "b", s.Top().Name)

	err := s.Push("c", Nil())
	var overflow *StackOverflowError
	if assert.True(t, errors.As(err, &overflow)) {
		assert.Equal(t, 2, overflow.Height)
	}
	assert.Equal(t, 2, s.Height())

	cp := s.Copy()
	f := s.Pop()
	assert.Equal(t, "b", f.Name)
	assert.Equal(t, 1, s.Height())
	assert.Equal(t, 2, cp.Height())

	s.Pop()
	assert.Panics(t, func() { s.Pop() })

	var empty *CallStack
	assert.Equal(t, 0, empty.Height())
	assert.Nil(t, empty.Top())
}

func TestCallStackUnlimited(t *testing.T) {
	s := &CallStack{}
	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Push("f", Nil()))
	}
	assert.Equal(t, 1000, s.Height())
}
