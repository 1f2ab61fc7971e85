package schemetest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bmatsuo/schemer/lisp"
	"github.com/bmatsuo/schemer/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackOverflow(t *testing.T) {
	tests := TestSuite{
		{"runaway recursion", TestSequence{
			{"(define (loop n) (loop n))", "(lambda (n) ...)"},
			{"(loop 1)", "Maximum stack height exceeded: 50"},
			// the stack unwinds after the failure
			{"(+ 1 2)", "3"},
			{"(define (count n) (if (= n 0) 0 (+ 1 (count (- n 1)))))", "(lambda (n) ...)"},
			{"(count 10)", "10"},
			{"(count 100)", "Maximum stack height exceeded: 50"},
		}},
	}
	RunTestSuite(t, tests, lisp.WithMaximumStackHeight(50))
}

func TestErrStack(t *testing.T) {
	env, err := NewEnv()
	require.NoError(t, err)
	for _, src := range []string{
		"(define (inner x) (car x))",
		"(define (outer x) (inner x))",
	} {
		expr, err := parser.Read(src)
		require.NoError(t, err)
		_, err = env.Eval(expr)
		require.NoError(t, err)
	}
	expr, err := parser.Read("(outer 1)")
	require.NoError(t, err)
	_, err = env.Eval(expr)
	var typeErr *lisp.TypeMismatchError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "pair", typeErr.Expected)
	assert.Equal(t, 0, env.Runtime.Stack.Height())

	stack := env.Runtime.ErrStack
	require.NotNil(t, stack)
	if assert.Len(t, stack.Frames, 3) {
		assert.Equal(t, "outer", stack.Frames[0].Name)
		assert.Equal(t, "inner", stack.Frames[1].Name)
		assert.Equal(t, "car", stack.Frames[2].Name)
	}
	var buf bytes.Buffer
	_, err = stack.DebugPrint(&buf)
	require.NoError(t, err)
	assert.Equal(t, `Stack Trace [3 frames -- entrypoint last]:
  height 2: car
  height 1: inner
  height 0: outer
`, buf.String())

	// a successful top-level call forgets the failure
	expr, err = parser.Read("(+ 1 2)")
	require.NoError(t, err)
	_, err = env.Eval(expr)
	require.NoError(t, err)
	assert.Nil(t, env.Runtime.ErrStack)
}
