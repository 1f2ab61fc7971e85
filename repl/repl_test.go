package repl

import (
	"bytes"
	"testing"

	"github.com/bmatsuo/schemer/lisp"
	"github.com/bmatsuo/schemer/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, config ...lisp.Config) (s *Session, out, errOut *bytes.Buffer) {
	t.Helper()
	out = new(bytes.Buffer)
	errOut = new(bytes.Buffer)
	config = append([]lisp.Config{lisp.WithReader(parser.NewReader()), lisp.WithStderr(errOut)}, config...)
	env, err := lisp.PrimitiveBindings(config...)
	require.NoError(t, err)
	return NewSession(env, out), out, errOut
}

func TestSession(t *testing.T) {
	s, out, errOut := newTestSession(t)

	more, quit := s.Feed("(define x 2)")
	assert.False(t, more)
	assert.False(t, quit)
	assert.Equal(t, "2\n", out.String())
	out.Reset()

	more, _ = s.Feed("(+ x")
	assert.True(t, more)
	assert.Equal(t, "", out.String())
	more, _ = s.Feed("   3)")
	assert.False(t, more)
	assert.Equal(t, "5\n", out.String())
	out.Reset()

	s.Feed("1 2 3")
	assert.Equal(t, "1\n2\n3\n", out.String())
	out.Reset()

	s.Feed("(car '())")
	assert.Equal(t, "", out.String())
	assert.Equal(t, "Invalid type: expected pair, found ()\n", errOut.String())
	errOut.Reset()

	s.Feed("(a(b))")
	assert.Equal(t, "Parse error at 1:3: expected whitespace before (\n", errOut.String())
	errOut.Reset()

	// the session continues after errors
	s.Feed("x")
	assert.Equal(t, "2\n", out.String())
	assert.Equal(t, "", errOut.String())
}

func TestSessionQuit(t *testing.T) {
	s, _, _ := newTestSession(t)
	_, quit := s.Feed("quit")
	assert.True(t, quit)

	// quit inside an unfinished expression is just an atom
	more, _ := s.Feed("(list")
	assert.True(t, more)
	more, quit = s.Feed("quit")
	assert.True(t, more)
	assert.False(t, quit)
	s.Reset()
	_, quit = s.Feed("  quit  ")
	assert.True(t, quit)
}

func TestSessionDebug(t *testing.T) {
	s, _, errOut := newTestSession(t)
	s.Debug = true
	s.Feed("(define (f x) (car x))")
	s.Feed("(f 1)")
	assert.Equal(t, `Invalid type: expected pair, found 1
Stack Trace [2 frames -- entrypoint last]:
  height 1: car
  height 0: f
`, errOut.String())
}

func TestCompleter(t *testing.T) {
	env, err := lisp.PrimitiveBindings()
	require.NoError(t, err)
	env.Define("string-thing", lisp.Number(1))
	c := &completer{env: env}

	line := []rune("(stri")
	matches, n := c.Do(line, len(line))
	assert.Equal(t, 4, n)
	var names []string
	for _, m := range matches {
		names = append(names, "stri"+string(m))
	}
	assert.Equal(t, []string{"string-thing", "string<=?", "string<?", "string=?", "string>=?", "string>?"}, names)

	line = []rune("(la")
	matches, n = c.Do(line, len(line))
	assert.Equal(t, 2, n)
	assert.Equal(t, [][]rune{[]rune("mbda")}, matches)

	matches, _ = c.Do([]rune("("), 1)
	assert.Nil(t, matches)
}
