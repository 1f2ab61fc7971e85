package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	env := NewEnv(nil)
	tests := []struct {
		v      *LVal
		expect string
	}{
		{Atom("anatom"), "anatom"},
		{Number(42), "42"},
		{Number(-7), "-7"},
		{String("astring"), `"astring"`},
		{String(`a "quoted" string`), `"a "quoted" string"`},
		{Char('a'), `#\a`},
		{Char(' '), `#\space`},
		{Char('\n'), `#\newline`},
		{Bool(true), "#t"},
		{Bool(false), "#f"},
		{Nil(), "()"},
		{List(Atom("a"), List(Atom("nested"), Atom("list"))), "(a (nested list))"},
		{Quote(Atom("x")), "(quote x)"},
		{DottedList([]*LVal{Atom("a"), Atom("b")}, Atom("c")), "(a b . c)"},
		{DottedList(nil, Atom("x")), "(. x)"},
		{Closure([]string{"x", "y"}, "", Number(1), env), "(lambda (x y) ...)"},
		{Closure(nil, "", Number(1), env), "(lambda () ...)"},
		{Closure([]string{"x"}, "rest", Number(1), env), "(lambda (x . rest) ...)"},
		{Closure(nil, "rest", Number(1), env), "(lambda rest ...)"},
		{Primitive("car", builtinCAR), "<primitive>"},
	}
	for i, test := range tests {
		assert.Equal(t, test.expect, test.v.String(), "test %d", i)
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, Nil().IsNil())
	assert.False(t, List(Number(1)).IsNil())
	assert.False(t, DottedList(nil, Nil()).IsNil())

	assert.True(t, Bool(false).IsFalse())
	assert.False(t, Bool(true).IsFalse())
	assert.False(t, Nil().IsFalse())
	assert.False(t, Number(0).IsFalse())

	assert.True(t, Primitive("car", builtinCAR).IsProc())
	assert.True(t, Closure(nil, "", Nil(), NewEnv(nil)).IsProc())
	assert.False(t, Atom("car").IsProc())
}

func TestLType(t *testing.T) {
	assert.Equal(t, "number", LNumber.String())
	assert.Equal(t, "dotted-list", LDottedList.String())
	assert.Equal(t, "INVALID", LType(100).String())
}

func TestSpecialOps(t *testing.T) {
	for _, name := range []string{"quote", "if", "set!", "define", "lambda", "load"} {
		assert.True(t, IsSpecialOp(name), name)
	}
	assert.False(t, IsSpecialOp("car"))
	assert.Len(t, SpecialOpNames(), 6)
}
