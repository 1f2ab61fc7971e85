package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LAtom
	LNumber
	LString
	LChar
	LBool
	LList
	LDottedList
	LClosure
	LPrimitive
)

var ltypeStrings = []string{
	LInvalid:    "INVALID",
	LAtom:       "atom",
	LNumber:     "number",
	LString:     "string",
	LChar:       "character",
	LBool:       "boolean",
	LList:       "list",
	LDottedList: "dotted-list",
	LClosure:    "closure",
	LPrimitive:  "primitive",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LBuiltin is the native implementation of a primitive procedure.  Arguments
// have already been evaluated.
type LBuiltin func(env *LEnv, args []*LVal) (*LVal, error)

// LVal is a lisp value.  LVal is used for both source code and runtime data.
type LVal struct {
	Type LType

	// Num holds the value of an LNumber.
	Num int

	// Str holds the name of an LAtom or LPrimitive and the text of an
	// LString.
	Str string

	// Char holds the value of an LChar.
	Char rune

	// Bool holds the value of an LBool.
	Bool bool

	// Cells holds the elements of an LList or the initial elements of an
	// LDottedList.
	Cells []*LVal

	// Last is the final element of an LDottedList.
	Last *LVal

	// Variables needed for closures
	Params []string
	VarArg string // empty when the closure takes a fixed number of arguments
	Body   *LVal
	Env    *LEnv

	// Builtin is the native function of an LPrimitive.
	Builtin LBuiltin
}

// Atom returns an LVal representing the symbol name.
func Atom(name string) *LVal {
	return &LVal{
		Type: LAtom,
		Str:  name,
	}
}

// Number returns an LVal representing the number x.
func Number(x int) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// Char returns an LVal representing the character c.
func Char(c rune) *LVal {
	return &LVal{
		Type: LChar,
		Char: c,
	}
}

// Bool returns an LVal with the truth value of ok.
func Bool(ok bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: ok,
	}
}

// List returns a proper list containing cells.
func List(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Nil returns the empty list.
func Nil() *LVal {
	return List()
}

// DottedList returns an improper list with the given initial elements and
// final tail.
func DottedList(initial []*LVal, last *LVal) *LVal {
	return &LVal{
		Type:  LDottedList,
		Cells: initial,
		Last:  last,
	}
}

// Quote returns the list (quote v).
func Quote(v *LVal) *LVal {
	return List(Atom("quote"), v)
}

// Closure returns a user defined procedure that evaluates body in a child of
// env.  The closure holds env itself, not a copy, so later changes to env are
// visible when the closure is called.
func Closure(params []string, vararg string, body *LVal, env *LEnv) *LVal {
	return &LVal{
		Type:   LClosure,
		Params: params,
		VarArg: vararg,
		Body:   body,
		Env:    env,
	}
}

// Primitive returns a built-in procedure named name.
func Primitive(name string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LPrimitive,
		Str:     name,
		Builtin: fn,
	}
}

// IsNil returns true if v is the empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LList && len(v.Cells) == 0
}

// IsFalse returns true if v is #f.  Every other value counts as true in a
// conditional.
func (v *LVal) IsFalse() bool {
	return v.Type == LBool && !v.Bool
}

// IsProc returns true if v can be applied to arguments.
func (v *LVal) IsProc() bool {
	return v.Type == LClosure || v.Type == LPrimitive
}

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	return len(v.Cells)
}

func (v *LVal) String() string {
	switch v.Type {
	case LAtom:
		return v.Str
	case LNumber:
		return strconv.Itoa(v.Num)
	case LString:
		return `"` + v.Str + `"`
	case LChar:
		return charString(v.Char)
	case LBool:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case LList:
		return exprString(v.Cells, nil)
	case LDottedList:
		return exprString(v.Cells, v.Last)
	case LClosure:
		return lambdaString(v)
	case LPrimitive:
		return "<primitive>"
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func charString(c rune) string {
	switch c {
	case ' ':
		return `#\space`
	case '\n':
		return `#\newline`
	default:
		return `#\` + string(c)
	}
}

func lambdaString(v *LVal) string {
	var buf bytes.Buffer
	buf.WriteString("(lambda ")
	if len(v.Params) == 0 && v.VarArg != "" {
		buf.WriteString(v.VarArg)
	} else {
		buf.WriteString("(")
		for i, p := range v.Params {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(p)
		}
		if v.VarArg != "" {
			buf.WriteString(" . ")
			buf.WriteString(v.VarArg)
		}
		buf.WriteString(")")
	}
	buf.WriteString(" ...)")
	return buf.String()
}

// exprString renders cells as a parenthesized list.  When last is non-nil it
// is rendered as the tail of a dotted list.
func exprString(cells []*LVal, last *LVal) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	if last != nil {
		if len(cells) > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(". ")
		buf.WriteString(last.String())
	}
	buf.WriteString(")")
	return buf.String()
}

// valuesString renders vs separated by spaces.  It is used in error messages.
func valuesString(vs []*LVal) string {
	var buf bytes.Buffer
	for i, v := range vs {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(v.String())
	}
	return buf.String()
}
