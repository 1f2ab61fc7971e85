package lisp

import "fmt"

// ParseError is returned by a Reader when source text does not match the
// grammar.
type ParseError struct {
	Source string // location of the offending text, e.g. "file.scm:3:14"
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return "Parse error: " + e.Msg
	}
	return fmt.Sprintf("Parse error at %s: %s", e.Source, e.Msg)
}

// NumArgsError is returned when a procedure is applied to the wrong number of
// arguments.
type NumArgsError struct {
	Expected int
	AtLeast  bool // Expected is a lower bound (variadic procedures)
	Found    []*LVal
}

func (e *NumArgsError) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("Expected at least %d args; found values %s", e.Expected, valuesString(e.Found))
	}
	return fmt.Sprintf("Expected %d args; found values %s", e.Expected, valuesString(e.Found))
}

// TypeMismatchError is returned when a primitive or unpacker receives a value
// of the wrong type.
type TypeMismatchError struct {
	Expected string
	Found    *LVal
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Invalid type: expected %s, found %v", e.Expected, e.Found)
}

// Operations reported by UnboundVarError.
const (
	OpGet = "Getting an unbound variable"
	OpSet = "Setting an unbound variable"
)

// UnboundVarError is returned when a variable is not bound in any frame of an
// environment.
type UnboundVarError struct {
	Op   string // OpGet or OpSet
	Name string
}

func (e *UnboundVarError) Error() string {
	return e.Op + ": " + e.Name
}

// BadSpecialFormError is returned for forms that cannot be evaluated, either
// because a special form has the wrong shape or because the form is not a
// list at all.
type BadSpecialFormError struct {
	Msg  string
	Form *LVal
}

func (e *BadSpecialFormError) Error() string {
	return fmt.Sprintf("%s: %v", e.Msg, e.Form)
}

// NotApplicableError is returned when the value in procedure position is not
// a procedure.
type NotApplicableError struct {
	Value *LVal
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("Not a procedure: %v", e.Value)
}

// DivideByZeroError is returned by the division primitives.
type DivideByZeroError struct {
	Op string
}

func (e *DivideByZeroError) Error() string {
	return "Division by zero: " + e.Op
}

// StackOverflowError is returned when procedure calls nest deeper than the
// runtime's maximum stack height.
type StackOverflowError struct {
	Height int
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("Maximum stack height exceeded: %d", e.Height)
}

func badForm(form *LVal) error {
	return &BadSpecialFormError{Msg: "Unrecognized special form", Form: form}
}

func numArgs(expected int, found []*LVal) error {
	return &NumArgsError{Expected: expected, Found: found}
}

func typeMismatch(expected string, found *LVal) error {
	return &TypeMismatchError{Expected: expected, Found: found}
}
