package lisp

import "strconv"

// unpackNum coerces v to an integer.  Strings are parsed and lists are
// unpacked through their first element.
func unpackNum(v *LVal) (int, error) {
	switch v.Type {
	case LNumber:
		return v.Num, nil
	case LString:
		x, err := strconv.Atoi(v.Str)
		if err == nil {
			return x, nil
		}
	case LList:
		if len(v.Cells) > 0 {
			return unpackNum(v.Cells[0])
		}
	}
	return 0, typeMismatch("number", v)
}

// unpackStr coerces v to a string.  Numbers and booleans are rendered as
// text.
func unpackStr(v *LVal) (string, error) {
	switch v.Type {
	case LString:
		return v.Str, nil
	case LNumber, LBool:
		return v.String(), nil
	}
	return "", typeMismatch("string", v)
}

func unpackBool(v *LVal) (bool, error) {
	if v.Type != LBool {
		return false, typeMismatch("boolean", v)
	}
	return v.Bool, nil
}

// numericBinop returns a primitive that folds op over two or more numeric
// arguments from left to right.
func numericBinop(op func(a, b int) (int, error)) LBuiltin {
	return func(env *LEnv, args []*LVal) (*LVal, error) {
		if len(args) < 2 {
			return nil, numArgs(2, args)
		}
		acc, err := unpackNum(args[0])
		if err != nil {
			return nil, err
		}
		for _, arg := range args[1:] {
			x, err := unpackNum(arg)
			if err != nil {
				return nil, err
			}
			acc, err = op(acc, x)
			if err != nil {
				return nil, err
			}
		}
		return Number(acc), nil
	}
}

// boolBinop returns a primitive that compares exactly two arguments after
// coercing them with unpack.
func boolBinop[T any](unpack func(*LVal) (T, error), op func(a, b T) bool) LBuiltin {
	return func(env *LEnv, args []*LVal) (*LVal, error) {
		if len(args) != 2 {
			return nil, numArgs(2, args)
		}
		left, err := unpack(args[0])
		if err != nil {
			return nil, err
		}
		right, err := unpack(args[1])
		if err != nil {
			return nil, err
		}
		return Bool(op(left, right)), nil
	}
}

func numBoolBinop(op func(a, b int) bool) LBuiltin {
	return boolBinop(unpackNum, op)
}

func strBoolBinop(op func(a, b string) bool) LBuiltin {
	return boolBinop(unpackStr, op)
}

func boolBoolBinop(op func(a, b bool) bool) LBuiltin {
	return boolBinop(unpackBool, op)
}

func addInt(a, b int) (int, error) { return a + b, nil }
func subInt(a, b int) (int, error) { return a - b, nil }
func mulInt(a, b int) (int, error) { return a * b, nil }

func divInt(a, b int) (int, error) {
	if b == 0 {
		return 0, &DivideByZeroError{Op: "/"}
	}
	return a / b, nil
}

func modInt(a, b int) (int, error) {
	if b == 0 {
		return 0, &DivideByZeroError{Op: "mod"}
	}
	return a % b, nil
}

// quotientInt divides a by b rounding toward negative infinity.
func quotientInt(a, b int) (int, error) {
	if b == 0 {
		return 0, &DivideByZeroError{Op: "quotient"}
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q, nil
}
