package lisp

// eqv reports whether a and b are the same value.  Values of different types
// are never eqv.  Lists are compared element by element.  Procedures are only
// eqv to themselves.
func eqv(a, b *LVal) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LAtom, LString:
		return a.Str == b.Str
	case LNumber:
		return a.Num == b.Num
	case LChar:
		return a.Char == b.Char
	case LBool:
		return a.Bool == b.Bool
	case LList:
		return eqvCells(a.Cells, b.Cells)
	case LDottedList:
		return eqvCells(a.Cells, b.Cells) && eqv(a.Last, b.Last)
	default:
		return a == b
	}
}

func eqvCells(a, b []*LVal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eqv(a[i], b[i]) {
			return false
		}
	}
	return true
}

// equal reports whether a and b are eqv or can be coerced to the same number,
// boolean or string.
func equal(a, b *LVal) bool {
	return unpackEquals(a, b, unpackNum) ||
		unpackEquals(a, b, unpackBool) ||
		unpackEquals(a, b, unpackStr) ||
		eqv(a, b)
}

func unpackEquals[T comparable](a, b *LVal, unpack func(*LVal) (T, error)) bool {
	x, err := unpack(a)
	if err != nil {
		return false
	}
	y, err := unpack(b)
	if err != nil {
		return false
	}
	return x == y
}
