package lisp

// specialOp evaluates a special form.  The form is passed whole and
// unevaluated; its first cell is the name of the operator.
type specialOp func(env *LEnv, form *LVal) (*LVal, error)

type langSpecialOp struct {
	name string
	op   specialOp
}

var langSpecialOps = []langSpecialOp{
	{"quote", opQuote},
	{"if", opIf},
	{"set!", opSet},
	{"define", opDefine},
	{"lambda", opLambda},
	{"load", opLoad},
}

// specialOps is populated during init because the operators call back into
// Eval, which consults specialOps.
var specialOps map[string]specialOp

func init() {
	specialOps = make(map[string]specialOp, len(langSpecialOps))
	for _, op := range langSpecialOps {
		specialOps[op.name] = op.op
	}
}

// IsSpecialOp returns true if name is the name of a special form.  Special
// forms cannot be shadowed by variable bindings.
func IsSpecialOp(name string) bool {
	_, ok := specialOps[name]
	return ok
}

// SpecialOpNames returns the names of all special forms.
func SpecialOpNames() []string {
	names := make([]string, len(langSpecialOps))
	for i, op := range langSpecialOps {
		names[i] = op.name
	}
	return names
}

// (quote expr)
func opQuote(env *LEnv, form *LVal) (*LVal, error) {
	if len(form.Cells) != 2 {
		return nil, badForm(form)
	}
	return form.Cells[1], nil
}

// (if test-form then-form else-form)
func opIf(env *LEnv, form *LVal) (*LVal, error) {
	if len(form.Cells) != 4 {
		return nil, badForm(form)
	}
	r, err := env.Eval(form.Cells[1])
	if err != nil {
		return nil, err
	}
	if r.IsFalse() {
		return env.Eval(form.Cells[3])
	}
	// Anything other than #f is true.
	return env.Eval(form.Cells[2])
}

// (set! name expr)
func opSet(env *LEnv, form *LVal) (*LVal, error) {
	if len(form.Cells) != 3 || form.Cells[1].Type != LAtom {
		return nil, badForm(form)
	}
	v, err := env.Eval(form.Cells[2])
	if err != nil {
		return nil, err
	}
	return env.Set(form.Cells[1].Str, v)
}

// (define name expr)
// (define (name param ...) body)
// (define (name param ... . rest) body)
func opDefine(env *LEnv, form *LVal) (*LVal, error) {
	if len(form.Cells) != 3 {
		return nil, badForm(form)
	}
	head, body := form.Cells[1], form.Cells[2]
	switch head.Type {
	case LAtom:
		v, err := env.Eval(body)
		if err != nil {
			return nil, err
		}
		return env.Define(head.Str, v), nil
	case LList, LDottedList:
		if len(head.Cells) == 0 || head.Cells[0].Type != LAtom {
			return nil, badForm(form)
		}
		name := head.Cells[0].Str
		params, err := paramNames(form, head.Cells[1:])
		if err != nil {
			return nil, err
		}
		var vararg string
		if head.Type == LDottedList {
			if head.Last.Type != LAtom {
				return nil, badForm(form)
			}
			vararg = head.Last.Str
		}
		fun := Closure(params, vararg, body, env)
		return env.Define(name, fun), nil
	default:
		return nil, badForm(form)
	}
}

// (lambda (param ...) body)
// (lambda (param ... . rest) body)
// (lambda rest body)
func opLambda(env *LEnv, form *LVal) (*LVal, error) {
	if len(form.Cells) != 3 {
		return nil, badForm(form)
	}
	formals, body := form.Cells[1], form.Cells[2]
	switch formals.Type {
	case LAtom:
		return Closure(nil, formals.Str, body, env), nil
	case LList:
		params, err := paramNames(form, formals.Cells)
		if err != nil {
			return nil, err
		}
		return Closure(params, "", body, env), nil
	case LDottedList:
		params, err := paramNames(form, formals.Cells)
		if err != nil {
			return nil, err
		}
		if formals.Last.Type != LAtom {
			return nil, badForm(form)
		}
		return Closure(params, formals.Last.Str, body, env), nil
	default:
		return nil, badForm(form)
	}
}

// (load filename)
func opLoad(env *LEnv, form *LVal) (*LVal, error) {
	if len(form.Cells) != 2 || form.Cells[1].Type != LString {
		return nil, badForm(form)
	}
	return env.LoadFile(form.Cells[1].Str)
}

// paramNames returns the names of the atoms in cells.  The special form
// containing cells is reported if any cell is not an atom.
func paramNames(form *LVal, cells []*LVal) ([]string, error) {
	names := make([]string, len(cells))
	for i, c := range cells {
		if c.Type != LAtom {
			return nil, badForm(form)
		}
		names[i] = c.Str
	}
	return names, nil
}
