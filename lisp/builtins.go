package lisp

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args []*LVal) (*LVal, error)
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args []*LVal) (*LVal, error) {
	return fun.fun(env, args)
}

// langBuiltins is never modified after package initialization.  Each root
// environment gets its own bindings to the primitives.
var langBuiltins = []*langBuiltin{
	{"+", numericBinop(addInt)},
	{"-", numericBinop(subInt)},
	{"*", numericBinop(mulInt)},
	{"/", numericBinop(divInt)},
	{"mod", numericBinop(modInt)},
	{"quotient", numericBinop(quotientInt)},
	{"=", numBoolBinop(func(a, b int) bool { return a == b })},
	{"<", numBoolBinop(func(a, b int) bool { return a < b })},
	{">", numBoolBinop(func(a, b int) bool { return a > b })},
	{"/=", numBoolBinop(func(a, b int) bool { return a != b })},
	{">=", numBoolBinop(func(a, b int) bool { return a >= b })},
	{"<=", numBoolBinop(func(a, b int) bool { return a <= b })},
	{"&&", boolBoolBinop(func(a, b bool) bool { return a && b })},
	{"||", boolBoolBinop(func(a, b bool) bool { return a || b })},
	{"string=?", strBoolBinop(func(a, b string) bool { return a == b })},
	{"string<?", strBoolBinop(func(a, b string) bool { return a < b })},
	{"string>?", strBoolBinop(func(a, b string) bool { return a > b })},
	{"string<=?", strBoolBinop(func(a, b string) bool { return a <= b })},
	{"string>=?", strBoolBinop(func(a, b string) bool { return a >= b })},
	{"car", builtinCAR},
	{"cdr", builtinCDR},
	{"cons", builtinCons},
	{"eq?", builtinEqv},
	{"eqv?", builtinEqv},
	{"equal?", builtinEqual},
	{"apply", builtinApply},
	{"read-contents", builtinReadContents},
	{"read-all", builtinReadAll},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

func builtinCAR(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) != 1 {
		return nil, numArgs(1, args)
	}
	lis := args[0]
	switch {
	case lis.Type == LList && len(lis.Cells) > 0:
		return lis.Cells[0], nil
	case lis.Type == LDottedList && len(lis.Cells) > 0:
		return lis.Cells[0], nil
	default:
		return nil, typeMismatch("pair", lis)
	}
}

func builtinCDR(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) != 1 {
		return nil, numArgs(1, args)
	}
	lis := args[0]
	switch {
	case lis.Type == LList && len(lis.Cells) > 0:
		return List(lis.Cells[1:]...), nil
	case lis.Type == LDottedList && len(lis.Cells) == 1:
		return lis.Last, nil
	case lis.Type == LDottedList && len(lis.Cells) > 1:
		return DottedList(lis.Cells[1:], lis.Last), nil
	default:
		return nil, typeMismatch("pair", lis)
	}
}

func builtinCons(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, numArgs(2, args)
	}
	head, tail := args[0], args[1]
	switch tail.Type {
	case LList:
		return List(prepend(head, tail.Cells)...), nil
	case LDottedList:
		return DottedList(prepend(head, tail.Cells), tail.Last), nil
	default:
		return DottedList([]*LVal{head}, tail), nil
	}
}

// prepend returns a new slice so that the list being extended is not
// modified.
func prepend(head *LVal, cells []*LVal) []*LVal {
	result := make([]*LVal, 0, len(cells)+1)
	result = append(result, head)
	return append(result, cells...)
}

func builtinEqv(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, numArgs(2, args)
	}
	return Bool(eqv(args[0], args[1])), nil
}

func builtinEqual(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, numArgs(2, args)
	}
	return Bool(equal(args[0], args[1])), nil
}

// (apply proc args)
// (apply proc arg ...)
func builtinApply(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) < 2 {
		return nil, numArgs(2, args)
	}
	fun := args[0]
	if args[1].Type == LList {
		return env.Apply(fun, args[1].Cells)
	}
	return env.Apply(fun, args[1:])
}

func builtinReadContents(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) != 1 {
		return nil, numArgs(1, args)
	}
	if args[0].Type != LString {
		return nil, typeMismatch("string", args[0])
	}
	src, err := env.readSource(args[0].Str)
	if err != nil {
		return nil, err
	}
	return String(string(src)), nil
}

func builtinReadAll(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) != 1 {
		return nil, numArgs(1, args)
	}
	if args[0].Type != LString {
		return nil, typeMismatch("string", args[0])
	}
	exprs, err := env.readFile(args[0].Str)
	if err != nil {
		return nil, err
	}
	return List(exprs...), nil
}
