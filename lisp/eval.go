package lisp

import (
	"bytes"
	"fmt"
	"io"
)

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.
func (env *LEnv) Eval(v *LVal) (*LVal, error) {
	switch v.Type {
	case LString, LNumber, LBool, LChar:
		return v, nil
	case LAtom:
		return env.Get(v.Str)
	case LList:
		if len(v.Cells) == 0 {
			return nil, badForm(v)
		}
		head := v.Cells[0]
		if head.Type == LAtom {
			op, ok := specialOps[head.Str]
			if ok {
				return op(env, v)
			}
		}
		return env.evalApplication(v)
	default:
		return nil, badForm(v)
	}
}

// evalApplication evaluates the procedure and arguments of s from left to
// right and calls the procedure.
func (env *LEnv) evalApplication(s *LVal) (*LVal, error) {
	f, err := env.Eval(s.Cells[0])
	if err != nil {
		return nil, err
	}
	args := make([]*LVal, len(s.Cells)-1)
	for i, expr := range s.Cells[1:] {
		args[i], err = env.Eval(expr)
		if err != nil {
			return nil, err
		}
	}
	var name string
	if s.Cells[0].Type == LAtom {
		name = s.Cells[0].Str
	}
	return env.call(name, f, args)
}

// Apply invokes procedure fun with the already evaluated args.
func (env *LEnv) Apply(fun *LVal, args []*LVal) (*LVal, error) {
	return env.call("", fun, args)
}

func (env *LEnv) call(name string, fun *LVal, args []*LVal) (*LVal, error) {
	if !fun.IsProc() {
		return nil, &NotApplicableError{Value: fun}
	}
	stack := env.Runtime.Stack
	if stack.Height() == 0 {
		// A new top-level call.  Forget the stack of any earlier failure.
		env.Runtime.ErrStack = nil
	}
	err := stack.Push(name, fun)
	if err != nil {
		env.Runtime.ErrStack = stack.Copy()
		return nil, err
	}
	defer stack.Pop()

	var v *LVal
	switch fun.Type {
	case LPrimitive:
		v, err = fun.Builtin(env, args)
	case LClosure:
		v, err = callClosure(fun, args)
	}
	if err != nil && env.Runtime.ErrStack == nil {
		env.Runtime.ErrStack = stack.Copy()
	}
	return v, err
}

func callClosure(fun *LVal, args []*LVal) (*LVal, error) {
	nparams := len(fun.Params)
	if fun.VarArg == "" && len(args) != nparams {
		return nil, &NumArgsError{Expected: nparams, Found: args}
	}
	if len(args) < nparams {
		return nil, &NumArgsError{Expected: nparams, AtLeast: true, Found: args}
	}
	// Static scope: the new frame extends the environment fun was defined in,
	// not the environment of the caller.
	frame := fun.Env.Bind(fun.Params, fun.VarArg, args)
	return frame.Eval(fun.Body)
}

// Load reads expressions from r using the runtime's Reader and evaluates them
// in env in order.  Load returns the value of the last expression, or the
// empty list when r contains no expressions.  When an expression fails the
// expressions before it have already taken effect.
func (env *LEnv) Load(name string, r io.Reader) (*LVal, error) {
	if env.Runtime.Reader == nil {
		return nil, fmt.Errorf("load %s: no reader configured", name)
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return nil, err
	}
	return env.evalAll(exprs)
}

// LoadFile reads the named file with the runtime's SourceLoader and evaluates
// its contents like Load.
func (env *LEnv) LoadFile(filename string) (*LVal, error) {
	exprs, err := env.readFile(filename)
	if err != nil {
		return nil, err
	}
	return env.evalAll(exprs)
}

func (env *LEnv) evalAll(exprs []*LVal) (*LVal, error) {
	result := Nil()
	for _, expr := range exprs {
		v, err := env.Eval(expr)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// readFile parses the named file without evaluating it.
func (env *LEnv) readFile(filename string) ([]*LVal, error) {
	if env.Runtime.Reader == nil {
		return nil, fmt.Errorf("load %s: no reader configured", filename)
	}
	src, err := env.readSource(filename)
	if err != nil {
		return nil, err
	}
	return env.Runtime.Reader.Read(filename, bytes.NewReader(src))
}

func (env *LEnv) readSource(filename string) ([]byte, error) {
	src, err := env.Runtime.LoadSource(filename)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	return src, nil
}
