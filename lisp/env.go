package lisp

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// Runtime is the state shared by every LEnv in a chain of environments.
type Runtime struct {
	Reader     Reader
	LoadSource SourceLoader
	Stack      *CallStack
	Stderr     io.Writer

	// ErrStack is a copy of Stack taken where the most recent evaluation
	// error was raised.  It is reset at the start of each top-level
	// evaluation.
	ErrStack *CallStack
}

// LEnv is a lisp environment, one frame of variable bindings.
type LEnv struct {
	ID      uint
	Scope   map[string]*LVal
	Names   []string // names in Scope, in the order they were first bound
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv initializes and returns a new LEnv.  A child environment shares the
// Runtime of its parent.
func NewEnv(parent *LEnv) *LEnv {
	var runtime *Runtime
	if parent != nil {
		runtime = parent.Runtime
	} else {
		runtime = &Runtime{
			LoadSource: FileSourceLoader,
			Stack:      &CallStack{},
			Stderr:     os.Stderr,
		}
	}
	return &LEnv{
		ID:      getEnvID(),
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: runtime,
	}
}

// PrimitiveBindings returns a new root environment in which every primitive
// procedure is bound to its name.  The given configuration is applied to the
// new environment's Runtime.
func PrimitiveBindings(config ...Config) (*LEnv, error) {
	env := NewEnv(nil)
	env.AddBuiltins()
	for _, fn := range config {
		err := fn(env)
		if err != nil {
			return nil, err
		}
	}
	return env, nil
}

// Get returns the value bound to name in env or the nearest ancestor of env
// that binds name.
func (env *LEnv) Get(name string) (*LVal, error) {
	for e := env; e != nil; e = e.Parent {
		v, ok := e.Scope[name]
		if ok {
			return v, nil
		}
	}
	return nil, &UnboundVarError{Op: OpGet, Name: name}
}

// Set changes the value of name in the nearest environment that binds it and
// returns v.  Set never creates a new binding.
func (env *LEnv) Set(name string, v *LVal) (*LVal, error) {
	for e := env; e != nil; e = e.Parent {
		_, ok := e.Scope[name]
		if ok {
			e.Scope[name] = v
			return v, nil
		}
	}
	return nil, &UnboundVarError{Op: OpSet, Name: name}
}

// Define binds name to v in env, shadowing any binding of name in an ancestor
// of env, and returns v.
func (env *LEnv) Define(name string, v *LVal) *LVal {
	if v == nil {
		panic("nil value")
	}
	_, exists := env.Scope[name]
	if !exists {
		env.Names = append(env.Names, name)
	}
	env.Scope[name] = v
	return v
}

// Bind returns a child of env binding params to args positionally.  When
// vararg is not empty the arguments following the fixed params are collected
// into a list bound to vararg, which is the empty list if there are no such
// arguments.  Callers must check that there are enough args.
func (env *LEnv) Bind(params []string, vararg string, args []*LVal) *LEnv {
	frame := NewEnv(env)
	for i, name := range params {
		frame.Define(name, args[i])
	}
	if vararg != "" {
		rest := make([]*LVal, len(args)-len(params))
		copy(rest, args[len(params):])
		frame.Define(vararg, List(rest...))
	}
	return frame
}

// VisibleNames returns the names bound in env and its ancestors.  Names bound
// in inner frames come first and shadowed names are only reported once.
func (env *LEnv) VisibleNames() []string {
	seen := make(map[string]bool)
	var names []string
	for e := env; e != nil; e = e.Parent {
		for _, name := range e.Names {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// AddBuiltins binds the given primitives to their names in env.  When called
// with no arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		if _, exists := env.Scope[f.Name()]; exists {
			panic(fmt.Sprintf("symbol already defined: %s", f.Name()))
		}
		env.Define(f.Name(), Primitive(f.Name(), f.Eval))
	}
}
