package lisp

import (
	"errors"
	"io"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) error

// WithMaximumStackHeight returns a Config that will prevent an execution
// environment from allowing procedure calls to nest deeper than n.  A value
// of n less than one removes the limit, in which case runaway recursion is
// bounded only by the Go stack.
func WithMaximumStackHeight(n int) Config {
	return func(env *LEnv) error {
		env.Runtime.Stack.MaxHeight = n
		return nil
	}
}

// WithReader returns a Config that makes environments use r to parse source
// files.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) error {
		if r == nil {
			return errors.New("nil reader")
		}
		env.Runtime.Reader = r
		return nil
	}
}

// WithSourceLoader returns a Config that makes environments read source files
// with fn instead of the default, FileSourceLoader.
func WithSourceLoader(fn SourceLoader) Config {
	return func(env *LEnv) error {
		if fn == nil {
			return errors.New("nil source loader")
		}
		env.Runtime.LoadSource = fn
		return nil
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.Stderr = w
		return nil
	}
}
