// Package schemetest runs sequences of expressions through an interpreter and
// compares the rendered results.
package schemetest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatsuo/schemer/lisp"
	"github.com/bmatsuo/schemer/parser"
)

// NewEnv returns a root environment that parses source with the default
// reader.  Additional configuration is applied after the reader is set.
func NewEnv(config ...lisp.Config) (*lisp.LEnv, error) {
	config = append([]lisp.Config{lisp.WithReader(parser.NewReader())}, config...)
	return lisp.PrimitiveBindings(config...)
}

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result, or the error message
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite, config ...lisp.Config) {
	for i, test := range tests {
		env, err := NewEnv(config...)
		if err != nil {
			t.Fatalf("test %d %q: failed to initialize environment: %v", i, test.Name, err)
		}
		for j, expr := range test.TestSequence {
			v, err := parser.Read(expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			result := Result(env.Eval(v))
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// Result renders the outcome of an evaluation the way the interpreter reports
// it to a user.
func Result(v *lisp.LVal, err error) string {
	if err != nil {
		return err.Error()
	}
	return v.String()
}

// BenchmarkParse returns a benchmark function that parses the source file at
// path with a Reader returned by newReader.
func BenchmarkParse(path string, newReader func() lisp.Reader) func(b *testing.B) {
	return func(b *testing.B) {
		source, err := os.ReadFile(path)
		if err != nil {
			b.Fatalf("Unable to read source file: %v", err)
		}
		name := filepath.Base(path)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, err := newReader().Read(name, bytes.NewReader(source))
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
