package schemetest

import "testing"

func TestSpecialOp(t *testing.T) {
	tests := TestSuite{
		{"if", TestSequence{
			{"(if #t 1 2)", "1"},
			{"(if #f 1 2)", "2"},
			// only #f is false
			{"(if 0 1 2)", "1"},
			{"(if '() 1 2)", "1"},
			{`(if "" 1 2)`, "1"},
			{"(if (< 1 2) 'yes 'no)", "yes"},
			// the branch not taken is never evaluated
			{"(if #f (undefined) 2)", "2"},
			{"(if #t 1 (undefined))", "1"},
			{"(if 1 2)", "Unrecognized special form: (if 1 2)"},
		}},
		{"set!", TestSequence{
			{"(set! y 1)", "Setting an unbound variable: y"},
			{"(define y 1)", "1"},
			{"(set! y 2)", "2"},
			{"y", "2"},
			{"(set! 1 2)", "Unrecognized special form: (set! 1 2)"},
		}},
		{"define", TestSequence{
			{"(define x 1)", "1"},
			{"(define x (+ x 1))", "2"},
			{"x", "2"},
			{"(define (sq x) (* x x))", "(lambda (x) ...)"},
			{"(sq 4)", "16"},
			{"(define (list . xs) xs)", "(lambda xs ...)"},
			{"(list 1 2)", "(1 2)"},
			{"(list)", "()"},
			{"(define (f a . b) b)", "(lambda (a . b) ...)"},
			{"(f 1 2 3)", "(2 3)"},
			{"(define 1 2)", "Unrecognized special form: (define 1 2)"},
			{"(define (1 x) x)", "Unrecognized special form: (define (1 x) x)"},
			{"(define x)", "Unrecognized special form: (define x)"},
		}},
		{"special forms are not shadowed", TestSequence{
			{"(define if 1)", "1"},
			{"(if #t 2 3)", "2"},
			{"if", "1"},
		}},
		{"load", TestSequence{
			{"(load 1)", "Unrecognized special form: (load 1)"},
			{`(load "a" "b")`, `Unrecognized special form: (load "a" "b")`},
		}},
	}
	RunTestSuite(t, tests)
}
