package schemetest

import "testing"

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"literals", TestSequence{
			{"42", "42"},
			{`"astring"`, `"astring"`},
			{"#t", "#t"},
			{"#f", "#f"},
			{`#\a`, `#\a`},
			{`#\space`, `#\space`},
			{`#\ `, `#\space`},
			{`#\newline`, `#\newline`},
		}},
		{"strings", TestSequence{
			{`"a \"quoted\" string"`, `"a "quoted" string"`},
			{`"new\nline"`, "\"new\nline\""},
			{`"string\\a"`, `"string\a"`},
			{`"string\ra"`, "\"string\ra\""},
			// unknown escapes are left alone
			{`"x\ty"`, `"x\ty"`},
		}},
		{"quotes", TestSequence{
			{"'x", "x"},
			{"'(a list)", "(a list)"},
			{"'(a nice dotted . list)", "(a nice dotted . list)"},
			{"'()", "()"},
			{"''x", "(quote x)"},
			{"(quote (1 2))", "(1 2)"},
			{"(quote)", "Unrecognized special form: (quote)"},
		}},
		{"symbols", TestSequence{
			{"x", "Getting an unbound variable: x"},
			{"(define x 3)", "3"},
			{"x", "3"},
			{"car", "<primitive>"},
		}},
		{"bad forms", TestSequence{
			{"()", "Unrecognized special form: ()"},
			{"(1 2)", "Not a procedure: 1"},
			{`("f" 2)`, `Not a procedure: "f"`},
		}},
		{"application", TestSequence{
			{"(+ 1 2)", "3"},
			{"(+ 1 2 3 4)", "10"},
			{"(- 10 1 2)", "7"},
			{"(* 2 3 4)", "24"},
			{"(+ (* 2 3) (- 5 1))", "10"},
			{"(+ 1)", "Expected 2 args; found values 1"},
		}},
		{"lambda", TestSequence{
			{"(lambda (x y) (+ x y))", "(lambda (x y) ...)"},
			{"(lambda args args)", "(lambda args ...)"},
			{"(lambda (a . rest) rest)", "(lambda (a . rest) ...)"},
			{"((lambda (x) (+ x 1)) 1)", "2"},
			{"((lambda () 7))", "7"},
			{"((lambda args args) 1 2 3)", "(1 2 3)"},
			{"((lambda args args))", "()"},
			{"((lambda (a . rest) rest) 1)", "()"},
			{"((lambda (a . rest) rest) 1 2 3)", "(2 3)"},
			{"((lambda (x y) x) 1)", "Expected 2 args; found values 1"},
			{"((lambda (x) x) 1 2)", "Expected 1 args; found values 1 2"},
			{"((lambda (a b . c) a) 1)", "Expected at least 2 args; found values 1"},
			{"(lambda (1) 1)", "Unrecognized special form: (lambda (1) 1)"},
			{"(lambda (x))", "Unrecognized special form: (lambda (x))"},
		}},
	}
	RunTestSuite(t, tests)
}
