/*
Package parser reads scheme source text.

	expr    := <atom> | <number> | <string> | <char> | <quoted> | <list> | <dotted>
	atom    := (<letter> | <symbol>) (<letter> | <digit> | <symbol>)*
	symbol  := /[!#$%&|*+\-/:<=>?@^_~]/
	number  := /[0-9]+/
	string  := '"' (/[^"\\]/ | '\' <any>)* '"'
	char    := '#\' ('space' | 'newline' | <letter> | <digit> | ' ')
	quoted  := "'" <expr>         ; no whitespace after the quote
	list    := '(' (<expr> (<ws> <expr>)*)? ')'
	dotted  := '(' <expr>* <ws> '.' <ws> <expr> ')'
	comment := ';' <any rune but newline>*

Top-level expressions are separated by whitespace or comments like the
elements of a list.  A number has no sign, so -7 is an atom.  The atoms #t
and #f are the boolean literals.  The work of parsing is done by
package rdparser.  Package parser also provides Incomplete, which interactive
readers use to decide whether to prompt for more input.
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/bmatsuo/schemer/lisp"
	"github.com/bmatsuo/schemer/parser/rdparser"
	parsec "github.com/prataprc/goparsec"
)

// NewReader returns a new lisp.Reader.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// Read parses text, which must contain exactly one expression.
func Read(text string) (*lisp.LVal, error) {
	exprs, err := ReadAll(text)
	if err != nil {
		return nil, err
	}
	if len(exprs) != 1 {
		return nil, &lisp.ParseError{Msg: fmt.Sprintf("expected a single expression; found %d", len(exprs))}
	}
	return exprs[0], nil
}

// ReadAll parses every expression in text.
func ReadAll(text string) ([]*lisp.LVal, error) {
	return NewReader().Read("", strings.NewReader(text))
}

// Terminal names produced by the token scanner used in Incomplete.
const (
	termComment    = "COMMENT"
	termString     = "STRING"
	termOpenString = "OPENSTRING"
	termChar       = "CHAR"
	termInt        = "INT"
	termAtom       = "ATOM"
	termOpenP      = "OPENP"
	termCloseP     = "CLOSEP"
	termQuote      = "QUOTE"
	termDot        = "DOT"
)

// Incomplete returns true if text is a prefix of a valid program that needs
// more input: it has unclosed parentheses or an unterminated string.  Text
// that could never become valid is not incomplete, so that a Reader can
// report the error.  Text ending in a quote is complete because a quote must
// be followed immediately by an expression, not by the next line.
func Incomplete(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	s := parsec.NewScanner([]byte(text))
	root, s := newTokenParser()(s)
	if !s.Endof() {
		return false
	}
	depth := 0
	for _, term := range terminals(root) {
		switch term.Name {
		case termOpenString:
			return true
		case termOpenP:
			depth++
		case termCloseP:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth > 0
}

// newTokenParser returns a parser matching any sequence of tokens.  It does
// not check the structure of expressions.
func newTokenParser() parsec.Parser {
	first := func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return nodes[0]
	}
	all := func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return nodes
	}
	tok := parsec.OrdChoice(first,
		parsec.Token(`;[^\n]*`, termComment),
		parsec.Token(`"(?:[^"\\]|\\[\s\S])*"`, termString),
		parsec.Token(`"(?:[^"\\]|\\[\s\S])*\\?$`, termOpenString),
		parsec.Token(`#\\(?:\pL+|[0-9 ])`, termChar),
		parsec.Token(`[0-9]+`, termInt),
		parsec.Token(`[\pL!#$%&|*+\-/:<=>?@^_~][\pL0-9!#$%&|*+\-/:<=>?@^_~]*`, termAtom),
		parsec.Atom("(", termOpenP),
		parsec.Atom(")", termCloseP),
		parsec.Atom("'", termQuote),
		parsec.Atom(".", termDot),
	)
	return parsec.Kleene(all, tok)
}

func terminals(node parsec.ParsecNode) []*parsec.Terminal {
	switch node := node.(type) {
	case *parsec.Terminal:
		return []*parsec.Terminal{node}
	case []parsec.ParsecNode:
		var terms []*parsec.Terminal
		for _, n := range node {
			terms = append(terms, terminals(n)...)
		}
		return terms
	default:
		return nil
	}
}
