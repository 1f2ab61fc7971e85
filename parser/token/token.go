package token

import "fmt"

// Token is a lexical token of the reader grammar.
type Token struct {
	Type   Type
	Text   string
	Source *Location

	// Space is true when the token was preceded by whitespace or a comment.
	// The parser uses Space to enforce separation of list elements.
	Space bool
}

func (tok *Token) String() string {
	if tok.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", tok.Type, tok.Text)
}

// Type is the type of a Token.
type Type uint

// Type constants used by the lexer and parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	// Atomic expressions & literals
	SYMBOL
	INT
	STRING
	CHAR

	COMMENT

	// Operators
	QUOTE
	DOT

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ERROR:   "error",
		EOF:     "EOF",
		SYMBOL:  "symbol",
		INT:     "int",
		STRING:  "string",
		CHAR:    "character",
		COMMENT: ";",
		QUOTE:   "'",
		DOT:     ".",
		PAREN_L: "(",
		PAREN_R: ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location is a position in a source file.
type Location struct {
	File string
	Pos  int // byte offset
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	if loc.File == "" {
		if loc.Line == 0 {
			return fmt.Sprintf("[%d]", loc.Pos)
		}
		return fmt.Sprintf("%d:%d", loc.Line, loc.Col)
	}
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
