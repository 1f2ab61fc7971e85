package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/bmatsuo/schemer/parser/token"
)

// Runes other than letters that may begin a symbol.  Digits may appear in a
// symbol after the first rune.
const miscWordSymbols = "!#$%&|*+-/:<=>?@^_~"
const miscWordRunes = "0123456789" + miscWordSymbols

// Lexer produces tokens of the reader grammar from a token.Scanner.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune
	space   bool // whitespace or a comment precedes the next token

	// readErr is the error that ended scanning, io.EOF at the end of input.
	readErr error
}

// New returns a Lexer that reads runes from s.
func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// NextToken returns the next token in the input.  At the end of input
// NextToken returns an EOF token.  After a scanning error every call returns
// an ERROR token.
func (lex *Lexer) NextToken() *token.Token {
	tok := lex.nextToken()
	tok.Space = tok.Space || lex.space
	lex.space = tok.Type == token.COMMENT
	return tok
}

func (lex *Lexer) nextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	skipped, err := lex.skipWhitespace()
	if err != nil {
		lex.readErr = err
		return lex.emitError(lex.readErr, true)
	}
	if skipped {
		lex.space = true
	}
	if lex.readChar() != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.charToken(token.PAREN_L)
	case ')':
		return lex.charToken(token.PAREN_R)
	case '\'':
		return lex.charToken(token.QUOTE)
	case ';':
		for {
			r, ok := lex.scanner.Peek()
			if !ok || r == '\n' {
				break
			}
			if lex.readChar() != nil {
				return lex.emitError(lex.readErr, false)
			}
		}
		return lex.scanner.EmitToken(token.COMMENT)
	case '.':
		if !isSpace(lex.peekRune()) {
			return lex.errorf("dot must be followed by whitespace")
		}
		return lex.charToken(token.DOT)
	case '#':
		if lex.peekRune() == '\\' {
			return lex.readCharacter()
		}
		return lex.readSymbol()
	case '"':
		return lex.readString()
	default:
		if isDigit(lex.ch) {
			return lex.readNumber()
		}
		if isWordStart(lex.ch) {
			return lex.readSymbol()
		}
		lex.readErr = fmt.Errorf("unexpected text starting with %q", lex.ch)
		return lex.emit(token.INVALID, lex.readErr.Error())
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

// errorf emits an ERROR token and stops further scanning.
func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	err := fmt.Errorf(format, v...)
	tok := lex.emitError(err, false)
	lex.readErr = err
	return tok
}

func (lex *Lexer) charToken(typ token.Type) *token.Token {
	return lex.scanner.EmitToken(typ)
}

// readString scans a string literal.  A backslash always escapes the
// following rune, the parser decides what the escape means.
func (lex *Lexer) readString() *token.Token {
	for {
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
		switch lex.ch {
		case '"':
			return lex.scanner.EmitToken(token.STRING)
		case '\\':
			if lex.readChar() != nil {
				return lex.emitError(lex.readErr, false)
			}
		}
	}
}

// readCharacter scans a character literal: #\ followed by a single rune or
// by a character name.
func (lex *Lexer) readCharacter() *token.Token {
	if lex.readChar() != nil { // the backslash
		return lex.emitError(lex.readErr, false)
	}
	if lex.readChar() != nil {
		return lex.emitError(lex.readErr, false)
	}
	switch {
	case isLetter(lex.ch):
		for isLetter(lex.peekRune()) {
			if lex.readChar() != nil {
				return lex.emitError(lex.readErr, false)
			}
		}
	case isDigit(lex.ch), lex.ch == ' ':
	default:
		return lex.errorf("invalid character literal: %s", lex.scanner.Text())
	}
	text := lex.scanner.Text()
	name := strings.TrimPrefix(text, `#\`)
	if len([]rune(name)) > 1 && name != "space" && name != "newline" {
		return lex.errorf("invalid character name: %s", text)
	}
	return lex.scanner.EmitToken(token.CHAR)
}

func (lex *Lexer) readSymbol() *token.Token {
	for isWord(lex.peekRune()) {
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

func (lex *Lexer) readNumber() *token.Token {
	for isDigit(lex.peekRune()) {
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
	}
	// the returned string may not actually be a usable number (overflow), but
	// we can find that out at parse time -- not scan time.
	return lex.scanner.EmitToken(token.INT)
}

// skipWhitespace returns true if any whitespace was skipped.
func (lex *Lexer) skipWhitespace() (bool, error) {
	skipped := false
	for isSpace(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return skipped, err
		}
		skipped = true
	}
	lex.scanner.Ignore()
	return skipped, nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isSpace(c rune) bool {
	return unicode.IsSpace(c)
}

func isLetter(c rune) bool {
	return unicode.IsLetter(c)
}

func isWordStart(c rune) bool {
	return isLetter(c) || strings.ContainsRune(miscWordSymbols, c)
}

func isWord(c rune) bool {
	return isLetter(c) || strings.ContainsRune(miscWordRunes, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
