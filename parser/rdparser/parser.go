package rdparser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bmatsuo/schemer/lisp"
	"github.com/bmatsuo/schemer/parser/internal/interntoken"
	"github.com/bmatsuo/schemer/parser/lexer"
	"github.com/bmatsuo/schemer/parser/token"
)

type reader struct {
	symbols *interntoken.Table
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.  Atoms read by
// the returned Reader share the storage of their names.
func NewReader() lisp.Reader {
	return &reader{symbols: interntoken.NewTable()}
}

// Read implements lisp.Reader.
func (r *reader) Read(name string, src io.Reader) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, src)
	p := New(s)
	p.symbols = r.symbols
	return p.ParseProgram()
}

// Parser is a recursive descent parser for the reader grammar.
type Parser struct {
	lex     *lexer.Lexer
	curr    *token.Token
	peek    *token.Token
	symbols *interntoken.Table // may be nil
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses expressions until the end of input.  Expressions must
// be separated by whitespace or comments.  No expressions are returned if
// any of them fails to parse.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for {
		p.skipComments()
		if p.expect(token.EOF) {
			break
		}
		if len(exprs) > 0 && !p.Peek().Space {
			p.ReadToken()
			return nil, p.errorf("expected whitespace before %s", p.Token().Type)
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses a single expression.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	p.skipComments()
	switch p.PeekType() {
	case token.INT:
		return p.ParseLiteralInt()
	case token.STRING:
		return p.ParseLiteralString()
	case token.CHAR:
		return p.ParseLiteralChar()
	case token.QUOTE:
		return p.ParseQuote()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.PAREN_L:
		return p.ParseList()
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.errorf("%s", p.Token().Text)
	case token.EOF:
		p.ReadToken()
		return nil, p.errorf("unexpected end of input")
	default:
		p.ReadToken()
		return nil, p.errorf("unexpected %s", p.Token().Type)
	}
}

func (p *Parser) ParseLiteralInt() (*lisp.LVal, error) {
	if !p.expect(token.INT) {
		return nil, p.errorf("invalid integer literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.Atoi(text)
	if err != nil {
		return nil, p.errorf("integer literal overflows int: %v", text)
	}
	return lisp.Number(x), nil
}

func (p *Parser) ParseLiteralString() (*lisp.LVal, error) {
	if !p.expect(token.STRING) {
		return nil, p.errorf("invalid string literal: %v", p.PeekType())
	}
	text := p.Token().Text
	return lisp.String(unescape(text[1 : len(text)-1])), nil
}

func (p *Parser) ParseLiteralChar() (*lisp.LVal, error) {
	if !p.expect(token.CHAR) {
		return nil, p.errorf("invalid character literal: %v", p.PeekType())
	}
	text := p.Token().Text
	name := strings.TrimPrefix(text, `#\`)
	switch name {
	case "space":
		return lisp.Char(' '), nil
	case "newline":
		return lisp.Char('\n'), nil
	}
	r := []rune(name)
	if len(r) != 1 {
		return nil, p.errorf("invalid character name: %v", text)
	}
	return lisp.Char(r[0]), nil
}

// ParseQuote parses a quoted expression.  The quote must be followed
// immediately by the expression.
func (p *Parser) ParseQuote() (*lisp.LVal, error) {
	if !p.expect(token.QUOTE) {
		return nil, p.errorf("invalid quote: %v", p.PeekType())
	}
	if p.PeekType() != token.EOF && (p.Peek().Space || p.PeekType() == token.COMMENT) {
		p.ReadToken()
		return nil, p.errorf("unexpected whitespace after %s", token.QUOTE)
	}
	v, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return lisp.Quote(v), nil
}

// ParseSymbol parses an atom.  The atoms #t and #f are boolean literals.
func (p *Parser) ParseSymbol() (*lisp.LVal, error) {
	if !p.expect(token.SYMBOL) {
		return nil, p.errorf("invalid symbol: %v", p.PeekType())
	}
	switch text := p.Token().Text; text {
	case "#t":
		return lisp.Bool(true), nil
	case "#f":
		return lisp.Bool(false), nil
	default:
		return lisp.Atom(p.symbols.Get(text)), nil
	}
}

// ParseList parses a proper or dotted list.  Elements of a list must be
// separated by whitespace.
func (p *Parser) ParseList() (*lisp.LVal, error) {
	if !p.expect(token.PAREN_L) {
		return nil, p.errorf("invalid list: %v", p.PeekType())
	}
	open := p.Token()
	var cells []*lisp.LVal
	for {
		p.skipComments()
		if p.expect(token.EOF) {
			return nil, p.errorf("unmatched %s", open.Text)
		}
		if p.expect(token.PAREN_R) {
			return lisp.List(cells...), nil
		}
		if len(cells) > 0 && !p.Peek().Space {
			p.ReadToken()
			return nil, p.errorf("expected whitespace before %s", p.Token().Type)
		}
		if p.expect(token.DOT) {
			last, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			p.skipComments()
			if !p.expect(token.PAREN_R) {
				p.ReadToken()
				return nil, p.errorf("expected %s after dotted list tail", token.PAREN_R)
			}
			return lisp.DottedList(cells, last), nil
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}
}

// unescape replaces the escape sequences \n \r \\ and \" in a single pass
// from left to right.  Any other backslash pair is kept as it is.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func (p *Parser) skipComments() {
	for p.expect(token.COMMENT) {
	}
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(format string, v ...interface{}) error {
	err := &lisp.ParseError{Msg: fmt.Sprintf(format, v...)}
	if tok := p.Token(); tok != nil && tok.Source != nil {
		err.Source = tok.Source.String()
	}
	return err
}
