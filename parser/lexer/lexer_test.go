package lexer

import (
	"strings"
	"testing"

	"github.com/bmatsuo/schemer/parser/token"
	"github.com/stretchr/testify/assert"
)

type testToken struct {
	typ   token.Type
	text  string
	space bool
}

func lexAll(src string) []*token.Token {
	lex := New(token.NewScanner("test", strings.NewReader(src)))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
		if tok.Type == token.ERROR || tok.Type == token.INVALID {
			return toks
		}
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		expect []testToken
	}{
		{"empty", "", nil},
		{"whitespace", " \n\t ", nil},
		{"list", "(a b)", []testToken{
			{token.PAREN_L, "(", false},
			{token.SYMBOL, "a", false},
			{token.SYMBOL, "b", true},
			{token.PAREN_R, ")", false},
		}},
		{"quote", "'x", []testToken{
			{token.QUOTE, "'", false},
			{token.SYMBOL, "x", false},
		}},
		{"symbols", "-x set! #t string<=? a1", []testToken{
			{token.SYMBOL, "-x", false},
			{token.SYMBOL, "set!", true},
			{token.SYMBOL, "#t", true},
			{token.SYMBOL, "string<=?", true},
			{token.SYMBOL, "a1", true},
		}},
		{"numbers", "42 007", []testToken{
			{token.INT, "42", false},
			{token.INT, "007", true},
		}},
		{"string", `"a \"b\" c"`, []testToken{
			{token.STRING, `"a \"b\" c"`, false},
		}},
		{"multiline string", "\"a\nb\"", []testToken{
			{token.STRING, "\"a\nb\"", false},
		}},
		{"characters", `#\space #\a #\9 #\ `, []testToken{
			{token.CHAR, `#\space`, false},
			{token.CHAR, `#\a`, true},
			{token.CHAR, `#\9`, true},
			{token.CHAR, `#\ `, true},
		}},
		{"dotted", "(a . b)", []testToken{
			{token.PAREN_L, "(", false},
			{token.SYMBOL, "a", false},
			{token.DOT, ".", true},
			{token.SYMBOL, "b", true},
			{token.PAREN_R, ")", false},
		}},
		{"comment", "; comment\nx", []testToken{
			{token.COMMENT, "; comment", false},
			{token.SYMBOL, "x", true},
		}},
		{"comment between", "a;c\nb", []testToken{
			{token.SYMBOL, "a", false},
			{token.COMMENT, ";c", false},
			{token.SYMBOL, "b", true},
		}},
		{"unterminated string", `"abc`, []testToken{
			{token.ERROR, "unexpected EOF", false},
		}},
		{"dot without space", "a.b", []testToken{
			{token.SYMBOL, "a", false},
			{token.ERROR, "dot must be followed by whitespace", false},
		}},
		{"bad character name", `#\ab`, []testToken{
			{token.ERROR, `invalid character name: #\ab`, false},
		}},
		{"invalid", "[", []testToken{
			{token.INVALID, `unexpected text starting with '['`, false},
		}},
	}
	for _, test := range tests {
		toks := lexAll(test.src)
		if !assert.Len(t, toks, len(test.expect), test.name) {
			continue
		}
		for i, tok := range toks {
			assert.Equal(t, test.expect[i].typ, tok.Type, "%s: token %d", test.name, i)
			assert.Equal(t, test.expect[i].text, tok.Text, "%s: token %d", test.name, i)
			assert.Equal(t, test.expect[i].space, tok.Space, "%s: token %d", test.name, i)
		}
	}
}

func TestLexerLocation(t *testing.T) {
	toks := lexAll("(a\n  bc)")
	if assert.Len(t, toks, 4) {
		assert.Equal(t, "test:1:1", toks[0].Source.String())
		assert.Equal(t, "test:1:2", toks[1].Source.String())
		assert.Equal(t, "test:2:3", toks[2].Source.String())
		assert.Equal(t, "test:2:5", toks[3].Source.String())
	}
}

func TestLexerEOF(t *testing.T) {
	lex := New(token.NewScanner("test", strings.NewReader("x")))
	assert.Equal(t, token.SYMBOL, lex.NextToken().Type)
	assert.Equal(t, token.EOF, lex.NextToken().Type)
	assert.Equal(t, token.EOF, lex.NextToken().Type)
}
