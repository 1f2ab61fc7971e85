package repl

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatsuo/schemer/lisp"
	"github.com/bmatsuo/schemer/parser"
	"github.com/chzyer/readline"
)

// DefaultPrompt is the prompt displayed when the repl is waiting for a new
// expression.
const DefaultPrompt = "Lisp>>> "

// quitCommand ends a session when entered on a line of its own.
const quitCommand = "quit"

// Option configures a repl.
type Option func(*options)

type options struct {
	prompt   string
	stdin    io.ReadCloser
	stdout   io.Writer
	stderr   io.Writer
	debug    bool
	maxStack int
}

// WithPrompt sets the prompt displayed before each new expression.
func WithPrompt(prompt string) Option {
	return func(o *options) { o.prompt = prompt }
}

// WithStdin makes the repl read lines from r instead of os.Stdin.
func WithStdin(r io.ReadCloser) Option {
	return func(o *options) { o.stdin = r }
}

// WithStdout makes the repl print results to w instead of os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithStderr makes the repl print errors to w instead of os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// WithDebug causes the call stack of a failed evaluation to be printed along
// with the error.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// WithMaximumStackHeight limits the nesting of procedure calls.
func WithMaximumStackHeight(n int) Option {
	return func(o *options) { o.maxStack = n }
}

// RunRepl runs a simple repl until the input ends or the user enters quit.
func RunRepl(opts ...Option) error {
	o := &options{
		prompt: DefaultPrompt,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, fn := range opts {
		fn(o)
	}

	env, err := lisp.PrimitiveBindings(
		lisp.WithReader(parser.NewReader()),
		lisp.WithMaximumStackHeight(o.maxStack),
		lisp.WithStderr(o.stderr),
	)
	if err != nil {
		return err
	}
	session := NewSession(env, o.stdout)
	session.Debug = o.debug

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       o.prompt,
		AutoComplete: &completer{env: env},
		Stdin:        o.stdin,
		Stdout:       o.stdout,
		Stderr:       o.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(o.prompt)) // prompt had better be ascii...

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			session.Reset()
			rl.SetPrompt(o.prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		more, quit := session.Feed(line)
		if quit {
			return nil
		}
		if more {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(o.prompt)
		}
	}
}

// Session evaluates lines of input in a single environment.  Expressions may
// span multiple lines.
type Session struct {
	Env   *lisp.LEnv
	Out   io.Writer
	Debug bool

	buf []string
}

// NewSession returns a Session that evaluates input in env and writes results
// to out.  Errors are written to the Stderr of env's runtime.
func NewSession(env *lisp.LEnv, out io.Writer) *Session {
	return &Session{
		Env: env,
		Out: out,
	}
}

// Reset discards any buffered partial input.
func (s *Session) Reset() {
	s.buf = nil
}

// Feed adds a line of input to the session.  When the buffered input forms
// complete expressions they are evaluated in order and the value of each is
// printed.  Feed returns true for more if the input is incomplete and true
// for quit if the user asked to end the session.
func (s *Session) Feed(line string) (more bool, quit bool) {
	if len(s.buf) == 0 && strings.TrimSpace(line) == quitCommand {
		return false, true
	}
	s.buf = append(s.buf, line)
	text := strings.Join(s.buf, "\n")
	if parser.Incomplete(text) {
		return true, false
	}
	s.buf = nil

	exprs, err := parser.ReadAll(text)
	if err != nil {
		s.errln(err)
		return false, false
	}
	for _, expr := range exprs {
		s.Env.Runtime.ErrStack = nil
		v, err := s.Env.Eval(expr)
		if err != nil {
			s.errln(err)
			if s.Debug && s.Env.Runtime.ErrStack != nil {
				s.Env.Runtime.ErrStack.DebugPrint(s.Env.Runtime.Stderr)
			}
			return false, false
		}
		fmt.Fprintln(s.Out, v)
	}
	return false, false
}

func (s *Session) errln(v ...interface{}) {
	fmt.Fprintln(s.Env.Runtime.Stderr, v...)
}

// completer completes the word under the cursor with the names of special
// forms and the names bound in env.
type completer struct {
	env *lisp.LEnv
}

var _ readline.AutoCompleter = (*completer)(nil)

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && !isDelim(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}
	var matches [][]rune
	for _, name := range c.names() {
		if strings.HasPrefix(name, prefix) && name != prefix {
			matches = append(matches, []rune(name[len(prefix):]))
		}
	}
	return matches, len([]rune(prefix))
}

func (c *completer) names() []string {
	names := append(lisp.SpecialOpNames(), c.env.VisibleNames()...)
	sort.Strings(names)
	return names
}

func isDelim(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '(', ')', '\'', '"':
		return true
	}
	return false
}
