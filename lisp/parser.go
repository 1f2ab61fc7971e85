package lisp

import (
	"io"
	"os"
)

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the sequence of LVals that it
	// contains.  The returned LVals are evaluated in order by ``load''.
	Read(name string, r io.Reader) ([]*LVal, error)
}

// SourceLoader returns the contents of the named source file.  A Runtime uses
// its SourceLoader for ``load'', ``read-contents'' and ``read-all''.
type SourceLoader func(filename string) ([]byte, error)

// FileSourceLoader reads source files from the local file system.
func FileSourceLoader(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}
