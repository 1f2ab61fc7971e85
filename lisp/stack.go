package lisp

import (
	"fmt"
	"io"
)

// CallStack is a procedure call stack.
type CallStack struct {
	Frames []CallFrame

	// MaxHeight is the maximum number of frames allowed on the stack.  When
	// MaxHeight is less than one the height of the stack is not limited.
	MaxHeight int
}

// CallFrame is one frame in the CallStack
type CallFrame struct {
	Name string // name the procedure was called by, if it was called by name
	Proc *LVal
}

// Copy creates a copy of the current stack so that it can be retained after
// the stack unwinds.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{Frames: frames, MaxHeight: s.MaxHeight}
}

// Height returns the number of frames on the stack.
func (s *CallStack) Height() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// Top returns the CallFrame at the top of the stack or nil if none exists.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Push pushes a new stack frame for proc onto s.  Push returns a
// StackOverflowError instead if s is already at its maximum height.
func (s *CallStack) Push(name string, proc *LVal) error {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return &StackOverflowError{Height: s.MaxHeight}
	}
	s.Frames = append(s.Frames, CallFrame{Name: name, Proc: proc})
	return nil
}

// Pop removes the top CallFrame from the stack and returns it.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// DebugPrint prints s
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", len(s.Frames))
	if err != nil {
		return n, err
	}
	indent := "  "
	for i := len(s.Frames) - 1; i >= 0; i-- {
		f := s.Frames[i]
		name := f.Name
		if name == "" {
			name = f.Proc.String()
		}
		_n, err := fmt.Fprintf(w, "%sheight %d: %s\n", indent, i, name)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
