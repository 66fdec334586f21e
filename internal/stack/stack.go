// Package stack models the nested lexical scopes of an evaluation.
//
// Frames are pushed and popped strictly LIFO. Locals live in Source,
// Module, Init and Body frames. A Namespace frame marks the boundary of a
// callee: lookups stop there, so a function body never sees the locals of
// its caller.
package stack

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/symbol"
)

// ErrEmptyStack is returned when closing a frame of an empty stack.
var ErrEmptyStack = errors.New("stack is empty")

// WrongStackFrameError is returned when a local cannot be stored because of
// the frame found on the way.
type WrongStackFrameError struct {
	ID    ident.Identifier
	Frame FrameKind
}

func (e *WrongStackFrameError) Error() string {
	return fmt.Sprintf("cannot bind local '%s' in a %s frame", e.ID, e.Frame)
}

func (e *WrongStackFrameError) Summary() string { return "Wrong stack frame" }

// Stack is an ordered list of frames, innermost last.
type Stack struct {
	frames []*Frame
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{}
}

// Open pushes f.
func (s *Stack) Open(f *Frame) {
	s.frames = append(s.frames, f)
}

// Close pops the innermost frame.
func (s *Stack) Close() (*Frame, error) {
	if len(s.frames) == 0 {
		return nil, ErrEmptyStack
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f, nil
}

func (s *Stack) Depth() int { return len(s.frames) }

// Current returns the innermost frame.
func (s *Stack) Current() (*Frame, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	return s.frames[len(s.frames)-1], true
}

// PutLocal binds id in the innermost frame owning locals. A Call frame is
// passed over only when it is the innermost frame; a Call frame further out
// or any Namespace frame on the way is an error.
func (s *Stack) PutLocal(id ident.Identifier, sym symbol.Symbol) error {
	top := len(s.frames) - 1
	for i := top; i >= 0; i-- {
		f := s.frames[i]
		switch {
		case f.Kind == FrameCall && i == top:
			continue
		case f.Kind == FrameCall, f.Kind == FrameNamespace:
			return &WrongStackFrameError{ID: id, Frame: f.Kind}
		case f.Kind.ownsLocals():
			f.bind(id, sym)
			return nil
		}
	}
	return &WrongStackFrameError{ID: id, Frame: FrameSource}
}

// Fetch finds a local, innermost first. The search ends at the first
// Namespace frame; Call frames are skipped.
func (s *Stack) Fetch(id ident.Identifier) (symbol.Symbol, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if f.Kind == FrameNamespace {
			break
		}
		if sym, ok := f.lookup(id); ok {
			return sym, true
		}
	}
	return symbol.Symbol{}, false
}

// innermost returns the innermost frame matching one of kinds without
// crossing a Namespace frame, unless a Namespace frame is itself wanted.
func (s *Stack) innermost(kinds ...FrameKind) (*Frame, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		for _, k := range kinds {
			if f.Kind == k {
				return f, true
			}
		}
		if f.Kind == FrameNamespace {
			break
		}
	}
	return nil, false
}

// CurrentModule returns the namespace statements currently run in: the
// innermost source, module or callee namespace.
func (s *Stack) CurrentModule() (symbol.Symbol, bool) {
	f, ok := s.innermost(FrameSource, FrameModule, FrameNamespace)
	if !ok {
		return symbol.Symbol{}, false
	}
	return f.Symbol, true
}

// CurrentWorkbench returns the workbench being evaluated, if any.
func (s *Stack) CurrentWorkbench() (*Frame, bool) {
	return s.innermost(FrameWorkbench)
}

// CurrentModel returns the workpiece under construction, if any.
func (s *Stack) CurrentModel() (model.Handle, bool) {
	f, ok := s.CurrentWorkbench()
	if !ok {
		return model.NoHandle, false
	}
	return f.Model, true
}

// Scope returns the frame deciding which statements are allowed: the
// innermost frame that is neither a Body nor a Call.
func (s *Stack) Scope() (*Frame, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if k := s.frames[i].Kind; k != FrameBody && k != FrameCall {
			return s.frames[i], true
		}
	}
	return nil, false
}

// Trace writes the open calls, innermost first.
func (s *Stack) Trace(w io.Writer) error {
	n := 0
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if f.Kind != FrameCall {
			continue
		}
		args := make([]string, 0, len(f.Args))
		for _, a := range f.Args {
			if a.IsNamed() {
				args = append(args, a.ID.Name+" = "+a.Value.String())
			} else {
				args = append(args, a.Value.String())
			}
		}
		if _, err := fmt.Fprintf(w, "#%d %s(%s) at %s\n", n, f.Symbol, strings.Join(args, ", "), f.Site); err != nil {
			return err
		}
		n++
	}
	return nil
}
