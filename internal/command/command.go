// Package command defines the reversible actions a remote dispatches to its
// appliances, and the macro that composes them.
package command

import (
	"errors"
	"fmt"
)

var (
	ErrNilCommand = errors.New("nil command")
	ErrEmptyMacro = errors.New("macro needs at least one command")
)

// Command is a reversible action bound to one or more receivers.
//
// Undo reverses the most recent Execute. Implementations keep no history
// beyond what they need to rebuild the prior receiver state.
type Command interface {
	Execute()
	Undo()
}

// NoCommand does nothing. Unbound slots and the initial undo memory hold it.
type NoCommand struct{}

func (NoCommand) Execute() {}
func (NoCommand) Undo()    {}

func (NoCommand) String() string { return "none" }

// Func adapts a pair of functions into a Command. Nil functions are skipped.
type Func struct {
	Name    string
	Do      func()
	Reverse func()
}

func (f Func) Execute() {
	if f.Do != nil {
		f.Do()
	}
}

func (f Func) Undo() {
	if f.Reverse != nil {
		f.Reverse()
	}
}

func (f Func) String() string {
	if f.Name == "" {
		return "func"
	}
	return f.Name
}

// Name returns a display name for cmd: its String method when it has one,
// otherwise the dynamic type.
func Name(cmd Command) string {
	if cmd == nil {
		return "<nil>"
	}
	if s, ok := cmd.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", cmd)
}
