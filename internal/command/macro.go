package command

import (
	"fmt"
	"strings"
)

// MacroCommand runs a fixed sequence of commands as one unit.
// Execute runs them in order; Undo runs their Undo in reverse order.
type MacroCommand struct {
	name     string
	commands []Command
}

// NewMacroCommand builds a macro from cmds. The slice is copied, so later
// changes to it do not affect the macro. Members are shared, not owned.
func NewMacroCommand(name string, cmds ...Command) (*MacroCommand, error) {
	if len(cmds) == 0 {
		return nil, ErrEmptyMacro
	}
	for i, c := range cmds {
		if c == nil {
			return nil, fmt.Errorf("macro %q step %d: %w", name, i, ErrNilCommand)
		}
	}

	commands := make([]Command, len(cmds))
	copy(commands, cmds)

	return &MacroCommand{name: name, commands: commands}, nil
}

func (m *MacroCommand) Execute() {
	for _, c := range m.commands {
		c.Execute()
	}
}

func (m *MacroCommand) Undo() {
	for i := len(m.commands) - 1; i >= 0; i-- {
		m.commands[i].Undo()
	}
}

// Commands returns a copy of the member sequence in execution order.
func (m *MacroCommand) Commands() []Command {
	out := make([]Command, len(m.commands))
	copy(out, m.commands)
	return out
}

func (m *MacroCommand) Len() int { return len(m.commands) }

func (m *MacroCommand) String() string {
	if m.name != "" {
		return m.name
	}
	names := make([]string, len(m.commands))
	for i, c := range m.commands {
		names[i] = Name(c)
	}
	return "[" + strings.Join(names, ", ") + "]"
}
