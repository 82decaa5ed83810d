package application

import (
	"errors"
	"fmt"
	"strings"

	"remote-control/internal/appliance"
	"remote-control/internal/command"
	"remote-control/internal/domain"
)

var ErrUnknownCommand = errors.New("unknown command")

// Catalog turns layout references into commands. A reference is either
// "none", the name of a macro defined earlier, or "<appliance>.<action>".
type Catalog struct {
	home   *appliance.Home
	macros map[string]*command.MacroCommand
}

func NewCatalog(home *appliance.Home) *Catalog {
	return &Catalog{
		home:   home,
		macros: make(map[string]*command.MacroCommand),
	}
}

func (c *Catalog) Resolve(ref string) (command.Command, error) {
	r, err := domain.ParseCommandRef(ref)
	if err != nil {
		return nil, fmt.Errorf("resolving command: %w", err)
	}

	if r.Action == "" {
		if strings.EqualFold(r.Target, domain.NoneRef) {
			return command.NoCommand{}, nil
		}
		if m, ok := c.macros[strings.ToLower(r.Target)]; ok {
			return m, nil
		}
		return nil, fmt.Errorf("resolving %s: %w", ref, ErrUnknownCommand)
	}

	recv, ok := c.home.Find(r.Target)
	if !ok {
		return nil, fmt.Errorf("resolving %s: no appliance named %s: %w", ref, r.Target, ErrUnknownCommand)
	}

	switch a := recv.(type) {
	case *appliance.Light:
		switch r.Action {
		case domain.ActionOn:
			return command.NewLightOnCommand(a), nil
		case domain.ActionOff:
			return command.NewLightOffCommand(a), nil
		}
	case *appliance.GarageDoor:
		switch r.Action {
		case domain.ActionUp:
			return command.NewGarageDoorUpCommand(a), nil
		case domain.ActionDown:
			return command.NewGarageDoorDownCommand(a), nil
		}
	case *appliance.Stereo:
		switch r.Action {
		case domain.ActionOn:
			return command.NewStereoOnWithCDCommand(a), nil
		case domain.ActionOff:
			return command.NewStereoOffCommand(a), nil
		}
	}

	return nil, fmt.Errorf("resolving %s: %s does not support %q: %w", r.String(), recv.Name(), r.Action, ErrUnknownCommand)
}

// DefineMacro resolves refs in order and registers the resulting macro
// under name.
func (c *Catalog) DefineMacro(name string, refs []string) (*command.MacroCommand, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == domain.NoneRef || strings.Contains(key, ".") {
		return nil, fmt.Errorf("defining macro: invalid name %q", name)
	}
	if _, exists := c.macros[key]; exists {
		return nil, fmt.Errorf("defining macro %s: already defined", name)
	}

	cmds := make([]command.Command, 0, len(refs))
	for _, ref := range refs {
		cmd, err := c.Resolve(ref)
		if err != nil {
			return nil, fmt.Errorf("defining macro %s: %w", name, err)
		}
		cmds = append(cmds, cmd)
	}

	m, err := command.NewMacroCommand(name, cmds...)
	if err != nil {
		return nil, fmt.Errorf("defining macro %s: %w", name, err)
	}

	c.macros[key] = m
	return m, nil
}
