package domain

import (
	"fmt"
	"strings"
)

type Action string

const (
	ActionOn   Action = "on"
	ActionOff  Action = "off"
	ActionUp   Action = "up"
	ActionDown Action = "down"
)

type Button string

const (
	ButtonOn   Button = "on"
	ButtonOff  Button = "off"
	ButtonUndo Button = "undo"
)

// NoneRef names the no-op command in layouts.
const NoneRef = "none"

// Press is a single button press on the remote. Slot is ignored for ButtonUndo.
type Press struct {
	Button Button
	Slot   int
}

// SlotView describes what is bound to a slot, by command name.
type SlotView struct {
	Slot int    `json:"slot"`
	On   string `json:"on"`
	Off  string `json:"off"`
}

// MacroView lists the members of a macro bound to the remote, in execution order.
type MacroView struct {
	Name     string   `json:"name"`
	Commands []string `json:"commands"`
}

// CommandRef is a parsed "<appliance>.<action>" reference. References without a
// dot name either the no-op command or a macro and leave Action empty.
type CommandRef struct {
	Target string
	Action Action
}

func ParseCommandRef(s string) (CommandRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CommandRef{}, fmt.Errorf("empty command reference")
	}

	target, action, found := strings.Cut(s, ".")
	if !found {
		return CommandRef{Target: s}, nil
	}
	if target == "" || action == "" || strings.Contains(action, ".") {
		return CommandRef{}, fmt.Errorf("malformed command reference %q", s)
	}

	return CommandRef{Target: target, Action: Action(strings.ToLower(action))}, nil
}

func (r CommandRef) String() string {
	if r.Action == "" {
		return r.Target
	}
	return r.Target + "." + string(r.Action)
}
