package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"remote-control/internal/appliance"
	"remote-control/internal/command"
	"remote-control/internal/domain"
	"remote-control/internal/remote"
)

// Panel is the front of the remote: it turns button presses into remote
// calls and reports the outcome through a Notifier.
//
// mu serialises presses so the reported command is the one the press ran.
type Panel struct {
	remote   *remote.Control
	home     *appliance.Home
	notifier Notifier
	logger   *slog.Logger

	mu sync.Mutex
}

func NewPanel(
	ctrl *remote.Control,
	home *appliance.Home,
	notifier Notifier,
	logger *slog.Logger,
) *Panel {
	return &Panel{
		remote:   ctrl,
		home:     home,
		notifier: notifier,
		logger:   logger,
	}
}

// Press dispatches one button press and returns a short description of what
// ran. Notification failures are logged, not returned.
func (p *Panel) Press(ctx context.Context, press domain.Press) (string, error) {
	result, err := p.dispatch(ctx, press)
	if err != nil {
		notifyErr := p.notifier.Notify(ctx, fmt.Sprintf("Error: %s", err.Error()))
		if notifyErr != nil {
			p.logger.Error("notifying error", "error", notifyErr)
		}
		return "", err
	}

	if err := p.notifier.Notify(ctx, result); err != nil {
		p.logger.Error("notifying result", "error", err)
	}

	return result, nil
}

func (p *Panel) dispatch(ctx context.Context, press domain.Press) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch press.Button {
	case domain.ButtonOn:
		if err := p.remote.OnButtonWasPressed(ctx, press.Slot); err != nil {
			return "", fmt.Errorf("pressing on button: %w", err)
		}
		return fmt.Sprintf("Slot %d on: %s", press.Slot, command.Name(p.remote.LastCommand())), nil

	case domain.ButtonOff:
		if err := p.remote.OffButtonWasPressed(ctx, press.Slot); err != nil {
			return "", fmt.Errorf("pressing off button: %w", err)
		}
		return fmt.Sprintf("Slot %d off: %s", press.Slot, command.Name(p.remote.LastCommand())), nil

	case domain.ButtonUndo:
		p.remote.UndoButtonWasPressed(ctx)
		return fmt.Sprintf("Undo: %s", command.Name(p.remote.LastCommand())), nil

	default:
		return "", fmt.Errorf("unknown button %q", press.Button)
	}
}

func (p *Panel) Layout() []domain.SlotView {
	bindings := p.remote.Bindings()
	views := make([]domain.SlotView, len(bindings))
	for i, b := range bindings {
		views[i] = domain.SlotView{
			Slot: b.Slot,
			On:   command.Name(b.On),
			Off:  command.Name(b.Off),
		}
	}
	return views
}

// Macros describes every macro bound to a slot, including nested ones, in
// slot order. Each macro appears once.
func (p *Panel) Macros() []domain.MacroView {
	seen := make(map[*command.MacroCommand]bool)
	var views []domain.MacroView

	var visit func(cmd command.Command)
	visit = func(cmd command.Command) {
		m, ok := cmd.(*command.MacroCommand)
		if !ok || seen[m] {
			return
		}
		seen[m] = true

		members := m.Commands()
		view := domain.MacroView{Name: m.String(), Commands: make([]string, len(members))}
		for i, c := range members {
			view.Commands[i] = command.Name(c)
		}
		views = append(views, view)

		for _, c := range members {
			visit(c)
		}
	}

	for _, b := range p.remote.Bindings() {
		visit(b.On)
		visit(b.Off)
	}
	return views
}

func (p *Panel) Appliances() []domain.ApplianceState {
	return p.home.States()
}

func (p *Panel) String() string {
	return p.remote.String()
}
