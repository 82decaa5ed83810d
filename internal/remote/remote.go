// Package remote implements the slot table of a programmable remote control
// with single-level undo.
package remote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"remote-control/internal/command"
	"remote-control/internal/domain"
)

// DefaultSlots is the number of on/off button pairs on a stock remote.
const DefaultSlots = 7

const tracerName = "remote-control/internal/remote"

// Binding is the pair of commands assigned to one slot.
type Binding struct {
	Slot int
	On   command.Command
	Off  command.Command
}

type Option func(*Control)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Control) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Control) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// Control is a fixed-size table of on/off commands plus the last dispatched
// command, which the undo button reverses.
//
// All operations hold one mutex for their whole duration, including the
// command's Execute or Undo. Commands must not call back into the Control.
type Control struct {
	logger *slog.Logger
	tracer trace.Tracer

	mu   sync.Mutex
	on   []command.Command
	off  []command.Command
	undo command.Command
}

// New returns a Control with the given number of slots, every one bound to
// command.NoCommand in both directions.
func New(slots int, opts ...Option) (*Control, error) {
	if slots <= 0 {
		return nil, fmt.Errorf("creating remote with %d slots: %w", slots, ErrInvalidCapacity)
	}

	c := &Control{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer(tracerName),
		on:     make([]command.Command, slots),
		off:    make([]command.Command, slots),
		undo:   command.NoCommand{},
	}
	for i := range slots {
		c.on[i] = command.NoCommand{}
		c.off[i] = command.NoCommand{}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Control) Capacity() int {
	return len(c.on)
}

// SetCommand binds on and off to slot, replacing whatever was there.
// Pass command.NoCommand{} to leave one direction unbound.
func (c *Control) SetCommand(ctx context.Context, slot int, on, off command.Command) error {
	_, span := c.tracer.Start(ctx, "remote.set_command",
		trace.WithAttributes(attribute.Int("remote.slot", slot)),
	)
	defer span.End()

	if on == nil || off == nil {
		err := fmt.Errorf("setting slot %d: %w", slot, command.ErrNilCommand)
		recordError(span, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkSlot(slot); err != nil {
		recordError(span, err)
		return err
	}

	c.on[slot] = on
	c.off[slot] = off

	span.SetAttributes(
		attribute.String("remote.on_command", command.Name(on)),
		attribute.String("remote.off_command", command.Name(off)),
	)
	c.logger.Debug("slot assigned",
		"slot", slot,
		"on", command.Name(on),
		"off", command.Name(off),
	)

	return nil
}

func (c *Control) OnButtonWasPressed(ctx context.Context, slot int) error {
	return c.press(ctx, domain.ButtonOn, slot)
}

func (c *Control) OffButtonWasPressed(ctx context.Context, slot int) error {
	return c.press(ctx, domain.ButtonOff, slot)
}

func (c *Control) press(ctx context.Context, button domain.Button, slot int) error {
	_, span := c.tracer.Start(ctx, "remote."+string(button)+"_button",
		trace.WithAttributes(attribute.Int("remote.slot", slot)),
	)
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkSlot(slot); err != nil {
		recordError(span, err)
		return err
	}

	cmd := c.on[slot]
	if button == domain.ButtonOff {
		cmd = c.off[slot]
	}

	cmd.Execute()
	c.undo = cmd

	span.SetAttributes(attribute.String("remote.command", command.Name(cmd)))
	c.logger.Info("button pressed",
		"button", button,
		"slot", slot,
		"command", command.Name(cmd),
	)

	return nil
}

// UndoButtonWasPressed reverses the last dispatched command. The undo memory
// is left as is, so pressing undo twice undoes the same command twice.
func (c *Control) UndoButtonWasPressed(ctx context.Context) {
	_, span := c.tracer.Start(ctx, "remote.undo_button")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.undo.Undo()

	span.SetAttributes(attribute.String("remote.command", command.Name(c.undo)))
	c.logger.Info("undo pressed", "command", command.Name(c.undo))
}

// LastCommand returns the command the undo button would reverse.
func (c *Control) LastCommand() command.Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.undo
}

// Bindings returns a snapshot of every slot in index order.
func (c *Control) Bindings() []Binding {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]Binding, len(c.on))
	for i := range c.on {
		result[i] = Binding{Slot: i, On: c.on[i], Off: c.off[i]}
	}
	return result
}

func (c *Control) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("------ Remote Control -------\n")
	for i := range c.on {
		fmt.Fprintf(&sb, "[slot %d] %-24s %s\n", i, command.Name(c.on[i]), command.Name(c.off[i]))
	}
	fmt.Fprintf(&sb, "[undo] %s\n", command.Name(c.undo))
	return sb.String()
}

func (c *Control) checkSlot(slot int) error {
	if slot < 0 || slot >= len(c.on) {
		return &SlotError{Slot: slot, Capacity: len(c.on)}
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
