package application

import (
	"context"
	"fmt"

	"remote-control/internal/domain"
)

// DemoScript exercises the stock layout from config.Default: the light,
// the stereo, then party mode with an undo.
var DemoScript = []domain.Press{
	{Button: domain.ButtonOn, Slot: 0},
	{Button: domain.ButtonOff, Slot: 0},
	{Button: domain.ButtonUndo},
	{Button: domain.ButtonOn, Slot: 2},
	{Button: domain.ButtonOff, Slot: 2},
	{Button: domain.ButtonOn, Slot: 3},
	{Button: domain.ButtonOff, Slot: 3},
	{Button: domain.ButtonUndo},
}

// RunDemo presses every button in script in order and stops at the first
// error or when ctx is done.
func (p *Panel) RunDemo(ctx context.Context, script []domain.Press) error {
	p.logger.Info("running demo", "presses", len(script))

	for i, press := range script {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := p.Press(ctx, press)
		if err != nil {
			return fmt.Errorf("demo step %d: %w", i, err)
		}
		p.logger.Info("demo step", "step", i, "result", result)
	}

	p.logger.Info("demo finished", "remote", p.remote.String())
	return nil
}
