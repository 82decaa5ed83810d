package application

import (
	"context"
	"fmt"
	"log/slog"

	"remote-control/config"
	"remote-control/internal/appliance"
	"remote-control/internal/domain"
	"remote-control/internal/remote"
)

// BuildRemote creates the appliances, macros and slot bindings a layout
// describes. Any unresolvable reference fails the whole build.
func BuildRemote(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...remote.Option) (*remote.Control, *appliance.Home, error) {
	home := appliance.NewHome(logger)
	for _, a := range cfg.Appliances {
		if _, err := home.Add(domain.Appliance{Name: a.Name, Kind: a.Kind}); err != nil {
			return nil, nil, fmt.Errorf("building appliances: %w", err)
		}
	}

	catalog := NewCatalog(home)
	for _, m := range cfg.Macros {
		if _, err := catalog.DefineMacro(m.Name, m.Commands); err != nil {
			return nil, nil, fmt.Errorf("building macros: %w", err)
		}
	}

	opts = append([]remote.Option{remote.WithLogger(logger)}, opts...)
	ctrl, err := remote.New(cfg.Remote.Slots, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("building remote: %w", err)
	}

	for _, b := range cfg.Bindings {
		on, err := catalog.Resolve(b.On)
		if err != nil {
			return nil, nil, fmt.Errorf("binding slot %d: %w", b.Slot, err)
		}
		off, err := catalog.Resolve(b.Off)
		if err != nil {
			return nil, nil, fmt.Errorf("binding slot %d: %w", b.Slot, err)
		}
		if err := ctrl.SetCommand(ctx, b.Slot, on, off); err != nil {
			return nil, nil, fmt.Errorf("binding slot %d: %w", b.Slot, err)
		}
	}

	logger.Info("remote configured",
		"slots", ctrl.Capacity(),
		"appliances", len(cfg.Appliances),
		"macros", len(cfg.Macros),
		"bindings", len(cfg.Bindings),
	)

	return ctrl, home, nil
}
