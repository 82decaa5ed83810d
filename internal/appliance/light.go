package appliance

import (
	"log/slog"
	"sync"

	"remote-control/internal/domain"
)

type Light struct {
	name   string
	logger *slog.Logger

	mu sync.Mutex
	on bool
}

func NewLight(name string, logger *slog.Logger) *Light {
	return &Light{name: name, logger: logger}
}

func (l *Light) Name() string { return l.name }

func (l *Light) On() {
	l.mu.Lock()
	l.on = true
	l.mu.Unlock()
	l.logger.Info("light on", "appliance", l.name)
}

func (l *Light) Off() {
	l.mu.Lock()
	l.on = false
	l.mu.Unlock()
	l.logger.Info("light off", "appliance", l.name)
}

func (l *Light) IsOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

func (l *Light) State() domain.ApplianceState {
	return domain.ApplianceState{Name: l.name, Kind: domain.ApplianceKindLight, On: l.IsOn()}
}
