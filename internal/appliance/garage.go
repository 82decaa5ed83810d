package appliance

import (
	"log/slog"
	"sync"

	"remote-control/internal/domain"
)

// GarageDoor reports On while the door is open.
type GarageDoor struct {
	name   string
	logger *slog.Logger

	mu   sync.Mutex
	open bool
}

func NewGarageDoor(name string, logger *slog.Logger) *GarageDoor {
	return &GarageDoor{name: name, logger: logger}
}

func (g *GarageDoor) Name() string { return g.name }

func (g *GarageDoor) Up() {
	g.mu.Lock()
	g.open = true
	g.mu.Unlock()
	g.logger.Info("garage door open", "appliance", g.name)
}

func (g *GarageDoor) Down() {
	g.mu.Lock()
	g.open = false
	g.mu.Unlock()
	g.logger.Info("garage door closed", "appliance", g.name)
}

func (g *GarageDoor) IsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.open
}

func (g *GarageDoor) State() domain.ApplianceState {
	return domain.ApplianceState{Name: g.name, Kind: domain.ApplianceKindGarageDoor, On: g.IsOpen()}
}
