// Package appliance holds the receivers a remote's commands act on and the
// registry that names them.
package appliance

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"remote-control/internal/domain"
)

// Receiver is implemented by every appliance in a Home.
type Receiver interface {
	Name() string
	State() domain.ApplianceState
}

// Home indexes appliances by case-insensitive name.
type Home struct {
	logger *slog.Logger

	mu         sync.RWMutex
	appliances []Receiver
	index      map[string]Receiver
}

func NewHome(logger *slog.Logger) *Home {
	return &Home{
		logger: logger,
		index:  make(map[string]Receiver),
	}
}

// Add creates the receiver described by a and registers it.
func (h *Home) Add(a domain.Appliance) (Receiver, error) {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return nil, fmt.Errorf("adding %s: empty appliance name", a.Kind)
	}

	var r Receiver
	switch a.Kind {
	case domain.ApplianceKindLight:
		r = NewLight(name, h.logger)
	case domain.ApplianceKindGarageDoor:
		r = NewGarageDoor(name, h.logger)
	case domain.ApplianceKindStereo:
		r = NewStereo(name, h.logger)
	default:
		return nil, fmt.Errorf("adding %s: unknown appliance kind %q", name, a.Kind)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := h.index[key]; exists {
		return nil, fmt.Errorf("adding %s: duplicate appliance name", name)
	}

	h.appliances = append(h.appliances, r)
	h.index[key] = r

	h.logger.Debug("appliance registered", "appliance", name, "kind", a.Kind)
	return r, nil
}

func (h *Home) Find(name string) (Receiver, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	r, ok := h.index[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// List returns the appliances in registration order.
func (h *Home) List() []Receiver {
	h.mu.RLock()
	defer h.mu.RUnlock()
	result := make([]Receiver, len(h.appliances))
	copy(result, h.appliances)
	return result
}

func (h *Home) States() []domain.ApplianceState {
	receivers := h.List()
	states := make([]domain.ApplianceState, len(receivers))
	for i, r := range receivers {
		states[i] = r.State()
	}
	return states
}

// Summary renders one line per appliance with its current status.
func (h *Home) Summary() string {
	var sb strings.Builder
	for _, s := range h.States() {
		status := "off"
		if s.On {
			status = "on"
		}
		if s.Kind == domain.ApplianceKindGarageDoor {
			status = "closed"
			if s.On {
				status = "open"
			}
		}
		sb.WriteString(fmt.Sprintf("- %s (%s, %s)\n", s.Name, s.Kind, status))
	}
	return sb.String()
}
