package appliance

import (
	"log/slog"
	"sync"

	"remote-control/internal/domain"
)

const SourceCD = "cd"

type Stereo struct {
	name   string
	logger *slog.Logger

	mu     sync.Mutex
	on     bool
	source string
	volume int
}

func NewStereo(name string, logger *slog.Logger) *Stereo {
	return &Stereo{name: name, logger: logger}
}

func (s *Stereo) Name() string { return s.name }

func (s *Stereo) On() {
	s.mu.Lock()
	s.on = true
	s.mu.Unlock()
	s.logger.Info("stereo on", "appliance", s.name)
}

func (s *Stereo) Off() {
	s.mu.Lock()
	s.on = false
	s.mu.Unlock()
	s.logger.Info("stereo off", "appliance", s.name)
}

func (s *Stereo) SetCD() {
	s.mu.Lock()
	s.source = SourceCD
	s.mu.Unlock()
	s.logger.Info("stereo input set", "appliance", s.name, "source", SourceCD)
}

func (s *Stereo) SetVolume(level int) {
	s.mu.Lock()
	s.volume = level
	s.mu.Unlock()
	s.logger.Info("stereo volume set", "appliance", s.name, "volume", level)
}

func (s *Stereo) State() domain.ApplianceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ApplianceState{
		Name:   s.name,
		Kind:   domain.ApplianceKindStereo,
		On:     s.on,
		Source: s.source,
		Volume: s.volume,
	}
}
