package audio

import (
	"log"
	"sync/atomic"
)

// Service wraps SoundManager as a service.Service
// A missing audio device disables sound instead of failing startup
type Service struct {
	manager  *SoundManager
	muted    bool
	disabled atomic.Bool
}

// NewService creates the audio service; muted starts with sound toggled off
func NewService(volume float64, muted bool) *Service {
	return &Service{manager: NewSoundManager(volume), muted: muted}
}

func (s *Service) Name() string { return "audio" }

func (s *Service) Dependencies() []string { return nil }

// Init opens the speaker; failure only disables the service
func (s *Service) Init() error {
	if err := s.manager.Initialize(); err != nil {
		log.Printf("[audio] disabled: %v", err)
		s.disabled.Store(true)
		return nil
	}
	if s.muted && !s.manager.IsMuted() {
		s.manager.ToggleMute()
	}
	return nil
}

func (s *Service) Start() error { return nil }

func (s *Service) Stop() error {
	s.manager.Cleanup()
	return nil
}

// Manager returns the sound manager, false when no device is available
func (s *Service) Manager() (*SoundManager, bool) {
	if s.disabled.Load() {
		return nil, false
	}
	return s.manager, true
}
