package service

import (
	"fmt"
	"sync"
	"sync/atomic"

	"phonequest/internal/repository"

	"go.uber.org/zap"
)

// PauseService caches the phone network pause flag
type PauseService struct {
	pauseRepo repository.PauseRepository
	logger    *zap.Logger

	writeMux sync.Mutex
	paused   atomic.Bool
}

// NewPauseService creates a new pause service
func NewPauseService(pauseRepo repository.PauseRepository, logger *zap.Logger) *PauseService {
	return &PauseService{
		pauseRepo: pauseRepo,
		logger:    logger,
	}
}

// Load reads the stored flag into the cache
func (s *PauseService) Load() error {
	paused, err := s.pauseRepo.IsPaused()
	if err != nil {
		return fmt.Errorf("failed to read pause flag: %w", err)
	}
	s.paused.Store(paused)
	return nil
}

// IsPaused reports whether calls are currently disabled
func (s *PauseService) IsPaused() bool {
	return s.paused.Load()
}

// Pause disables calls. It reports false if calls were already paused.
func (s *PauseService) Pause() (bool, error) {
	return s.set(true)
}

// Resume enables calls. It reports false if calls were not paused.
func (s *PauseService) Resume() (bool, error) {
	return s.set(false)
}

func (s *PauseService) set(paused bool) (bool, error) {
	s.writeMux.Lock()
	defer s.writeMux.Unlock()

	if s.paused.Load() == paused {
		return false, nil
	}
	if err := s.pauseRepo.SetPaused(paused); err != nil {
		return false, fmt.Errorf("failed to store pause flag: %w", err)
	}
	s.paused.Store(paused)

	s.logger.Info("Phone network pause changed", zap.Bool("paused", paused))
	return true, nil
}
