package service

import (
	"fmt"
	"strings"
	"sync"

	"phonequest/internal/repository"

	"go.uber.org/zap"
)

// AliasService keeps human-readable names for important numbers
type AliasService struct {
	aliasRepo repository.AliasRepository
	logger    *zap.Logger

	mu      sync.RWMutex
	aliases map[string]string
}

// NewAliasService creates a new alias service
func NewAliasService(aliasRepo repository.AliasRepository, logger *zap.Logger) *AliasService {
	return &AliasService{
		aliasRepo: aliasRepo,
		logger:    logger,
		aliases:   make(map[string]string),
	}
}

// Reload replaces the cached aliases with the stored ones
func (s *AliasService) Reload() error {
	list, err := s.aliasRepo.ListAliases()
	if err != nil {
		return fmt.Errorf("failed to load aliases: %w", err)
	}

	aliases := make(map[string]string, len(list))
	for _, a := range list {
		aliases[a.Phone] = a.Name
	}

	s.mu.Lock()
	s.aliases = aliases
	s.mu.Unlock()
	return nil
}

// Name returns the alias for phone
func (s *AliasService) Name(phone string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.aliases[phone]
	return name, ok
}

// Set stores name as the alias of phone
func (s *AliasService) Set(phone, name string) error {
	name = strings.TrimSpace(name)
	if phone == "" || name == "" {
		return fmt.Errorf("phone and alias cannot be empty")
	}
	if err := s.aliasRepo.SetAlias(phone, name); err != nil {
		return fmt.Errorf("failed to store alias for %s: %w", phone, err)
	}
	s.logger.Info("Alias stored", zap.String("phone", phone), zap.String("name", name))
	return s.Reload()
}

// Remove deletes the alias of phone
func (s *AliasService) Remove(phone string) error {
	if err := s.aliasRepo.RemoveAlias(phone); err != nil {
		return fmt.Errorf("failed to remove alias for %s: %w", phone, err)
	}
	return s.Reload()
}
