package service

import (
	"fmt"
	"sync"
	"sync/atomic"

	"phonequest/internal/domain"
	"phonequest/internal/repository"

	"go.uber.org/zap"
)

// PhonebookService serves lookups from an in-memory snapshot and
// rebuilds the snapshot from storage after every write.
// Readers never block and always see a complete snapshot.
type PhonebookService struct {
	repo   repository.PhonebookRepository
	logger *zap.Logger

	writeMux sync.Mutex
	snapshot atomic.Pointer[domain.Phonebook]
}

// NewPhonebookService creates a new phonebook service with an empty snapshot.
// Call Reload to load the stored phonebook.
func NewPhonebookService(repo repository.PhonebookRepository, logger *zap.Logger) *PhonebookService {
	s := &PhonebookService{
		repo:   repo,
		logger: logger,
	}
	s.snapshot.Store(domain.NewPhonebook(nil))
	return s
}

// Reload rebuilds the snapshot from storage
func (s *PhonebookService) Reload() error {
	s.writeMux.Lock()
	defer s.writeMux.Unlock()
	return s.reloadLocked()
}

// Lookup returns the reply stored under exactly (phone, password)
func (s *PhonebookService) Lookup(phone string, password *string) (domain.Reply, bool) {
	return s.snapshot.Load().Lookup(domain.NewPhonebookKey(phone, password))
}

// Snapshot returns the current phonebook
func (s *PhonebookService) Snapshot() *domain.Phonebook {
	return s.snapshot.Load()
}

// Upsert stores reply under (phone, password), replacing any previous reply.
// An empty reply removes the entry instead.
func (s *PhonebookService) Upsert(phone string, password *string, reply domain.Reply) error {
	key := domain.NewPhonebookKey(phone, password)

	s.writeMux.Lock()
	defer s.writeMux.Unlock()

	var err error
	if reply.IsEmpty() {
		err = s.repo.Delete(key)
	} else {
		err = s.repo.Replace(key, reply)
	}
	if err != nil {
		return fmt.Errorf("failed to store number %s: %w", key, err)
	}

	s.logger.Info("Phonebook entry stored",
		zap.String("phone", key.Phone),
		zap.Bool("with_password", key.Password != nil),
		zap.Int("parts", reply.Len()),
	)

	return s.reloadLocked()
}

// Remove deletes the entry; removing an absent entry is a no-op
func (s *PhonebookService) Remove(phone string, password *string) error {
	return s.Upsert(phone, password, domain.Reply{})
}

func (s *PhonebookService) reloadLocked() error {
	entries, err := s.repo.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load phonebook: %w", err)
	}

	pb := domain.NewPhonebook(entries)
	s.snapshot.Store(pb)

	s.logger.Info("Phonebook loaded", zap.Int("entries", pb.Len()))
	return nil
}
