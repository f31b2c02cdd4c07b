package testutil

import (
	"sync"
	"time"

	"phonequest/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, username string, role domain.Role) domain.User {
	return domain.User{
		UserID:    userID,
		Username:  username,
		Role:      role,
		CreatedAt: time.Now(),
	}
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}

// MemoryPhonebookRepository is an in-memory PhonebookRepository
// with read-after-write semantics, for service tests
type MemoryPhonebookRepository struct {
	mu      sync.Mutex
	entries []domain.PhonebookEntry
	Writes  int
}

// NewMemoryPhonebookRepository creates a repository holding entries
func NewMemoryPhonebookRepository(entries ...domain.PhonebookEntry) *MemoryPhonebookRepository {
	return &MemoryPhonebookRepository{entries: entries}
}

func (r *MemoryPhonebookRepository) LoadAll() ([]domain.PhonebookEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]domain.PhonebookEntry, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}

func (r *MemoryPhonebookRepository) Replace(key domain.PhonebookKey, reply domain.Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Writes++
	r.deleteLocked(key)
	if !reply.IsEmpty() {
		r.entries = append(r.entries, domain.PhonebookEntry{Key: key, Reply: reply})
	}
	return nil
}

func (r *MemoryPhonebookRepository) Delete(key domain.PhonebookKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Writes++
	r.deleteLocked(key)
	return nil
}

func (r *MemoryPhonebookRepository) deleteLocked(key domain.PhonebookKey) {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if !e.Key.Equal(key) {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}
