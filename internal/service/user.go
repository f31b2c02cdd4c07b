package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"phonequest/internal/domain"
	"phonequest/internal/repository"

	"go.uber.org/zap"
)

// ErrNotCaptain is returned when removing a user who is not a captain
var ErrNotCaptain = errors.New("user is not a captain")

// UserService is the cached user/role directory
type UserService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger

	mu         sync.RWMutex
	users      map[int64]domain.User
	byUsername map[string]int64
}

// NewUserService creates a new user service with an empty directory.
// Call Reload to load stored users.
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:   userRepo,
		logger:     logger,
		users:      make(map[int64]domain.User),
		byUsername: make(map[string]int64),
	}
}

// Reload replaces the cached directory with the stored users
func (s *UserService) Reload() error {
	list, err := s.userRepo.ListUsers()
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	users := make(map[int64]domain.User, len(list))
	byUsername := make(map[string]int64, len(list))
	for _, u := range list {
		users[u.UserID] = u
		byUsername[u.Username] = u.UserID
	}

	s.mu.Lock()
	s.users = users
	s.byUsername = byUsername
	s.mu.Unlock()

	s.logger.Info("Users loaded", zap.Int("count", len(users)))
	return nil
}

// RoleOf returns the user's role, if registered
func (s *UserService) RoleOf(userID int64) (domain.Role, bool) {
	u, ok := s.Get(userID)
	return u.Role, ok
}

// Get returns a registered user by ID
func (s *UserService) Get(userID int64) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	return u, ok
}

// ByUsername returns a registered user by username
func (s *UserService) ByUsername(username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUsername[username]
	if !ok {
		return domain.User{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	return s.users[id], nil
}

// Users returns all users ordered by role then username
func (s *UserService) Users() []domain.User {
	s.mu.RLock()
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		if users[i].Role != users[j].Role {
			return users[i].Role < users[j].Role
		}
		return users[i].Username < users[j].Username
	})
	return users
}

// Captains returns all users with the captain role
func (s *UserService) Captains() []domain.User {
	var captains []domain.User
	for _, u := range s.Users() {
		if u.Role == domain.RoleCaptain {
			captains = append(captains, u)
		}
	}
	return captains
}

// AddCaptain registers or renames a captain
func (s *UserService) AddCaptain(userID int64, username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if err := s.userRepo.UpsertUser(userID, username, domain.RoleCaptain); err != nil {
		return fmt.Errorf("failed to add captain %d: %w", userID, err)
	}
	s.logger.Info("Captain added", zap.Int64("user_id", userID), zap.String("username", username))
	return s.Reload()
}

// RemoveCaptain removes a captain; admins cannot be removed this way
func (s *UserService) RemoveCaptain(userID int64) error {
	if u, ok := s.Get(userID); ok && u.Role != domain.RoleCaptain {
		return fmt.Errorf("%w: %d", ErrNotCaptain, userID)
	}
	if err := s.userRepo.RemoveUser(userID); err != nil {
		return fmt.Errorf("failed to remove captain %d: %w", userID, err)
	}
	s.logger.Info("Captain removed", zap.Int64("user_id", userID))
	return s.Reload()
}

// EnsureAdmins grants the admin role to every ID that does not have it yet
func (s *UserService) EnsureAdmins(ids []int64) error {
	changed := false
	for _, id := range ids {
		u, ok := s.Get(id)
		if ok && u.IsAdmin() {
			continue
		}
		username := u.Username
		if username == "" {
			username = "admin" + strconv.FormatInt(id, 10)
		}
		if err := s.userRepo.UpsertUser(id, username, domain.RoleAdmin); err != nil {
			return fmt.Errorf("failed to seed admin %d: %w", id, err)
		}
		changed = true
	}
	if !changed {
		return nil
	}
	return s.Reload()
}
