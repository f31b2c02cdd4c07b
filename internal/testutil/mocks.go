package testutil

import (
	"phonequest/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockPhonebookRepository is a mock for PhonebookRepository
type MockPhonebookRepository struct {
	mock.Mock
}

func (m *MockPhonebookRepository) LoadAll() ([]domain.PhonebookEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PhonebookEntry), args.Error(1)
}

func (m *MockPhonebookRepository) Replace(key domain.PhonebookKey, reply domain.Reply) error {
	args := m.Called(key, reply)
	return args.Error(0)
}

func (m *MockPhonebookRepository) Delete(key domain.PhonebookKey) error {
	args := m.Called(key)
	return args.Error(0)
}

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsers() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpsertUser(userID int64, username string, role domain.Role) error {
	args := m.Called(userID, username, role)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockPauseRepository is a mock for PauseRepository
type MockPauseRepository struct {
	mock.Mock
}

func (m *MockPauseRepository) IsPaused() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockPauseRepository) SetPaused(paused bool) error {
	args := m.Called(paused)
	return args.Error(0)
}

// MockCallLogRepository is a mock for CallLogRepository
type MockCallLogRepository struct {
	mock.Mock
}

func (m *MockCallLogRepository) LogCall(rec domain.CallRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockCallLogRepository) CountCalls(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockCallLogRepository) Leaderboard() ([]domain.LeaderboardEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockCallLogRepository) Progress(userID int64) ([]domain.ProgressEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgressEntry), args.Error(1)
}

// MockAliasRepository is a mock for AliasRepository
type MockAliasRepository struct {
	mock.Mock
}

func (m *MockAliasRepository) ListAliases() ([]domain.Alias, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alias), args.Error(1)
}

func (m *MockAliasRepository) SetAlias(phone, name string) error {
	args := m.Called(phone, name)
	return args.Error(0)
}

func (m *MockAliasRepository) RemoveAlias(phone string) error {
	args := m.Called(phone)
	return args.Error(0)
}
