package repository

import (
	"phonequest/internal/domain"
)

// PhonebookRepository defines durable phonebook storage
type PhonebookRepository interface {
	LoadAll() ([]domain.PhonebookEntry, error)
	// Replace atomically swaps all parts stored under key for reply's parts
	Replace(key domain.PhonebookKey, reply domain.Reply) error
	Delete(key domain.PhonebookKey) error
}

// UserRepository defines user directory operations
type UserRepository interface {
	ListUsers() ([]domain.User, error)
	UpsertUser(userID int64, username string, role domain.Role) error
	RemoveUser(userID int64) error
}

// PauseRepository defines access to the phone network pause flag
type PauseRepository interface {
	IsPaused() (bool, error)
	SetPaused(paused bool) error
}

// CallLogRepository defines call log and statistics operations
type CallLogRepository interface {
	LogCall(rec domain.CallRecord) error
	CountCalls(userID int64) (int, error)
	Leaderboard() ([]domain.LeaderboardEntry, error)
	Progress(userID int64) ([]domain.ProgressEntry, error)
}

// AliasRepository defines phone alias operations
type AliasRepository interface {
	ListAliases() ([]domain.Alias, error)
	SetAlias(phone, name string) error
	RemoveAlias(phone string) error
}
