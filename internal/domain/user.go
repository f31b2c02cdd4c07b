package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUserNotFound is returned when a username or ID is not in the directory
var ErrUserNotFound = errors.New("user not found")

// Role is a user's permission level
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCaptain Role = "captain"
)

// ParseRole converts a stored role value
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCaptain:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User represents a registered game participant
type User struct {
	UserID    int64
	Username  string
	Role      Role
	CreatedAt time.Time
}

// IsAdmin reports whether the user has admin privileges
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
