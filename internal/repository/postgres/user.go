package postgres

import (
	"database/sql"
	"fmt"

	"phonequest/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ListUsers returns every registered user
func (r *UserRepo) ListUsers() ([]domain.User, error) {
	query := `SELECT user_id, username, role, created_at FROM users ORDER BY role, username`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var role string
		if err := rows.Scan(&u.UserID, &u.Username, &role, &u.CreatedAt); err != nil {
			return nil, err
		}
		if u.Role, err = domain.ParseRole(role); err != nil {
			return nil, fmt.Errorf("user %d: %w", u.UserID, err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// UpsertUser creates the user or updates username and role
func (r *UserRepo) UpsertUser(userID int64, username string, role domain.Role) error {
	query := `
		INSERT INTO users (user_id, username, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET username = EXCLUDED.username, role = EXCLUDED.role
	`
	_, err := r.db.Exec(query, userID, username, string(role))
	return err
}

// RemoveUser deletes the user; removing an unknown user is not an error
func (r *UserRepo) RemoveUser(userID int64) error {
	query := `DELETE FROM users WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
