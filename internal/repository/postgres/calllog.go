package postgres

import (
	"database/sql"

	"phonequest/internal/domain"
)

// CallLogRepo implements repository.CallLogRepository
type CallLogRepo struct {
	db *sql.DB
}

// NewCallLogRepo creates a new call log repository
func NewCallLogRepo(db *sql.DB) *CallLogRepo {
	return &CallLogRepo{db: db}
}

// LogCall appends a call to the log
func (r *CallLogRepo) LogCall(rec domain.CallRecord) error {
	query := `
		INSERT INTO call_log (user_id, called_at, phone, password)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, rec.UserID, rec.CalledAt, rec.Phone, nullString(rec.Password))
	return err
}

// CountCalls returns how many calls the user has made
func (r *CallLogRepo) CountCalls(userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM call_log WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// Leaderboard counts, per captain, distinct dialed keys present in the phonebook
func (r *CallLogRepo) Leaderboard() ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT u.user_id, u.username, COUNT(k.phone) AS numbers
		FROM users u
		LEFT JOIN (
			SELECT DISTINCT c.user_id, c.phone, c.password
			FROM call_log c
			JOIN (SELECT DISTINCT phone, password FROM phonebook) p
				ON p.phone = c.phone AND p.password IS NOT DISTINCT FROM c.password
		) k ON k.user_id = u.user_id
		WHERE u.role = 'captain'
		GROUP BY u.user_id, u.username
		ORDER BY numbers DESC, u.username
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.Numbers); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Progress returns the first call to every distinct key dialed by the user
func (r *CallLogRepo) Progress(userID int64) ([]domain.ProgressEntry, error) {
	query := `
		SELECT phone, password, MIN(called_at) AS first_called
		FROM call_log
		WHERE user_id = $1
		GROUP BY phone, password
		ORDER BY first_called ASC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ProgressEntry
	for rows.Next() {
		var e domain.ProgressEntry
		var password sql.NullString
		if err := rows.Scan(&e.Phone, &password, &e.CalledAt); err != nil {
			return nil, err
		}
		e.Password = stringPtr(password)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
