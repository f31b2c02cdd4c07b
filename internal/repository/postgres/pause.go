package postgres

import (
	"database/sql"
)

// PauseRepo implements repository.PauseRepository on a single-row table
type PauseRepo struct {
	db *sql.DB
}

// NewPauseRepo creates a new pause repository
func NewPauseRepo(db *sql.DB) *PauseRepo {
	return &PauseRepo{db: db}
}

// IsPaused returns the stored flag; a missing row means not paused
func (r *PauseRepo) IsPaused() (bool, error) {
	var paused bool
	query := `SELECT paused FROM pause LIMIT 1`
	err := r.db.QueryRow(query).Scan(&paused)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return paused, nil
}

// SetPaused stores the flag, creating the row if needed
func (r *PauseRepo) SetPaused(paused bool) error {
	query := `
		INSERT INTO pause (id, paused)
		VALUES (TRUE, $1)
		ON CONFLICT (id)
		DO UPDATE SET paused = EXCLUDED.paused
	`
	_, err := r.db.Exec(query, paused)
	return err
}
