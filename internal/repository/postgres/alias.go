package postgres

import (
	"database/sql"

	"phonequest/internal/domain"
)

// AliasRepo implements repository.AliasRepository
type AliasRepo struct {
	db *sql.DB
}

// NewAliasRepo creates a new alias repository
func NewAliasRepo(db *sql.DB) *AliasRepo {
	return &AliasRepo{db: db}
}

// ListAliases returns all aliases
func (r *AliasRepo) ListAliases() ([]domain.Alias, error) {
	rows, err := r.db.Query(`SELECT phone, name FROM phone_aliases ORDER BY phone`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aliases []domain.Alias
	for rows.Next() {
		var a domain.Alias
		if err := rows.Scan(&a.Phone, &a.Name); err != nil {
			return nil, err
		}
		aliases = append(aliases, a)
	}

	return aliases, rows.Err()
}

// SetAlias creates or renames the alias for phone
func (r *AliasRepo) SetAlias(phone, name string) error {
	query := `
		INSERT INTO phone_aliases (phone, name)
		VALUES ($1, $2)
		ON CONFLICT (phone)
		DO UPDATE SET name = EXCLUDED.name
	`
	_, err := r.db.Exec(query, phone, name)
	return err
}

// RemoveAlias deletes the alias for phone
func (r *AliasRepo) RemoveAlias(phone string) error {
	_, err := r.db.Exec(`DELETE FROM phone_aliases WHERE phone = $1`, phone)
	return err
}
