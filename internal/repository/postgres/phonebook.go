package postgres

import (
	"database/sql"
	"fmt"

	"phonequest/internal/domain"
)

// PhonebookRepo implements repository.PhonebookRepository.
// Each reply part is one row; reply_n keeps the parts in order.
type PhonebookRepo struct {
	db *sql.DB
}

// NewPhonebookRepo creates a new phonebook repository
func NewPhonebookRepo(db *sql.DB) *PhonebookRepo {
	return &PhonebookRepo{db: db}
}

// LoadAll returns every entry with its parts in reply order
func (r *PhonebookRepo) LoadAll() ([]domain.PhonebookEntry, error) {
	query := `
		SELECT phone, password, reply_type, reply_data
		FROM phonebook
		ORDER BY phone, password NULLS FIRST, reply_n ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PhonebookEntry
	for rows.Next() {
		var phone, replyType, replyData string
		var password sql.NullString
		if err := rows.Scan(&phone, &password, &replyType, &replyData); err != nil {
			return nil, err
		}

		part, err := domain.NewContentPart(domain.ContentKind(replyType), replyData)
		if err != nil {
			return nil, fmt.Errorf("phonebook entry %s: %w", phone, err)
		}

		key := domain.NewPhonebookKey(phone, stringPtr(password))
		last := len(entries) - 1
		if last >= 0 && entries[last].Key.Equal(key) {
			entries[last].Reply = entries[last].Reply.Append(part)
			continue
		}
		entries = append(entries, domain.PhonebookEntry{Key: key, Reply: domain.NewReply(part)})
	}

	return entries, rows.Err()
}

// Replace deletes the parts stored under key and inserts reply's parts
// in a single transaction. An empty reply leaves the key deleted.
func (r *PhonebookRepo) Replace(key domain.PhonebookKey, reply domain.Reply) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := deleteKey(tx, key); err != nil {
		return err
	}

	query := `
		INSERT INTO phonebook (phone, password, reply_n, reply_type, reply_data)
		VALUES ($1, $2, $3, $4, $5)
	`
	for n, part := range reply.Parts() {
		if _, err := tx.Exec(query, key.Phone, nullString(key.Password), n, string(part.Kind()), part.Data()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes every part stored under key
func (r *PhonebookRepo) Delete(key domain.PhonebookKey) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := deleteKey(tx, key); err != nil {
		return err
	}
	return tx.Commit()
}

func deleteKey(tx *sql.Tx, key domain.PhonebookKey) error {
	query := `DELETE FROM phonebook WHERE phone = $1 AND password IS NOT DISTINCT FROM $2`
	_, err := tx.Exec(query, key.Phone, nullString(key.Password))
	return err
}
