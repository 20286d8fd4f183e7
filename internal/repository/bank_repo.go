package repository

import (
	"fmt"

	"notebook/internal/database"
	"notebook/internal/models"
)

// BankRepository handles pocket-money ledger database operations
type BankRepository struct {
	db *database.DB
}

// NewBankRepository creates a new bank repository
func NewBankRepository(db *database.DB) *BankRepository {
	return &BankRepository{db: db}
}

// GetAll retrieves every ledger entry, newest first
func (r *BankRepository) GetAll() ([]models.BankEntry, error) {
	query := `
		SELECT id, entry_date, amount, description, category
		FROM bank_entries
		ORDER BY entry_date DESC, id DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.BankEntry
	for rows.Next() {
		var e models.BankEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Description, &e.Category); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Upsert inserts an entry or updates the existing row with the same ID
func (r *BankRepository) Upsert(e *models.BankEntry) error {
	query := `
		INSERT INTO bank_entries (id, entry_date, amount, description, category)
		VALUES (?, ?, ?, ?, ?)
	`

	return r.db.Upsert(query,
		[]string{"id"},
		[]string{"entry_date", "amount", "description", "category"},
		e.ID, e.Date, e.Amount, e.Description, e.Category,
	)
}

// Delete removes an entry by ID
func (r *BankRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM bank_entries WHERE id = ?", id)
	return err
}

// ReplaceAll replaces the whole ledger in one transaction
func (r *BankRepository) ReplaceAll(entries []models.BankEntry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM bank_entries"); err != nil {
		return fmt.Errorf("failed to clear bank entries: %w", err)
	}

	insert := `
		INSERT INTO bank_entries (id, entry_date, amount, description, category)
		VALUES (?, ?, ?, ?, ?)
	`
	for i := range entries {
		e := &entries[i]
		if _, err := tx.Exec(insert, e.ID, e.Date, e.Amount, e.Description, e.Category); err != nil {
			return fmt.Errorf("failed to insert bank entry %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}
