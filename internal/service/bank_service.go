package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"notebook/internal/models"
)

// BankStore is the persistence port for the pocket-money ledger
type BankStore interface {
	SaveBankEntry(e models.BankEntry)
	DeleteBankEntry(id string)
}

// BankService manages the pocket-money ledger
type BankService struct {
	mu      sync.Mutex
	store   BankStore
	entries []models.BankEntry
}

// NewBankService builds the service from the loaded ledger
func NewBankService(store BankStore, entries []models.BankEntry) *BankService {
	return &BankService{store: store, entries: entries}
}

// Entries returns a copy of the ledger
func (s *BankService) Entries() []models.BankEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.BankEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Balance returns the sum over all entries
func (s *BankService) Balance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var balance float64
	for _, e := range s.entries {
		balance += e.Amount
	}
	return balance
}

// Add records a ledger entry. Deposits are positive amounts, spending is
// negative.
func (s *BankService) Add(date string, amount float64, description, category string) (models.BankEntry, error) {
	if !models.ValidBankCategory(category) {
		return models.BankEntry{}, fmt.Errorf("unknown bank category: %s", category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := models.BankEntry{
		ID:          uuid.NewString(),
		Date:        date,
		Amount:      amount,
		Description: description,
		Category:    models.BankCategory(category),
	}
	s.entries = append(s.entries, e)
	s.store.SaveBankEntry(e)
	return e, nil
}

// Delete removes a ledger entry by ID
func (s *BankService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.store.DeleteBankEntry(id)
			return nil
		}
	}
	return fmt.Errorf("bank entry %s not found", id)
}
