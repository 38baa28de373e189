package services

import "github.com/aresulmrc/Market-Hesap-Takip/models"

// LedgerStore defines the storage surface the ledger operates on.
// This abstraction allows swapping storage backends without changing the
// service layer; tests use an in-memory implementation.
//
// Loads never fail: missing or corrupt data reads back as empty. Save
// failures are reported so the caller can log them; they are not fatal.
type LedgerStore interface {
	// LoadPayers returns the ordered payer list.
	LoadPayers() []string

	// SavePayers stores the ordered payer list.
	SavePayers(payers []string) error

	// LoadPayments returns the ordered payment history.
	LoadPayments() []models.Payment

	// SavePayments stores the ordered payment history.
	SavePayments(payments []models.Payment) error

	// Clear removes all persisted ledger state.
	Clear() error
}
