// repository/ledger_repository.go
package repository

import (
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/aresulmrc/Market-Hesap-Takip/models"
)

// Storage keys mirror the legacy client-side store so exported data maps
// one-to-one onto the persisted rows.
const (
	keyPayers   = "payers"
	keyPayments = "payments"
)

// LedgerRepository persists the payer list and payment history as two
// JSON documents in the ledger_state table. Missing or corrupt data reads
// back as empty, never as an error; write failures are reported to the
// caller, which logs and carries on with in-memory state.
type LedgerRepository struct {
	DB *sql.DB
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		DB: GetDB(),
	}
}

// LoadPayers returns the ordered payer list. Empty on missing or corrupt data.
func (r *LedgerRepository) LoadPayers() []string {
	var payers []string
	if !r.load(keyPayers, &payers) {
		return []string{}
	}
	return payers
}

// SavePayers stores the ordered payer list.
func (r *LedgerRepository) SavePayers(payers []string) error {
	return r.save(keyPayers, payers)
}

// LoadPayments returns the ordered payment history. Empty on missing or
// corrupt data.
func (r *LedgerRepository) LoadPayments() []models.Payment {
	var payments []models.Payment
	if !r.load(keyPayments, &payments) {
		return []models.Payment{}
	}
	return payments
}

// SavePayments stores the ordered payment history.
func (r *LedgerRepository) SavePayments(payments []models.Payment) error {
	return r.save(keyPayments, payments)
}

// Clear removes all persisted ledger state.
func (r *LedgerRepository) Clear() error {
	_, err := r.DB.Exec("DELETE FROM ledger_state WHERE key IN ($1, $2)", keyPayers, keyPayments)
	return err
}

func (r *LedgerRepository) load(key string, dest interface{}) bool {
	var raw []byte
	err := r.DB.QueryRow("SELECT value FROM ledger_state WHERE key = $1", key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			slog.Warn("failed to read ledger state, treating as empty", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Warn("corrupt ledger state, treating as empty", "key", key, "error", err)
		return false
	}
	return true
}

func (r *LedgerRepository) save(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
        INSERT INTO ledger_state (key, value, updated_at) VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, raw)
	return err
}
