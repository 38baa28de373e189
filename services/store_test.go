package services

import (
	"errors"

	"github.com/aresulmrc/Market-Hesap-Takip/models"
)

// memStore is an in-memory LedgerStore for tests. Loads hand out copies so
// services see snapshot semantics like the real repository.
type memStore struct {
	payers    []string
	payments  []models.Payment
	failSaves bool
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) LoadPayers() []string {
	return append([]string{}, m.payers...)
}

func (m *memStore) SavePayers(payers []string) error {
	if m.failSaves {
		return errors.New("save failed")
	}
	m.payers = append([]string{}, payers...)
	return nil
}

func (m *memStore) LoadPayments() []models.Payment {
	out := make([]models.Payment, len(m.payments))
	for i, p := range m.payments {
		out[i] = p
		out[i].IncludedPayers = append([]string{}, p.IncludedPayers...)
		out[i].SettlementStatus = make(map[string]bool, len(p.SettlementStatus))
		for k, v := range p.SettlementStatus {
			out[i].SettlementStatus[k] = v
		}
	}
	return out
}

func (m *memStore) SavePayments(payments []models.Payment) error {
	if m.failSaves {
		return errors.New("save failed")
	}
	m.payments = payments
	return nil
}

func (m *memStore) Clear() error {
	if m.failSaves {
		return errors.New("clear failed")
	}
	m.payers = nil
	m.payments = nil
	return nil
}
