package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aresulmrc/Market-Hesap-Takip/models"
	"github.com/aresulmrc/Market-Hesap-Takip/utils"
)

// LedgerService owns all mutations of the payer set and payment history.
// Every operation is a synchronous read-modify-write against the store:
// validation happens before any state change, so callers either observe
// the fully updated ledger or the previous one.
type LedgerService struct {
	store LedgerStore
}

// NewLedgerService creates a new ledger service
func NewLedgerService(store LedgerStore) *LedgerService {
	return &LedgerService{store: store}
}

// Payers returns the ordered payer list.
func (s *LedgerService) Payers() []string {
	return s.store.LoadPayers()
}

// Payments returns the ordered payment history.
func (s *LedgerService) Payments() []models.Payment {
	return s.store.LoadPayments()
}

// PaymentViews returns the payment history with the derived per-person
// share attached for display.
func (s *LedgerService) PaymentViews() []models.PaymentView {
	payments := s.store.LoadPayments()
	views := make([]models.PaymentView, len(payments))
	for i, payment := range payments {
		views[i] = models.PaymentView{
			Payment:   payment,
			PerPerson: utils.Round(payment.PerPersonShare()),
		}
	}
	return views
}

// AddPayer inserts a new payer. Names are identity: the match is exact
// and case-sensitive.
func (s *LedgerService) AddPayer(name string) error {
	name = strings.TrimSpace(name)
	if err := utils.ValidateRequired(name, "name"); err != nil {
		return err
	}

	payers := s.store.LoadPayers()
	for _, existing := range payers {
		if existing == name {
			return utils.NewDuplicateNameError(name)
		}
	}

	payers = append(payers, name)
	s.persistPayers(payers)
	return nil
}

// RenamePayer renames a payer and cascades the identity change into every
// payment that references the old name: the payer field, the included
// list and the settlement-map keys move together as one mutation. Touched
// payments get a fresh editedDate.
func (s *LedgerService) RenamePayer(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if err := utils.ValidateRequired(newName, "newName"); err != nil {
		return err
	}

	payers := s.store.LoadPayers()
	index := -1
	for i, existing := range payers {
		if existing == oldName {
			index = i
			break
		}
	}
	if index == -1 {
		return utils.NewNotFoundError(oldName)
	}
	if newName == oldName {
		return nil
	}
	for _, existing := range payers {
		if existing == newName {
			return utils.NewDuplicateNameError(newName)
		}
	}

	payers[index] = newName

	payments := s.store.LoadPayments()
	touched := false
	for i := range payments {
		if renamePaymentReferences(&payments[i], oldName, newName) {
			payments[i].EditedDate = time.Now().UTC()
			touched = true
		}
	}

	s.persistPayers(payers)
	if touched {
		s.persistPayments(payments)
	}
	return nil
}

// renamePaymentReferences substitutes newName for oldName in the payer
// field, the included list and the settlement-map keys. Reports whether
// anything changed.
func renamePaymentReferences(payment *models.Payment, oldName, newName string) bool {
	changed := false

	if payment.Payer == oldName {
		payment.Payer = newName
		changed = true
	}
	for i, included := range payment.IncludedPayers {
		if included == oldName {
			payment.IncludedPayers[i] = newName
			changed = true
		}
	}
	if owes, ok := payment.SettlementStatus[oldName]; ok {
		payment.SettlementStatus[newName] = owes
		delete(payment.SettlementStatus, oldName)
		changed = true
	}

	return changed
}

// RemovePayer removes a payer. Removal is blocked while the name is still
// referenced by any payment, as payer or included person; payments are
// never deleted by cascade.
func (s *LedgerService) RemovePayer(name string) error {
	payers := s.store.LoadPayers()
	index := -1
	for i, existing := range payers {
		if existing == name {
			index = i
			break
		}
	}
	if index == -1 {
		return utils.NewNotFoundError(name)
	}

	for _, payment := range s.store.LoadPayments() {
		if payment.References(name) {
			return utils.NewPayerInUseError(name)
		}
	}

	payers = append(payers[:index], payers[index+1:]...)
	s.persistPayers(payers)
	return nil
}

// AddPayment validates and appends a new payment. Settlement entries are
// created for every included person other than the payer, all initially
// still owing.
func (s *LedgerService) AddPayment(req *models.AddPaymentRequest) (*models.Payment, error) {
	if err := s.validatePaymentFields(req.Payer, req.Amount, req.Split, req.IncludedPayers); err != nil {
		return nil, err
	}

	payment := models.NewPayment(req.Payer, req.Amount, req.Split, req.Date, req.Type, req.IncludedPayers)

	payments := append(s.store.LoadPayments(), *payment)
	s.persistPayments(payments)
	return payment, nil
}

// EditPayment merges new fields over the payment at index and rebuilds
// its settlement map. A person keeps their settled state only if they
// were included before and had already settled; everyone else, newly
// added or previously owing, starts out owing.
func (s *LedgerService) EditPayment(req *models.EditPaymentRequest) (*models.Payment, error) {
	if err := s.validatePaymentFields(req.Payer, req.Amount, req.Split, req.IncludedPayers); err != nil {
		return nil, err
	}

	payments := s.store.LoadPayments()
	if req.Index < 0 || req.Index >= len(payments) {
		return nil, utils.NewIndexOutOfRangeError(req.Index)
	}
	original := payments[req.Index]

	updated := original
	updated.Payer = req.Payer
	updated.Amount = req.Amount
	updated.Split = req.Split
	updated.Date = req.Date
	updated.Type = req.Type
	updated.IncludedPayers = req.IncludedPayers
	updated.EditedDate = time.Now().UTC()

	status := make(map[string]bool)
	for _, person := range updated.IncludedPayers {
		if person == updated.Payer {
			continue
		}
		previous, tracked := original.SettlementStatus[person]
		wasSettled := original.Includes(person) && tracked && !previous
		status[person] = !wasSettled
	}
	updated.SettlementStatus = status

	payments[req.Index] = updated
	s.persistPayments(payments)
	return &updated, nil
}

// DeletePayment removes the payment at index outright. No tombstone.
func (s *LedgerService) DeletePayment(index int) error {
	payments := s.store.LoadPayments()
	if index < 0 || index >= len(payments) {
		return utils.NewIndexOutOfRangeError(index)
	}

	payments = append(payments[:index], payments[index+1:]...)
	s.persistPayments(payments)
	return nil
}

// SetSettlement flips exactly one person's "still owes" flag on exactly
// one payment.
func (s *LedgerService) SetSettlement(index int, person string, stillOwes bool) error {
	payments := s.store.LoadPayments()
	if index < 0 || index >= len(payments) {
		return utils.NewIndexOutOfRangeError(index)
	}

	payment := &payments[index]
	if _, tracked := payment.SettlementStatus[person]; !tracked {
		return utils.NewPersonNotTrackedError(person)
	}

	payment.SettlementStatus[person] = stillOwes
	payment.EditedDate = time.Now().UTC()
	s.persistPayments(payments)
	return nil
}

// ClearAll wipes the payer set and the payment history.
func (s *LedgerService) ClearAll() error {
	if err := s.store.Clear(); err != nil {
		slog.Error("failed to clear ledger state", "error", err)
		return utils.NewStorageFailureError("failed to clear ledger state")
	}
	return nil
}

// validatePaymentFields enforces the structural invariants a payment must
// satisfy before it enters the ledger. The engine rejects instead of
// guessing intent.
func (s *LedgerService) validatePaymentFields(payer string, amount float64, split int, includedPayers []string) error {
	if err := utils.ValidateRequired(payer, "payer"); err != nil {
		return err
	}
	if err := utils.ValidatePositive(amount, "amount"); err != nil {
		return err
	}
	if err := utils.ValidateNotEmpty(includedPayers, "dahilOlanlar"); err != nil {
		return err
	}
	if err := utils.ValidateParticipantNames(includedPayers); err != nil {
		return err
	}
	if split != len(includedPayers) {
		return utils.NewInvalidPaymentError(
			fmt.Sprintf("split (%d) does not match the number of included payers (%d)", split, len(includedPayers)))
	}

	known := false
	for _, existing := range s.store.LoadPayers() {
		if existing == payer {
			known = true
			break
		}
	}
	if !known {
		return utils.NewNotFoundError(payer)
	}

	return nil
}

// Save failures degrade gracefully: the mutation stays visible to the
// caller while persisted state may lag behind. Logged, never fatal.

func (s *LedgerService) persistPayers(payers []string) {
	if err := s.store.SavePayers(payers); err != nil {
		slog.Error("failed to persist payers", "error", err)
	}
}

func (s *LedgerService) persistPayments(payments []models.Payment) {
	if err := s.store.SavePayments(payments); err != nil {
		slog.Error("failed to persist payments", "error", err)
	}
}
