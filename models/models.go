// models/models.go
package models

import "time"

// Payment represents one shared expense fronted by a single payer.
// JSON field names match the legacy storage format, so previously exported
// data stays readable: dahilOlanlar = included payers, borclu = per-person
// "still owes" flags (true = still owes, false = settled).
type Payment struct {
	Payer            string          `json:"payer"`
	Amount           float64         `json:"amount"`
	Split            int             `json:"split"`
	Date             string          `json:"date"`
	Type             string          `json:"type"`
	IncludedPayers   []string        `json:"dahilOlanlar"`
	SettlementStatus map[string]bool `json:"borclu"`
	EditedDate       time.Time       `json:"editedDate"`
}

// IsWellFormed reports whether the payment may participate in balance and
// total-spend computation. Malformed records are skipped, never corrected.
func (p *Payment) IsWellFormed() bool {
	return p.Amount > 0 &&
		p.Split >= 1 &&
		len(p.IncludedPayers) > 0 &&
		p.Split == len(p.IncludedPayers)
}

// PerPersonShare returns each included person's share of the amount.
// Computed fresh at read time, never stored.
func (p *Payment) PerPersonShare() float64 {
	if p.Split < 1 {
		return 0
	}
	return p.Amount / float64(p.Split)
}

// Includes reports whether name appears in the payment's included payers.
func (p *Payment) Includes(name string) bool {
	for _, included := range p.IncludedPayers {
		if included == name {
			return true
		}
	}
	return false
}

// References reports whether name appears as the payer or an included person.
func (p *Payment) References(name string) bool {
	return p.Payer == name || p.Includes(name)
}

// PayerBalance is one entry of the ordered balance listing. Order follows
// the payer set, because display iterates it directly.
type PayerBalance struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// Transaction represents a single settlement transfer between two people.
type Transaction struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Summary combines everything the presentation layer needs: outstanding
// balances, the simplified settlement steps, and total spend. Total spend
// counts every well-formed payment regardless of settlement state, so it
// intentionally differs from total outstanding debt.
type Summary struct {
	Balances     []PayerBalance `json:"balances"`
	Transactions []Transaction  `json:"transactions"`
	TotalSpend   float64        `json:"totalSpend"`
}

// PaymentView is a payment as listed to clients, with the derived
// per-person share attached.
type PaymentView struct {
	Payment
	PerPerson float64 `json:"perPerson"`
}

// AddPayerRequest request model
type AddPayerRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenamePayerRequest request model
type RenamePayerRequest struct {
	OldName string `json:"oldName" binding:"required"`
	NewName string `json:"newName" binding:"required"`
}

// RemovePayerRequest request model
type RemovePayerRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddPaymentRequest request model
type AddPaymentRequest struct {
	Payer          string   `json:"payer" binding:"required"`
	Amount         float64  `json:"amount" binding:"required"`
	Split          int      `json:"split" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	Type           string   `json:"type" binding:"required"`
	IncludedPayers []string `json:"dahilOlanlar" binding:"required,min=1"`
}

// EditPaymentRequest request model
type EditPaymentRequest struct {
	Index          int      `json:"index"`
	Payer          string   `json:"payer" binding:"required"`
	Amount         float64  `json:"amount" binding:"required"`
	Split          int      `json:"split" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	Type           string   `json:"type" binding:"required"`
	IncludedPayers []string `json:"dahilOlanlar" binding:"required,min=1"`
}

// DeletePaymentRequest request model
type DeletePaymentRequest struct {
	Index int `json:"index"`
}

// SetSettlementRequest request model. Owes carries the stored flag
// semantics: true = still owes, false = settled.
type SetSettlementRequest struct {
	Index  int    `json:"index"`
	Person string `json:"person" binding:"required"`
	Owes   *bool  `json:"owes" binding:"required"`
}

// NewPayment builds a payment record with the settlement map populated:
// one entry per included person other than the payer, all marked as still
// owing. The payer's own share is never tracked as a debt.
func NewPayment(payer string, amount float64, split int, date, paymentType string, includedPayers []string) *Payment {
	status := make(map[string]bool)
	for _, included := range includedPayers {
		if included != payer {
			status[included] = true
		}
	}

	return &Payment{
		Payer:            payer,
		Amount:           amount,
		Split:            split,
		Date:             date,
		Type:             paymentType,
		IncludedPayers:   includedPayers,
		SettlementStatus: status,
		EditedDate:       time.Now().UTC(),
	}
}
