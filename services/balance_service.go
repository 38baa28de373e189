package services

import (
	"log/slog"

	"github.com/aresulmrc/Market-Hesap-Takip/models"
	"github.com/aresulmrc/Market-Hesap-Takip/utils"
)

// BalanceService computes net outstanding balances from a ledger snapshot.
type BalanceService struct{}

// NewBalanceService creates a new balance service
func NewBalanceService() *BalanceService {
	return &BalanceService{}
}

// Calculate is a pure function over the given snapshot: it returns one
// balance per known payer, in payer-set order, and never mutates its
// inputs. Positive = owed money, negative = owes money.
//
// Malformed payments are skipped with a diagnostic, not treated as an
// error: the data stays in the ledger untouched. A contribution is
// applied only when the person still owes their share and both sides of
// it are known payers, which keeps the output zero-sum.
func (s *BalanceService) Calculate(payers []string, payments []models.Payment) []models.PayerBalance {
	position := make(map[string]int, len(payers))
	for i, name := range payers {
		position[name] = i
	}
	balances := make([]float64, len(payers))

	for _, payment := range payments {
		if !payment.IsWellFormed() {
			if payment.Amount > 0 && payment.Split >= 1 {
				slog.Warn("inconsistent split data, skipping payment in outstanding balances",
					"payer", payment.Payer,
					"type", payment.Type,
					"split", payment.Split,
					"includedPayers", len(payment.IncludedPayers))
			}
			continue
		}

		payerPos, payerKnown := position[payment.Payer]
		if !payerKnown {
			continue
		}

		perPerson := payment.PerPersonShare()
		for _, included := range payment.IncludedPayers {
			if included == payment.Payer {
				continue
			}
			// false = already settled; a missing entry counts as owing.
			if owes, tracked := payment.SettlementStatus[included]; tracked && !owes {
				continue
			}
			includedPos, includedKnown := position[included]
			if !includedKnown {
				continue
			}
			balances[payerPos] += perPerson
			balances[includedPos] -= perPerson
		}
	}

	result := make([]models.PayerBalance, len(payers))
	for i, name := range payers {
		result[i] = models.PayerBalance{Name: name, Balance: utils.Round(balances[i])}
	}
	return result
}
