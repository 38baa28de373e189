package services

import (
	"math"
	"sort"

	"github.com/aresulmrc/Market-Hesap-Takip/models"
	"github.com/aresulmrc/Market-Hesap-Takip/utils"
)

// Epsilon is the settlement tolerance: balances within this distance of
// zero are treated as settled.
const Epsilon = 0.01

// SettlementService reduces a balance listing to a short sequence of
// peer-to-peer transfers.
type SettlementService struct{}

// NewSettlementService creates a new settlement service
func NewSettlementService() *SettlementService {
	return &SettlementService{}
}

// PersonBalance represents a person and their running balance
type PersonBalance struct {
	Person  string
	Balance float64
}

// Simplify matches debtors against creditors greedily: largest debt
// against largest credit, two pointers, until one side is exhausted.
// Debtors are ordered most negative first and creditors largest first;
// with the stable sort, ties keep payer-set order, so the output is
// deterministic for a given snapshot. The result is a heuristic
// minimizer, not a proven-optimal transaction count.
func (s *SettlementService) Simplify(balances []models.PayerBalance) []models.Transaction {
	var debtors, creditors []PersonBalance
	for _, entry := range balances {
		if entry.Balance < -Epsilon {
			debtors = append(debtors, PersonBalance{Person: entry.Name, Balance: entry.Balance})
		} else if entry.Balance > Epsilon {
			creditors = append(creditors, PersonBalance{Person: entry.Name, Balance: entry.Balance})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].Balance < debtors[j].Balance
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].Balance > creditors[j].Balance
	})

	transactions := []models.Transaction{}

	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		transfer := utils.Min(math.Abs(debtor.Balance), creditor.Balance)

		if transfer > Epsilon {
			transactions = append(transactions, models.Transaction{
				From:   debtor.Person,
				To:     creditor.Person,
				Amount: utils.Round(transfer),
			})
			debtor.Balance += transfer
			creditor.Balance -= transfer
		}

		if math.Abs(debtor.Balance) < Epsilon {
			i++
		}
		if creditor.Balance < Epsilon {
			j++
		}
	}

	return transactions
}
