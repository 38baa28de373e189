package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aresulmrc/Market-Hesap-Takip/models"
)

func TestSettlementService_SingleDebt(t *testing.T) {
	service := NewSettlementService()

	transactions := service.Simplify([]models.PayerBalance{
		{Name: "Payer", Balance: 50},
		{Name: "Payer2", Balance: -50},
	})

	require.Len(t, transactions, 1)
	assert.Equal(t, models.Transaction{From: "Payer2", To: "Payer", Amount: 50}, transactions[0])
}

func TestSettlementService_AllSettled(t *testing.T) {
	service := NewSettlementService()

	transactions := service.Simplify([]models.PayerBalance{
		{Name: "Payer", Balance: 0},
		{Name: "Payer2", Balance: 0},
	})

	assert.Empty(t, transactions)
}

func TestSettlementService_WithinToleranceIsSettled(t *testing.T) {
	service := NewSettlementService()

	transactions := service.Simplify([]models.PayerBalance{
		{Name: "A", Balance: 0.009},
		{Name: "B", Balance: -0.009},
	})

	assert.Empty(t, transactions)
}

func TestSettlementService_GreedyMatchesLargestFirst(t *testing.T) {
	service := NewSettlementService()

	// A: +45, B: -15, C: -30 (the three-payer ledger scenario).
	// Most negative debtor pays first.
	transactions := service.Simplify([]models.PayerBalance{
		{Name: "A", Balance: 45},
		{Name: "B", Balance: -15},
		{Name: "C", Balance: -30},
	})

	require.Len(t, transactions, 2)
	assert.Equal(t, models.Transaction{From: "C", To: "A", Amount: 30}, transactions[0])
	assert.Equal(t, models.Transaction{From: "B", To: "A", Amount: 15}, transactions[1])
}

func TestSettlementService_DebtorSplitsAcrossCreditors(t *testing.T) {
	service := NewSettlementService()

	transactions := service.Simplify([]models.PayerBalance{
		{Name: "A", Balance: 60},
		{Name: "B", Balance: 40},
		{Name: "C", Balance: -100},
	})

	require.Len(t, transactions, 2)
	assert.Equal(t, models.Transaction{From: "C", To: "A", Amount: 60}, transactions[0])
	assert.Equal(t, models.Transaction{From: "C", To: "B", Amount: 40}, transactions[1])
}

func TestSettlementService_TransactionsZeroOutBalances(t *testing.T) {
	service := NewSettlementService()

	balances := []models.PayerBalance{
		{Name: "A", Balance: 72.40},
		{Name: "B", Balance: -10.15},
		{Name: "C", Balance: -33.25},
		{Name: "D", Balance: -29},
		{Name: "E", Balance: 0},
	}

	transactions := service.Simplify(balances)

	// Applying every transaction must zero every balance within tolerance.
	remaining := make(map[string]float64)
	var totalCredit float64
	for _, entry := range balances {
		remaining[entry.Name] = entry.Balance
		if entry.Balance > Epsilon {
			totalCredit += entry.Balance
		}
	}

	var transferred float64
	for _, tx := range transactions {
		remaining[tx.From] += tx.Amount
		remaining[tx.To] -= tx.Amount
		transferred += tx.Amount
	}

	assert.InDelta(t, totalCredit, transferred, Epsilon)
	for name, balance := range remaining {
		assert.InDeltaf(t, 0, balance, Epsilon, "balance for %s should be settled", name)
	}
}

func TestSettlementService_DeterministicOnTies(t *testing.T) {
	service := NewSettlementService()

	balances := []models.PayerBalance{
		{Name: "A", Balance: 20},
		{Name: "B", Balance: -10},
		{Name: "C", Balance: -10},
	}

	first := service.Simplify(balances)
	second := service.Simplify([]models.PayerBalance{
		{Name: "A", Balance: 20},
		{Name: "B", Balance: -10},
		{Name: "C", Balance: -10},
	})

	// Equal debts keep their payer-set order.
	require.Len(t, first, 2)
	assert.Equal(t, "B", first[0].From)
	assert.Equal(t, "C", first[1].From)
	assert.Equal(t, first, second)
}

func TestSettlementService_NoCounterparty(t *testing.T) {
	service := NewSettlementService()

	// A creditor with no debtors (or vice versa) yields no transactions.
	assert.Empty(t, service.Simplify([]models.PayerBalance{{Name: "A", Balance: 25}}))
	assert.Empty(t, service.Simplify([]models.PayerBalance{{Name: "B", Balance: -25}}))
	assert.Empty(t, service.Simplify(nil))
}

func TestSettlementService_DoesNotMutateInput(t *testing.T) {
	service := NewSettlementService()

	balances := []models.PayerBalance{
		{Name: "A", Balance: 50},
		{Name: "B", Balance: -50},
	}
	service.Simplify(balances)

	assert.Equal(t, 50.0, balances[0].Balance)
	assert.Equal(t, -50.0, balances[1].Balance)
}

func TestSettlementService_FractionalAmounts(t *testing.T) {
	service := NewSettlementService()

	transactions := service.Simplify([]models.PayerBalance{
		{Name: "A", Balance: 33.34},
		{Name: "B", Balance: -16.67},
		{Name: "C", Balance: -16.67},
	})

	require.Len(t, transactions, 2)
	var total float64
	for _, tx := range transactions {
		total += tx.Amount
		assert.True(t, math.Abs(tx.Amount-16.67) < Epsilon)
	}
	assert.InDelta(t, 33.34, total, Epsilon)
}
