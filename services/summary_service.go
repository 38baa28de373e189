package services

import (
	"github.com/aresulmrc/Market-Hesap-Takip/models"
	"github.com/aresulmrc/Market-Hesap-Takip/utils"
)

// SummaryService glues the balance and settlement computations together
// for the presentation layer. No further logic is expected downstream.
type SummaryService struct {
	ledgerService     *LedgerService
	balanceService    *BalanceService
	settlementService *SettlementService
}

// NewSummaryService creates a new summary service
func NewSummaryService(ledgerService *LedgerService, balanceService *BalanceService, settlementService *SettlementService) *SummaryService {
	return &SummaryService{
		ledgerService:     ledgerService,
		balanceService:    balanceService,
		settlementService: settlementService,
	}
}

// BuildSummary computes balances, settlement steps and total spend from
// the current ledger snapshot.
//
// Total spend counts every well-formed payment whether or not anyone has
// settled; it deliberately differs from the outstanding totals in the
// balance listing.
func (s *SummaryService) BuildSummary() *models.Summary {
	payers := s.ledgerService.Payers()
	payments := s.ledgerService.Payments()

	balances := s.balanceService.Calculate(payers, payments)
	transactions := s.settlementService.Simplify(balances)

	var totalSpend float64
	for _, payment := range payments {
		if payment.IsWellFormed() {
			totalSpend += payment.Amount
		}
	}

	return &models.Summary{
		Balances:     balances,
		Transactions: transactions,
		TotalSpend:   utils.Round(totalSpend),
	}
}
