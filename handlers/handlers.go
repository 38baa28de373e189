package handlers

import (
	"github.com/aresulmrc/Market-Hesap-Takip/repository"
	"github.com/aresulmrc/Market-Hesap-Takip/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	LedgerService     *services.LedgerService
	BalanceService    *services.BalanceService
	SettlementService *services.SettlementService
	SummaryService    *services.SummaryService
	ExcelService      *services.ExcelService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices() *HandlerServices {
	ledgerService := services.NewLedgerService(repository.NewLedgerRepository())
	balanceService := services.NewBalanceService()
	settlementService := services.NewSettlementService()
	summaryService := services.NewSummaryService(ledgerService, balanceService, settlementService)

	return &HandlerServices{
		LedgerService:     ledgerService,
		BalanceService:    balanceService,
		SettlementService: settlementService,
		SummaryService:    summaryService,
		ExcelService:      services.NewExcelService(ledgerService, summaryService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}
