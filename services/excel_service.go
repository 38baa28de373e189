package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/aresulmrc/Market-Hesap-Takip/models"
	"github.com/aresulmrc/Market-Hesap-Takip/utils"
)

// ExcelService renders the ledger summary to a downloadable workbook.
type ExcelService struct {
	ledgerService  *LedgerService
	summaryService *SummaryService
}

// NewExcelService creates a new Excel service
func NewExcelService(ledgerService *LedgerService, summaryService *SummaryService) *ExcelService {
	return &ExcelService{
		ledgerService:  ledgerService,
		summaryService: summaryService,
	}
}

// ExportSummaryToExcel generates an Excel file with the current balances,
// settlement steps and payment history.
func (s *ExcelService) ExportSummaryToExcel() (*excelize.File, string, error) {
	summary := s.summaryService.BuildSummary()
	payments := s.ledgerService.Payments()

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, summary); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createPaymentSheet(f, payments); err != nil {
		return nil, "", fmt.Errorf("failed to create payments sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_%s_%s.xlsx",
		utils.CleanFileName("Hesap Ozeti"),
		time.Now().Format("2006-01-02"),
		uuid.New().String()[:8])

	return f, filename, nil
}

// createSummarySheet creates Sheet 1: balances, settlement steps, total spend
func (s *ExcelService) createSummarySheet(f *excelize.File, summary *models.Summary) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})

	// Balance listing
	f.SetCellValue(sheetName, "A1", "Person")
	f.SetCellValue(sheetName, "B1", "Outstanding Balance")
	f.SetCellStyle(sheetName, "A1", "B1", headerStyle)

	for i, balance := range summary.Balances {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), balance.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), balance.Balance)
	}

	// Settlement steps
	settlementRow := len(summary.Balances) + 4
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", settlementRow), "Settlement Steps:")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", settlementRow), fmt.Sprintf("A%d", settlementRow), titleStyle)

	settlementRow++
	settlementHeaders := []string{"From", "To", "Amount"}
	for i, header := range settlementHeaders {
		cell := fmt.Sprintf("%s%d", string(rune('A'+i)), settlementRow)
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", settlementRow), fmt.Sprintf("C%d", settlementRow), headerStyle)

	for i, transaction := range summary.Transactions {
		row := settlementRow + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), transaction.From)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), transaction.To)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), transaction.Amount)
	}

	// Total spend
	totalRow := settlementRow + len(summary.Transactions) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Total Spend")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalRow), summary.TotalSpend)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("A%d", totalRow), titleStyle)

	f.SetColWidth(sheetName, "A", "C", 18)

	return nil
}

// createPaymentSheet creates Sheet 2: payment history
func (s *ExcelService) createPaymentSheet(f *excelize.File, payments []models.Payment) error {
	sheetName := "Payments"
	f.NewSheet(sheetName)

	headers := []string{"Date", "Type", "Payer", "Amount", "Split", "Per Person", "Still Owing"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	for i, payment := range payments {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), payment.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), payment.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), payment.Payer)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), payment.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), payment.Split)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), utils.Round(payment.PerPersonShare()))

		owing := ""
		for _, included := range payment.IncludedPayers {
			if owes, tracked := payment.SettlementStatus[included]; tracked && owes {
				if owing != "" {
					owing += ", "
				}
				owing += included
			}
		}
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), owing)
	}

	f.SetColWidth(sheetName, "A", "G", 14)
	f.SetColWidth(sheetName, "G", "G", 24)

	return nil
}
