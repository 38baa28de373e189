package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aresulmrc/Market-Hesap-Takip/utils"
)

// GetSummary returns balances, settlement steps and total spend
func GetSummary(c *gin.Context) {
	utils.HandleSuccess(c, handlerServices.SummaryService.BuildSummary())
}

// ExportSummaryToExcel streams the summary workbook as a download
func ExportSummaryToExcel(c *gin.Context) {
	excelFile, filename, err := handlerServices.ExcelService.ExportSummaryToExcel()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export summary: " + err.Error()})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
