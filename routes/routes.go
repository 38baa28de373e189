package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aresulmrc/Market-Hesap-Takip/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	handlers.InitHandlers()

	v1 := router.Group("/api/v1")
	{
		// Payer endpoints
		v1.GET("/payers", handlers.ListPayers)
		v1.POST("/payers/add", handlers.AddPayer)
		v1.POST("/payers/rename", handlers.RenamePayer)
		v1.POST("/payers/remove", handlers.RemovePayer)

		// Payment endpoints
		v1.GET("/payments", handlers.ListPayments)
		v1.POST("/payments/add", handlers.AddPayment)
		v1.POST("/payments/edit", handlers.EditPayment)
		v1.POST("/payments/remove", handlers.RemovePayment)
		v1.POST("/payments/settle", handlers.SetSettlement)

		// Summary endpoints
		v1.GET("/summary", handlers.GetSummary)
		v1.GET("/summary/export", handlers.ExportSummaryToExcel)

		// Maintenance
		v1.POST("/data/clear", handlers.ClearAllData)
	}
}
