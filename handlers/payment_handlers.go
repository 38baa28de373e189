package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aresulmrc/Market-Hesap-Takip/models"
	"github.com/aresulmrc/Market-Hesap-Takip/utils"
)

// ListPayments returns the ordered payment history with per-person shares
func ListPayments(c *gin.Context) {
	utils.HandleSuccess(c, handlerServices.LedgerService.PaymentViews())
}

// AddPayment appends a new shared payment
func AddPayment(c *gin.Context) {
	var request models.AddPaymentRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	payment, err := handlerServices.LedgerService.AddPayment(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// EditPayment updates the payment at the given index
func EditPayment(c *gin.Context) {
	var request models.EditPaymentRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	payment, err := handlerServices.LedgerService.EditPayment(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// RemovePayment deletes the payment at the given index
func RemovePayment(c *gin.Context) {
	var request models.DeletePaymentRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	if err := handlerServices.LedgerService.DeletePayment(request.Index); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, true)
}

// SetSettlement flips one person's "still owes" flag on one payment
func SetSettlement(c *gin.Context) {
	var request models.SetSettlementRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	if err := handlerServices.LedgerService.SetSettlement(request.Index, request.Person, *request.Owes); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, true)
}

// ClearAllData wipes the payer set and the payment history
func ClearAllData(c *gin.Context) {
	if err := handlerServices.LedgerService.ClearAll(); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, true)
}
