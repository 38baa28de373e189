package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aresulmrc/Market-Hesap-Takip/models"
	"github.com/aresulmrc/Market-Hesap-Takip/utils"
)

// ListPayers returns the ordered payer list
func ListPayers(c *gin.Context) {
	utils.HandleSuccess(c, handlerServices.LedgerService.Payers())
}

// AddPayer adds a new payer
func AddPayer(c *gin.Context) {
	var request models.AddPayerRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	if err := handlerServices.LedgerService.AddPayer(request.Name); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, handlerServices.LedgerService.Payers())
}

// RenamePayer renames a payer and cascades into the payment history
func RenamePayer(c *gin.Context) {
	var request models.RenamePayerRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	if err := handlerServices.LedgerService.RenamePayer(request.OldName, request.NewName); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, handlerServices.LedgerService.Payers())
}

// RemovePayer removes a payer not referenced by any payment
func RemovePayer(c *gin.Context) {
	var request models.RemovePayerRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	if err := handlerServices.LedgerService.RemovePayer(request.Name); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, handlerServices.LedgerService.Payers())
}
