package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error kinds returned by the ledger engine. Clients can branch on Kind
// without parsing messages.
const (
	KindDuplicateName    = "DuplicateName"
	KindNotFound         = "NotFound"
	KindPayerInUse       = "PayerInUse"
	KindInvalidPayment   = "InvalidPayment"
	KindIndexOutOfRange  = "IndexOutOfRange"
	KindPersonNotTracked = "PersonNotTracked"
	KindStorageFailure   = "StorageFailure"
)

// AppError represents a custom application error
type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common error constructors

func NewDuplicateNameError(name string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindDuplicateName,
		Message: fmt.Sprintf("%s already exists", name),
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewPayerInUseError(name string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindPayerInUse,
		Message: fmt.Sprintf("%s is referenced by existing payments and cannot be removed", name),
	}
}

func NewInvalidPaymentError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidPayment,
		Message: message,
	}
}

func NewIndexOutOfRangeError(index int) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindIndexOutOfRange,
		Message: fmt.Sprintf("no payment at index %d", index),
	}
}

func NewPersonNotTrackedError(person string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindPersonNotTracked,
		Message: fmt.Sprintf("%s is not tracked on this payment", person),
	}
}

func NewStorageFailureError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindStorageFailure,
		Message: message,
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidPayment,
		Message: message,
	}
}

// HandleError sends an appropriate HTTP response for an error
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message, "kind": appErr.Kind})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// HandleSuccess sends a success response
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
