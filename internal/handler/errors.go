package handler

import (
	"errors"
	"net/http"

	"invoiceflow/internal/logger"
	"invoiceflow/internal/model"
	"invoiceflow/internal/repository"
	"invoiceflow/internal/workflow"
	"invoiceflow/pkg/response"

	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal server error"

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrInvoiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, workflow.ErrUnknownStatus),
		errors.Is(err, workflow.ErrUnknownAction),
		errors.Is(err, workflow.ErrMissingActor):
		return http.StatusBadRequest
	case errors.Is(err, workflow.ErrIllegalTransition),
		errors.Is(err, workflow.ErrNoNextStatus):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes {"error": ...}. Internal errors are logged and replaced by a
// generic message.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	status := statusFor(err)

	msg := err.Error()
	switch status {
	case http.StatusNotFound:
		msg = "Invoice not found"
	case http.StatusInternalServerError:
		log := logger.WithComponent("handler")
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		msg = msgInternal
	}
	c.JSON(status, response.Error(msg))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.Error(msg))
}

// --- Bodies ---

type InvoiceResponse struct {
	Invoice *model.Invoice `json:"invoice"`
}

type InvoiceListResponse struct {
	Invoices []model.Invoice `json:"invoices"`
}

type AuditLogsResponse struct {
	Logs  []model.AuditEntry `json:"logs"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
