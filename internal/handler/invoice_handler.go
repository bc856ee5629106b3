package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"invoiceflow/internal/middleware"
	"invoiceflow/internal/model"
	"invoiceflow/internal/service"
	"invoiceflow/internal/workflow"
	"invoiceflow/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.POST("", h.CreateInvoice)
		invoices.GET("/:id", h.GetInvoice)
		invoices.PUT("/:id", h.UpdateInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
		invoices.POST("/:id/status", h.TransitionInvoice)
		invoices.POST("/:id/send", h.SendInvoice)
		invoices.POST("/:id/advance", h.AdvanceInvoice)
		invoices.POST("/:id/approve", h.ApproveInvoice)
	}
}

// ListInvoices returns every stored invoice, optionally filtered by status
// @Summary      List invoices
// @Description  Returns all invoices in storage order, optionally filtered by status
// @Tags         invoices
// @Produce      json
// @Param        status  query     string  false  "Filter by status (draft, sent, in_process, completed, logged)"
// @Success      200     {object}  InvoiceListResponse
// @Failure      400     {object}  response.ErrorBody
// @Failure      500     {object}  response.ErrorBody
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	filter := service.InvoiceFilter{Status: model.Status(strings.TrimSpace(c.Query("status")))}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, InvoiceListResponse{Invoices: invoices})
}

// CreateInvoice stores a new draft invoice
// @Summary      Create invoice
// @Description  Validates the payload, computes every money field and stores a draft invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body      model.CreateInput  true  "Create Invoice Payload"
// @Success      200      {object}  InvoiceResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req model.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if req.Creator == "" {
		req.Creator = middleware.CallerName(c)
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Invoice: invoice})
}

// GetInvoice returns one invoice
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  InvoiceResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Invoice: invoice})
}

// UpdateInvoice merges a partial update into a stored invoice
// @Summary      Update invoice
// @Description  Merges the given fields, recomputes money and refreshes updatedAt. A status given here is recorded without audit stamps. Unknown keys are rejected.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Invoice ID"
// @Param        payload  body      model.InvoicePatch  true  "Fields to change"
// @Success      200      {object}  InvoiceResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      404      {object}  response.ErrorBody
// @Failure      409      {object}  response.ErrorBody
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var patch model.InvoicePatch
	if err := model.DecodeStrict(raw, &patch); err != nil {
		fail(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Invoice: invoice})
}

// DeleteInvoice removes an invoice. Deleting a missing id succeeds.
// @Summary      Delete invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.SuccessBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success())
}

// TransitionInvoice moves an invoice to the given status and stamps the actor
// @Summary      Change invoice status
// @Description  Records the target status and, on first entry into it, the actor and time
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Invoice ID"
// @Param        payload  body      service.TransitionRequest  true  "Target status and actor"
// @Success      200      {object}  InvoiceResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      404      {object}  response.ErrorBody
// @Failure      409      {object}  response.ErrorBody
// @Router       /invoices/{id}/status [post]
func (h *InvoiceHandler) TransitionInvoice(c *gin.Context) {
	var req service.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Actor) == "" {
		req.Actor = middleware.CallerName(c)
	}

	invoice, err := h.invoiceService.TransitionInvoice(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Invoice: invoice})
}

// SendInvoice moves a draft to sent
// @Summary      Send invoice
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true   "Invoice ID"
// @Param        payload  body      service.ActionRequest  false  "Actor"
// @Success      200      {object}  InvoiceResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      404      {object}  response.ErrorBody
// @Router       /invoices/{id}/send [post]
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	h.applyAction(c, workflow.ActionSend)
}

// AdvanceInvoice moves sent to in_process, or in_process to completed
// @Summary      Advance invoice
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true   "Invoice ID"
// @Param        payload  body      service.ActionRequest  false  "Actor"
// @Success      200      {object}  InvoiceResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      404      {object}  response.ErrorBody
// @Failure      409      {object}  response.ErrorBody
// @Router       /invoices/{id}/advance [post]
func (h *InvoiceHandler) AdvanceInvoice(c *gin.Context) {
	h.applyAction(c, workflow.ActionAdvance)
}

// ApproveInvoice moves a completed invoice to logged
// @Summary      Approve invoice
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true   "Invoice ID"
// @Param        payload  body      service.ActionRequest  false  "Actor"
// @Success      200      {object}  InvoiceResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      404      {object}  response.ErrorBody
// @Router       /invoices/{id}/approve [post]
func (h *InvoiceHandler) ApproveInvoice(c *gin.Context) {
	h.applyAction(c, workflow.ActionApprove)
}

func (h *InvoiceHandler) applyAction(c *gin.Context, action string) {
	var req service.ActionRequest
	// An empty body, sized or chunked, falls back to the caller name.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Actor) == "" {
		req.Actor = middleware.CallerName(c)
	}

	invoice, err := h.invoiceService.ApplyAction(c.Request.Context(), c.Param("id"), action, req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Invoice: invoice})
}
