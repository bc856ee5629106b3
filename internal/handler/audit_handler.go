package handler

import (
	"net/http"
	"strings"

	"invoiceflow/internal/service"
	"invoiceflow/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/audit-logs")
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs returns paginated audit entries, newest first
// @Summary      Get audit logs
// @Description  Lists recorded invoice mutations, optionally for one invoice
// @Tags         audit
// @Produce      json
// @Param        invoice_id  query     string  false  "Only entries for this invoice"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        limit       query     int     false  "Number of items per page (default 20)"
// @Success      200         {object}  AuditLogsResponse
// @Failure      500         {object}  response.ErrorBody
// @Router       /audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	page := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), strings.TrimSpace(c.Query("invoice_id")), page)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, AuditLogsResponse{
		Logs:  logs,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}
