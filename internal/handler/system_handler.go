package handler

import (
	"net/http"

	"invoiceflow/internal/websocket"
	"invoiceflow/pkg/response"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the health check and the change-event stream.
type SystemHandler struct {
	hub *websocket.Hub
}

func NewSystemHandler(hub *websocket.Hub) *SystemHandler {
	return &SystemHandler{hub: hub}
}

func (h *SystemHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
	if h.hub != nil {
		router.GET("/ws", h.Events)
	}
}

// Health reports that the service is up
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.StatusBody
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusBody{Status: "ok"})
}

// Events upgrades to a websocket that streams invoice change events
// @Summary      Invoice change events
// @Description  Websocket stream of {type, invoiceId, invoice, at} messages
// @Tags         system
// @Success      101
// @Router       /ws [get]
func (h *SystemHandler) Events(c *gin.Context) {
	websocket.ServeWs(h.hub, c)
}
