package handler

import (
	"net/http"
	"time"

	"invoiceflow/internal/service"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	statsGroup := router.Group("/statistics")
	{
		statsGroup.GET("", h.GetStatistics)
	}
}

// @Summary      Get invoice statistics
// @Description  Invoice counts per status and money totals, optionally bounded by creation time
// @Tags         statistics
// @Produce      json
// @Param        start_date query string false "Start Date (RFC3339)"
// @Param        end_date   query string false "End Date (RFC3339)"
// @Success      200 {object} model.Statistics
// @Failure      400 {object} response.ErrorBody "Invalid date format"
// @Failure      500 {object} response.ErrorBody
// @Router       /statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	var rng service.StatsRange

	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(c, "invalid start_date format, expected RFC3339")
			return
		}
		rng.Start = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(c, "invalid end_date format, expected RFC3339")
			return
		}
		rng.End = &end
	}

	stats, err := h.statisticsService.GetStatistics(c.Request.Context(), rng)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
