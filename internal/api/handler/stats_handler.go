package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// StatsHandler serves the dashboard summary.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Dashboard handles GET /api/dashboard/stats.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  errorResponse
// @Router       /api/dashboard/stats [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	userID, role, err := requesterIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Dashboard(c.Request().Context(), role, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
