package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// AlertHandler handles alert listing and acknowledgement.
type AlertHandler struct {
	service ports.AlertService
}

func NewAlertHandler(service ports.AlertService) *AlertHandler {
	return &AlertHandler{service: service}
}

// List handles GET /api/alerts — alerts visible to the requester, newest first.
//
// @Summary      List alerts
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Alert
// @Failure      401  {object}  errorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c echo.Context) error {
	userID, role, err := requesterIdentity(c)
	if err != nil {
		return err
	}

	alerts, err := h.service.ListAlerts(c.Request().Context(), role, userID)
	if err != nil {
		return err
	}
	if alerts == nil {
		alerts = []*domain.Alert{}
	}
	return c.JSON(http.StatusOK, alerts)
}

// MarkRead handles PATCH /api/alerts/:id/read. Acknowledging an alert that is
// already read succeeds; one outside the requester's scope is 404.
//
// @Summary      Mark an alert as read
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Alert id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/alerts/{id}/read [patch]
func (h *AlertHandler) MarkRead(c echo.Context) error {
	userID, role, err := requesterIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Request().Context(), c.Param("id"), role, userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Alert marked as read"})
}
