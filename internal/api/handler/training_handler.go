package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// TrainingHandler serves the training catalog. The catalog is not
// owner-scoped; authentication alone gates access.
type TrainingHandler struct {
	repo ports.TrainingRepository
}

func NewTrainingHandler(repo ports.TrainingRepository) *TrainingHandler {
	return &TrainingHandler{repo: repo}
}

// List handles GET /api/training.
//
// @Summary      List training content
// @Tags         training
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TrainingItem
// @Failure      401  {object}  errorResponse
// @Router       /api/training [get]
func (h *TrainingHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.TrainingItem{}
	}
	return c.JSON(http.StatusOK, items)
}
