package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// ComplianceHandler handles compliance document submission and listing.
type ComplianceHandler struct {
	service ports.ComplianceService
}

func NewComplianceHandler(service ports.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{service: service}
}

// Create handles POST /api/compliance — a multipart form with an optional
// supporting document.
//
// @Summary      Submit a compliance document
// @Tags         compliance
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Param        category     formData  string  false  "Category (defaults to general)"
// @Param        document     formData  file    false  "Supporting document (max 10MB)"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/compliance [post]
func (h *ComplianceHandler) Create(c echo.Context) error {
	userID, _, err := requesterIdentity(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	var document *ports.ImageUpload
	if fileHeader, err := c.FormFile("document"); err == nil {
		document, err = readUpload(fileHeader)
		if err != nil {
			return err
		}
	}

	record, err := h.service.Create(c.Request().Context(), ports.CreateComplianceInput{
		UserID:      userID,
		Title:       title,
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Document:    document,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Compliance document uploaded successfully",
		ID:      record.ID,
	})
}

// List handles GET /api/compliance — records visible to the requester,
// newest first.
//
// @Summary      List compliance records
// @Tags         compliance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ComplianceRecord
// @Failure      401  {object}  errorResponse
// @Router       /api/compliance [get]
func (h *ComplianceHandler) List(c echo.Context) error {
	userID, role, err := requesterIdentity(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), role, userID)
	if err != nil {
		return err
	}
	if records == nil {
		records = []*domain.ComplianceRecord{}
	}
	return c.JSON(http.StatusOK, records)
}
