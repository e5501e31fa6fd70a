package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// ScanHandler handles scan submission and listing.
type ScanHandler struct {
	service ports.ScanService
}

func NewScanHandler(service ports.ScanService) *ScanHandler {
	return &ScanHandler{service: service}
}

// Submit handles POST /api/scan — runs the scan workflow for one image.
//
// @Summary      Submit an animal scan
// @Tags         scans
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image     formData  file    true   "Animal image (max 10MB)"
// @Param        animalId  formData  string  false  "Animal identifier"
// @Param        notes     formData  string  false  "Free-form notes"
// @Success      200  {object}  domain.Classification
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/scan [post]
func (h *ScanHandler) Submit(c echo.Context) error {
	userID, _, err := requesterIdentity(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domain.ErrNoImage
	}
	upload, err := readUpload(fileHeader)
	if err != nil {
		return err
	}
	if upload == nil {
		return domain.ErrNoImage
	}

	classification, err := h.service.SubmitScan(c.Request().Context(), ports.SubmitScanInput{
		UserID:   userID,
		Image:    *upload,
		AnimalID: c.FormValue("animalId"),
		Notes:    c.FormValue("notes"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, classification)
}

// List handles GET /api/scans — scans visible to the requester, newest first.
//
// @Summary      List scans
// @Tags         scans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Scan
// @Failure      401  {object}  errorResponse
// @Router       /api/scans [get]
func (h *ScanHandler) List(c echo.Context) error {
	userID, role, err := requesterIdentity(c)
	if err != nil {
		return err
	}

	scans, err := h.service.ListScans(c.Request().Context(), role, userID)
	if err != nil {
		return err
	}
	if scans == nil {
		scans = []*domain.Scan{}
	}
	return c.JSON(http.StatusOK, scans)
}
