package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dealerreview/internal/service"
)

// CatalogHandler serves the local car catalog.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCars godoc
// @Summary List car makes with their models
// @Tags catalog
// @Produce json
// @Success 200 {object} CarsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /get_cars [get]
func (h *CatalogHandler) GetCars(c echo.Context) error {
	cars, err := h.catalogService.ListCatalog(c.Request().Context())
	if err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, CarsResponse{
		Status: http.StatusOK,
		Cars:   cars,
	})
}
