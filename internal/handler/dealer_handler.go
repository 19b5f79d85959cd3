package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"dealerreview/internal/errors"
	"dealerreview/internal/service"
)

// DealerHandler proxies dealer, review and sentiment reads.
type DealerHandler struct {
	dealerService service.DealerService
}

// NewDealerHandler creates a new dealer handler.
func NewDealerHandler(dealerService service.DealerService) *DealerHandler {
	return &DealerHandler{dealerService: dealerService}
}

// ListDealers godoc
// @Summary List dealers, optionally filtered by state
// @Tags dealers
// @Produce json
// @Param state path string false "State name"
// @Success 200 {object} DealersResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /get_dealers [get]
// @Router /get_dealers/{state} [get]
func (h *DealerHandler) ListDealers(c echo.Context) error {
	dealers, err := h.dealerService.ListDealers(c.Request().Context(), c.Param("state"))
	if err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, DealersResponse{
		Status:  http.StatusOK,
		Dealers: dealers,
	})
}

// GetDealer godoc
// @Summary Get a dealer by id
// @Tags dealers
// @Produce json
// @Param id path int true "Dealer ID"
// @Success 200 {object} DealerResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /dealer/{id} [get]
func (h *DealerHandler) GetDealer(c echo.Context) error {
	dealerID, err := parseDealerID(c)
	if err != nil {
		return errorResponse(err)
	}

	dealer, err := h.dealerService.GetDealer(c.Request().Context(), dealerID)
	if err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, DealerResponse{
		Status: http.StatusOK,
		Dealer: dealer,
	})
}

// DealerReviews godoc
// @Summary List the reviews of a dealer
// @Tags reviews
// @Produce json
// @Param id path int true "Dealer ID"
// @Success 200 {object} ReviewsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /reviews/dealer/{id} [get]
func (h *DealerHandler) DealerReviews(c echo.Context) error {
	dealerID, err := parseDealerID(c)
	if err != nil {
		return errorResponse(err)
	}

	reviews, err := h.dealerService.DealerReviews(c.Request().Context(), dealerID)
	if err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, ReviewsResponse{
		Status:  http.StatusOK,
		Reviews: reviews,
	})
}

// AnalyzeSentiment godoc
// @Summary Classify the sentiment of a piece of text
// @Tags reviews
// @Produce json
// @Param text path string true "Text to analyze"
// @Success 200 {object} SentimentResponse
// @Router /analyze/{text} [get]
func (h *DealerHandler) AnalyzeSentiment(c echo.Context) error {
	result := h.dealerService.AnalyzeSentiment(c.Request().Context(), c.Param("text"))
	return c.JSON(http.StatusOK, SentimentResponse{
		Status:    http.StatusOK,
		Sentiment: result.Sentiment,
	})
}

func parseDealerID(c echo.Context) (int, error) {
	dealerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || dealerID < 0 {
		return 0, errors.ErrDealerIDRequired
	}
	return dealerID, nil
}
