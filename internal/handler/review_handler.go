package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dealerreview/internal/errors"
	"dealerreview/internal/service"
)

const reviewSubmitted = "Review submitted successfully."

// ReviewHandler handles review submission.
type ReviewHandler struct {
	dealerService service.DealerService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(dealerService service.DealerService) *ReviewHandler {
	return &ReviewHandler{dealerService: dealerService}
}

// AddReview godoc
// @Summary Submit a review as the logged-in user
// @Description The reviewer name is always taken from the session.
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body object true "Review"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /add_review [post]
func (h *ReviewHandler) AddReview(c echo.Context) error {
	session := CurrentSession(c)
	if session == nil {
		return errorResponse(errors.ErrLoginRequired)
	}

	// the review is relayed as is, so it is decoded without a schema
	var payload map[string]interface{}
	if err := decodeJSONBody(c, &payload); err != nil || payload == nil {
		return errorResponse(errors.ErrInvalidPayload)
	}

	if err := h.dealerService.SubmitReview(c.Request().Context(), session.Username, payload); err != nil {
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Status:  http.StatusOK,
		Message: reviewSubmitted,
	})
}
