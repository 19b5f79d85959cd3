package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"dealerreview/internal/auth"
	"dealerreview/internal/errors"
	"dealerreview/internal/service"
)

// DealersResponse wraps a dealer list.
type DealersResponse struct {
	Status  int             `json:"status"`
	Dealers json.RawMessage `json:"dealers" swaggertype:"array,object"`
}

// DealerResponse wraps a single dealer record.
type DealerResponse struct {
	Status int             `json:"status"`
	Dealer json.RawMessage `json:"dealer" swaggertype:"object"`
}

// ReviewsResponse wraps the reviews of a dealer.
type ReviewsResponse struct {
	Status  int             `json:"status"`
	Reviews json.RawMessage `json:"reviews" swaggertype:"array,object"`
}

// MessageResponse is a plain success message.
type MessageResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// CarsResponse wraps the car catalog.
type CarsResponse struct {
	Status int                    `json:"status"`
	Cars   []service.CatalogEntry `json:"cars"`
}

// SentimentResponse carries the analyzer's verdict.
type SentimentResponse struct {
	Status    int    `json:"status"`
	Sentiment string `json:"sentiment"`
}

// Identity statuses reported by login, logout and register.
const (
	StatusAuthenticated      = "Authenticated"
	StatusInvalidCredentials = "Invalid credentials"
	StatusLoggedOut          = "Logged out"
)

// IdentityResponse reports the outcome of an identity operation.
type IdentityResponse struct {
	UserName string `json:"userName"`
	Status   string `json:"status"`
}

// errorResponse maps err to its status and error envelope.
func errorResponse(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// CurrentSession returns the caller's session, or nil for anonymous requests.
func CurrentSession(c echo.Context) *auth.Session {
	session, _ := c.Get(auth.SessionContextKey).(*auth.Session)
	return session
}
