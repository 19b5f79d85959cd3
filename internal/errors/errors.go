package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrDealerIDRequired is returned when a dealer route is called without a usable id.
	ErrDealerIDRequired = errors.New("Dealer ID is required.")
	// ErrDealersUnavailable is returned when the dealer list could not be fetched.
	ErrDealersUnavailable = errors.New("Could not fetch dealer list from API.")
	// ErrDealerNotFound is returned when the dealer service has no data for an id.
	ErrDealerNotFound = errors.New("dealer not found")
	// ErrLoginRequired is returned when a write is attempted without a session.
	ErrLoginRequired = errors.New("Login required to post a review.")
	// ErrInvalidPayload is returned when an inbound body is not a JSON object.
	ErrInvalidPayload = errors.New("Invalid JSON format.")
	// ErrReviewSubmission is returned when the dealer service rejects or drops a review.
	ErrReviewSubmission = errors.New("Failed to submit review to external API.")
	// ErrCredentialsRequired is returned when registration lacks a username or password.
	ErrCredentialsRequired = errors.New("Username and password are required.")
	// ErrUserAlreadyExists is returned when registering a taken username.
	ErrUserAlreadyExists = errors.New("Username already exists")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// DealerNotFoundError reports a dealer id the dealer service had no data for.
// It matches ErrDealerNotFound under errors.Is.
type DealerNotFoundError struct {
	DealerID int
}

func (e *DealerNotFoundError) Error() string {
	return fmt.Sprintf("Dealer with ID %d not found.", e.DealerID)
}

func (e *DealerNotFoundError) Is(target error) bool {
	return target == ErrDealerNotFound
}

// StorageError wraps a local database failure. Its detail is echoed to the caller.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("Internal server error: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Status:  e.StatusCode,
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var (
		storageErr  *StorageError
		notFoundErr *DealerNotFoundError
	)
	switch {
	case errors.Is(err, ErrDealerIDRequired):
		return NewHTTPError(http.StatusBadRequest, ErrDealerIDRequired.Error(), "DEALER_ID_REQUIRED")
	case errors.Is(err, ErrInvalidPayload):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidPayload.Error(), "INVALID_JSON")
	case errors.Is(err, ErrCredentialsRequired):
		return NewHTTPError(http.StatusBadRequest, ErrCredentialsRequired.Error(), "CREDENTIALS_REQUIRED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrLoginRequired):
		return NewHTTPError(http.StatusForbidden, ErrLoginRequired.Error(), "LOGIN_REQUIRED")
	case errors.Is(err, ErrDealersUnavailable):
		return NewHTTPError(http.StatusNotFound, ErrDealersUnavailable.Error(), "DEALERS_UNAVAILABLE")
	case errors.As(err, &notFoundErr):
		return NewHTTPError(http.StatusNotFound, notFoundErr.Error(), "DEALER_NOT_FOUND")
	case errors.Is(err, ErrDealerNotFound):
		return NewHTTPError(http.StatusNotFound, ErrDealerNotFound.Error(), "DEALER_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, ErrUserAlreadyExists.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrReviewSubmission):
		return NewHTTPError(http.StatusInternalServerError, ErrReviewSubmission.Error(), "REVIEW_SUBMISSION_FAILED")
	case errors.As(err, &storageErr):
		return NewHTTPError(http.StatusInternalServerError, storageErr.Error(), "STORAGE_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
