package service

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "dealerreview/internal/errors"
	"dealerreview/internal/logger"
	"dealerreview/internal/upstream"
)

// emptyReviews is returned when a dealer has no reviews or the service is down.
var emptyReviews = json.RawMessage("[]")

// DealerService proxies dealer and review data from the upstream services.
type DealerService interface {
	ListDealers(ctx context.Context, state string) (json.RawMessage, error)
	GetDealer(ctx context.Context, dealerID int) (json.RawMessage, error)
	DealerReviews(ctx context.Context, dealerID int) (json.RawMessage, error)
	SubmitReview(ctx context.Context, username string, payload map[string]interface{}) error
	AnalyzeSentiment(ctx context.Context, text string) upstream.SentimentResult
}

type dealerService struct {
	gateway upstream.Gateway
	log     logger.ILogger
}

// NewDealerService creates a new dealer service.
func NewDealerService(gateway upstream.Gateway, log logger.ILogger) DealerService {
	return &dealerService{gateway: gateway, log: log}
}

// ListDealers returns the dealer list. An empty list is reported as unavailable.
func (s *dealerService) ListDealers(ctx context.Context, state string) (json.RawMessage, error) {
	dealers, err := s.gateway.FetchDealers(ctx, state)
	if err != nil || !upstream.Truthy(dealers) {
		return nil, apperrors.ErrDealersUnavailable
	}
	return dealers, nil
}

// GetDealer returns a single dealer record.
func (s *dealerService) GetDealer(ctx context.Context, dealerID int) (json.RawMessage, error) {
	if dealerID < 0 {
		return nil, apperrors.ErrDealerIDRequired
	}
	dealer, err := s.gateway.FetchDealerDetails(ctx, dealerID)
	if err != nil || !upstream.Truthy(dealer) {
		return nil, &apperrors.DealerNotFoundError{DealerID: dealerID}
	}
	return dealer, nil
}

// DealerReviews returns the reviews of a dealer, or an empty list.
// Dealer id 0 is rejected.
func (s *dealerService) DealerReviews(ctx context.Context, dealerID int) (json.RawMessage, error) {
	if dealerID <= 0 {
		return nil, apperrors.ErrDealerIDRequired
	}
	reviews, err := s.gateway.FetchReviews(ctx, dealerID)
	if err != nil || !upstream.Truthy(reviews) {
		return emptyReviews, nil
	}
	return reviews, nil
}

// SubmitReview forwards a review on behalf of username. Any "name" supplied
// by the caller is replaced.
func (s *dealerService) SubmitReview(ctx context.Context, username string, payload map[string]interface{}) error {
	if payload == nil {
		return apperrors.ErrInvalidPayload
	}

	review := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		review[k] = v
	}
	review["name"] = username

	resp, err := s.gateway.SubmitReview(ctx, review)
	if err != nil || !upstream.Truthy(resp) {
		s.log.Error("Error posting review", logger.String("username", username), logger.Any("dealership", review["dealership"]))
		return fmt.Errorf("submit review: %w", apperrors.ErrReviewSubmission)
	}
	return nil
}

// AnalyzeSentiment classifies text; it reports "N/A" when the analyzer is unavailable.
func (s *dealerService) AnalyzeSentiment(ctx context.Context, text string) upstream.SentimentResult {
	return s.gateway.AnalyzeSentiment(ctx, text)
}
