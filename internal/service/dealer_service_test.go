package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "dealerreview/internal/errors"
	"dealerreview/internal/logger"
	"dealerreview/internal/upstream"
)

func TestDealerService_ListDealers(t *testing.T) {
	tests := []struct {
		name          string
		state         string
		upstream      json.RawMessage
		upstreamErr   error
		expected      string
		expectedError error
	}{
		{
			name:     "all dealers",
			upstream: json.RawMessage(`[{"id":1,"state":"Texas"},{"id":2,"state":"Kansas"}]`),
			expected: `[{"id":1,"state":"Texas"},{"id":2,"state":"Kansas"}]`,
		},
		{
			name:     "filtered by state",
			state:    "Kansas",
			upstream: json.RawMessage(`[{"id":2,"state":"Kansas"}]`),
			expected: `[{"id":2,"state":"Kansas"}]`,
		},
		{
			name:          "upstream failure",
			upstreamErr:   upstream.ErrNoData,
			expectedError: apperrors.ErrDealersUnavailable,
		},
		{
			// an empty list is indistinguishable from a failed fetch
			name:          "empty list",
			state:         "Nowhere",
			upstream:      json.RawMessage(`[]`),
			expectedError: apperrors.ErrDealersUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(MockGateway)
			if tt.upstreamErr != nil {
				gw.On("FetchDealers", mock.Anything, tt.state).Return(nil, tt.upstreamErr)
			} else {
				gw.On("FetchDealers", mock.Anything, tt.state).Return(tt.upstream, nil)
			}

			service := NewDealerService(gw, logger.NewNop())
			dealers, err := service.ListDealers(context.Background(), tt.state)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, dealers)
			} else {
				require.NoError(t, err)
				assert.JSONEq(t, tt.expected, string(dealers))
			}
			gw.AssertExpectations(t)
		})
	}
}

func TestDealerService_GetDealer(t *testing.T) {
	gw := new(MockGateway)
	gw.On("FetchDealerDetails", mock.Anything, 15).Return(json.RawMessage(`{"id":15,"full_name":"Best Cars"}`), nil)
	gw.On("FetchDealerDetails", mock.Anything, 99).Return(nil, upstream.ErrNoData)
	gw.On("FetchDealerDetails", mock.Anything, 50).Return(json.RawMessage(`{}`), nil)

	service := NewDealerService(gw, logger.NewNop())

	dealer, err := service.GetDealer(context.Background(), 15)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":15,"full_name":"Best Cars"}`, string(dealer))

	_, err = service.GetDealer(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrDealerNotFound)
	assert.EqualError(t, err, "Dealer with ID 99 not found.")

	_, err = service.GetDealer(context.Background(), 50)
	assert.ErrorIs(t, err, apperrors.ErrDealerNotFound)
}

func TestDealerService_DealerReviews(t *testing.T) {
	tests := []struct {
		name          string
		dealerID      int
		setupMock     func(*MockGateway)
		expected      string
		expectedError error
	}{
		{
			name:     "reviews present",
			dealerID: 15,
			setupMock: func(m *MockGateway) {
				m.On("FetchReviews", mock.Anything, 15).Return(json.RawMessage(`[{"id":1,"review":"great"}]`), nil)
			},
			expected: `[{"id":1,"review":"great"}]`,
		},
		{
			name:     "no reviews",
			dealerID: 16,
			setupMock: func(m *MockGateway) {
				m.On("FetchReviews", mock.Anything, 16).Return(json.RawMessage(`[]`), nil)
			},
			expected: `[]`,
		},
		{
			name:     "upstream failure yields empty list",
			dealerID: 17,
			setupMock: func(m *MockGateway) {
				m.On("FetchReviews", mock.Anything, 17).Return(nil, upstream.ErrNoData)
			},
			expected: `[]`,
		},
		{
			name:          "zero id rejected",
			dealerID:      0,
			setupMock:     func(*MockGateway) {},
			expectedError: apperrors.ErrDealerIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(MockGateway)
			tt.setupMock(gw)

			service := NewDealerService(gw, logger.NewNop())
			reviews, err := service.DealerReviews(context.Background(), tt.dealerID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				gw.AssertNotCalled(t, "FetchReviews", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.JSONEq(t, tt.expected, string(reviews))
			}
			gw.AssertExpectations(t)
		})
	}
}

func TestDealerService_SubmitReview(t *testing.T) {
	t.Run("name is overwritten with session user", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("SubmitReview", mock.Anything, mock.MatchedBy(func(p map[string]interface{}) bool {
			return p["name"] == "alice" && p["dealership"] == float64(15) && p["review"] == "Great"
		})).Return(json.RawMessage(`{"id":123}`), nil)

		payload := map[string]interface{}{"name": "mallory", "dealership": float64(15), "review": "Great"}
		service := NewDealerService(gw, logger.NewNop())

		require.NoError(t, service.SubmitReview(context.Background(), "alice", payload))
		assert.Equal(t, "mallory", payload["name"], "caller's map must not be mutated")
		gw.AssertExpectations(t)
	})

	t.Run("upstream failure", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("SubmitReview", mock.Anything, mock.Anything).Return(nil, upstream.ErrNoData)

		service := NewDealerService(gw, logger.NewNop())
		err := service.SubmitReview(context.Background(), "alice", map[string]interface{}{"review": "x"})

		assert.ErrorIs(t, err, apperrors.ErrReviewSubmission)
	})

	t.Run("empty upstream response", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("SubmitReview", mock.Anything, mock.Anything).Return(json.RawMessage(`{}`), nil)

		service := NewDealerService(gw, logger.NewNop())
		err := service.SubmitReview(context.Background(), "alice", map[string]interface{}{"review": "x"})

		assert.ErrorIs(t, err, apperrors.ErrReviewSubmission)
	})

	t.Run("nil payload", func(t *testing.T) {
		gw := new(MockGateway)
		service := NewDealerService(gw, logger.NewNop())

		err := service.SubmitReview(context.Background(), "alice", nil)

		assert.ErrorIs(t, err, apperrors.ErrInvalidPayload)
		gw.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything)
	})
}

func TestDealerService_AnalyzeSentiment(t *testing.T) {
	gw := new(MockGateway)
	gw.On("AnalyzeSentiment", mock.Anything, "fantastic service").Return(upstream.SentimentResult{Sentiment: "positive"})
	gw.On("AnalyzeSentiment", mock.Anything, "meh").Return(upstream.SentimentResult{Sentiment: upstream.SentimentUnavailable})

	service := NewDealerService(gw, logger.NewNop())

	assert.Equal(t, "positive", service.AnalyzeSentiment(context.Background(), "fantastic service").Sentiment)
	assert.Equal(t, "N/A", service.AnalyzeSentiment(context.Background(), "meh").Sentiment)
}
