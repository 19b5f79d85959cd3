package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"

	"dealerreview/internal/auth"
	"dealerreview/internal/model"
	"dealerreview/internal/repository"
	"dealerreview/internal/upstream"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockSessionStore is a mock implementation of SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, userID uint, username string, ttl time.Duration) (*auth.Session, error) {
	args := m.Called(ctx, userID, username, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*auth.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockGateway is a mock implementation of upstream.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) FetchDealers(ctx context.Context, state string) (json.RawMessage, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockGateway) FetchDealerDetails(ctx context.Context, dealerID int) (json.RawMessage, error) {
	args := m.Called(ctx, dealerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockGateway) FetchReviews(ctx context.Context, dealerID int) (json.RawMessage, error) {
	args := m.Called(ctx, dealerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockGateway) AnalyzeSentiment(ctx context.Context, text string) upstream.SentimentResult {
	args := m.Called(ctx, text)
	return args.Get(0).(upstream.SentimentResult)
}

func (m *MockGateway) SubmitReview(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockCatalogRepository is a mock implementation of CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListMakesWithModels(ctx context.Context) ([]model.CarMake, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CarMake), args.Error(1)
}

func (m *MockCatalogRepository) FindMakeByName(ctx context.Context, name string) (*model.CarMake, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CarMake), args.Error(1)
}

func (m *MockCatalogRepository) CreateMake(ctx context.Context, carMake *model.CarMake) error {
	args := m.Called(ctx, carMake)
	return args.Error(0)
}

func (m *MockCatalogRepository) CreateModel(ctx context.Context, carModel *model.CarModel) error {
	args := m.Called(ctx, carModel)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteMake(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.CatalogRepository) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}
