package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/itinerary-microservice/internal/domain"
)

// MockAttractionRepository is a mock of AttractionRepository
type MockAttractionRepository struct {
	mock.Mock
}

func (m *MockAttractionRepository) GetAll(ctx context.Context) ([]domain.Attraction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attraction), args.Error(1)
}

// MockHotelRepository is a mock of HotelRepository
type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

// MockItineraryModelRepository is a mock of ItineraryModelRepository
type MockItineraryModelRepository struct {
	mock.Mock
}

func (m *MockItineraryModelRepository) PredictTimeAndBudget(ctx context.Context, profile domain.TravelerProfile) (*domain.TimeBudgetPrediction, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeBudgetPrediction), args.Error(1)
}

func (m *MockItineraryModelRepository) ScoreAttractions(ctx context.Context, profile domain.TravelerProfile, attractions []domain.Attraction) ([]float64, error) {
	args := m.Called(ctx, profile, attractions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

// MockRiskModelRepository is a mock of RiskModelRepository
type MockRiskModelRepository struct {
	mock.Mock
}

func (m *MockRiskModelRepository) PredictRisk(ctx context.Context, row domain.RiskRow) (*domain.RiskPrediction, error) {
	args := m.Called(ctx, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RiskPrediction), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
