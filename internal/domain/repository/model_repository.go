package repository

import (
	"context"

	"github.com/itinerary-microservice/internal/domain"
)

// ItineraryModelRepository - контракт сервиса обученных моделей маршрутов.
// Внутреннее устройство моделей (регрессоры, fusion-сеть) скрыто за этим
// интерфейсом; сервис потребляет только их выход.
type ItineraryModelRepository interface {
	// PredictTimeAndBudget предсказывает суммарное время и бюджет поездки
	PredictTimeAndBudget(ctx context.Context, profile domain.TravelerProfile) (*domain.TimeBudgetPrediction, error)

	// ScoreAttractions возвращает вероятности интереса пользователя
	// к каждой достопримечательности, в порядке входного списка
	ScoreAttractions(ctx context.Context, profile domain.TravelerProfile, attractions []domain.Attraction) ([]float64, error)
}

// RiskModelRepository - контракт ансамбля моделей риска
type RiskModelRepository interface {
	// PredictRisk оценивает риск по нормализованной строке условий
	PredictRisk(ctx context.Context, row domain.RiskRow) (*domain.RiskPrediction, error)
}
