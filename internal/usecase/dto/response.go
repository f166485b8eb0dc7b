package dto

import (
	"github.com/itinerary-microservice/internal/domain"
)

// RiskResponse - результат оценки риска для набора локаций
type RiskResponse struct {
	Results []domain.RiskAssessment `json:"results"`
}

// TimeBudgetResponse - предсказание суммарного времени и бюджета
type TimeBudgetResponse struct {
	EstimatedTotalTimeHours float64 `json:"estimated_total_time_hours"`
	EstimatedTotalBudget    float64 `json:"estimated_total_budget"`
}
