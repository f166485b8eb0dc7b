package usecase

import (
	"strings"

	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/pkg/utils"
)

// contextualFactor возвращает множитель корректировки базового скора
// по погоде и трафику для одной достопримечательности
func contextualFactor(a domain.ScoredAttraction, tripCtx *domain.TripContext) float64 {
	if tripCtx == nil || tripCtx.Empty() {
		return 1.0
	}

	factor := 1.0

	var rainfall, temperature, congestion *float64
	if tripCtx.Weather != nil {
		rainfall = tripCtx.Weather.RainfallMm
		temperature = tripCtx.Weather.Temperature
	}
	if tripCtx.Traffic != nil {
		congestion = tripCtx.Traffic.CongestionLevel
	}

	// Rain penalizes outdoor attractions
	if a.Outdoor && rainfall != nil {
		if *rainfall > 30 {
			factor *= 0.5
		} else if *rainfall > 10 {
			factor *= 0.8
		}
	}

	// Heat penalizes long or strenuous visits
	if temperature != nil && *temperature > 32 {
		duration := utils.FloatOrDefault(a.AvgDurationHours, 0)
		if strings.Contains(strings.ToLower(a.Category), "hike") || duration >= 6 {
			factor *= 0.7
		}
	}

	// Congestion penalizes distant attractions
	if congestion != nil && a.DistanceKm != nil {
		if *congestion >= 8 && *a.DistanceKm > 50 {
			factor *= 0.6
		} else if *congestion >= 6 && *a.DistanceKm > 30 {
			factor *= 0.8
		}
	}

	return factor
}

// applyContextualScores заполняет ScoreContextual для всех строк
func applyContextualScores(items []domain.ScoredAttraction, tripCtx *domain.TripContext) {
	for i := range items {
		items[i].ScoreContextual = utils.Clip(items[i].Score*contextualFactor(items[i], tripCtx), 0.0, 1.0)
	}
}
