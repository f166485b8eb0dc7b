package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/domain/repository"
	"github.com/itinerary-microservice/internal/pkg/errors"
	"github.com/itinerary-microservice/internal/pkg/utils"
	"github.com/itinerary-microservice/internal/usecase/dto"
)

// Risk row defaults
const (
	defaultTemperatureC    = 28.0
	defaultRainfallMm      = 0.0
	defaultWindSpeed       = 5.0
	defaultHumidity        = 75.0
	defaultVisibilityKm    = 10.0
	defaultCongestionLevel = 3.0
	defaultAverageSpeed    = 40.0
	defaultTrafficVolume   = 100.0
	defaultAccidents       = 0.0
	defaultIncidents       = 0.0
)

// RiskUseCase - оценка риска посещения локаций
type RiskUseCase struct {
	modelRepo repository.RiskModelRepository
	logger    *zap.Logger
}

func NewRiskUseCase(
	modelRepo repository.RiskModelRepository,
	logger *zap.Logger,
) *RiskUseCase {
	return &RiskUseCase{
		modelRepo: modelRepo,
		logger:    logger,
	}
}

// Assess оценивает риск для каждой локации запроса
func (uc *RiskUseCase) Assess(ctx context.Context, req dto.RiskRequest) (*dto.RiskResponse, error) {
	locations := req.ResolveLocations()

	results := make([]domain.RiskAssessment, 0, len(locations))
	for _, loc := range locations {
		assessment, err := uc.AssessLocation(ctx, loc)
		if err != nil {
			return nil, err
		}
		results = append(results, *assessment)
	}

	return &dto.RiskResponse{Results: results}, nil
}

// AssessLocation оценивает риск одной локации
func (uc *RiskUseCase) AssessLocation(ctx context.Context, loc domain.RiskLocation) (*domain.RiskAssessment, error) {
	row := buildRiskRow(loc)

	pred, err := uc.modelRepo.PredictRisk(ctx, row)
	if err != nil {
		uc.logger.Error("Failed to predict risk",
			zap.String("location", loc.Name),
			zap.Error(err),
		)
		return nil, errors.ErrModelService
	}

	name := loc.Name
	if name == "" {
		name = "Unknown"
	}

	return &domain.RiskAssessment{
		Name:                  name,
		Latitude:              loc.Latitude,
		Longitude:             loc.Longitude,
		RiskScore:             pred.RiskScore,
		RiskCategory:          pred.RiskCategory,
		SeverityLevel:         pred.SeverityLevel,
		RiskFactors:           riskFactors(row),
		Recommendations:       recommendations(pred.RiskScore),
		CategoryProbabilities: pred.CategoryProbabilities,
	}, nil
}

// buildRiskRow нормализует входную локацию: полные имена полей
// приоритетнее кратких, отсутствующие значения заменяются типичными
func buildRiskRow(loc domain.RiskLocation) domain.RiskRow {
	timestamp := time.Now().UTC()
	if loc.Timestamp != nil {
		if parsed, err := time.Parse(time.RFC3339, *loc.Timestamp); err == nil {
			timestamp = parsed
		}
	}

	return domain.RiskRow{
		Timestamp:       timestamp,
		Temperature:     utils.FirstFloat(defaultTemperatureC, loc.Temperature, loc.Temp),
		RainfallMm:      utils.FirstFloat(defaultRainfallMm, loc.RainfallMm, loc.Rain),
		WindSpeed:       utils.FirstFloat(defaultWindSpeed, loc.WindSpeed, loc.Wind),
		Humidity:        utils.FloatOrDefault(loc.Humidity, defaultHumidity),
		VisibilityKm:    utils.FloatOrDefault(loc.VisibilityKm, defaultVisibilityKm),
		CongestionLevel: utils.FirstFloat(defaultCongestionLevel, loc.TrafficCongestionLevel, loc.Congestion),
		AverageSpeed:    utils.FirstFloat(defaultAverageSpeed, loc.AverageSpeed, loc.Speed),
		TrafficVolume:   utils.FirstFloat(defaultTrafficVolume, loc.TrafficVolume, loc.Volume),
		RecentAccidents: utils.FirstFloat(defaultAccidents, loc.NumRecentAccidents, loc.Accidents),
		RecentIncidents: utils.FirstFloat(defaultIncidents, loc.NumRecentIncidents, loc.Events),
	}
}

// riskFactors перечисляет явные факторы риска по пороговым условиям
func riskFactors(row domain.RiskRow) []string {
	factors := []string{}
	if row.RainfallMm > 50 {
		factors = append(factors, "Heavy rainfall (possible flooding)")
	}
	if row.CongestionLevel >= 8 {
		factors = append(factors, "Severe traffic congestion")
	}
	if row.RecentAccidents >= 3 {
		factors = append(factors, "Multiple recent accidents nearby")
	}
	if row.RecentIncidents >= 3 {
		factors = append(factors, "Multiple recent incidents reported")
	}
	return factors
}

// recommendations подбирает рекомендацию по уровню риска
func recommendations(score float64) []string {
	switch {
	case score >= 0.6:
		return []string{"Avoid this area and choose an alternative route."}
	case score >= 0.3:
		return []string{"Exercise caution and monitor conditions."}
	default:
		return []string{"Area appears safe for travel."}
	}
}
