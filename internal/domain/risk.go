package domain

import "time"

// Risk categories
const (
	RiskCategoryLow    = "LOW"
	RiskCategoryMedium = "MEDIUM"
	RiskCategoryHigh   = "HIGH"
)

// RiskLocation - входные условия для оценки риска локации.
// Поддерживаются оба стиля именования полей (полный и краткий);
// краткие поля используются, если полные отсутствуют.
type RiskLocation struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timestamp *string  `json:"timestamp,omitempty"`

	Temperature *float64 `json:"temperature,omitempty"`
	Temp        *float64 `json:"temp,omitempty"`

	RainfallMm *float64 `json:"rainfall_mm,omitempty"`
	Rain       *float64 `json:"rain,omitempty"`

	WindSpeed *float64 `json:"wind_speed,omitempty"`
	Wind      *float64 `json:"wind,omitempty"`

	Humidity     *float64 `json:"humidity,omitempty"`
	VisibilityKm *float64 `json:"visibility_km,omitempty"`

	TrafficCongestionLevel *float64 `json:"traffic_congestion_level,omitempty"`
	Congestion             *float64 `json:"congestion,omitempty"`

	AverageSpeed *float64 `json:"average_speed,omitempty"`
	Speed        *float64 `json:"speed,omitempty"`

	TrafficVolume *float64 `json:"traffic_volume,omitempty"`
	Volume        *float64 `json:"volume,omitempty"`

	NumRecentAccidents *float64 `json:"num_recent_accidents,omitempty"`
	Accidents          *float64 `json:"accidents,omitempty"`

	NumRecentIncidents *float64 `json:"num_recent_incidents,omitempty"`
	Events             *float64 `json:"events,omitempty"`
}

// RiskRow - нормализованная строка условий, передаваемая в модель
type RiskRow struct {
	Timestamp       time.Time `json:"timestamp"`
	Temperature     float64   `json:"temperature"`
	RainfallMm      float64   `json:"rainfall_mm"`
	WindSpeed       float64   `json:"wind_speed"`
	Humidity        float64   `json:"humidity"`
	VisibilityKm    float64   `json:"visibility_km"`
	CongestionLevel float64   `json:"traffic_congestion_level"`
	AverageSpeed    float64   `json:"average_speed"`
	TrafficVolume   float64   `json:"traffic_volume"`
	RecentAccidents float64   `json:"num_recent_accidents"`
	RecentIncidents float64   `json:"num_recent_incidents"`
}

// RiskPrediction - выход ансамбля моделей риска
type RiskPrediction struct {
	RiskScore             float64            `json:"risk_score"`
	RiskCategory          string             `json:"risk_category"`
	SeverityLevel         float64            `json:"severity_level"`
	CategoryProbabilities map[string]float64 `json:"category_probabilities"`
}

// RiskAssessment - итоговая оценка риска локации с факторами и рекомендациями
type RiskAssessment struct {
	Name                  string             `json:"name"`
	Latitude              *float64           `json:"latitude"`
	Longitude             *float64           `json:"longitude"`
	RiskScore             float64            `json:"risk_score"`
	RiskCategory          string             `json:"risk_category"`
	SeverityLevel         float64            `json:"severity_level"`
	RiskFactors           []string           `json:"risk_factors"`
	Recommendations       []string           `json:"recommendations"`
	CategoryProbabilities map[string]float64 `json:"category_probabilities"`
}
