package dto

import (
	"github.com/itinerary-microservice/internal/domain"
)

// TripPreferences - пользовательские параметры поездки.
// Все числовые поля опциональны: отсутствующее или некорректное значение
// заменяется значением по умолчанию, запрос не отклоняется.
type TripPreferences struct {
	Budget             *float64 `json:"budget"`
	AvailableDays      *int     `json:"available_days"`
	NumTravelers       *int     `json:"num_travelers"`
	TripMode           *string  `json:"trip_mode"`
	DayHours           *float64 `json:"day_hours"`
	DistancePreference *float64 `json:"distance_preference"`
	ActivityType       *string  `json:"activity_type"`
	Season             *string  `json:"season"`

	StartLatitude  *float64 `json:"start_latitude" validate:"omitempty,gte=-90,lte=90"`
	StartLongitude *float64 `json:"start_longitude" validate:"omitempty,gte=-180,lte=180"`

	MaxAttractions       *int     `json:"max_attractions"`
	MaxAttractionsPerDay *int     `json:"max_attractions_per_day"`
	MinAttractionScore   *float64 `json:"min_attraction_score"`

	LodgingBudgetRatio       *float64 `json:"lodging_budget_ratio"`
	TransportBudgetRatio     *float64 `json:"transport_budget_ratio"`
	TransportCostPerKmLKR    *float64 `json:"transport_cost_per_km_lkr"`
	DefaultAttractionCostLKR *float64 `json:"default_attraction_cost_lkr"`

	BufferPerAttractionHours *float64 `json:"buffer_per_attraction_hours"`
	FixedDailyBufferHours    *float64 `json:"fixed_daily_buffer_hours"`

	ClusterRadiusKm    *float64 `json:"cluster_radius_km"`
	MaxHotelDistanceKm *float64 `json:"max_hotel_distance_km"`
	MaxHotels          *int     `json:"max_hotels"`
}

// ItineraryRequest - запрос построения маршрута.
// Параметры принимаются как во вложенном user_preferences,
// так и плоскими полями на верхнем уровне.
type ItineraryRequest struct {
	TripPreferences

	UserPreferences *TripPreferences    `json:"user_preferences"`
	Context         *domain.TripContext `json:"context"`
}

// Preferences возвращает действующие параметры поездки
func (r *ItineraryRequest) Preferences() TripPreferences {
	if r.UserPreferences != nil {
		return *r.UserPreferences
	}
	return r.TripPreferences
}

// RiskRequest - запрос оценки риска.
// Принимается список locations либо один объект локации.
type RiskRequest struct {
	domain.RiskLocation

	Locations []domain.RiskLocation `json:"locations"`
}

// ResolveLocations возвращает список локаций для оценки
func (r *RiskRequest) ResolveLocations() []domain.RiskLocation {
	if len(r.Locations) > 0 {
		return r.Locations
	}
	return []domain.RiskLocation{r.RiskLocation}
}
