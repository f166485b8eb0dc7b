package domain

// Trip modes
const (
	TripModeRelaxed = "relaxed"
	TripModeNormal  = "normal"
	TripModePacked  = "packed"
)

// TravelerProfile - поля пользователя, передаваемые в модель предсказания
type TravelerProfile struct {
	Budget             float64  `json:"budget"`
	AvailableDays      int      `json:"available_days"`
	NumTravelers       int      `json:"num_travelers"`
	DistancePreference float64  `json:"distance_preference"`
	ActivityType       string   `json:"activity_type"`
	Season             string   `json:"season"`
	StartLatitude      *float64 `json:"start_latitude,omitempty"`
	StartLongitude     *float64 `json:"start_longitude,omitempty"`
}

// Start возвращает стартовую точку путешествия
func (p *TravelerProfile) Start() GeoPoint {
	return GeoPoint{Lat: p.StartLatitude, Lon: p.StartLongitude}
}

// WeatherContext - погодные условия на момент запроса
type WeatherContext struct {
	RainfallMm  *float64 `json:"rainfall_mm,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// TrafficContext - дорожная обстановка на момент запроса
type TrafficContext struct {
	CongestionLevel *float64 `json:"congestion_level,omitempty"`
}

// TripContext - опциональный контекст запроса (погода, трафик)
type TripContext struct {
	Weather *WeatherContext `json:"weather,omitempty"`
	Traffic *TrafficContext `json:"traffic,omitempty"`
}

// Empty проверяет, что контекст отсутствует полностью
func (c *TripContext) Empty() bool {
	return c == nil || (c.Weather == nil && c.Traffic == nil)
}

// TimeBudgetPrediction - выход модели предсказания времени и бюджета
type TimeBudgetPrediction struct {
	EstimatedTotalTimeHours float64 `json:"estimated_total_time_hours"`
	EstimatedTotalBudget    float64 `json:"estimated_total_budget"`
}
