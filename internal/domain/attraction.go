package domain

// Attraction представляет достопримечательность из каталога.
// Опциональные числовые поля - указатели: nil означает "значение неизвестно",
// подстановка значений по умолчанию выполняется на уровне usecase.
type Attraction struct {
	ID               int64    `json:"id" db:"id"`
	Name             string   `json:"name" db:"name"`
	Category         string   `json:"category" db:"category"`
	Latitude         *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude        *float64 `json:"longitude,omitempty" db:"longitude"`
	AvgCost          *float64 `json:"avg_cost,omitempty" db:"avg_cost"`
	AvgDurationHours *float64 `json:"avg_duration_hours,omitempty" db:"avg_duration_hours"`
	Outdoor          bool     `json:"outdoor" db:"outdoor"`
	PopularityScore  *float64 `json:"popularity_score,omitempty" db:"popularity_score"`
	SafetyRating     *float64 `json:"safety_rating,omitempty" db:"safety_rating"`
	Accessibility    *float64 `json:"accessibility,omitempty" db:"accessibility"`
	TouristDensity   *float64 `json:"tourist_density,omitempty" db:"tourist_density"`
	BestSeason       string   `json:"best_season" db:"best_season"`
}

// Location возвращает координаты достопримечательности
func (a *Attraction) Location() GeoPoint {
	return GeoPoint{Lat: a.Latitude, Lon: a.Longitude}
}

// ScoredAttraction - достопримечательность с производными полями запроса
type ScoredAttraction struct {
	Attraction

	// DistanceKm - расстояние от стартовой точки; nil = неизвестно
	DistanceKm *float64 `json:"distance_km,omitempty"`

	Score            float64 `json:"score"`
	ScoreContextual  float64 `json:"score_contextual"`
	RankScore        float64 `json:"rank_score"`
	FinalScore       float64 `json:"final_score"`
	TravelFromPrevKm float64 `json:"travel_from_prev_km"`
}

// SelectedAttraction - выбранная достопримечательность с оценками времени и стоимости
type SelectedAttraction struct {
	ScoredAttraction

	EstimatedTravelTimeHours  float64 `json:"estimated_travel_time_hours"`
	EstimatedVisitTimeHours   float64 `json:"estimated_visit_time_hours"`
	EstimatedBufferTimeHours  float64 `json:"estimated_buffer_time_hours"`
	EstimatedItemTimeHours    float64 `json:"estimated_item_time_hours"`
	EstimatedTransportCostLKR float64 `json:"estimated_transport_cost_lkr"`
}
