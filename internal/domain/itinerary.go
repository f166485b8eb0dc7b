package domain

// DayPlan - план одного дня поездки.
// Items сохраняют порядок маршрута; после раскладки по дням
// список изменяется только привязкой отеля.
type DayPlan struct {
	Day                          int                  `json:"day"`
	Items                        []SelectedAttraction `json:"items"`
	TimeUsedHours                float64              `json:"time_used_hours"`
	VisitHours                   float64              `json:"visit_hours"`
	TravelHours                  float64              `json:"travel_hours"`
	BufferHours                  float64              `json:"buffer_hours"`
	TimeUsedHoursWithFixedBuffer float64              `json:"time_used_hours_with_fixed_buffer"`
	RecommendedHotel             *ScoredHotel         `json:"recommended_hotel"`
	Note                         string               `json:"note,omitempty"`
}

// BudgetSplit - разбивка общего бюджета по статьям расходов
type BudgetSplit struct {
	LodgingRatio       float64 `json:"lodging_ratio"`
	TransportRatio     float64 `json:"transport_ratio"`
	ActivityRatio      float64 `json:"activity_ratio"`
	LodgingBudgetLKR   float64 `json:"lodging_budget_lkr"`
	TransportBudgetLKR float64 `json:"transport_budget_lkr"`
	ActivityBudgetLKR  float64 `json:"activity_budget_lkr"`
	NightlyMaxLKR      float64 `json:"nightly_max_lkr"`
}

// TripConstraints - параметры, фактически использованные при построении маршрута
type TripConstraints struct {
	AvailableDays            int         `json:"available_days"`
	DayHours                 float64     `json:"day_hours"`
	MaxAttractionsPerDay     int         `json:"max_attractions_per_day"`
	MaxAttractionsTotal      int         `json:"max_attractions_total"`
	ClusterRadiusKm          float64     `json:"cluster_radius_km"`
	SpeedKmphUsed            float64     `json:"speed_kmph_used"`
	BufferPerAttractionHours float64     `json:"buffer_per_attraction_hours"`
	FixedDailyBufferHours    float64     `json:"fixed_daily_buffer_hours"`
	BudgetTotalLKR           float64     `json:"budget_total_lkr"`
	BudgetSplit              BudgetSplit `json:"budget_split"`
}

// TravelSummary - сводка по перемещениям
type TravelSummary struct {
	TotalTravelKm             float64 `json:"total_travel_km"`
	TotalTravelTimeHours      float64 `json:"total_travel_time_hours"`
	EstimatedTransportCostLKR float64 `json:"estimated_transport_cost_lkr"`
}

// ActivitySummary - сводка по посещениям
type ActivitySummary struct {
	EstimatedActivityCostLKR              float64 `json:"estimated_activity_cost_lkr"`
	EstimatedVisitHours                   float64 `json:"estimated_visit_hours"`
	EstimatedBufferHours                  float64 `json:"estimated_buffer_hours"`
	EstimatedTotalTimeCoreHours           float64 `json:"estimated_total_time_core_hours"`
	EstimatedTotalTimeWithFixedBuffersHrs float64 `json:"estimated_total_time_with_fixed_buffers_hours"`
}

// Itinerary - полностью собранный результат построения маршрута
type Itinerary struct {
	// Поля совместимости с прежним форматом ответа
	EstimatedTotalTimeHours float64              `json:"estimated_total_time_hours"`
	EstimatedTotalBudget    float64              `json:"estimated_total_budget"`
	SelectedAttractions     []SelectedAttraction `json:"selected_attractions"`
	RecommendedHotels       []ScoredHotel        `json:"recommended_hotels"`

	// Расширенные диагностические поля
	TripMode                    string          `json:"trip_mode"`
	FusionScoreConstantDetected bool            `json:"fusion_score_constant_detected"`
	ModelPredictedTimeHours     float64         `json:"model_predicted_time_hours"`
	ModelPredictedBudgetLKR     float64         `json:"model_predicted_budget_lkr"`
	Constraints                 TripConstraints `json:"constraints"`
	TravelSummary               TravelSummary   `json:"travel_summary"`
	ActivitySummary             ActivitySummary `json:"activity_summary"`
	ItineraryDays               []DayPlan       `json:"itinerary_days"`
	ItineraryCenter             GeoPoint        `json:"itinerary_center"`
}
