package usecase

import (
	"strings"

	"github.com/itinerary-microservice/internal/config"
	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/pkg/utils"
	"github.com/itinerary-microservice/internal/usecase/dto"
)

// tripModePreset - пресет режима поездки
type tripModePreset struct {
	dayHours            float64
	dayHoursMin         float64
	dayHoursMax         float64
	maxPerDay           int
	bufferPerAttraction float64
	fixedDailyBuffer    float64
}

var tripModePresets = map[string]tripModePreset{
	domain.TripModeRelaxed: {
		dayHours:            7.5,
		dayHoursMin:         6.0,
		dayHoursMax:         10.0,
		maxPerDay:           2,
		bufferPerAttraction: 0.35,
		fixedDailyBuffer:    1.5,
	},
	domain.TripModeNormal: {
		dayHours:            8.5,
		dayHoursMin:         6.0,
		dayHoursMax:         12.0,
		maxPerDay:           3,
		bufferPerAttraction: 0.30,
		fixedDailyBuffer:    1.25,
	},
	domain.TripModePacked: {
		dayHours:            9.5,
		dayHoursMin:         7.0,
		dayHoursMax:         12.0,
		maxPerDay:           4,
		bufferPerAttraction: 0.25,
		fixedDailyBuffer:    1.0,
	},
}

// TripParams - разрешённые параметры построения маршрута:
// все пользовательские значения приведены к безопасным диапазонам,
// бюджет разбит по статьям
type TripParams struct {
	TripMode      string
	AvailableDays int

	DayHours                 float64
	MaxPerDay                int
	MaxAttractions           int
	BufferPerAttractionHours float64
	FixedDailyBufferHours    float64

	MinScore float64

	TotalBudget float64
	Split       domain.BudgetSplit

	DistancePreferenceKm float64
	ClusterRadiusKm      float64

	// Itinerary-wide and per-day hotel search carry separate distance caps
	MaxHotelDistanceKm       float64
	MaxHotelDistancePerDayKm float64
	MaxHotels                int

	SpeedKmph                float64
	TransportCostPerKmLKR    float64
	DefaultAttractionCostLKR float64
}

// resolveTripMode нормализует режим поездки; нераспознанное значение - normal
func resolveTripMode(mode *string) string {
	if mode == nil {
		return domain.TripModeNormal
	}
	m := strings.ToLower(strings.TrimSpace(*mode))
	if _, ok := tripModePresets[m]; !ok {
		return domain.TripModeNormal
	}
	return m
}

// estimateSpeedKmph оценивает среднюю скорость перемещения.
// Загруженность дорог снижает скорость; значение удерживается в безопасном диапазоне.
func estimateSpeedKmph(tripCtx *domain.TripContext) float64 {
	congestion := 3.0
	if tripCtx != nil && tripCtx.Traffic != nil {
		congestion = utils.FloatOrDefault(tripCtx.Traffic.CongestionLevel, 3.0)
	}

	base := 45.0
	factor := 1.0 - 0.06*max(0.0, congestion-3.0)
	if factor < 0.55 {
		factor = 0.55
	}
	return utils.Clip(base*factor, 20.0, 60.0)
}

// resolveTripParams приводит пользовательские предпочтения к рабочим параметрам
func resolveTripParams(
	prefs dto.TripPreferences,
	tripCtx *domain.TripContext,
	predictedBudget float64,
	planner config.PlannerConfig,
) TripParams {
	availableDays := utils.IntOrDefault(prefs.AvailableDays, planner.DefaultAvailableDays)
	if availableDays < 1 {
		availableDays = 1
	}

	tripMode := resolveTripMode(prefs.TripMode)
	preset := tripModePresets[tripMode]

	dayHours := utils.Clip(
		utils.FloatOrDefault(prefs.DayHours, preset.dayHours),
		preset.dayHoursMin,
		preset.dayHoursMax,
	)

	maxPerDay := utils.IntOrDefault(prefs.MaxAttractionsPerDay, preset.maxPerDay)
	bufferPerAttraction := utils.FloatOrDefault(prefs.BufferPerAttractionHours, preset.bufferPerAttraction)
	fixedDailyBuffer := utils.FloatOrDefault(prefs.FixedDailyBufferHours, preset.fixedDailyBuffer)

	maxTotalByDays := maxPerDay * availableDays
	maxAttractions := utils.IntOrDefault(prefs.MaxAttractions, maxTotalByDays)
	if maxAttractions > maxTotalByDays {
		maxAttractions = maxTotalByDays
	}

	minScore := utils.Clip(utils.FloatOrDefault(prefs.MinAttractionScore, 0.2), 0.0, 0.95)

	totalBudget := utils.FloatOrDefault(prefs.Budget, predictedBudget)
	if totalBudget <= 0 {
		totalBudget = planner.DefaultBudgetLKR
	}

	lodgingRatio := utils.Clip(utils.FloatOrDefault(prefs.LodgingBudgetRatio, 0.45), 0.2, 0.8)
	transportRatio := utils.Clip(utils.FloatOrDefault(prefs.TransportBudgetRatio, 0.15), 0.05, 0.35)
	activityRatio := 1.0 - (lodgingRatio + transportRatio)
	if activityRatio < 0.05 {
		activityRatio = 0.05
	}

	lodgingBudget := totalBudget * lodgingRatio
	transportBudget := totalBudget * transportRatio
	activityBudget := totalBudget * activityRatio
	nightlyMax := lodgingBudget / float64(availableDays)

	distPref := utils.FloatOrDefault(prefs.DistancePreference, planner.DefaultDistancePrefKm)

	clusterRadius := utils.Clip(
		utils.FirstFloat(planner.DefaultDistancePrefKm, prefs.ClusterRadiusKm, prefs.DistancePreference),
		20.0, 220.0,
	)

	maxHotelDistance := utils.Clip(utils.FloatOrDefault(prefs.MaxHotelDistanceKm, 15.0), 5.0, 60.0)
	maxHotelDistancePerDay := utils.Clip(utils.FloatOrDefault(prefs.MaxHotelDistanceKm, 15.0), 5.0, 40.0)

	maxHotels := utils.IntOrDefault(prefs.MaxHotels, planner.DefaultMaxHotels)
	if maxHotels < 1 {
		maxHotels = 1
	}

	return TripParams{
		TripMode:      tripMode,
		AvailableDays: availableDays,

		DayHours:                 dayHours,
		MaxPerDay:                maxPerDay,
		MaxAttractions:           maxAttractions,
		BufferPerAttractionHours: bufferPerAttraction,
		FixedDailyBufferHours:    fixedDailyBuffer,

		MinScore: minScore,

		TotalBudget: totalBudget,
		Split: domain.BudgetSplit{
			LodgingRatio:       lodgingRatio,
			TransportRatio:     transportRatio,
			ActivityRatio:      activityRatio,
			LodgingBudgetLKR:   lodgingBudget,
			TransportBudgetLKR: transportBudget,
			ActivityBudgetLKR:  activityBudget,
			NightlyMaxLKR:      nightlyMax,
		},

		DistancePreferenceKm:     distPref,
		ClusterRadiusKm:          clusterRadius,
		MaxHotelDistanceKm:       maxHotelDistance,
		MaxHotelDistancePerDayKm: maxHotelDistancePerDay,
		MaxHotels:                maxHotels,

		SpeedKmph: estimateSpeedKmph(tripCtx),
		TransportCostPerKmLKR: utils.Clip(
			utils.FloatOrDefault(prefs.TransportCostPerKmLKR, planner.TransportCostPerKmLKR),
			50.0, 400.0,
		),
		DefaultAttractionCostLKR: utils.Clip(
			utils.FloatOrDefault(prefs.DefaultAttractionCostLKR, planner.DefaultAttractionsCost),
			500.0, 25000.0,
		),
	}
}

// TripTimeBudgetHours - суммарное доступное время поездки без фиксированных буферов
func (p TripParams) TripTimeBudgetHours() float64 {
	perDay := p.DayHours - p.FixedDailyBufferHours
	if perDay < 0 {
		perDay = 0
	}
	return float64(p.AvailableDays) * perDay
}
