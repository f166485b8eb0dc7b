package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/itinerary-microservice/internal/config"
	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/domain/repository"
	"github.com/itinerary-microservice/internal/pkg/errors"
	"github.com/itinerary-microservice/internal/pkg/utils"
	"github.com/itinerary-microservice/internal/usecase/dto"
)

// ItineraryUseCase - построение многодневного маршрута поездки
type ItineraryUseCase struct {
	attractionRepo repository.AttractionRepository
	hotelRepo      repository.HotelRepository
	modelRepo      repository.ItineraryModelRepository
	cacheRepo      repository.CacheRepository
	planner        config.PlannerConfig
	cacheTTL       time.Duration
	logger         *zap.Logger
}

func NewItineraryUseCase(
	attractionRepo repository.AttractionRepository,
	hotelRepo repository.HotelRepository,
	modelRepo repository.ItineraryModelRepository,
	cacheRepo repository.CacheRepository,
	planner config.PlannerConfig,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ItineraryUseCase {
	return &ItineraryUseCase{
		attractionRepo: attractionRepo,
		hotelRepo:      hotelRepo,
		modelRepo:      modelRepo,
		cacheRepo:      cacheRepo,
		planner:        planner,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

// Recommend строит маршрут по предпочтениям пользователя.
// Второе возвращаемое значение - признак ответа из кэша.
func (uc *ItineraryUseCase) Recommend(ctx context.Context, req dto.ItineraryRequest) (*domain.Itinerary, bool, error) {
	prefs := req.Preferences()

	// Validate start coordinates if provided
	start := domain.GeoPoint{Lat: prefs.StartLatitude, Lon: prefs.StartLongitude}
	if (prefs.StartLatitude != nil) != (prefs.StartLongitude != nil) {
		return nil, false, errors.ErrInvalidCoordinates
	}
	if start.Valid() && !utils.ValidateCoordinates(*start.Lat, *start.Lon) {
		return nil, false, errors.ErrInvalidCoordinates
	}

	// Try cache
	cacheKey, keyErr := uc.recommendCacheKey(prefs, req.Context)
	if keyErr == nil && uc.cacheRepo != nil {
		if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
			var itinerary domain.Itinerary
			if err := json.Unmarshal(cached, &itinerary); err == nil {
				return &itinerary, true, nil
			}
			uc.logger.Warn("Failed to decode cached itinerary", zap.String("key", cacheKey))
		}
	}

	itinerary, err := uc.buildItinerary(ctx, prefs, req.Context)
	if err != nil {
		return nil, false, err
	}

	if keyErr == nil && uc.cacheRepo != nil {
		if encoded, err := json.Marshal(itinerary); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, encoded, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache itinerary", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return itinerary, false, nil
}

// PredictTimeBudget возвращает оценку времени и бюджета без построения маршрута
func (uc *ItineraryUseCase) PredictTimeBudget(ctx context.Context, req dto.ItineraryRequest) (*domain.TimeBudgetPrediction, error) {
	prefs := req.Preferences()

	start := domain.GeoPoint{Lat: prefs.StartLatitude, Lon: prefs.StartLongitude}
	if start.Valid() && !utils.ValidateCoordinates(*start.Lat, *start.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	tb, err := uc.modelRepo.PredictTimeAndBudget(ctx, uc.buildProfile(prefs))
	if err != nil {
		uc.logger.Error("Failed to predict time and budget", zap.Error(err))
		return nil, errors.ErrModelService
	}
	return tb, nil
}

func (uc *ItineraryUseCase) buildItinerary(ctx context.Context, prefs dto.TripPreferences, tripCtx *domain.TripContext) (*domain.Itinerary, error) {
	profile := uc.buildProfile(prefs)
	start := profile.Start()

	// 1. Base model predictions
	tb, err := uc.modelRepo.PredictTimeAndBudget(ctx, profile)
	if err != nil {
		uc.logger.Error("Failed to predict time and budget", zap.Error(err))
		return nil, errors.ErrModelService
	}

	attractions, err := uc.attractionRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load attractions", zap.Error(err))
		return nil, err
	}
	if len(attractions) == 0 {
		return nil, errors.ErrEmptyAttractionCatalog
	}

	hotels, err := uc.hotelRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load hotels", zap.Error(err))
		return nil, err
	}

	baseScores, err := uc.modelRepo.ScoreAttractions(ctx, profile, attractions)
	if err != nil {
		uc.logger.Error("Failed to score attractions", zap.Error(err))
		return nil, errors.ErrModelService
	}

	scored := make([]domain.ScoredAttraction, len(attractions))
	for i, a := range attractions {
		scored[i] = domain.ScoredAttraction{Attraction: a, Score: baseScores[i]}
		if start.Valid() {
			if loc := a.Location(); loc.Valid() {
				d := utils.HaversineDistance(*start.Lat, *start.Lon, *loc.Lat, *loc.Lon)
				scored[i].DistanceKm = &d
			}
		}
	}

	// 2. Contextual adjustment
	applyContextualScores(scored, tripCtx)

	// 3. Hard distance boundary: unknown distance never survives
	distPref := utils.FloatOrDefault(prefs.DistancePreference, uc.planner.DefaultDistancePrefKm)
	maxAllowedKm := distPref * 1.1
	filtered := scored[:0:0]
	for _, it := range scored {
		if it.DistanceKm != nil && *it.DistanceKm <= maxAllowedKm {
			filtered = append(filtered, it)
		}
	}
	scored = filtered

	// 4. City-lock: stay near the start city when it can fill the trip
	availableDays := utils.IntOrDefault(prefs.AvailableDays, uc.planner.DefaultAvailableDays)
	nearStart := make([]domain.ScoredAttraction, 0, len(scored))
	for _, it := range scored {
		if it.DistanceKm != nil && *it.DistanceKm <= 15.0 {
			nearStart = append(nearStart, it)
		}
	}
	if len(nearStart) >= max(availableDays*2, 4) {
		scored = nearStart
	}

	// 5. Degeneracy guard + rank fusion
	base := make([]float64, len(scored))
	for i, it := range scored {
		base[i] = it.Score
	}
	fusionConstant := isAlmostConstant(base, constantScoreTolerance)

	computeRankScores(scored, prefs)
	computeFinalScores(scored, fusionConstant)
	sortByFinalScoreDesc(scored)

	// 6-7. Trip parameters and budget split
	p := resolveTripParams(prefs, tripCtx, tb.EstimatedTotalBudget, uc.planner)

	// 8. Score threshold with fallback pool
	candidates := make([]domain.ScoredAttraction, 0, len(scored))
	for _, it := range scored {
		if it.FinalScore >= p.MinScore {
			candidates = append(candidates, it)
		}
	}
	if len(candidates) == 0 {
		candidates = topN(scored, max(30, p.MaxAttractions*6))
	}

	// 9. Cluster, route, select, split
	clustered := clusterByRadius(candidates, 0, p.ClusterRadiusKm)
	if len(clustered) < max(6, p.MaxAttractions) {
		clustered = clusterByRadius(candidates, 0, math.Min(300.0, p.ClusterRadiusKm*1.8))
	}

	sortByFinalScoreDesc(clustered)
	pool := topN(clustered, max(40, p.MaxAttractions*6))
	routed := routeNearestNeighbor(pool, start)

	sel := selectUnderBudget(routed, p)
	days := splitIntoDays(sel.Selected, p)

	// 10. Per-day hotel near the last stop of the day
	for d := range days {
		if len(days[d].Items) == 0 {
			days[d].Note = freeDayNote
			continue
		}
		last := days[d].Items[len(days[d].Items)-1]
		loc := last.Location()
		if !loc.Valid() {
			continue
		}
		near := findHotelNearPoint(hotels, *loc.Lat, *loc.Lon, p.Split.NightlyMaxLKR, p.MaxHotelDistancePerDayKm, 1)
		if len(near) > 0 {
			days[d].RecommendedHotel = &near[0]
		}
	}

	// 11. Itinerary center and hotel ladder
	center := itineraryCenter(sel.Selected, start)
	topHotels := recommendHotels(hotels, center, p.Split.NightlyMaxLKR, p.MaxHotelDistanceKm, p.MaxHotels)

	// 12. Assemble response
	timeUsedCore := sel.VisitHours + sel.TravelHours + sel.BufferHours
	timeUsedWithFixed := timeUsedCore + float64(p.AvailableDays)*p.FixedDailyBufferHours

	return &domain.Itinerary{
		EstimatedTotalTimeHours: timeUsedWithFixed,
		EstimatedTotalBudget:    p.TotalBudget,
		SelectedAttractions:     sel.Selected,
		RecommendedHotels:       topHotels,

		TripMode:                    p.TripMode,
		FusionScoreConstantDetected: fusionConstant,
		ModelPredictedTimeHours:     tb.EstimatedTotalTimeHours,
		ModelPredictedBudgetLKR:     tb.EstimatedTotalBudget,

		Constraints: domain.TripConstraints{
			AvailableDays:            p.AvailableDays,
			DayHours:                 p.DayHours,
			MaxAttractionsPerDay:     p.MaxPerDay,
			MaxAttractionsTotal:      p.MaxAttractions,
			ClusterRadiusKm:          p.ClusterRadiusKm,
			SpeedKmphUsed:            p.SpeedKmph,
			BufferPerAttractionHours: p.BufferPerAttractionHours,
			FixedDailyBufferHours:    p.FixedDailyBufferHours,
			BudgetTotalLKR:           p.TotalBudget,
			BudgetSplit:              p.Split,
		},

		TravelSummary: domain.TravelSummary{
			TotalTravelKm:             sel.TravelKm,
			TotalTravelTimeHours:      sel.TravelHours,
			EstimatedTransportCostLKR: sel.TravelKm * p.TransportCostPerKmLKR,
		},

		ActivitySummary: domain.ActivitySummary{
			EstimatedActivityCostLKR:              sel.ActivityCostLKR,
			EstimatedVisitHours:                   sel.VisitHours,
			EstimatedBufferHours:                  sel.BufferHours,
			EstimatedTotalTimeCoreHours:           timeUsedCore,
			EstimatedTotalTimeWithFixedBuffersHrs: timeUsedWithFixed,
		},

		ItineraryDays:   days,
		ItineraryCenter: center,
	}, nil
}

// buildProfile собирает профиль путешественника для модельного сервиса
func (uc *ItineraryUseCase) buildProfile(prefs dto.TripPreferences) domain.TravelerProfile {
	profile := domain.TravelerProfile{
		Budget:             utils.FloatOrDefault(prefs.Budget, uc.planner.DefaultBudgetLKR),
		AvailableDays:      utils.IntOrDefault(prefs.AvailableDays, uc.planner.DefaultAvailableDays),
		NumTravelers:       utils.IntOrDefault(prefs.NumTravelers, 2),
		DistancePreference: utils.FloatOrDefault(prefs.DistancePreference, uc.planner.DefaultDistancePrefKm),
		StartLatitude:      prefs.StartLatitude,
		StartLongitude:     prefs.StartLongitude,
	}
	if prefs.ActivityType != nil {
		profile.ActivityType = *prefs.ActivityType
	}
	if prefs.Season != nil {
		profile.Season = *prefs.Season
	}
	return profile
}

// recommendCacheKey - ключ кэша по каноничному представлению запроса
func (uc *ItineraryUseCase) recommendCacheKey(prefs dto.TripPreferences, tripCtx *domain.TripContext) (string, error) {
	payload, err := json.Marshal(struct {
		Prefs   dto.TripPreferences `json:"prefs"`
		Context *domain.TripContext `json:"context,omitempty"`
	}{Prefs: prefs, Context: tripCtx})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("itinerary:recommend:%x", sha1.Sum(payload)), nil
}

// itineraryCenter - средняя точка выбранных достопримечательностей,
// при отсутствии координат - стартовая точка пользователя
func itineraryCenter(selected []domain.SelectedAttraction, start domain.GeoPoint) domain.GeoPoint {
	var sumLat, sumLon float64
	var n int
	for _, s := range selected {
		if loc := s.Location(); loc.Valid() {
			sumLat += *loc.Lat
			sumLon += *loc.Lon
			n++
		}
	}
	if n == 0 {
		return start
	}
	lat := sumLat / float64(n)
	lon := sumLon / float64(n)
	return domain.GeoPoint{Lat: &lat, Lon: &lon}
}
