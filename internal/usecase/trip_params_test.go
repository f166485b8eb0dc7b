package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itinerary-microservice/internal/config"
	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/usecase/dto"
)

func testPlannerConfig() config.PlannerConfig {
	return config.PlannerConfig{
		DefaultBudgetLKR:       150000.0,
		DefaultAvailableDays:   3,
		DefaultDistancePrefKm:  80.0,
		DefaultMaxHotels:       5,
		TransportCostPerKmLKR:  120.0,
		DefaultAttractionsCost: 2500.0,
	}
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func TestResolveTripParams_ModePresets(t *testing.T) {
	planner := testPlannerConfig()

	t.Run("defaults to normal mode", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{}, nil, 0, planner)

		assert.Equal(t, domain.TripModeNormal, p.TripMode)
		assert.Equal(t, 8.5, p.DayHours)
		assert.Equal(t, 3, p.MaxPerDay)
		assert.Equal(t, 0.30, p.BufferPerAttractionHours)
		assert.Equal(t, 1.25, p.FixedDailyBufferHours)
	})

	t.Run("unknown mode falls back to normal", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{TripMode: sptr("turbo")}, nil, 0, planner)
		assert.Equal(t, domain.TripModeNormal, p.TripMode)
	})

	t.Run("relaxed preset", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{TripMode: sptr("relaxed")}, nil, 0, planner)

		assert.Equal(t, 7.5, p.DayHours)
		assert.Equal(t, 2, p.MaxPerDay)
		assert.Equal(t, 0.35, p.BufferPerAttractionHours)
		assert.Equal(t, 1.5, p.FixedDailyBufferHours)
	})

	t.Run("packed preset with day hours clamp", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{
			TripMode: sptr("PACKED "),
			DayHours: fptr(20.0),
		}, nil, 0, planner)

		assert.Equal(t, domain.TripModePacked, p.TripMode)
		assert.Equal(t, 12.0, p.DayHours)
		assert.Equal(t, 4, p.MaxPerDay)
	})

	t.Run("relaxed day hours clamped to mode range", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{
			TripMode: sptr("relaxed"),
			DayHours: fptr(11.0),
		}, nil, 0, planner)

		assert.Equal(t, 10.0, p.DayHours)
	})
}

func TestResolveTripParams_AttractionCap(t *testing.T) {
	planner := testPlannerConfig()

	p := resolveTripParams(dto.TripPreferences{
		AvailableDays:  iptr(2),
		MaxAttractions: iptr(50),
	}, nil, 0, planner)

	// capped by max_attractions_per_day * available_days
	assert.Equal(t, 6, p.MaxAttractions)

	p = resolveTripParams(dto.TripPreferences{
		AvailableDays:  iptr(4),
		MaxAttractions: iptr(5),
	}, nil, 0, planner)
	assert.Equal(t, 5, p.MaxAttractions)
}

func TestResolveTripParams_BudgetSplit(t *testing.T) {
	planner := testPlannerConfig()

	t.Run("default split", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{
			Budget:        fptr(100000.0),
			AvailableDays: iptr(4),
		}, nil, 0, planner)

		assert.Equal(t, 0.45, p.Split.LodgingRatio)
		assert.Equal(t, 0.15, p.Split.TransportRatio)
		assert.InDelta(t, 0.40, p.Split.ActivityRatio, 1e-9)
		assert.InDelta(t, 45000.0, p.Split.LodgingBudgetLKR, 1e-6)
		assert.InDelta(t, 11250.0, p.Split.NightlyMaxLKR, 1e-6)
	})

	t.Run("activity ratio never below floor", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{
			Budget:               fptr(100000.0),
			LodgingBudgetRatio:   fptr(0.8),
			TransportBudgetRatio: fptr(0.35),
		}, nil, 0, planner)

		assert.InDelta(t, 0.05, p.Split.ActivityRatio, 1e-9)
	})

	t.Run("ratios clamped", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{
			Budget:               fptr(100000.0),
			LodgingBudgetRatio:   fptr(0.95),
			TransportBudgetRatio: fptr(0.01),
		}, nil, 0, planner)

		assert.Equal(t, 0.8, p.Split.LodgingRatio)
		assert.Equal(t, 0.05, p.Split.TransportRatio)
	})

	t.Run("missing budget uses model prediction", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{}, nil, 84000.0, planner)
		assert.Equal(t, 84000.0, p.TotalBudget)
	})
}

func TestEstimateSpeedKmph(t *testing.T) {
	t.Run("no context uses base speed", func(t *testing.T) {
		assert.Equal(t, 45.0, estimateSpeedKmph(nil))
	})

	t.Run("congestion slows travel", func(t *testing.T) {
		ctx := &domain.TripContext{Traffic: &domain.TrafficContext{CongestionLevel: fptr(8.0)}}
		assert.InDelta(t, 31.5, estimateSpeedKmph(ctx), 1e-9)
	})

	t.Run("slowdown is floored", func(t *testing.T) {
		ctx := &domain.TripContext{Traffic: &domain.TrafficContext{CongestionLevel: fptr(20.0)}}
		assert.InDelta(t, 45.0*0.55, estimateSpeedKmph(ctx), 1e-9)
	})
}

func TestResolveTripParams_TransportAndAttractionCostClamps(t *testing.T) {
	planner := testPlannerConfig()

	p := resolveTripParams(dto.TripPreferences{
		TransportCostPerKmLKR:    fptr(1000.0),
		DefaultAttractionCostLKR: fptr(100.0),
	}, nil, 0, planner)

	assert.Equal(t, 400.0, p.TransportCostPerKmLKR)
	assert.Equal(t, 500.0, p.DefaultAttractionCostLKR)
}

func TestResolveTripParams_HotelDistanceClamps(t *testing.T) {
	planner := testPlannerConfig()

	t.Run("defaults", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{}, nil, 0, planner)

		assert.Equal(t, 15.0, p.MaxHotelDistanceKm)
		assert.Equal(t, 15.0, p.MaxHotelDistancePerDayKm)
	})

	t.Run("per-day cap is tighter than itinerary-wide", func(t *testing.T) {
		p := resolveTripParams(dto.TripPreferences{
			MaxHotelDistanceKm: fptr(55.0),
		}, nil, 0, planner)

		assert.Equal(t, 55.0, p.MaxHotelDistanceKm)
		assert.Equal(t, 40.0, p.MaxHotelDistancePerDayKm)
	})
}

func TestTripTimeBudgetHours(t *testing.T) {
	p := TripParams{AvailableDays: 3, DayHours: 8.5, FixedDailyBufferHours: 1.25}
	assert.InDelta(t, 21.75, p.TripTimeBudgetHours(), 1e-9)
}
