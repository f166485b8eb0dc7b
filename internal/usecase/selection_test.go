package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinerary-microservice/internal/domain"
)

func selectionParams() TripParams {
	return TripParams{
		TripMode:                 domain.TripModeNormal,
		AvailableDays:            3,
		DayHours:                 8.5,
		MaxPerDay:                3,
		MaxAttractions:           9,
		BufferPerAttractionHours: 0.3,
		FixedDailyBufferHours:    1.25,
		Split: domain.BudgetSplit{
			TransportBudgetLKR: 20000.0,
			ActivityBudgetLKR:  40000.0,
		},
		SpeedKmph:                45.0,
		TransportCostPerKmLKR:    100.0,
		DefaultAttractionCostLKR: 2500.0,
	}
}

func routedItem(name string, travelKm, visitH, cost float64) domain.ScoredAttraction {
	it := domain.ScoredAttraction{
		Attraction: domain.Attraction{
			Name:             name,
			AvgDurationHours: fptr(visitH),
		},
		TravelFromPrevKm: travelKm,
	}
	if cost > 0 {
		it.AvgCost = fptr(cost)
	}
	return it
}

func TestSelectUnderBudget(t *testing.T) {
	t.Run("admits items within all budgets", func(t *testing.T) {
		routed := []domain.ScoredAttraction{
			routedItem("a", 0, 2.0, 1500),
			routedItem("b", 10, 2.5, 2000),
			routedItem("c", 15, 1.5, 1000),
		}

		res := selectUnderBudget(routed, selectionParams())

		require.Len(t, res.Selected, 3)
		assert.InDelta(t, 25.0, res.TravelKm, 1e-9)
		assert.InDelta(t, 6.0, res.VisitHours, 1e-9)
		assert.InDelta(t, 0.9, res.BufferHours, 1e-9)
		assert.InDelta(t, 4500.0, res.ActivityCostLKR, 1e-9)
	})

	t.Run("stops at max attractions", func(t *testing.T) {
		p := selectionParams()
		p.MaxAttractions = 2

		routed := []domain.ScoredAttraction{
			routedItem("a", 0, 1.0, 1000),
			routedItem("b", 5, 1.0, 1000),
			routedItem("c", 5, 1.0, 1000),
		}

		res := selectUnderBudget(routed, p)
		assert.Len(t, res.Selected, 2)
	})

	t.Run("skips items over transport budget but continues scanning", func(t *testing.T) {
		p := selectionParams()
		p.Split.TransportBudgetLKR = 1000.0 // tolerance allows 1100 LKR => 11 km

		routed := []domain.ScoredAttraction{
			routedItem("a", 0, 1.0, 1000),
			routedItem("far", 500, 1.0, 1000),
			routedItem("b", 5, 1.0, 1000),
		}

		res := selectUnderBudget(routed, p)

		require.Len(t, res.Selected, 2)
		assert.Equal(t, "a", res.Selected[0].Name)
		assert.Equal(t, "b", res.Selected[1].Name)
	})

	t.Run("skips items over activity budget", func(t *testing.T) {
		p := selectionParams()
		p.Split.ActivityBudgetLKR = 3000.0

		routed := []domain.ScoredAttraction{
			routedItem("a", 0, 1.0, 2000),
			routedItem("pricey", 1, 1.0, 5000),
			routedItem("b", 1, 1.0, 1000),
		}

		res := selectUnderBudget(routed, p)

		require.Len(t, res.Selected, 2)
		assert.Equal(t, "a", res.Selected[0].Name)
		assert.Equal(t, "b", res.Selected[1].Name)
	})

	t.Run("time budget ignored until one item admitted", func(t *testing.T) {
		p := selectionParams()
		p.AvailableDays = 1
		p.DayHours = 6.0
		p.FixedDailyBufferHours = 1.0 // trip time budget = 5.0h

		routed := []domain.ScoredAttraction{
			routedItem("marathon", 0, 12.0, 1000),
			routedItem("short", 1, 1.0, 1000),
		}

		res := selectUnderBudget(routed, p)

		require.Len(t, res.Selected, 1)
		assert.Equal(t, "marathon", res.Selected[0].Name)
	})

	t.Run("missing cost replaced by default", func(t *testing.T) {
		routed := []domain.ScoredAttraction{
			routedItem("unpriced", 0, 1.0, 0),
		}

		res := selectUnderBudget(routed, selectionParams())

		require.Len(t, res.Selected, 1)
		assert.InDelta(t, 2500.0, res.ActivityCostLKR, 1e-9)
	})

	t.Run("force admits top item when budgets reject everything", func(t *testing.T) {
		p := selectionParams()
		p.Split.TransportBudgetLKR = 0.0

		routed := []domain.ScoredAttraction{
			routedItem("top", 100, 2.0, 1500),
			routedItem("next", 100, 2.0, 1500),
		}

		res := selectUnderBudget(routed, p)

		require.Len(t, res.Selected, 1)
		assert.Equal(t, "top", res.Selected[0].Name)
		assert.Equal(t, 0.0, res.Selected[0].EstimatedTravelTimeHours)
		assert.Equal(t, 0.0, res.Selected[0].EstimatedTransportCostLKR)
		assert.Equal(t, 0.0, res.TravelKm)
		assert.InDelta(t, 2.0, res.VisitHours, 1e-9)
	})

	t.Run("empty pool yields empty selection", func(t *testing.T) {
		res := selectUnderBudget(nil, selectionParams())
		assert.Empty(t, res.Selected)
	})

	t.Run("per item breakdown recorded", func(t *testing.T) {
		routed := []domain.ScoredAttraction{
			routedItem("a", 0, 2.0, 1500),
			routedItem("b", 45, 1.0, 1000),
		}

		res := selectUnderBudget(routed, selectionParams())

		require.Len(t, res.Selected, 2)
		b := res.Selected[1]
		assert.InDelta(t, 1.0, b.EstimatedTravelTimeHours, 1e-9)
		assert.InDelta(t, 1.0, b.EstimatedVisitTimeHours, 1e-9)
		assert.InDelta(t, 0.3, b.EstimatedBufferTimeHours, 1e-9)
		assert.InDelta(t, 2.3, b.EstimatedItemTimeHours, 1e-9)
		assert.InDelta(t, 4500.0, b.EstimatedTransportCostLKR, 1e-9)
	})
}
