package usecase

import (
	"math"

	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/pkg/utils"
)

// selectionResult - результат жадного отбора по бюджетам
type selectionResult struct {
	Selected []domain.SelectedAttraction

	TravelKm        float64
	TravelHours     float64
	VisitHours      float64
	BufferHours     float64
	ActivityCostLKR float64
}

// selectUnderBudget жадно отбирает достопримечательности в порядке маршрута,
// соблюдая транспортный, активный и временной бюджеты с допусками.
// Если ни одна не прошла, первая из маршрута добавляется принудительно.
func selectUnderBudget(routed []domain.ScoredAttraction, p TripParams) selectionResult {
	var res selectionResult
	tripTimeBudget := p.TripTimeBudgetHours()

	for _, row := range routed {
		if len(res.Selected) >= p.MaxAttractions {
			break
		}

		visitH := utils.FloatOrDefault(row.AvgDurationHours, 3.0)
		travelKm := row.TravelFromPrevKm
		travelH := travelKm / math.Max(p.SpeedKmph, 1e-6)
		itemBuffer := p.BufferPerAttractionHours

		estCost := utils.FloatOrDefault(row.AvgCost, 0.0)
		if estCost <= 0 {
			estCost = p.DefaultAttractionCostLKR
		}

		nextTravelKm := res.TravelKm + travelKm
		nextTravelCost := nextTravelKm * p.TransportCostPerKmLKR
		nextTime := (res.VisitHours + res.TravelHours + res.BufferHours) + (visitH + travelH + itemBuffer)
		nextActivityCost := res.ActivityCostLKR + estCost

		if nextTravelCost > p.Split.TransportBudgetLKR*1.10 {
			continue
		}
		if nextActivityCost > p.Split.ActivityBudgetLKR*1.15 {
			continue
		}
		if len(res.Selected) > 0 && nextTime > tripTimeBudget*1.05 {
			continue
		}

		res.Selected = append(res.Selected, domain.SelectedAttraction{
			ScoredAttraction:          row,
			EstimatedTravelTimeHours:  travelH,
			EstimatedVisitTimeHours:   visitH,
			EstimatedBufferTimeHours:  itemBuffer,
			EstimatedItemTimeHours:    visitH + travelH + itemBuffer,
			EstimatedTransportCostLKR: travelKm * p.TransportCostPerKmLKR,
		})
		res.TravelKm = nextTravelKm
		res.TravelHours += travelH
		res.VisitHours += visitH
		res.BufferHours += itemBuffer
		res.ActivityCostLKR = nextActivityCost
	}

	// Ensure at least one attraction when the pool is non-empty
	if len(res.Selected) == 0 && len(routed) > 0 {
		first := routed[0]
		visitH := utils.FloatOrDefault(first.AvgDurationHours, 3.0)
		first.TravelFromPrevKm = 0.0
		res.Selected = append(res.Selected, domain.SelectedAttraction{
			ScoredAttraction:          first,
			EstimatedTravelTimeHours:  0.0,
			EstimatedVisitTimeHours:   visitH,
			EstimatedBufferTimeHours:  p.BufferPerAttractionHours,
			EstimatedItemTimeHours:    visitH + p.BufferPerAttractionHours,
			EstimatedTransportCostLKR: 0.0,
		})
		res.TravelKm = 0.0
		res.TravelHours = 0.0
		res.VisitHours = visitH
		res.BufferHours = p.BufferPerAttractionHours
		res.ActivityCostLKR = utils.FloatOrDefault(first.AvgCost, 2500.0)
	}

	return res
}
