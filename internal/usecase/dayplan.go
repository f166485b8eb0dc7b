package usecase

import (
	"math"

	"github.com/itinerary-microservice/internal/domain"
)

const freeDayNote = "Free day / optional activities nearby"

// splitIntoDays распределяет отобранные точки по дням поездки,
// сохраняя порядок маршрута. День закрывается, когда очередная точка
// вместе с фиксированным буфером не помещается в дневной лимит.
func splitIntoDays(selected []domain.SelectedAttraction, p TripParams) []domain.DayPlan {
	days := p.AvailableDays
	if days < 1 {
		days = 1
	}

	out := make([]domain.DayPlan, days)
	for d := range out {
		out[d] = domain.DayPlan{
			Day:         d + 1,
			Items:       []domain.SelectedAttraction{},
			BufferHours: p.FixedDailyBufferHours,
		}
	}

	dayIdx := 0
	for _, item := range selected {
		visitH := item.EstimatedVisitTimeHours
		travelH := item.TravelFromPrevKm / math.Max(p.SpeedKmph, 1e-6)
		itemTotal := visitH + travelH + p.BufferPerAttractionHours

		if dayIdx < days-1 {
			projected := out[dayIdx].TimeUsedHours + itemTotal + out[dayIdx].BufferHours
			if len(out[dayIdx].Items) > 0 && projected > p.DayHours {
				dayIdx++
			}
		}

		item.EstimatedTravelTimeHours = travelH
		item.EstimatedBufferTimeHours = p.BufferPerAttractionHours
		item.EstimatedItemTimeHours = itemTotal

		out[dayIdx].Items = append(out[dayIdx].Items, item)
		out[dayIdx].TimeUsedHours += itemTotal
		out[dayIdx].VisitHours += visitH
		out[dayIdx].TravelHours += travelH
	}

	for d := range out {
		out[d].TimeUsedHoursWithFixedBuffer = out[d].TimeUsedHours + out[d].BufferHours
	}

	return out
}
