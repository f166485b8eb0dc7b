package usecase

import (
	"math"

	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/pkg/utils"
	"github.com/itinerary-microservice/internal/usecase/dto"
)

const constantScoreTolerance = 1e-4

// isAlmostConstant сообщает, вырожден ли набор скоров: разброс ниже
// допуска. Наборы короче пяти конечных значений считаются различимыми
func isAlmostConstant(values []float64, tol float64) bool {
	if len(values) < 5 {
		return false
	}
	finite := values[:0:0]
	for _, v := range values {
		if utils.IsFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) < 5 {
		return false
	}
	minV, maxV := finite[0], finite[0]
	for _, v := range finite[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return maxV-minV < tol
}

// columnMedian - медиана по известным значениям; при пустой колонке fallback
func columnMedian(items []domain.ScoredAttraction, get func(domain.ScoredAttraction) *float64, fallback float64) float64 {
	vals := make([]float64, 0, len(items))
	for _, it := range items {
		if v := get(it); v != nil && utils.IsFinite(*v) {
			vals = append(vals, *v)
		}
	}
	if len(vals) == 0 {
		return fallback
	}
	return median(vals)
}

func median(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2.0
}

// computeRankScores строит устойчивый ранговый скор поверх базового:
// штрафы за стоимость, длительность и удалённость плюс бонусы
// за безопасность, доступность и популярность
func computeRankScores(items []domain.ScoredAttraction, prefs dto.TripPreferences) {
	days := utils.IntOrDefault(prefs.AvailableDays, 3)
	if days < 1 {
		days = 1
	}
	totalBudget := utils.FloatOrDefault(prefs.Budget, 150000.0)
	dailyBudget := totalBudget / float64(days)

	dailyHours := utils.Clip(utils.FloatOrDefault(prefs.DayHours, 8.5), 6.0, 12.0)
	distPref := utils.Clip(utils.FloatOrDefault(prefs.DistancePreference, 80.0), 20.0, 300.0)

	costMed := columnMedian(items, func(a domain.ScoredAttraction) *float64 { return a.AvgCost }, 2500.0)
	durMed := columnMedian(items, func(a domain.ScoredAttraction) *float64 { return a.AvgDurationHours }, 3.0)

	for i := range items {
		it := &items[i]

		base := utils.Clip(it.Score, 0.0, 1.0)

		cost := costMed
		if it.AvgCost != nil && utils.IsFinite(*it.AvgCost) {
			cost = *it.AvgCost
		}
		dur := durMed
		if it.AvgDurationHours != nil && utils.IsFinite(*it.AvgDurationHours) {
			dur = *it.AvgDurationHours
		}
		// missing distance treated as moderate
		dist := distPref * 0.6
		if it.DistanceKm != nil && utils.IsFinite(*it.DistanceKm) {
			dist = *it.DistanceKm
		}

		costPen := utils.Clip(cost/math.Max(dailyBudget, 1.0)-0.6, 0.0, 2.5)
		durPen := utils.Clip(dur/math.Max(dailyHours, 1.0)-0.55, 0.0, 2.5)
		distPen := utils.Clip(dist/math.Max(distPref, 1.0)-0.7, 0.0, 3.0)

		safety := utils.Clip(utils.FloatOrDefault(it.SafetyRating, 0.8), 0.0, 1.0)
		access := utils.Clip(utils.FloatOrDefault(it.Accessibility, 0.7), 0.0, 1.0)
		pop := utils.Clip(utils.FloatOrDefault(it.PopularityScore, 0.6), 0.0, 1.0)

		bonus := 0.10*safety + 0.06*access + 0.06*pop

		it.RankScore = utils.Clip(
			0.72*base+bonus-0.15*costPen-0.12*durPen-0.16*distPen,
			0.0, 1.0,
		)
	}
}

// computeFinalScores выбирает итоговый скор: при вырожденном фьюжене -
// чистый ранговый, иначе смесь контекстного и рангового
func computeFinalScores(items []domain.ScoredAttraction, fusionConstant bool) {
	for i := range items {
		it := &items[i]
		if fusionConstant {
			it.FinalScore = it.RankScore
		} else {
			it.FinalScore = utils.Clip(0.65*it.ScoreContextual+0.35*it.RankScore, 0.0, 1.0)
		}
	}
}
