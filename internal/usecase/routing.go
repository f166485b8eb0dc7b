package usecase

import (
	"math"
	"sort"

	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/pkg/utils"
)

// clusterByRadius оставляет достопримечательности в радиусе от якоря.
// Якорь без координат - кластеризация пропускается, набор возвращается целиком.
func clusterByRadius(items []domain.ScoredAttraction, anchorIdx int, radiusKm float64) []domain.ScoredAttraction {
	if len(items) == 0 || anchorIdx < 0 || anchorIdx >= len(items) {
		return append([]domain.ScoredAttraction(nil), items...)
	}

	anchor := items[anchorIdx].Location()
	if !anchor.Valid() {
		return append([]domain.ScoredAttraction(nil), items...)
	}

	out := make([]domain.ScoredAttraction, 0, len(items))
	for _, it := range items {
		loc := it.Location()
		if !loc.Valid() {
			// missing coordinates never make the cluster
			continue
		}
		d := utils.HaversineDistance(*anchor.Lat, *anchor.Lon, *loc.Lat, *loc.Lon)
		if d <= radiusKm {
			out = append(out, it)
		}
	}
	return out
}

// routeNearestNeighbor упорядочивает точки жадным ближайшим соседом
// от стартовой позиции и заполняет TravelFromPrevKm.
// Точка без координат не двигает текущую позицию и получает нулевой переезд.
func routeNearestNeighbor(items []domain.ScoredAttraction, start domain.GeoPoint) []domain.ScoredAttraction {
	out := append([]domain.ScoredAttraction(nil), items...)
	if len(out) <= 1 {
		for i := range out {
			out[i].TravelFromPrevKm = 0.0
		}
		return out
	}

	remaining := make([]domain.ScoredAttraction, len(out))
	copy(remaining, out)
	ordered := make([]domain.ScoredAttraction, 0, len(out))

	var curLat, curLon float64
	haveCur := false

	distTo := func(it domain.ScoredAttraction) float64 {
		loc := it.Location()
		if !haveCur || !loc.Valid() {
			return math.Inf(1)
		}
		return utils.HaversineDistance(curLat, curLon, *loc.Lat, *loc.Lon)
	}

	pickNearest := func() int {
		best := 0
		bestDist := math.Inf(1)
		for i, it := range remaining {
			if d := distTo(it); d < bestDist {
				best = i
				bestDist = d
			}
		}
		return best
	}

	advanceTo := func(it domain.ScoredAttraction) {
		// position is sticky: a point without coordinates does not move it
		if loc := it.Location(); loc.Valid() {
			curLat, curLon = *loc.Lat, *loc.Lon
			haveCur = true
		}
	}

	var startIdx int
	if start.Valid() {
		curLat, curLon = *start.Lat, *start.Lon
		haveCur = true
		startIdx = pickNearest()
	} else {
		startIdx = 0
	}

	ordered = append(ordered, remaining[startIdx])
	advanceTo(remaining[startIdx])
	remaining = append(remaining[:startIdx], remaining[startIdx+1:]...)

	for len(remaining) > 0 {
		next := pickNearest()
		ordered = append(ordered, remaining[next])
		advanceTo(remaining[next])
		remaining = append(remaining[:next], remaining[next+1:]...)
	}

	ordered[0].TravelFromPrevKm = 0.0
	for i := 1; i < len(ordered); i++ {
		prev := ordered[i-1].Location()
		cur := ordered[i].Location()
		if prev.Valid() && cur.Valid() {
			ordered[i].TravelFromPrevKm = utils.HaversineDistance(*prev.Lat, *prev.Lon, *cur.Lat, *cur.Lon)
		} else {
			ordered[i].TravelFromPrevKm = 0.0
		}
	}

	return ordered
}

// sortByFinalScoreDesc сортирует стабильно по убыванию итогового скора
func sortByFinalScoreDesc(items []domain.ScoredAttraction) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].FinalScore > items[j].FinalScore
	})
}

// topN возвращает первые n элементов без копирования хвоста
func topN(items []domain.ScoredAttraction, n int) []domain.ScoredAttraction {
	if n >= len(items) {
		return items
	}
	return items[:n]
}
