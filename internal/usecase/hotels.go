package usecase

import (
	"math"
	"sort"

	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/pkg/utils"
)

// scoreHotels оценивает отели относительно центра маршрута:
// рейтинг, попадание в ночной бюджет и близость.
// Возвращаются кандидаты с известной дистанцией не дальше maxDistKm
// (или с неизвестной дистанцией), отсортированные по убыванию скора.
func scoreHotels(hotels []domain.Hotel, center domain.GeoPoint, nightlyMax, maxDistKm float64) []domain.ScoredHotel {
	out := make([]domain.ScoredHotel, 0, len(hotels))

	for _, h := range hotels {
		sh := domain.ScoredHotel{Hotel: h}

		loc := h.Location()
		if center.Valid() && loc.Valid() {
			d := utils.HaversineDistance(*center.Lat, *center.Lon, *loc.Lat, *loc.Lon)
			sh.DistanceKm = &d
		}

		rating := h.ResolvedRating()
		rate := h.ResolvedNightlyRate()

		s := 0.35 * utils.Clip((rating-3.0)/2.0, 0.0, 1.0)

		switch {
		case rate <= nightlyMax:
			s += 0.45
		case rate <= nightlyMax*1.15:
			s += 0.22
		default:
			s -= 0.25
		}

		if sh.DistanceKm == nil {
			s -= 0.05
		} else {
			switch d := *sh.DistanceKm; {
			case d <= 2:
				s += 0.30
			case d <= 5:
				s += 0.18
			case d <= maxDistKm:
				s += 0.05
			default:
				s -= 0.50
			}
		}

		sh.Score = s

		// primary filter: keep unknown distance or within range
		if sh.DistanceKm != nil && *sh.DistanceKm > maxDistKm {
			continue
		}
		out = append(out, sh)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// bestRatedHotels - последняя ступень отката: лучшие по рейтингу без фильтров
func bestRatedHotels(hotels []domain.Hotel, maxHotels int) []domain.ScoredHotel {
	out := make([]domain.ScoredHotel, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, domain.ScoredHotel{Hotel: h, Score: h.ResolvedRating()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Hotel.ResolvedRating() > out[j].Hotel.ResolvedRating()
	})
	if maxHotels < len(out) {
		out = out[:maxHotels]
	}
	return out
}

// recommendHotels подбирает отели вокруг центра маршрута с лестницей откатов:
// строгая дистанция, затем расширенная, затем расширенный бюджет,
// в конце лучшие по рейтингу. Пустой результат возможен только при пустом каталоге.
func recommendHotels(hotels []domain.Hotel, center domain.GeoPoint, nightlyMax, maxDistKm float64, maxHotels int) []domain.ScoredHotel {
	top := headHotels(scoreHotels(hotels, center, nightlyMax, maxDistKm), maxHotels)

	if len(top) == 0 {
		relaxedDist := math.Max(30.0, maxDistKm*2)
		top = headHotels(scoreHotels(hotels, center, nightlyMax, relaxedDist), maxHotels)

		if len(top) == 0 {
			top = headHotels(scoreHotels(hotels, center, nightlyMax*1.6, relaxedDist), maxHotels)
		}
	}

	if len(top) == 0 {
		top = bestRatedHotels(hotels, maxHotels)
	}
	return top
}

// findHotelNearPoint ищет отели рядом с точкой ночёвки конкретного дня.
// Жёсткие фильтры по дистанции и цене; при отсутствии кандидатов
// возвращается пустой список - день может остаться без отеля.
func findHotelNearPoint(hotels []domain.Hotel, targetLat, targetLon, nightlyMax, maxDistKm float64, topN int) []domain.ScoredHotel {
	out := make([]domain.ScoredHotel, 0, len(hotels))

	for _, h := range hotels {
		loc := h.Location()
		if !loc.Valid() {
			continue
		}
		d := utils.HaversineDistance(targetLat, targetLon, *loc.Lat, *loc.Lon)
		if d > maxDistKm {
			continue
		}
		if h.ResolvedNightlyRate() > nightlyMax*1.15 {
			continue
		}

		dist := d
		out = append(out, domain.ScoredHotel{
			Hotel:      h,
			DistanceKm: &dist,
			Score:      0.6*h.ResolvedRating()/5.0 + 0.4*(1.0-d/maxDistKm),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if topN < len(out) {
		out = out[:topN]
	}
	return out
}

func headHotels(hotels []domain.ScoredHotel, n int) []domain.ScoredHotel {
	if n >= len(hotels) {
		return hotels
	}
	return hotels[:n]
}
