package domain

import (
	"github.com/lib/pq"
)

const (
	// DefaultNightlyRateLKR используется, когда ни одно из ценовых полей не заполнено
	DefaultNightlyRateLKR = 10000.0

	// DefaultHotelRating используется при отсутствии рейтинга
	DefaultHotelRating = 4.0
)

// Hotel представляет отель из каталога
type Hotel struct {
	ID            int64          `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Latitude      *float64       `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64       `json:"longitude,omitempty" db:"longitude"`
	NightlyRate   *float64       `json:"nightly_rate,omitempty" db:"nightly_rate"`
	PricePerNight *float64       `json:"price_per_night,omitempty" db:"price_per_night"`
	PriceRangeMin *float64       `json:"price_range_min,omitempty" db:"price_range_min"`
	Rating        *float64       `json:"rating,omitempty" db:"rating"`
	ReviewCount   int            `json:"review_count" db:"review_count"`
	StarClass     *int           `json:"star_class,omitempty" db:"star_class"`
	Amenities     pq.StringArray `json:"amenities" db:"amenities"`
}

// Location возвращает координаты отеля
func (h *Hotel) Location() GeoPoint {
	return GeoPoint{Lat: h.Latitude, Lon: h.Longitude}
}

// ResolvedNightlyRate возвращает цену за ночь: первое заполненное поле
// из nightly_rate, price_per_night, price_range_min
func (h *Hotel) ResolvedNightlyRate() float64 {
	for _, v := range []*float64{h.NightlyRate, h.PricePerNight, h.PriceRangeMin} {
		if v != nil {
			return *v
		}
	}
	return DefaultNightlyRateLKR
}

// ResolvedRating возвращает рейтинг отеля с учетом значения по умолчанию
func (h *Hotel) ResolvedRating() float64 {
	if h.Rating == nil {
		return DefaultHotelRating
	}
	return *h.Rating
}

// ScoredHotel - отель с расстоянием и итоговым баллом для конкретного контекста подбора
type ScoredHotel struct {
	Hotel

	// DistanceKm - расстояние до целевой точки; nil = неизвестно
	DistanceKm *float64 `json:"distance_km,omitempty"`
	Score      float64  `json:"score"`
}
