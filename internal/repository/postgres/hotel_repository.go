package postgres

import (
	"context"

	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/domain/repository"
	"github.com/itinerary-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type hotelRepository struct {
	db *DB
}

// NewHotelRepository создает репозиторий каталога отелей
func NewHotelRepository(db *DB) repository.HotelRepository {
	return &hotelRepository{db: db}
}

// GetAll загружает весь каталог отелей
func (r *hotelRepository) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	query := `
		SELECT
			id, name, latitude, longitude,
			nightly_rate, price_per_night, price_range_min,
			rating, COALESCE(review_count, 0) AS review_count,
			star_class, COALESCE(amenities, '{}') AS amenities
		FROM hotels
		ORDER BY id`

	var hotels []domain.Hotel
	if err := r.db.SelectContext(ctx, &hotels, query); err != nil {
		r.db.logger.Error("Failed to load hotel catalog", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return hotels, nil
}
