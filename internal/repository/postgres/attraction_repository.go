package postgres

import (
	"context"

	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/domain/repository"
	"github.com/itinerary-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type attractionRepository struct {
	db *DB
}

// NewAttractionRepository создает репозиторий каталога достопримечательностей
func NewAttractionRepository(db *DB) repository.AttractionRepository {
	return &attractionRepository{db: db}
}

// GetAll загружает весь каталог достопримечательностей.
// Каталог неизменяемый и небольшой, поэтому читается целиком.
func (r *attractionRepository) GetAll(ctx context.Context) ([]domain.Attraction, error) {
	query := `
		SELECT
			id, name, category, latitude, longitude,
			avg_cost, avg_duration_hours, outdoor,
			popularity_score, safety_rating, accessibility,
			tourist_density, best_season
		FROM attractions
		ORDER BY id`

	var attractions []domain.Attraction
	if err := r.db.SelectContext(ctx, &attractions, query); err != nil {
		r.db.logger.Error("Failed to load attraction catalog", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return attractions, nil
}
