package repository

import (
	"context"

	"github.com/itinerary-microservice/internal/domain"
)

// AttractionRepository - доступ к каталогу достопримечательностей
type AttractionRepository interface {
	// GetAll возвращает весь каталог достопримечательностей
	GetAll(ctx context.Context) ([]domain.Attraction, error)
}

// HotelRepository - доступ к каталогу отелей
type HotelRepository interface {
	// GetAll возвращает весь каталог отелей
	GetAll(ctx context.Context) ([]domain.Hotel, error)
}
