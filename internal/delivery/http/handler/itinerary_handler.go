package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/itinerary-microservice/internal/pkg/errors"
	"github.com/itinerary-microservice/internal/pkg/utils"
	"github.com/itinerary-microservice/internal/pkg/validator"
	"github.com/itinerary-microservice/internal/usecase"
	"github.com/itinerary-microservice/internal/usecase/dto"
)

// ItineraryHandler - обработчик запросов построения маршрутов
type ItineraryHandler struct {
	itineraryUC *usecase.ItineraryUseCase
	logger      *zap.Logger
}

// NewItineraryHandler - создание нового ItineraryHandler
func NewItineraryHandler(itineraryUC *usecase.ItineraryUseCase, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: itineraryUC,
		logger:      logger,
	}
}

// Recommend godoc
// @Summary Построение многодневного маршрута поездки
// @Description Строит маршрут по предпочтениям пользователя: контекстная корректировка скоров, кластеризация, маршрутизация, отбор по бюджету, раскладка по дням и подбор отелей.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body dto.ItineraryRequest true "Предпочтения пользователя и контекст"
// @Success 200 {object} utils.SuccessResponse{data=domain.Itinerary}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/recommend [post]
func (h *ItineraryHandler) Recommend(c *fiber.Ctx) error {
	var req dto.ItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	start := time.Now()
	itinerary, cached, err := h.itineraryUC.Recommend(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, itinerary, &utils.Meta{
		Total:    len(itinerary.SelectedAttractions),
		Cached:   cached,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

// PredictTimeBudget godoc
// @Summary Оценка времени и бюджета поездки
// @Description Возвращает предсказание суммарного времени и бюджета без построения маршрута.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body dto.ItineraryRequest true "Предпочтения пользователя"
// @Success 200 {object} utils.SuccessResponse{data=dto.TimeBudgetResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/time-budget [post]
func (h *ItineraryHandler) PredictTimeBudget(c *fiber.Ctx) error {
	var req dto.ItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	tb, err := h.itineraryUC.PredictTimeBudget(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.TimeBudgetResponse{
		EstimatedTotalTimeHours: tb.EstimatedTotalTimeHours,
		EstimatedTotalBudget:    tb.EstimatedTotalBudget,
	}, nil)
}
