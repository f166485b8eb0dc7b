package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/itinerary-microservice/internal/pkg/errors"
	"github.com/itinerary-microservice/internal/pkg/utils"
	"github.com/itinerary-microservice/internal/usecase"
	"github.com/itinerary-microservice/internal/usecase/dto"
)

// RiskHandler - обработчик запросов оценки риска
type RiskHandler struct {
	riskUC *usecase.RiskUseCase
	logger *zap.Logger
}

// NewRiskHandler - создание нового RiskHandler
func NewRiskHandler(riskUC *usecase.RiskUseCase, logger *zap.Logger) *RiskHandler {
	return &RiskHandler{
		riskUC: riskUC,
		logger: logger,
	}
}

// Assess godoc
// @Summary Оценка риска посещения локаций
// @Description Оценивает риск для одной локации или списка locations: скор, категория, факторы риска и рекомендации.
// @Tags Risk
// @Accept json
// @Produce json
// @Param request body dto.RiskRequest true "Локация или список локаций"
// @Success 200 {object} utils.SuccessResponse{data=dto.RiskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/risk/assess [post]
func (h *RiskHandler) Assess(c *fiber.Ctx) error {
	var req dto.RiskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.riskUC.Assess(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Results),
	})
}
