package mlservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/itinerary-microservice/internal/config"
	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// Client - HTTP клиент сервиса обученных моделей (регрессоры времени/бюджета,
// скоринг достопримечательностей, ансамбль риска)
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает новый клиент сервиса моделей
func NewClient(cfg *config.ModelServiceConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// Интерфейсные утверждения: клиент реализует оба модельных контракта
var (
	_ repository.ItineraryModelRepository = (*Client)(nil)
	_ repository.RiskModelRepository      = (*Client)(nil)
)

type scoreAttractionsRequest struct {
	User        domain.TravelerProfile `json:"user"`
	Attractions []domain.Attraction    `json:"attractions"`
}

type scoreAttractionsResponse struct {
	Scores []float64 `json:"scores"`
}

// PredictTimeAndBudget предсказывает суммарное время и бюджет поездки
func (c *Client) PredictTimeAndBudget(ctx context.Context, profile domain.TravelerProfile) (*domain.TimeBudgetPrediction, error) {
	var result domain.TimeBudgetPrediction
	if err := c.post(ctx, "/api/itinerary/predict_time_budget", profile, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScoreAttractions возвращает базовые вероятности интереса пользователя
// к достопримечательностям, в порядке входного списка
func (c *Client) ScoreAttractions(ctx context.Context, profile domain.TravelerProfile, attractions []domain.Attraction) ([]float64, error) {
	req := scoreAttractionsRequest{
		User:        profile,
		Attractions: attractions,
	}

	var resp scoreAttractionsResponse
	if err := c.post(ctx, "/api/itinerary/score_attractions", req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Scores) != len(attractions) {
		c.logger.Error("Model service returned wrong score count",
			zap.Int("expected", len(attractions)),
			zap.Int("got", len(resp.Scores)))
		return nil, fmt.Errorf("model service returned %d scores for %d attractions", len(resp.Scores), len(attractions))
	}

	return resp.Scores, nil
}

// PredictRisk оценивает риск по нормализованной строке условий
func (c *Client) PredictRisk(ctx context.Context, row domain.RiskRow) (*domain.RiskPrediction, error) {
	var result domain.RiskPrediction
	if err := c.post(ctx, "/api/risk/predict", row, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// post выполняет POST запрос с JSON телом и декодирует JSON ответ
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + path

	c.logger.Debug("Calling model service",
		zap.String("url", url),
		zap.Int("payload_bytes", len(payload)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Model service returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return fmt.Errorf("model service error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
