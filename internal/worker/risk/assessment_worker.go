package risk

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/itinerary-microservice/internal/domain"
	"github.com/itinerary-microservice/internal/domain/repository"
	"github.com/itinerary-microservice/internal/usecase"
	"github.com/itinerary-microservice/internal/worker"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// AssessmentWorker обрабатывает события оценки риска из стрима
type AssessmentWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	riskUC       *usecase.RiskUseCase
	consumerName string
	maxRetries   int
}

// NewAssessmentWorker создает новый AssessmentWorker
func NewAssessmentWorker(
	streamRepo repository.StreamRepository,
	riskUC *usecase.RiskUseCase,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *AssessmentWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &AssessmentWorker{
		BaseWorker:   worker.NewBaseWorker("risk-assessment", consumerGroup, logger),
		streamRepo:   streamRepo,
		riskUC:       riskUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *AssessmentWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting AssessmentWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRiskAssess, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			// Если ничего не обработали - короткая пауза
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество прочитанных сообщений.
func (w *AssessmentWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamRiskAssess,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamRiskAssess, w.ConsumerGroup(), msg.ID)
			continue
		}

		doneEvent := &domain.RiskDoneEvent{RequestID: event.RequestID}

		assessment, err := w.riskUC.AssessLocation(ctx, event.Location)
		if err != nil {
			logger.Error("Risk assessment failed",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			doneEvent.Error = err.Error()
		} else {
			doneEvent.Assessment = assessment
		}

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamRiskDone, doneEvent); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			// Сообщение не подтверждаем - будет переобработано
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamRiskAssess, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// parseMessage парсит сообщение из стрима в RiskAssessEvent
func (w *AssessmentWorker) parseMessage(msg domain.StreamMessage) (*domain.RiskAssessEvent, error) {
	var event domain.RiskAssessEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}
