package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с publisher'ом условий)
const (
	StreamRiskAssess = "stream:risk:assess"
	StreamRiskDone   = "stream:risk:done"
)

// RiskAssessEvent - входящее событие на оценку риска локации
type RiskAssessEvent struct {
	RequestID uuid.UUID    `json:"request_id"`
	Location  RiskLocation `json:"location"`
}

// RiskDoneEvent - результат оценки риска
type RiskDoneEvent struct {
	RequestID  uuid.UUID       `json:"request_id"`
	Assessment *RiskAssessment `json:"assessment,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
