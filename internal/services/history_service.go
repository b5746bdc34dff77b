package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"neuraledit-ai/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidHistoryPayload = errors.New("invalid history payload: body is not valid JSON")

// HistoryService records executed queries. Entries are only written to the
// log; nothing is persisted.
type HistoryService interface {
	SaveHistory(ctx context.Context, payload []byte) (string, error)
}

type historyService struct {
	logger *zap.Logger
}

func NewHistoryService(logger *zap.Logger) HistoryService {
	return &historyService{
		logger: logger,
	}
}

// SaveHistory accepts any well-formed JSON value and returns the id it was logged under.
func (s *historyService) SaveHistory(ctx context.Context, payload []byte) (string, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, payload); err != nil {
		s.logger.Warn("rejected history payload", zap.Error(err), zap.Int("size", len(payload)))
		return "", ErrInvalidHistoryPayload
	}

	entryID := uuid.NewString()
	s.logger.Info("query history saved",
		zap.String("entry_id", entryID),
		zap.String("payload", compact.String()),
	)
	metrics.HistorySavesTotal.Inc()

	return entryID, nil
}
