package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"brainvault/internal/events"
)

// publishEvent is best effort: a failed publish is logged and never fails the
// operation that produced the event.
func publishEvent(ctx context.Context, publisher events.Publisher, logger *zap.Logger, subject string, event events.Event) {
	event.At = time.Now().UTC()
	if err := publisher.Publish(ctx, subject, event); err != nil {
		logger.Warn("publish event failed", zap.String("subject", subject), zap.Error(err))
	}
}
