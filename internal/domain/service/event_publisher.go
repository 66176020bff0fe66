package service

import (
	"context"

	"pushcast/internal/domain/entity"
)

// EventPublisher forwards change-feed events to the message queue that
// drives the notifier worker.
type EventPublisher interface {
	// PublishEvent publishes one change-feed event for async dispatch.
	PublishEvent(ctx context.Context, event *entity.Event) error

	// Close releases any resources held by the publisher.
	Close() error
}
