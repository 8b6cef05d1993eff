package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLocationUpdated announces that a product or user location changed
	PublishLocationUpdated(ctx context.Context, event *entity.LocationUpdatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
