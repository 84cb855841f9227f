package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// EventPublisher delivers committed order events to interested parties.
type EventPublisher interface {
	Publish(ctx context.Context, events []order.Event) error
}
