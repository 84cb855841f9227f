package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
)

// AuditEntry describes a sensitive change made by an actor.
type AuditEntry struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Action     string
	Actor      actor.Actor
	Details    string
	RecordedAt time.Time
}

type AuditLog interface {
	Record(ctx context.Context, entry AuditEntry) error
}
