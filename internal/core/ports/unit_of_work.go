package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh unit of work per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups repository changes into one atomic commit. Domain events
// recorded by aggregates touched through its repositories are published after
// a successful commit. Rollback after Commit is a no-op.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	DeliveryPartnerRepository() DeliveryPartnerRepository

	// AuditLog writes entries that become durable together with the commit.
	AuditLog() AuditLog
}
