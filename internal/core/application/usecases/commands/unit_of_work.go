package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

func orderKey(id kernel.UUID) string {
	return "order:" + id.String()
}

func partnerKey(id kernel.UUID) string {
	return "partner:" + id.String()
}

// commit refuses to commit once the caller gave up; the deferred rollback then discards the work.
func commit(ctx context.Context, uow ports.UnitOfWork) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func begin(ctx context.Context, factory ports.UnitOfWorkFactory) (ports.UnitOfWork, func(), error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}
	return uow, func() { _ = uow.Rollback(ctx) }, nil
}

func requirePrivileged(a actor.Actor) error {
	if !a.IsPrivileged() {
		return fmt.Errorf("%w: %s is not admin or system", order.ErrUnauthorizedActor, a)
	}
	return nil
}
