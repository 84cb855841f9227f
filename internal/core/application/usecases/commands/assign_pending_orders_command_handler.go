package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/partner"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// SweepResult summarizes one pass over a batch of orders.
type SweepResult struct {
	Processed int
	Skipped   int
	Failed    int
}

type AssignPendingOrdersCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	autoAssign AutoAssignPartnerCommandHandler
}

func NewAssignPendingOrdersCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	autoAssign AutoAssignPartnerCommandHandler,
) AssignPendingOrdersCommandHandler {
	return AssignPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		autoAssign: autoAssign,
	}
}

// Handle runs one independent auto-assignment per waiting order, oldest first.
// It stops early when no partner is available; orders that changed in the
// meantime are skipped. Other failures are collected and returned joined.
func (h AssignPendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AssignPendingOrdersCommand,
) (SweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepResult{}, err
	}

	ids, err := h.awaitingDispatch(ctx, cmd.Limit())
	if err != nil {
		return SweepResult{}, err
	}

	var (
		result SweepResult
		failed []error
	)
	for _, id := range ids {
		if ctx.Err() != nil {
			failed = append(failed, ctx.Err())
			break
		}

		assignCmd, cmdErr := NewAutoAssignPartnerCommand(id, actor.System())
		if cmdErr != nil {
			return result, cmdErr
		}

		err = h.autoAssign.Handle(ctx, assignCmd)
		switch {
		case err == nil:
			result.Processed++
		case errors.Is(err, services.ErrNoPartnerAvailable):
			return result, nil
		case errors.Is(err, order.ErrOrderNotAssignable), errors.Is(err, partner.ErrPartnerUnavailable):
			result.Skipped++
		default:
			result.Failed++
			failed = append(failed, err)
		}
	}

	return result, errors.Join(failed...)
}

func (h AssignPendingOrdersCommandHandler) awaitingDispatch(ctx context.Context, limit int) ([]kernel.UUID, error) {
	uow, rollback, err := begin(ctx, h.uowFactory)
	if err != nil {
		return nil, err
	}
	defer rollback()

	orders, err := uow.OrderRepository().ListAwaitingDispatch(ctx, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, nil
}
