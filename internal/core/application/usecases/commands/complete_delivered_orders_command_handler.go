package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

type CompleteDeliveredOrdersCommandHandler struct {
	uowFactory   ports.UnitOfWorkFactory
	changeStatus ChangeOrderStatusCommandHandler
}

func NewCompleteDeliveredOrdersCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	changeStatus ChangeOrderStatusCommandHandler,
) CompleteDeliveredOrdersCommandHandler {
	return CompleteDeliveredOrdersCommandHandler{
		uowFactory:   uowFactory,
		changeStatus: changeStatus,
	}
}

// Handle moves each delivered order past the grace period to completed on
// behalf of the system, one unit of work per order.
func (h CompleteDeliveredOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteDeliveredOrdersCommand,
) (SweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepResult{}, err
	}

	ids, err := h.deliveredBefore(ctx, cmd)
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

		completeCmd, cmdErr := NewChangeOrderStatusCommand(id, actor.System(), order.Completed)
		if cmdErr != nil {
			return result, cmdErr
		}

		err = h.changeStatus.Handle(ctx, completeCmd)
		switch {
		case err == nil:
			result.Processed++
		case errors.Is(err, order.ErrInvalidTransition):
			result.Skipped++
		default:
			result.Failed++
			failed = append(failed, err)
		}
	}

	return result, errors.Join(failed...)
}

func (h CompleteDeliveredOrdersCommandHandler) deliveredBefore(
	ctx context.Context,
	cmd CompleteDeliveredOrdersCommand,
) ([]kernel.UUID, error) {
	uow, rollback, err := begin(ctx, h.uowFactory)
	if err != nil {
		return nil, err
	}
	defer rollback()

	orders, err := uow.OrderRepository().ListDeliveredBefore(ctx, cmd.DeliveredBefore(), cmd.Limit())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, nil
}
