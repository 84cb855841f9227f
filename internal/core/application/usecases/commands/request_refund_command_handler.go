package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

type RequestRefundCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locker     ports.Locker
}

func NewRequestRefundCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	locker ports.Locker,
) RequestRefundCommandHandler {
	return RequestRefundCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func (h RequestRefundCommandHandler) Handle(ctx context.Context, cmd RequestRefundCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock, err := h.locker.Lock(ctx, orderKey(cmd.OrderID()))
	if err != nil {
		return err
	}
	defer unlock()

	uow, rollback, err := begin(ctx, h.uowFactory)
	if err != nil {
		return err
	}
	defer rollback()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.RequestRefund(cmd.Actor(), cmd.Reason(), cmd.Amount(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return commit(ctx, uow)
}
