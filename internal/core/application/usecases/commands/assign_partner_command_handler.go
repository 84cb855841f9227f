package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

type AssignPartnerCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locker     ports.Locker
	dispatcher services.OrderDispatcher
}

func NewAssignPartnerCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	locker ports.Locker,
) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		dispatcher: services.NewOrderDispatcher(),
	}
}

func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requirePrivileged(cmd.Actor()); err != nil {
		return err
	}

	unlockOrder, err := h.locker.Lock(ctx, orderKey(cmd.OrderID()))
	if err != nil {
		return err
	}
	defer unlockOrder()

	unlockPartner, err := h.locker.Lock(ctx, partnerKey(cmd.PartnerID()))
	if err != nil {
		return err
	}
	defer unlockPartner()

	uow, rollback, err := begin(ctx, h.uowFactory)
	if err != nil {
		return err
	}
	defer rollback()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	return h.assign(ctx, uow, o, cmd.PartnerID())
}

func (h AssignPartnerCommandHandler) assign(
	ctx context.Context,
	uow ports.UnitOfWork,
	o *order.Order,
	partnerID kernel.UUID,
) error {
	partnerRepo := uow.DeliveryPartnerRepository()
	p, err := partnerRepo.Get(ctx, partnerID)
	if err != nil {
		return err
	}

	changed, err := h.dispatcher.Assign(o, p, time.Now().UTC())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if err = partnerRepo.Update(ctx, p); err != nil {
		return err
	}

	return commit(ctx, uow)
}
