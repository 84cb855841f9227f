package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

type AutoAssignPartnerCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locker     ports.Locker
	dispatcher services.OrderDispatcher
	assigner   AssignPartnerCommandHandler
}

func NewAutoAssignPartnerCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	locker ports.Locker,
) AutoAssignPartnerCommandHandler {
	return AutoAssignPartnerCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		dispatcher: services.NewOrderDispatcher(),
		assigner:   NewAssignPartnerCommandHandler(uowFactory, locker),
	}
}

// Handle picks the least loaded available partner and assigns the order to it.
// The chosen partner is locked and reloaded before assignment, so a partner that
// went offline in between yields partner.ErrPartnerUnavailable. A retry for an
// order that already left with a partner succeeds without changes.
func (h AutoAssignPartnerCommandHandler) Handle(ctx context.Context, cmd AutoAssignPartnerCommand) error {
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

	uow, rollback, err := begin(ctx, h.uowFactory)
	if err != nil {
		return err
	}
	defer rollback()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if o.Status() == order.OutForDelivery && o.PartnerID() != nil {
		return nil
	}
	if err = o.ValidateAssignable(); err != nil {
		return err
	}

	candidates, err := uow.DeliveryPartnerRepository().GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	best, err := h.dispatcher.SelectPartner(candidates)
	if err != nil {
		return err
	}

	unlockPartner, err := h.locker.Lock(ctx, partnerKey(best.ID()))
	if err != nil {
		return err
	}
	defer unlockPartner()

	return h.assigner.assign(ctx, uow, o, best.ID())
}
