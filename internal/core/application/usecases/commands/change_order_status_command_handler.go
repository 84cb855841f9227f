package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

type ChangeOrderStatusCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locker     ports.Locker
}

func NewChangeOrderStatusCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	locker ports.Locker,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle applies a status transition. When the order stops counting toward its
// partner's workload (delivered or cancelled), the partner is released in the
// same unit of work.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	heldWorkload := o.HoldsPartnerWorkload()
	changed, err := o.Transition(cmd.Actor(), cmd.Target(), time.Now().UTC())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if heldWorkload && !o.HoldsPartnerWorkload() {
		partnerID := o.PartnerID()

		unlockPartner, lockErr := h.locker.Lock(ctx, partnerKey(*partnerID))
		if lockErr != nil {
			return lockErr
		}
		defer unlockPartner()

		partnerRepo := uow.DeliveryPartnerRepository()
		p, getErr := partnerRepo.Get(ctx, *partnerID)
		if getErr != nil {
			return getErr
		}
		if err = p.ReleaseOrder(); err != nil {
			return err
		}
		if err = partnerRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return commit(ctx, uow)
}
