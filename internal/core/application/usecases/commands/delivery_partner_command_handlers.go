package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/partner"
	"marketplace/internal/core/ports"
)

type CreateDeliveryPartnerCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewCreateDeliveryPartnerCommandHandler(uowFactory ports.UnitOfWorkFactory) CreateDeliveryPartnerCommandHandler {
	return CreateDeliveryPartnerCommandHandler{uowFactory: uowFactory}
}

// Handle registers a partner. Admins register anyone; a delivery partner may register itself.
func (h CreateDeliveryPartnerCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryPartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := authorizePartnerManagement(cmd.Actor(), cmd.PartnerID()); err != nil {
		return err
	}

	p, err := partner.NewDeliveryPartner(cmd.PartnerID(), cmd.Name(), cmd.Phone())
	if err != nil {
		return err
	}
	if err = p.SetLocation(cmd.Location()); err != nil {
		return err
	}

	uow, rollback, err := begin(ctx, h.uowFactory)
	if err != nil {
		return err
	}
	defer rollback()

	if err = uow.DeliveryPartnerRepository().Add(ctx, p); err != nil {
		return err
	}

	return commit(ctx, uow)
}

type SetPartnerAvailabilityCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locker     ports.Locker
}

func NewSetPartnerAvailabilityCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	locker ports.Locker,
) SetPartnerAvailabilityCommandHandler {
	return SetPartnerAvailabilityCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle switches a partner on or off. Orders the partner already carries are kept.
func (h SetPartnerAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetPartnerAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := authorizePartnerManagement(cmd.Actor(), cmd.PartnerID()); err != nil {
		return err
	}

	unlock, err := h.locker.Lock(ctx, partnerKey(cmd.PartnerID()))
	if err != nil {
		return err
	}
	defer unlock()

	uow, rollback, err := begin(ctx, h.uowFactory)
	if err != nil {
		return err
	}
	defer rollback()

	repo := uow.DeliveryPartnerRepository()
	p, err := repo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}
	if p.IsAvailable() == cmd.Available() {
		return nil
	}

	p.SetAvailability(cmd.Available())
	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return commit(ctx, uow)
}

func authorizePartnerManagement(a actor.Actor, partnerID kernel.UUID) error {
	if a.IsPrivileged() || (a.Is(actor.RoleDeliveryPartner) && a.ID().IsEqual(partnerID)) {
		return nil
	}
	return fmt.Errorf("%w: %s cannot manage partner %s", order.ErrUnauthorizedActor, a, partnerID)
}
