package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateDeliveryPartnerCommandIsNotConstructed = errors.New(
		"CreateDeliveryPartnerCommand must be created via NewCreateDeliveryPartnerCommand constructor",
	)
	ErrSetPartnerAvailabilityCommandIsNotConstructed = errors.New(
		"SetPartnerAvailabilityCommand must be created via NewSetPartnerAvailabilityCommand constructor",
	)
)

type CreateDeliveryPartnerCommand struct {
	partnerID kernel.UUID
	actor     actor.Actor
	name      string
	phone     string
	location  *kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPartnerCommand builds a registration; location is optional.
func NewCreateDeliveryPartnerCommand(
	partnerID kernel.UUID,
	by actor.Actor,
	name string,
	phone string,
	location *kernel.Location,
) (CreateDeliveryPartnerCommand, error) {
	if err := errors.Join(partnerID.Validate(), by.Validate()); err != nil {
		return CreateDeliveryPartnerCommand{}, err
	}

	return CreateDeliveryPartnerCommand{
		partnerID: partnerID,
		actor:     by,
		name:      name,
		phone:     phone,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryPartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPartnerCommandIsNotConstructed)
}

func (c CreateDeliveryPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c CreateDeliveryPartnerCommand) Actor() actor.Actor {
	return c.actor
}

func (c CreateDeliveryPartnerCommand) Name() string {
	return c.name
}

func (c CreateDeliveryPartnerCommand) Phone() string {
	return c.phone
}

func (c CreateDeliveryPartnerCommand) Location() *kernel.Location {
	return c.location
}

type SetPartnerAvailabilityCommand struct {
	partnerID kernel.UUID
	actor     actor.Actor
	available bool

	guard guard.ConstructorGuard
}

func NewSetPartnerAvailabilityCommand(
	partnerID kernel.UUID,
	by actor.Actor,
	available bool,
) (SetPartnerAvailabilityCommand, error) {
	if err := errors.Join(partnerID.Validate(), by.Validate()); err != nil {
		return SetPartnerAvailabilityCommand{}, err
	}

	return SetPartnerAvailabilityCommand{
		partnerID: partnerID,
		actor:     by,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetPartnerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerAvailabilityCommandIsNotConstructed)
}

func (c SetPartnerAvailabilityCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c SetPartnerAvailabilityCommand) Actor() actor.Actor {
	return c.actor
}

func (c SetPartnerAvailabilityCommand) Available() bool {
	return c.available
}
