package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAssignPartnerCommandIsNotConstructed = errors.New(
		"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
	)
	ErrAutoAssignPartnerCommandIsNotConstructed = errors.New(
		"AutoAssignPartnerCommand must be created via NewAutoAssignPartnerCommand constructor",
	)
)

// AssignPartnerCommand binds a chosen partner to an order (manual dispatch).
type AssignPartnerCommand struct {
	orderID   kernel.UUID
	partnerID kernel.UUID
	actor     actor.Actor

	guard guard.ConstructorGuard
}

func NewAssignPartnerCommand(orderID, partnerID kernel.UUID, by actor.Actor) (AssignPartnerCommand, error) {
	if err := errors.Join(orderID.Validate(), partnerID.Validate(), by.Validate()); err != nil {
		return AssignPartnerCommand{}, err
	}

	return AssignPartnerCommand{
		orderID:   orderID,
		partnerID: partnerID,
		actor:     by,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

func (c AssignPartnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c AssignPartnerCommand) Actor() actor.Actor {
	return c.actor
}

// AutoAssignPartnerCommand lets the dispatcher choose the partner for an order.
type AutoAssignPartnerCommand struct {
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

func NewAutoAssignPartnerCommand(orderID kernel.UUID, by actor.Actor) (AutoAssignPartnerCommand, error) {
	if err := errors.Join(orderID.Validate(), by.Validate()); err != nil {
		return AutoAssignPartnerCommand{}, err
	}

	return AutoAssignPartnerCommand{
		orderID: orderID,
		actor:   by,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AutoAssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignPartnerCommandIsNotConstructed)
}

func (c AutoAssignPartnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AutoAssignPartnerCommand) Actor() actor.Actor {
	return c.actor
}
