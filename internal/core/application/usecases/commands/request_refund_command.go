package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRequestRefundCommandIsNotConstructed = errors.New(
		"RequestRefundCommand must be created via NewRequestRefundCommand constructor",
	)
	ErrResolveRefundCommandIsNotConstructed = errors.New(
		"ResolveRefundCommand must be created via NewResolveRefundCommand constructor",
	)
)

type RequestRefundCommand struct {
	orderID kernel.UUID
	actor   actor.Actor
	reason  string
	amount  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRequestRefundCommand checks the shape of the request; amount bounds
// against the order total are checked by the order itself.
func NewRequestRefundCommand(
	orderID kernel.UUID,
	by actor.Actor,
	reason string,
	amount decimal.Decimal,
) (RequestRefundCommand, error) {
	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}

	if err := errors.Join(orderID.Validate(), by.Validate(), reasonErr); err != nil {
		return RequestRefundCommand{}, err
	}

	return RequestRefundCommand{
		orderID: orderID,
		actor:   by,
		reason:  reason,
		amount:  amount,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RequestRefundCommand) Validate() error {
	return c.guard.Validate(ErrRequestRefundCommandIsNotConstructed)
}

func (c RequestRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RequestRefundCommand) Actor() actor.Actor {
	return c.actor
}

func (c RequestRefundCommand) Reason() string {
	return c.reason
}

func (c RequestRefundCommand) Amount() decimal.Decimal {
	return c.amount
}

// ResolveRefundCommand processes or denies a requested refund.
type ResolveRefundCommand struct {
	orderID  kernel.UUID
	actor    actor.Actor
	decision order.RefundStatus

	guard guard.ConstructorGuard
}

func NewResolveRefundCommand(
	orderID kernel.UUID,
	by actor.Actor,
	decision order.RefundStatus,
) (ResolveRefundCommand, error) {
	var decisionErr error
	if !decision.IsResolved() {
		decisionErr = errs.NewValueIsInvalidError("decision")
	}

	if err := errors.Join(orderID.Validate(), by.Validate(), decisionErr); err != nil {
		return ResolveRefundCommand{}, err
	}

	return ResolveRefundCommand{
		orderID:  orderID,
		actor:    by,
		decision: decision,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveRefundCommand) Validate() error {
	return c.guard.Validate(ErrResolveRefundCommandIsNotConstructed)
}

func (c ResolveRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ResolveRefundCommand) Actor() actor.Actor {
	return c.actor
}

func (c ResolveRefundCommand) Decision() order.RefundStatus {
	return c.decision
}
