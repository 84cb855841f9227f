package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderItem is one product the buyer checks out with.
type PlaceOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actor       actor.Actor
	buyerID     kernel.UUID
	items       []PlaceOrderItem
	buyer       order.BuyerInfo
	fulfillment order.FulfillmentMethod
	payment     order.PaymentMethod

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	orderID kernel.UUID,
	by actor.Actor,
	buyerID kernel.UUID,
	items []PlaceOrderItem,
	buyer order.BuyerInfo,
	fulfillment order.FulfillmentMethod,
	payment order.PaymentMethod,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		buyer:       buyer,
		fulfillment: fulfillment,
		payment:     payment,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(by),
		cmd.setBuyerID(buyerID),
		cmd.setItems(items),
		buyer.Validate(),
		fulfillment.Validate(),
		payment.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) Actor() actor.Actor {
	return c.actor
}

func (c PlaceOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	out := make([]PlaceOrderItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c PlaceOrderCommand) Buyer() order.BuyerInfo {
	return c.buyer
}

func (c PlaceOrderCommand) Fulfillment() order.FulfillmentMethod {
	return c.fulfillment
}

func (c PlaceOrderCommand) Payment() order.PaymentMethod {
	return c.payment
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.actor = a
	return nil
}

func (c *PlaceOrderCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerId", err)
	}
	c.buyerID = id
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, errs.NewValueIsRequiredErrorWithCause("productId", err))
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: %w", i,
				errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", item.Quantity)))
		}
	}
	c.items = make([]PlaceOrderItem, len(items))
	copy(c.items, items)
	return nil
}
