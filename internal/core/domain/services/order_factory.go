package services

import (
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// Checkout holds what the buyer enters on the checkout form.
type Checkout struct {
	Buyer       order.BuyerInfo
	Fulfillment order.FulfillmentMethod
	Payment     order.PaymentMethod
}

// OrderFactory turns a cart into a pending order, freezing prices.
type OrderFactory struct{}

func NewOrderFactory() OrderFactory {
	return OrderFactory{}
}

func (f OrderFactory) Create(
	id kernel.UUID,
	buyerID kernel.UUID,
	c *cart.Cart,
	checkout Checkout,
	at time.Time,
) (*order.Order, error) {
	if c == nil || c.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("items")
	}

	lines := c.Lines()
	items := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewLineItem(
			line.Product.ID(),
			line.Product.SellerID(),
			line.Product.Name(),
			line.Quantity,
			line.Product.UnitPrice(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(id, buyerID, items, checkout.Buyer, checkout.Fulfillment, checkout.Payment, at)
}
