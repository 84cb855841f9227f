// Package queries contains read operations that serve read models straight
// from the database, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order on behalf of an actor. Buyers see their own
// orders, sellers the orders containing their items, delivery partners the
// orders assigned to them; admins and the system see everything.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   actor.Actor
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, by actor.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), by.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		actor:   by,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Actor() actor.Actor {
	return q.actor
}

type GetOrderQueryResponse struct {
	ID              kernel.UUID
	BuyerID         kernel.UUID
	BuyerName       string
	BuyerAddress    string
	BuyerPhone      string
	Fulfillment     string
	Payment         string
	Status          string
	Total           decimal.Decimal
	PlacedAt        time.Time
	StatusChangedAt time.Time
	ConfirmedAt     *time.Time
	PartnerID       *kernel.UUID
	Items           []GetOrderItemResponse
	Refund          *GetOrderRefundResponse
}

type GetOrderItemResponse struct {
	ProductID   kernel.UUID
	SellerID    kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

type GetOrderRefundResponse struct {
	Reason      string
	Amount      decimal.Decimal
	Status      string
	RequestedAt time.Time
	ResolvedAt  *time.Time
}
