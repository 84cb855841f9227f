package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

type PlaceOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	catalog    ports.ProductCatalog
	factory    services.OrderFactory
}

func NewPlaceOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	catalog ports.ProductCatalog,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		factory:    services.NewOrderFactory(),
	}
}

// Handle resolves price snapshots from the catalog, builds the cart and stores a pending order.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	by := cmd.Actor()
	if !by.Is(actor.RoleAdmin) && !(by.Is(actor.RoleBuyer) && by.ID().IsEqual(cmd.BuyerID())) {
		return fmt.Errorf("%w: %s cannot place orders for buyer %s", order.ErrUnauthorizedActor, by, cmd.BuyerID())
	}

	c, err := h.buildCart(ctx, cmd.Items())
	if err != nil {
		return err
	}

	placed, err := h.factory.Create(cmd.OrderID(), cmd.BuyerID(), c, services.Checkout{
		Buyer:       cmd.Buyer(),
		Fulfillment: cmd.Fulfillment(),
		Payment:     cmd.Payment(),
	}, time.Now().UTC())
	if err != nil {
		return err
	}

	uow, rollback, err := begin(ctx, h.uowFactory)
	if err != nil {
		return err
	}
	defer rollback()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	return commit(ctx, uow)
}

func (h PlaceOrderCommandHandler) buildCart(ctx context.Context, items []PlaceOrderItem) (*cart.Cart, error) {
	ids := make([]kernel.UUID, 0, len(items))
	quantities := make(map[kernel.UUID]int, len(items))
	for _, item := range items {
		if _, ok := quantities[item.ProductID]; !ok {
			ids = append(ids, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := h.catalog.GetProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	c := cart.New()
	for _, product := range products {
		if err = c.Add(product); err != nil {
			return nil, err
		}
		if err = c.SetQuantity(product.ID(), quantities[product.ID()]); err != nil {
			return nil, err
		}
	}
	return c, nil
}
