package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func TestPlaceOrderCommandHandler_Handle(t *testing.T) {
	buyerInfo, err := order.NewBuyerInfo("Asha", "12 Lake Road", "555")
	require.NoError(t, err)

	t.Run("should price the order from catalog snapshots", func(t *testing.T) {
		e := newEnv(t)
		ten := e.addProduct(t, "Ten", "10.00")
		five := e.addProduct(t, "Five", "5.00")
		id := kernel.NewUUID()
		cmd, err := commands.NewPlaceOrderCommand(id, e.buyer, e.buyer.ID(), []commands.PlaceOrderItem{
			{ProductID: ten.ID(), Quantity: 1},
			{ProductID: five.ID(), Quantity: 1},
			{ProductID: ten.ID(), Quantity: 1},
		}, buyerInfo, order.FulfillmentDelivery, order.PaymentCashOnDelivery)
		require.NoError(t, err)

		err = commands.NewPlaceOrderCommandHandler(e.uow, e.catalog).Handle(t.Context(), cmd)

		require.NoError(t, err)
		placed := e.order(t, id)
		assert.Equal(t, order.Pending, placed.Status())
		assert.Equal(t, "25.00", placed.Total().StringFixed(2))
		require.Len(t, placed.Items(), 2)
		assert.Equal(t, 2, placed.Items()[0].Quantity())
		assert.Equal(t, []order.EventKind{order.EventOrderPlaced}, e.publisher.kinds())
	})

	t.Run("should reject buyer acting for someone else", func(t *testing.T) {
		e := newEnv(t)
		product := e.addProduct(t, "Ten", "10.00")
		cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), e.buyer, kernel.NewUUID(),
			[]commands.PlaceOrderItem{{ProductID: product.ID(), Quantity: 1}}, buyerInfo,
			order.FulfillmentPickup, order.PaymentUPI)
		require.NoError(t, err)

		err = commands.NewPlaceOrderCommandHandler(e.uow, e.catalog).Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, order.ErrUnauthorizedActor)
	})

	t.Run("should fail for unknown products", func(t *testing.T) {
		e := newEnv(t)
		id := kernel.NewUUID()
		cmd, err := commands.NewPlaceOrderCommand(id, e.admin, e.buyer.ID(),
			[]commands.PlaceOrderItem{{ProductID: kernel.NewUUID(), Quantity: 1}}, buyerInfo,
			order.FulfillmentPickup, order.PaymentUPI)
		require.NoError(t, err)

		err = commands.NewPlaceOrderCommandHandler(e.uow, e.catalog).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		_, err = e.uow.Create().OrderRepository().Get(t.Context(), id)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should reject empty and invalid items", func(t *testing.T) {
		e := newEnv(t)
		buyerInfo, err := order.NewBuyerInfo("Asha", "", "555")
		require.NoError(t, err)

		_, err = commands.NewPlaceOrderCommand(kernel.NewUUID(), e.buyer, e.buyer.ID(), nil,
			buyerInfo, order.FulfillmentPickup, order.PaymentUPI)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewPlaceOrderCommand(kernel.NewUUID(), e.buyer, e.buyer.ID(),
			[]commands.PlaceOrderItem{{ProductID: kernel.NewUUID(), Quantity: 0}},
			buyerInfo, order.FulfillmentPickup, order.PaymentUPI)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
