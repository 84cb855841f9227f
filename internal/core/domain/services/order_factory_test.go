package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

func TestOrderFactory_Create(t *testing.T) {
	factory := services.NewOrderFactory()
	buyer, err := order.NewBuyerInfo("Meera", "4 Temple Street", "555")
	require.NoError(t, err)
	checkout := services.Checkout{Buyer: buyer, Fulfillment: order.FulfillmentDelivery, Payment: order.PaymentUPI}

	t.Run("should freeze cart into pending order", func(t *testing.T) {
		ten, err := cart.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Ten", decimal.RequireFromString("10.00"))
		require.NoError(t, err)
		five, err := cart.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Five", decimal.RequireFromString("5.00"))
		require.NoError(t, err)
		c := cart.New()
		require.NoError(t, c.Add(ten))
		require.NoError(t, c.Add(ten))
		require.NoError(t, c.Add(five))

		o, err := factory.Create(kernel.NewUUID(), kernel.NewUUID(), c, checkout, now)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "25.00", o.Total().StringFixed(2))
		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "Ten", items[0].ProductName())
		assert.Equal(t, 2, items[0].Quantity())

		require.NoError(t, c.SetQuantity(ten.ID(), 9))
		assert.Equal(t, "25.00", o.Total().StringFixed(2))
	})

	t.Run("should reject empty cart", func(t *testing.T) {
		_, err := factory.Create(kernel.NewUUID(), kernel.NewUUID(), cart.New(), checkout, now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
