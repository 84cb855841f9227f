package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should build a valid query", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(kernel.NewUUID(), actor.System())
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject a zero order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{}, actor.System())
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject a zero actor", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.NewUUID(), actor.Actor{})
		assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
	})

	t.Run("should detect a query not built by the constructor", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetAwaitingDispatchOrdersQuery(t *testing.T) {
	t.Run("should keep the limit", func(t *testing.T) {
		query, err := queries.NewGetAwaitingDispatchOrdersQuery(25)
		require.NoError(t, err)
		assert.Equal(t, 25, query.Limit())
	})

	t.Run("should reject a non-positive limit", func(t *testing.T) {
		_, err := queries.NewGetAwaitingDispatchOrdersQuery(0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should detect a query not built by the constructor", func(t *testing.T) {
		err := queries.GetAwaitingDispatchOrdersQuery{}.Validate()
		assert.ErrorIs(t, err, queries.ErrGetAwaitingDispatchOrdersQueryIsNotConstructed)
	})
}

func TestNewGetDeliveryPartnersQuery(t *testing.T) {
	assert.NoError(t, queries.NewGetDeliveryPartnersQuery(true).Validate())
	assert.True(t, queries.NewGetDeliveryPartnersQuery(true).OnlyAvailable())
	assert.ErrorIs(t, queries.GetDeliveryPartnersQuery{}.Validate(), queries.ErrGetDeliveryPartnersQueryIsNotConstructed)
}

func TestNewGetOrderListQuery(t *testing.T) {
	buyer, err := actor.New(kernel.NewUUID(), actor.RoleBuyer)
	require.NoError(t, err)
	seller, err := actor.New(kernel.NewUUID(), actor.RoleSeller)
	require.NoError(t, err)
	rider, err := actor.New(kernel.NewUUID(), actor.RoleDeliveryPartner)
	require.NoError(t, err)
	admin, err := actor.New(kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)

	t.Run("should scope to the actor's own orders without a filter", func(t *testing.T) {
		for _, tc := range []struct {
			by    actor.Actor
			scope queries.OrderListScope
		}{
			{buyer, queries.ScopeBuyerOrders},
			{seller, queries.ScopeSellerOrders},
			{rider, queries.ScopePartnerOrders},
		} {
			query, err := queries.NewGetOrderListQuery(tc.by, queries.OrderListFilter{}, 20)
			require.NoError(t, err)
			assert.Equal(t, tc.scope, query.Scope())
			assert.Equal(t, tc.by.ID(), query.SubjectID())
			assert.NoError(t, query.Validate())
		}
	})

	t.Run("should list all orders for admin without a filter", func(t *testing.T) {
		query, err := queries.NewGetOrderListQuery(admin, queries.OrderListFilter{}, 20)
		require.NoError(t, err)
		assert.Equal(t, queries.ScopeAllOrders, query.Scope())
		assert.Equal(t, kernel.UUID{}, query.SubjectID())
	})

	t.Run("should let admin read a partner's orders", func(t *testing.T) {
		partnerID := rider.ID()
		status := order.OutForDelivery

		query, err := queries.NewGetOrderListQuery(admin,
			queries.OrderListFilter{PartnerID: &partnerID, Status: &status}, 5)

		require.NoError(t, err)
		assert.Equal(t, queries.ScopePartnerOrders, query.Scope())
		assert.Equal(t, partnerID, query.SubjectID())
		require.NotNil(t, query.Status())
		assert.Equal(t, order.OutForDelivery, *query.Status())
		assert.Equal(t, 5, query.Limit())
	})

	t.Run("should reject reading another partner's orders", func(t *testing.T) {
		other := kernel.NewUUID()
		_, err := queries.NewGetOrderListQuery(rider, queries.OrderListFilter{PartnerID: &other}, 20)
		assert.ErrorIs(t, err, order.ErrUnauthorizedActor)
	})

	t.Run("should reject a buyer filtering by seller", func(t *testing.T) {
		sellerID := seller.ID()
		_, err := queries.NewGetOrderListQuery(buyer, queries.OrderListFilter{SellerID: &sellerID}, 20)
		assert.ErrorIs(t, err, order.ErrUnauthorizedActor)
	})

	t.Run("should reject more than one subject", func(t *testing.T) {
		buyerID, sellerID := buyer.ID(), seller.ID()
		_, err := queries.NewGetOrderListQuery(admin,
			queries.OrderListFilter{BuyerID: &buyerID, SellerID: &sellerID}, 20)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a non-positive limit", func(t *testing.T) {
		_, err := queries.NewGetOrderListQuery(buyer, queries.OrderListFilter{}, 0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should detect a query not built by the constructor", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetOrderListQuery{}.Validate(), queries.ErrGetOrderListQueryIsNotConstructed)
	})
}
