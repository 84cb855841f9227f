package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

var errAuditUnavailable = errors.New("audit log unavailable")

type failingAuditLog struct{}

func (failingAuditLog) Record(context.Context, ports.AuditEntry) error {
	return errAuditUnavailable
}

type failingAuditUnitOfWork struct {
	ports.UnitOfWork
}

func (failingAuditUnitOfWork) AuditLog() ports.AuditLog {
	return failingAuditLog{}
}

type failingAuditFactory struct {
	ports.UnitOfWorkFactory
}

func (f failingAuditFactory) Create() ports.UnitOfWork {
	return failingAuditUnitOfWork{UnitOfWork: f.UnitOfWorkFactory.Create()}
}

func (e *env) requestRefund(t *testing.T, id kernel.UUID, amount string) error {
	t.Helper()
	cmd, err := commands.NewRequestRefundCommand(id, e.buyer, "damaged", decimal.RequireFromString(amount))
	require.NoError(t, err)
	return commands.NewRequestRefundCommandHandler(e.uow, e.locker).Handle(t.Context(), cmd)
}

func (e *env) resolveRefund(t *testing.T, factory ports.UnitOfWorkFactory, id kernel.UUID, decision order.RefundStatus) error {
	t.Helper()
	cmd, err := commands.NewResolveRefundCommand(id, e.admin, decision)
	require.NoError(t, err)
	return commands.NewResolveRefundCommandHandler(factory, e.locker).Handle(t.Context(), cmd)
}

func (e *env) confirmedOrder(t *testing.T) kernel.UUID {
	t.Helper()
	id := e.placeOrder(t, order.FulfillmentPickup)
	require.NoError(t, e.changeStatus(t.Context(), id, e.seller, order.Confirmed))
	return id
}

func TestRequestRefundCommandHandler_Handle(t *testing.T) {
	t.Run("should reject refunds before confirmation", func(t *testing.T) {
		e := newEnv(t)
		id := e.placeOrder(t, order.FulfillmentPickup)

		err := e.requestRefund(t, id, "1.00")

		require.ErrorIs(t, err, order.ErrOrderNotEligible)
		assert.Nil(t, e.order(t, id).Refund())
	})

	t.Run("should allow a refund after the order was cancelled", func(t *testing.T) {
		e := newEnv(t)
		id := e.confirmedOrder(t)
		require.NoError(t, e.changeStatus(t.Context(), id, e.buyer, order.Cancelled))

		require.NoError(t, e.requestRefund(t, id, "4.00"))

		refund := e.order(t, id).Refund()
		require.NotNil(t, refund)
		assert.Equal(t, order.RefundRequested, refund.Status())
		assert.True(t, refund.Amount().Equal(decimal.RequireFromString("4.00")))
	})

	t.Run("should reject an amount above the total", func(t *testing.T) {
		e := newEnv(t)
		id := e.confirmedOrder(t)

		err := e.requestRefund(t, id, "4.01")

		require.Error(t, err)
		assert.Nil(t, e.order(t, id).Refund())
	})

	t.Run("should reject a second request", func(t *testing.T) {
		e := newEnv(t)
		id := e.confirmedOrder(t)
		require.NoError(t, e.requestRefund(t, id, "1.00"))

		err := e.requestRefund(t, id, "1.00")

		assert.ErrorIs(t, err, order.ErrOrderNotEligible)
	})
}

func TestResolveRefundCommandHandler_Handle(t *testing.T) {
	t.Run("should process once and record an audit entry", func(t *testing.T) {
		e := newEnv(t)
		id := e.confirmedOrder(t)
		require.NoError(t, e.requestRefund(t, id, "2.50"))

		require.NoError(t, e.resolveRefund(t, e.uow, id, order.RefundProcessed))
		err := e.resolveRefund(t, e.uow, id, order.RefundProcessed)

		require.ErrorIs(t, err, order.ErrNoRefundRequested)
		refund := e.order(t, id).Refund()
		require.NotNil(t, refund)
		assert.Equal(t, order.RefundProcessed, refund.Status())
		assert.NotNil(t, refund.ResolvedAt())

		entries := e.store.AuditEntries()
		require.Len(t, entries, 1)
		assert.Equal(t, id, entries[0].OrderID)
		assert.Equal(t, "refund_processed", entries[0].Action)
		assert.Equal(t, e.admin, entries[0].Actor)
		assert.Contains(t, entries[0].Details, "amount=2.50")
	})

	t.Run("should deny a refund", func(t *testing.T) {
		e := newEnv(t)
		id := e.confirmedOrder(t)
		require.NoError(t, e.requestRefund(t, id, "1.00"))

		require.NoError(t, e.resolveRefund(t, e.uow, id, order.RefundDenied))

		assert.Equal(t, order.RefundDenied, e.order(t, id).Refund().Status())
		assert.Contains(t, e.publisher.kinds(), order.EventRefundDenied)
	})

	t.Run("should reject buyers", func(t *testing.T) {
		e := newEnv(t)
		id := e.confirmedOrder(t)
		require.NoError(t, e.requestRefund(t, id, "1.00"))
		cmd, err := commands.NewResolveRefundCommand(id, e.buyer, order.RefundProcessed)
		require.NoError(t, err)

		err = commands.NewResolveRefundCommandHandler(e.uow, e.locker).Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, order.ErrUnauthorizedActor)
	})

	t.Run("should commit nothing when the audit entry fails", func(t *testing.T) {
		e := newEnv(t)
		id := e.confirmedOrder(t)
		require.NoError(t, e.requestRefund(t, id, "1.00"))

		err := e.resolveRefund(t, failingAuditFactory{UnitOfWorkFactory: e.uow}, id, order.RefundProcessed)

		require.ErrorIs(t, err, errAuditUnavailable)
		assert.Equal(t, order.RefundRequested, e.order(t, id).Refund().Status())
		assert.Empty(t, e.store.AuditEntries())
		assert.NotContains(t, e.publisher.kinds(), order.EventRefundProcessed)
	})
}
