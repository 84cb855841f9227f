package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

type ResolveRefundCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locker     ports.Locker
}

func NewResolveRefundCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	locker ports.Locker,
) ResolveRefundCommandHandler {
	return ResolveRefundCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle resolves the refund and writes an audit entry in the same unit of
// work; if the audit entry cannot be written nothing is committed.
func (h ResolveRefundCommandHandler) Handle(ctx context.Context, cmd ResolveRefundCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock, err := h.locker.Lock(ctx, orderKey(cmd.OrderID()))
	if err != nil {
		return err
	}
	defer unlock()

	uow, rollback, err := begin(ctx, h.uowFactory)
	if err != nil {
		return err
	}
	defer rollback()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = o.ResolveRefund(cmd.Actor(), cmd.Decision(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	refund := o.Refund()
	if err = uow.AuditLog().Record(ctx, ports.AuditEntry{
		ID:         kernel.NewUUID(),
		OrderID:    o.ID(),
		Action:     "refund_" + refund.Status().String(),
		Actor:      cmd.Actor(),
		Details:    fmt.Sprintf("amount=%s reason=%q", refund.Amount().StringFixed(2), refund.Reason()),
		RecordedAt: now,
	}); err != nil {
		return fmt.Errorf("audit refund of order %s: %w", o.ID(), err)
	}

	return commit(ctx, uow)
}
