package memory

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/partner"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := r.requireActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.store.order(aggregate.ID()); exists {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("order %s already exists", aggregate.ID()))
	}
	return r.stage(aggregate)
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := r.requireActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	_, committed := r.uow.store.order(aggregate.ID())
	_, staged := r.uow.orders[aggregate.ID()]
	if !committed && !staged {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}
	return r.stage(aggregate)
}

func (r *orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if o, ok := r.uow.orders[id]; ok {
		return cloneOrder(o)
	}
	o, ok := r.uow.store.order(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return cloneOrder(o)
}

func (r *orderRepository) ListAwaitingDispatch(_ context.Context, limit int) ([]*order.Order, error) {
	return r.list(limit, func(o *order.Order) bool {
		return o.IsAwaitingDispatch()
	})
}

func (r *orderRepository) ListDeliveredBefore(_ context.Context, cutoff time.Time, limit int) ([]*order.Order, error) {
	return r.list(limit, func(o *order.Order) bool {
		return o.Status() == order.Delivered && o.StatusChangedAt().Before(cutoff)
	})
}

func (r *orderRepository) list(limit int, match func(*order.Order) bool) ([]*order.Order, error) {
	var matched []*order.Order
	for _, o := range r.uow.visibleOrders() {
		if match(o) {
			matched = append(matched, o)
		}
	}
	sortByStatusChange(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]*order.Order, 0, len(matched))
	for _, o := range matched {
		c, err := cloneOrder(o)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *orderRepository) stage(aggregate *order.Order) error {
	c, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}
	r.uow.orders[aggregate.ID()] = c
	r.uow.track(aggregate)
	return nil
}

func (r *orderRepository) requireActive() error {
	if !r.uow.active {
		return ErrTransactionNotStarted
	}
	return nil
}

type partnerRepository struct {
	uow *UnitOfWork
}

func (r *partnerRepository) Add(_ context.Context, aggregate *partner.DeliveryPartner) error {
	if !r.uow.active {
		return ErrTransactionNotStarted
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.store.partner(aggregate.ID()); exists {
		return errs.NewValueIsInvalidErrorWithCause("partnerId", fmt.Errorf("partner %s already exists", aggregate.ID()))
	}
	return r.stage(aggregate)
}

func (r *partnerRepository) Update(_ context.Context, aggregate *partner.DeliveryPartner) error {
	if !r.uow.active {
		return ErrTransactionNotStarted
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	_, committed := r.uow.store.partner(aggregate.ID())
	_, staged := r.uow.partners[aggregate.ID()]
	if !committed && !staged {
		return errs.NewObjectNotFoundError("partnerId", aggregate.ID())
	}
	return r.stage(aggregate)
}

func (r *partnerRepository) Get(_ context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	p, ok := r.uow.partners[id]
	if !ok {
		p, ok = r.uow.store.partner(id)
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("partnerId", id)
	}
	return clonePartner(p, r.uow.activeDeliveries(id))
}

func (r *partnerRepository) GetAllAvailable(ctx context.Context) ([]*partner.DeliveryPartner, error) {
	seen := make(map[kernel.UUID]bool)
	var out []*partner.DeliveryPartner

	collect := func(p *partner.DeliveryPartner) error {
		if seen[p.ID()] || !p.IsAvailable() {
			seen[p.ID()] = true
			return nil
		}
		seen[p.ID()] = true
		loaded, err := r.Get(ctx, p.ID())
		if err != nil {
			return err
		}
		out = append(out, loaded)
		return nil
	}

	for _, p := range r.uow.partners {
		if err := collect(p); err != nil {
			return nil, err
		}
	}
	for _, p := range r.uow.store.allPartners() {
		if err := collect(p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *partnerRepository) stage(aggregate *partner.DeliveryPartner) error {
	c, err := clonePartner(aggregate, 0)
	if err != nil {
		return err
	}
	r.uow.partners[aggregate.ID()] = c
	return nil
}

type auditLog struct {
	uow *UnitOfWork
}

func (a *auditLog) Record(_ context.Context, entry ports.AuditEntry) error {
	if !a.uow.active {
		return ErrTransactionNotStarted
	}
	if err := entry.ID.Validate(); err != nil {
		return err
	}
	a.uow.audit = append(a.uow.audit, entry)
	return nil
}
