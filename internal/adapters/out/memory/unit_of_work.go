package memory

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/partner"
	"marketplace/internal/core/ports"
)

var ErrTransactionNotStarted = errors.New("unit of work has not begun")

type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "memory_unit_of_work"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger

	active   bool
	orders   map[kernel.UUID]*order.Order
	partners map[kernel.UUID]*partner.DeliveryPartner
	audit    []ports.AuditEntry
	tracked  []*order.Order
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return nil
	}
	u.active = true
	u.orders = make(map[kernel.UUID]*order.Order)
	u.partners = make(map[kernel.UUID]*partner.DeliveryPartner)
	u.audit = nil
	u.tracked = nil
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if !u.active {
		return ErrTransactionNotStarted
	}

	u.store.apply(u.orders, u.partners, u.audit)
	tracked := u.tracked
	u.reset()

	var events []order.Event
	for _, o := range tracked {
		events = append(events, o.PullEvents()...)
	}
	if len(events) == 0 || u.publisher == nil {
		return nil
	}
	if err := u.publisher.Publish(ctx, events); err != nil {
		u.logger.ErrorContext(ctx, "failed to publish order events", "count", len(events), "error", err)
	}
	return nil
}

// Rollback discards staged writes; it is a no-op when nothing is pending.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.reset()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

func (u *UnitOfWork) DeliveryPartnerRepository() ports.DeliveryPartnerRepository {
	return &partnerRepository{uow: u}
}

func (u *UnitOfWork) AuditLog() ports.AuditLog {
	return &auditLog{uow: u}
}

func (u *UnitOfWork) reset() {
	u.active = false
	u.orders = nil
	u.partners = nil
	u.audit = nil
	u.tracked = nil
}

func (u *UnitOfWork) track(o *order.Order) {
	for _, t := range u.tracked {
		if t == o {
			return
		}
	}
	u.tracked = append(u.tracked, o)
}

// visibleOrders overlays staged orders on the committed ones.
func (u *UnitOfWork) visibleOrders() []*order.Order {
	committed := u.store.allOrders()
	out := make([]*order.Order, 0, len(committed)+len(u.orders))
	for _, o := range committed {
		if _, staged := u.orders[o.ID()]; !staged {
			out = append(out, o)
		}
	}
	for _, o := range u.orders {
		out = append(out, o)
	}
	return out
}

func (u *UnitOfWork) activeDeliveries(partnerID kernel.UUID) int {
	count := 0
	for _, o := range u.visibleOrders() {
		if id := o.PartnerID(); id != nil && id.IsEqual(partnerID) && o.HoldsPartnerWorkload() {
			count++
		}
	}
	return count
}
