// Package memory keeps orders and delivery partners in process memory behind
// the same unit of work contract as the Postgres adapter. Writes are staged
// per unit of work and applied atomically on commit.
package memory

import (
	"sort"
	"sync"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/partner"
	"marketplace/internal/core/ports"
)

// Store is the committed state shared by all units of work.
type Store struct {
	mu       sync.RWMutex
	orders   map[kernel.UUID]*order.Order
	partners map[kernel.UUID]*partner.DeliveryPartner
	audit    []ports.AuditEntry
}

func NewStore() *Store {
	return &Store{
		orders:   make(map[kernel.UUID]*order.Order),
		partners: make(map[kernel.UUID]*partner.DeliveryPartner),
	}
}

// AuditEntries returns the committed audit trail in insertion order.
func (s *Store) AuditEntries() []ports.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ports.AuditEntry, len(s.audit))
	copy(out, s.audit)
	return out
}

func (s *Store) apply(orders map[kernel.UUID]*order.Order, partners map[kernel.UUID]*partner.DeliveryPartner, audit []ports.AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, o := range orders {
		s.orders[id] = o
	}
	for id, p := range partners {
		s.partners[id] = p
	}
	s.audit = append(s.audit, audit...)
}

func (s *Store) order(id kernel.UUID) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

func (s *Store) partner(id kernel.UUID) (*partner.DeliveryPartner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.partners[id]
	return p, ok
}

func (s *Store) allOrders() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out
}

func (s *Store) allPartners() []*partner.DeliveryPartner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*partner.DeliveryPartner, 0, len(s.partners))
	for _, p := range s.partners {
		out = append(out, p)
	}
	return out
}

func sortByStatusChange(orders []*order.Order) {
	sort.Slice(orders, func(i, j int) bool {
		a, b := orders[i].StatusChangedAt(), orders[j].StatusChangedAt()
		if !a.Equal(b) {
			return a.Before(b)
		}
		return orders[i].ID().Less(orders[j].ID())
	})
}

func cloneOrder(o *order.Order) (*order.Order, error) {
	var refund *order.Refund
	if r := o.Refund(); r != nil {
		var err error
		refund, err = order.RestoreRefund(r.Reason(), r.Amount(), r.Status(), r.RequestedAt(), r.ResolvedAt())
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:              o.ID(),
		BuyerID:         o.BuyerID(),
		Items:           o.Items(),
		Buyer:           o.Buyer(),
		Fulfillment:     o.Fulfillment(),
		Payment:         o.Payment(),
		Total:           o.Total(),
		PlacedAt:        o.PlacedAt(),
		Status:          o.Status(),
		StatusChangedAt: o.StatusChangedAt(),
		ConfirmedAt:     o.ConfirmedAt(),
		PartnerID:       o.PartnerID(),
		Refund:          refund,
	})
}

func clonePartner(p *partner.DeliveryPartner, activeDeliveries int) (*partner.DeliveryPartner, error) {
	return partner.RestoreDeliveryPartner(
		p.ID(),
		p.Name(),
		p.Phone(),
		p.IsAvailable(),
		activeDeliveries,
		p.Location(),
		p.LastAssignedAt(),
	)
}
