package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/partner"
)

// ErrNoPartnerAvailable is returned by auto-assignment when no partner accepts new work.
var ErrNoPartnerAvailable = errors.New("no delivery partner available")

// OrderDispatcher binds ready_for_ship delivery orders to delivery partners.
//
// Selection rule for automatic dispatch: among available partners pick the one
// with the fewest active deliveries; ties go to the partner that was assigned
// least recently (never assigned first), then to the lowest id.
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Assign attaches the given partner to the order. Both aggregates are checked
// before either is changed. Repeating an assignment that already happened
// returns changed == false and books no extra workload.
func (d OrderDispatcher) Assign(o *order.Order, p *partner.DeliveryPartner, at time.Time) (bool, error) {
	if err := errors.Join(o.Validate(), p.Validate()); err != nil {
		return false, err
	}

	if o.IsAssignedTo(p.ID()) {
		return false, nil
	}
	if !p.IsAvailable() {
		return false, fmt.Errorf("%w: %s", partner.ErrPartnerUnavailable, p.ID())
	}
	if err := o.ValidateAssignable(); err != nil {
		return false, err
	}

	if err := p.TakeOrder(at); err != nil {
		return false, err
	}
	if _, err := o.AssignPartner(p.ID(), at); err != nil {
		return false, err
	}

	return true, nil
}

// Dispatch selects a partner among candidates and assigns the order to it.
func (d OrderDispatcher) Dispatch(
	o *order.Order,
	candidates []*partner.DeliveryPartner,
	at time.Time,
) (*partner.DeliveryPartner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.ValidateAssignable(); err != nil {
		return nil, err
	}

	best, err := d.SelectPartner(candidates)
	if err != nil {
		return nil, err
	}

	if _, err = d.Assign(o, best, at); err != nil {
		return nil, err
	}
	return best, nil
}

// SelectPartner returns the best available candidate without changing anything.
func (d OrderDispatcher) SelectPartner(candidates []*partner.DeliveryPartner) (*partner.DeliveryPartner, error) {
	available := make([]*partner.DeliveryPartner, 0, len(candidates))
	for _, p := range candidates {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.IsAvailable() {
			available = append(available, p)
		}
	}

	if len(available) == 0 {
		return nil, ErrNoPartnerAvailable
	}

	sort.SliceStable(available, func(i, j int) bool {
		return less(available[i], available[j])
	})

	return available[0], nil
}

func less(a, b *partner.DeliveryPartner) bool {
	if a.ActiveDeliveries() != b.ActiveDeliveries() {
		return a.ActiveDeliveries() < b.ActiveDeliveries()
	}

	aAt, bAt := a.LastAssignedAt(), b.LastAssignedAt()
	switch {
	case aAt == nil && bAt != nil:
		return true
	case aAt != nil && bAt == nil:
		return false
	case aAt != nil && !aAt.Equal(*bAt):
		return aAt.Before(*bAt)
	}

	return a.ID().Less(b.ID())
}
