package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
)

type edge struct {
	from Status
	to   Status
}

type authorizer func(o *Order, a actor.Actor, target Status) error

// forwardEdges lists the lifecycle edges other than cancellation.
//
//nolint:gochecknoglobals // immutable transition table
var forwardEdges = map[edge]authorizer{
	{Pending, Confirmed}:           (*Order).authorizeSeller,
	{Confirmed, Preparing}:         (*Order).authorizeSeller,
	{Preparing, ReadyForShip}:      (*Order).authorizeSeller,
	{ReadyForShip, OutForDelivery}: (*Order).authorizeDispatch,
	{OutForDelivery, Delivered}:    (*Order).authorizeHandover,
	{Delivered, Completed}:         (*Order).authorizePrivileged,
}

// CanTransition reports whether the lifecycle contains the edge from -> to.
func CanTransition(from, to Status) bool {
	if to == Cancelled {
		return from.Validate() == nil && !from.IsTerminal()
	}
	_, ok := forwardEdges[edge{from, to}]
	return ok
}

// Transition moves the order to target on behalf of the actor.
//
// Retrying a transition the order has already made is a no-op that returns
// changed == false, provided the actor could have made it. On error the order
// is left unchanged.
func (o *Order) Transition(a actor.Actor, target Status, at time.Time) (bool, error) {
	if err := errors.Join(o.Validate(), a.Validate(), target.Validate()); err != nil {
		return false, err
	}

	if o.status == target {
		if err := o.authorizeRetry(a, target); err != nil {
			return false, err
		}
		return false, nil
	}

	if target == Cancelled {
		if o.status.IsTerminal() {
			return false, o.invalidTransition(target)
		}
		if err := o.authorizeCancel(a); err != nil {
			return false, err
		}
		o.changeStatus(target, at)
		return true, nil
	}

	authorize, ok := forwardEdges[edge{o.status, target}]
	if !ok {
		return false, o.invalidTransition(target)
	}
	if err := authorize(o, a, target); err != nil {
		return false, err
	}

	o.changeStatus(target, at)
	return true, nil
}

// AssignPartner attaches a delivery partner to a ready_for_ship delivery order
// and moves it out for delivery. Assigning the partner the order already
// travels with returns changed == false.
func (o *Order) AssignPartner(partnerID kernel.UUID, at time.Time) (bool, error) {
	if err := errors.Join(o.Validate(), partnerID.Validate()); err != nil {
		return false, err
	}

	if o.IsAssignedTo(partnerID) {
		return false, nil
	}
	if err := o.ValidateAssignable(); err != nil {
		return false, err
	}

	id := partnerID
	o.partnerID = &id
	o.record(Event{Kind: EventPartnerAssigned, From: o.status, To: OutForDelivery, PartnerID: &id, OccurredAt: at})
	o.changeStatus(OutForDelivery, at)
	return true, nil
}

// ValidateAssignable checks, without side effects, that a partner may be attached now.
func (o *Order) ValidateAssignable() error {
	if o.fulfillment == FulfillmentPickup {
		return fmt.Errorf("%w: pickup order %s", ErrOrderNotAssignable, o.id)
	}
	if o.status != ReadyForShip || o.partnerID != nil {
		return fmt.Errorf("%w: order %s is %s", ErrOrderNotAssignable, o.id, o.status)
	}
	return nil
}

// IsAssignedTo reports whether the order is already out for delivery with the partner.
func (o *Order) IsAssignedTo(partnerID kernel.UUID) bool {
	return o.status == OutForDelivery && o.partnerID != nil && o.partnerID.IsEqual(partnerID)
}

// RequestRefund attaches a refund record. Only the buyer who placed the order
// or an admin may ask, and only once payment was confirmed.
func (o *Order) RequestRefund(a actor.Actor, reason string, amount decimal.Decimal, at time.Time) error {
	if err := errors.Join(o.Validate(), a.Validate()); err != nil {
		return err
	}
	if !o.isBuyer(a) && !a.Is(actor.RoleAdmin) {
		return fmt.Errorf("%w: %s cannot request a refund for order %s", ErrUnauthorizedActor, a, o.id)
	}
	if o.confirmedAt == nil {
		return fmt.Errorf("%w: payment of order %s is not confirmed", ErrOrderNotEligible, o.id)
	}
	if o.refund != nil {
		return fmt.Errorf("%w: order %s already has a %s refund", ErrOrderNotEligible, o.id, o.refund.status)
	}

	refund, err := newRefund(reason, amount, o.total, at)
	if err != nil {
		return err
	}

	o.refund = refund
	o.record(Event{Kind: EventRefundRequested, From: o.status, To: o.status, Refund: RefundRequested, OccurredAt: at})
	return nil
}

// ProcessRefund marks a requested refund as processed.
func (o *Order) ProcessRefund(a actor.Actor, at time.Time) error {
	return o.ResolveRefund(a, RefundProcessed, at)
}

// DenyRefund marks a requested refund as denied.
func (o *Order) DenyRefund(a actor.Actor, at time.Time) error {
	return o.ResolveRefund(a, RefundDenied, at)
}

// ResolveRefund applies a terminal decision to a requested refund.
func (o *Order) ResolveRefund(a actor.Actor, decision RefundStatus, at time.Time) error {
	if err := errors.Join(o.Validate(), a.Validate()); err != nil {
		return err
	}
	if !decision.IsResolved() {
		return fmt.Errorf("%w: %q is not a refund decision", ErrInvalidTransition, decision)
	}
	if !a.IsPrivileged() {
		return fmt.Errorf("%w: %s cannot resolve refunds", ErrUnauthorizedActor, a)
	}
	if o.refund == nil || o.refund.status != RefundRequested {
		return fmt.Errorf("%w: order %s", ErrNoRefundRequested, o.id)
	}

	o.refund.resolve(decision, at)

	kind := EventRefundProcessed
	if decision == RefundDenied {
		kind = EventRefundDenied
	}
	o.record(Event{Kind: kind, From: o.status, To: o.status, Refund: decision, OccurredAt: at})
	return nil
}

func (o *Order) changeStatus(target Status, at time.Time) {
	from := o.status
	o.status = target
	o.statusChangedAt = at
	if target == Confirmed && o.confirmedAt == nil {
		confirmedAt := at
		o.confirmedAt = &confirmedAt
	}
	o.record(Event{Kind: EventStatusChanged, From: from, To: target, PartnerID: o.PartnerID(), OccurredAt: at})
}

func (o *Order) invalidTransition(target Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, target)
}

// authorizeRetry checks that the actor could have moved the order into its current status.
func (o *Order) authorizeRetry(a actor.Actor, target Status) error {
	if target == Cancelled {
		if o.isBuyer(a) || a.Is(actor.RoleAdmin) {
			return nil
		}
		return o.unauthorized(a, target)
	}
	for e, authorize := range forwardEdges {
		if e.to == target {
			return authorize(o, a, target)
		}
	}
	return o.invalidTransition(target)
}

func (o *Order) authorizeCancel(a actor.Actor) error {
	switch {
	case a.Is(actor.RoleAdmin):
		return nil
	case o.isBuyer(a):
		if o.status >= Preparing {
			return fmt.Errorf("%w: order %s is %s", ErrCancellationWindowClosed, o.id, o.status)
		}
		return nil
	default:
		return o.unauthorized(a, Cancelled)
	}
}

func (o *Order) authorizeSeller(a actor.Actor, target Status) error {
	if a.Is(actor.RoleSeller) && o.HasSeller(a.ID()) {
		return nil
	}
	return o.unauthorized(a, target)
}

func (o *Order) authorizeDispatch(a actor.Actor, target Status) error {
	if o.fulfillment == FulfillmentPickup {
		if a.IsPrivileged() || (a.Is(actor.RoleSeller) && o.HasSeller(a.ID())) {
			return nil
		}
		return o.unauthorized(a, target)
	}
	if !a.IsPrivileged() {
		return o.unauthorized(a, target)
	}
	if o.partnerID == nil {
		return fmt.Errorf("%w: order %s has no delivery partner", ErrInvalidTransition, o.id)
	}
	return nil
}

func (o *Order) authorizeHandover(a actor.Actor, target Status) error {
	if o.fulfillment == FulfillmentPickup {
		if a.Is(actor.RoleSeller) && o.HasSeller(a.ID()) {
			return nil
		}
		return o.unauthorized(a, target)
	}
	if a.Is(actor.RoleDeliveryPartner) && o.partnerID != nil && o.partnerID.IsEqual(a.ID()) {
		return nil
	}
	return o.unauthorized(a, target)
}

func (o *Order) authorizePrivileged(a actor.Actor, target Status) error {
	if a.IsPrivileged() {
		return nil
	}
	return o.unauthorized(a, target)
}

func (o *Order) isBuyer(a actor.Actor) bool {
	return a.Is(actor.RoleBuyer) && o.buyerID.IsEqual(a.ID())
}

func (o *Order) unauthorized(a actor.Actor, target Status) error {
	return fmt.Errorf("%w: %s on order %s (%s)", ErrUnauthorizedActor, a, o.id, target)
}
