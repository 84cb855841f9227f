package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrInvalidTransition is returned for a status change that is not an edge of the lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrUnauthorizedActor is returned when the actor's role or identity may not perform the operation.
	ErrUnauthorizedActor = errors.New("actor is not allowed to perform this operation")
	// ErrCancellationWindowClosed is returned when a buyer cancels an order that is already being prepared.
	ErrCancellationWindowClosed = errors.New("cancellation window closed")
	// ErrOrderNotAssignable is returned when a partner cannot be attached to the order in its current state.
	ErrOrderNotAssignable = errors.New("order is not assignable")
	// ErrOrderNotEligible is returned when a refund cannot be requested for the order.
	ErrOrderNotEligible = errors.New("order is not eligible for refund")
	// ErrNoRefundRequested is returned when resolving a refund that is absent or already resolved.
	ErrNoRefundRequested = errors.New("no refund requested")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the fulfillment lifecycle.
//
// Business rules:
//   - an order has at least one line item
//   - the total is fixed at creation and never recomputed
//   - status moves only along the lifecycle edges or into cancelled
//   - a pickup order never has a delivery partner
//   - the refund record evolves independently of the status
type Order struct {
	id              kernel.UUID
	buyerID         kernel.UUID
	items           []LineItem
	buyer           BuyerInfo
	fulfillment     FulfillmentMethod
	payment         PaymentMethod
	total           decimal.Decimal
	placedAt        time.Time
	status          Status
	statusChangedAt time.Time
	confirmedAt     *time.Time
	partnerID       *kernel.UUID
	refund          *Refund
	events          []Event
	guard           guard.ConstructorGuard
}

// NewOrder creates a pending order and computes its total from the line items.
//
// Example:
//
//	item, _ := order.NewLineItem(productID, sellerID, "Mango pickle", 2, decimal.RequireFromString("10.00"))
//	buyer, _ := order.NewBuyerInfo("Asha", "12 Lake Road", "+91 98450 00000")
//	o, err := order.NewOrder(kernel.NewUUID(), buyerID, []order.LineItem{item}, buyer,
//	    order.FulfillmentDelivery, order.PaymentUPI, time.Now())
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	items []LineItem,
	buyer BuyerInfo,
	fulfillment FulfillmentMethod,
	payment PaymentMethod,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:          Pending,
		placedAt:        placedAt,
		statusChangedAt: placedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setItems(items),
		o.setFulfillment(fulfillment, buyer),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	o.total = decimal.Zero
	for _, item := range o.items {
		o.total = o.total.Add(item.Subtotal())
	}

	o.record(Event{Kind: EventOrderPlaced, To: Pending, OccurredAt: placedAt})
	return o, nil
}

// RestoreParams carries the persisted state of an order.
type RestoreParams struct {
	ID              kernel.UUID
	BuyerID         kernel.UUID
	Items           []LineItem
	Buyer           BuyerInfo
	Fulfillment     FulfillmentMethod
	Payment         PaymentMethod
	Total           decimal.Decimal
	PlacedAt        time.Time
	Status          Status
	StatusChangedAt time.Time
	ConfirmedAt     *time.Time
	PartnerID       *kernel.UUID
	Refund          *Refund
}

// RestoreOrder reconstructs an Order from storage. The stored total is kept as is.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		total:           p.Total,
		placedAt:        p.PlacedAt,
		statusChangedAt: p.StatusChangedAt,
		confirmedAt:     p.ConfirmedAt,
		refund:          p.Refund,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setBuyerID(p.BuyerID),
		o.setItems(p.Items),
		o.setFulfillment(p.Fulfillment, p.Buyer),
		o.setPayment(p.Payment),
		o.setStatus(p.Status),
		o.setPartnerID(p.PartnerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) IsEqual(other *Order) bool {
	if other == nil {
		return false
	}
	return o.id.IsEqual(other.id)
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Items returns a copy of the line items in checkout order.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Buyer() BuyerInfo {
	return o.buyer
}

func (o *Order) Fulfillment() FulfillmentMethod {
	return o.fulfillment
}

func (o *Order) Payment() PaymentMethod {
	return o.payment
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) StatusChangedAt() time.Time {
	return o.statusChangedAt
}

// ConfirmedAt is the time the order was first confirmed, the marker of a confirmed payment.
func (o *Order) ConfirmedAt() *time.Time {
	if o.confirmedAt == nil {
		return nil
	}
	at := *o.confirmedAt
	return &at
}

// PartnerID returns nil while the order is unassigned.
func (o *Order) PartnerID() *kernel.UUID {
	if o.partnerID == nil {
		return nil
	}
	id := *o.partnerID
	return &id
}

// Refund returns a copy of the refund record, or nil.
func (o *Order) Refund() *Refund {
	return o.refund.clone()
}

// HasSeller reports whether any line item belongs to the seller.
func (o *Order) HasSeller(sellerID kernel.UUID) bool {
	for _, item := range o.items {
		if item.SellerID().IsEqual(sellerID) {
			return true
		}
	}
	return false
}

// SellerIDs returns the distinct sellers of the order in line item order.
func (o *Order) SellerIDs() []kernel.UUID {
	var out []kernel.UUID
	for _, item := range o.items {
		seen := false
		for _, id := range out {
			if id.IsEqual(item.SellerID()) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, item.SellerID())
		}
	}
	return out
}

// HoldsPartnerWorkload reports whether the order counts toward its partner's active deliveries.
func (o *Order) HoldsPartnerWorkload() bool {
	return o.partnerID != nil && (o.status == ReadyForShip || o.status == OutForDelivery)
}

// IsAwaitingDispatch reports whether the order is a delivery order ready for a partner.
func (o *Order) IsAwaitingDispatch() bool {
	return o.fulfillment == FulfillmentDelivery && o.status == ReadyForShip && o.partnerID == nil
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) record(e Event) {
	e.OrderID = o.id
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerId", err)
	}
	o.buyerID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setFulfillment(method FulfillmentMethod, buyer BuyerInfo) error {
	if err := errors.Join(method.Validate(), buyer.Validate()); err != nil {
		return err
	}
	if method == FulfillmentDelivery && !buyer.HasAddress() {
		return errs.NewValueIsRequiredErrorWithCause("buyerAddress", errors.New("delivery orders need an address"))
	}
	o.fulfillment = method
	o.buyer = buyer
	return nil
}

func (o *Order) setPayment(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.payment = method
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPartnerID(id *kernel.UUID) error {
	if id == nil {
		o.partnerID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("partnerId", err)
	}
	if o.fulfillment == FulfillmentPickup {
		return errs.NewValueIsInvalidErrorWithCause("partnerId", errors.New("pickup orders have no delivery partner"))
	}
	partnerID := *id
	o.partnerID = &partnerID
	return nil
}
