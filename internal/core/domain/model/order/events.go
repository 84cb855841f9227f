package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// EventKind names a change that subscribers may react to.
type EventKind string

const (
	EventOrderPlaced     EventKind = "order_placed"
	EventStatusChanged   EventKind = "status_changed"
	EventPartnerAssigned EventKind = "partner_assigned"
	EventRefundRequested EventKind = "refund_requested"
	EventRefundProcessed EventKind = "refund_processed"
	EventRefundDenied    EventKind = "refund_denied"
)

// Event is recorded by the Order aggregate and published after the unit of work commits.
type Event struct {
	Kind       EventKind
	OrderID    kernel.UUID
	From       Status
	To         Status
	PartnerID  *kernel.UUID
	Refund     RefundStatus
	OccurredAt time.Time
}
