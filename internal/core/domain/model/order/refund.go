package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/pkg/errs"
)

// RefundStatus is the state of the refund sub-workflow, parallel to the order status.
type RefundStatus string

const (
	RefundRequested RefundStatus = "requested"
	RefundProcessed RefundStatus = "processed"
	RefundDenied    RefundStatus = "denied"
)

func ParseRefundStatus(s string) (RefundStatus, error) {
	st := RefundStatus(strings.ToLower(strings.TrimSpace(s)))
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s RefundStatus) Validate() error {
	switch s {
	case RefundRequested, RefundProcessed, RefundDenied:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("refundStatus", fmt.Errorf("%q is not a valid refund status", string(s)))
	}
}

func (s RefundStatus) String() string {
	return string(s)
}

// IsResolved reports whether the refund reached a terminal decision.
func (s RefundStatus) IsResolved() bool {
	return s == RefundProcessed || s == RefundDenied
}

// Refund is the refund record attached to an order. Once resolved it never changes.
type Refund struct {
	reason      string
	amount      decimal.Decimal
	status      RefundStatus
	requestedAt time.Time
	resolvedAt  *time.Time
}

func newRefund(reason string, amount, orderTotal decimal.Decimal, at time.Time) (*Refund, error) {
	r := &Refund{
		status:      RefundRequested,
		requestedAt: at,
	}

	if err := errors.Join(r.setReason(reason), r.setAmount(amount, orderTotal)); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreRefund rebuilds a refund record loaded from storage.
func RestoreRefund(
	reason string,
	amount decimal.Decimal,
	status RefundStatus,
	requestedAt time.Time,
	resolvedAt *time.Time,
) (*Refund, error) {
	r := &Refund{
		amount:      amount,
		requestedAt: requestedAt,
		resolvedAt:  resolvedAt,
	}

	if err := errors.Join(r.setReason(reason), status.Validate()); err != nil {
		return nil, err
	}
	if status.IsResolved() && resolvedAt == nil {
		return nil, errs.NewValueIsRequiredError("refundResolvedAt")
	}
	r.status = status
	return r, nil
}

func (r *Refund) Reason() string {
	return r.reason
}

func (r *Refund) Amount() decimal.Decimal {
	return r.amount
}

func (r *Refund) Status() RefundStatus {
	return r.status
}

func (r *Refund) RequestedAt() time.Time {
	return r.requestedAt
}

func (r *Refund) ResolvedAt() *time.Time {
	if r.resolvedAt == nil {
		return nil
	}
	at := *r.resolvedAt
	return &at
}

func (r *Refund) clone() *Refund {
	if r == nil {
		return nil
	}
	c := *r
	c.resolvedAt = r.ResolvedAt()
	return &c
}

func (r *Refund) resolve(decision RefundStatus, at time.Time) {
	r.status = decision
	r.resolvedAt = &at
}

func (r *Refund) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("refundReason")
	}
	r.reason = reason
	return nil
}

func (r *Refund) setAmount(amount, orderTotal decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(orderTotal) {
		return errs.NewValueIsOutOfRangeError("refundAmount", amount.String(), "0 (exclusive)", orderTotal.String())
	}
	r.amount = amount
	return nil
}
