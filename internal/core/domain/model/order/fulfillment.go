package order

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// FulfillmentMethod says whether the order is carried by a delivery partner or collected by the buyer.
type FulfillmentMethod string

const (
	FulfillmentDelivery FulfillmentMethod = "delivery"
	FulfillmentPickup   FulfillmentMethod = "pickup"
)

func ParseFulfillmentMethod(s string) (FulfillmentMethod, error) {
	m := FulfillmentMethod(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m FulfillmentMethod) Validate() error {
	if m != FulfillmentDelivery && m != FulfillmentPickup {
		return errs.NewValueIsInvalidErrorWithCause("fulfillmentMethod", fmt.Errorf("%q is not supported", string(m)))
	}
	return nil
}

func (m FulfillmentMethod) String() string {
	return string(m)
}

// PaymentMethod is informational; settlement happens outside this service.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentUPI            PaymentMethod = "upi"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	if m != PaymentCashOnDelivery && m != PaymentUPI {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not supported", string(m)))
	}
	return nil
}

func (m PaymentMethod) String() string {
	return string(m)
}
