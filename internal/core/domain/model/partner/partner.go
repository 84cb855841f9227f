package partner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for delivery partner operations.
var (
	// ErrPartnerUnavailable is returned when work is given to a partner that is switched off.
	ErrPartnerUnavailable = errors.New("delivery partner is unavailable")
	// ErrNameIsRequired is returned when creating a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating a partner without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New("DeliveryPartner must be created via NewDeliveryPartner constructor")
)

// DeliveryPartner is an agent that carries orders from sellers to buyers.
//
// The active delivery count is derived from the orders the partner holds
// (ready_for_ship or out_for_delivery). Storage adapters compute it on load;
// within a transaction it is kept in step with TakeOrder and ReleaseOrder.
type DeliveryPartner struct {
	id               kernel.UUID
	name             string
	phone            string
	isAvailable      bool
	activeDeliveries int
	location         *kernel.Location
	lastAssignedAt   *time.Time
	guard            guard.ConstructorGuard
}

// NewDeliveryPartner registers an available partner with no active deliveries.
//
// Example:
//
//	p, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi", "+91 90000 00000")
//	if err != nil {
//	    return err
//	}
func NewDeliveryPartner(id kernel.UUID, name, phone string) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryPartner reconstructs a partner loaded from storage together with
// its derived active delivery count.
func RestoreDeliveryPartner(
	id kernel.UUID,
	name string,
	phone string,
	isAvailable bool,
	activeDeliveries int,
	location *kernel.Location,
	lastAssignedAt *time.Time,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		isAvailable:    isAvailable,
		lastAssignedAt: lastAssignedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setActiveDeliveries(activeDeliveries),
		p.SetLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *DeliveryPartner) IsEqual(other *DeliveryPartner) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

func (p *DeliveryPartner) ID() kernel.UUID {
	return p.id
}

func (p *DeliveryPartner) Name() string {
	return p.name
}

func (p *DeliveryPartner) Phone() string {
	return p.phone
}

func (p *DeliveryPartner) IsAvailable() bool {
	return p.isAvailable
}

func (p *DeliveryPartner) ActiveDeliveries() int {
	return p.activeDeliveries
}

// Location returns nil when the partner never reported one.
func (p *DeliveryPartner) Location() *kernel.Location {
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

// LastAssignedAt returns nil for partners that never received an order.
func (p *DeliveryPartner) LastAssignedAt() *time.Time {
	if p.lastAssignedAt == nil {
		return nil
	}
	at := *p.lastAssignedAt
	return &at
}

// TakeOrder books one more active delivery for the partner.
func (p *DeliveryPartner) TakeOrder(at time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.isAvailable {
		return fmt.Errorf("%w: %s", ErrPartnerUnavailable, p.id)
	}

	p.activeDeliveries++
	p.lastAssignedAt = &at
	return nil
}

// ReleaseOrder frees one active delivery after the order was delivered or cancelled.
func (p *DeliveryPartner) ReleaseOrder() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.activeDeliveries == 0 {
		return errs.NewValueIsOutOfRangeError("activeDeliveries", -1, 0, "unbounded")
	}

	p.activeDeliveries--
	return nil
}

// SetAvailability toggles whether the partner accepts new work. Orders already
// held are not affected.
func (p *DeliveryPartner) SetAvailability(available bool) {
	p.isAvailable = available
}

// SetLocation updates the advisory position; nil clears it.
func (p *DeliveryPartner) SetLocation(location *kernel.Location) error {
	if location == nil {
		p.location = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	p.location = &loc
	return nil
}

func (p *DeliveryPartner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPartner) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *DeliveryPartner) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	p.phone = phone
	return nil
}

func (p *DeliveryPartner) setActiveDeliveries(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("activeDeliveries", fmt.Errorf("%d is negative", count))
	}
	p.activeDeliveries = count
	return nil
}
