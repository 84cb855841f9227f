package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a zero value Product is added to a cart.
var ErrProductIsNotConstructed = errors.New("product must be created via NewProduct constructor")

// Product is the checkout-time snapshot of a catalog listing: the seller that
// owns it, its display name and its unit price at that moment.
type Product struct {
	id        kernel.UUID
	sellerID  kernel.UUID
	name      string
	unitPrice decimal.Decimal
	guard     guard.ConstructorGuard
}

// NewProduct validates and builds a product snapshot. The unit price must not be negative.
func NewProduct(id, sellerID kernel.UUID, name string, unitPrice decimal.Decimal) (Product, error) {
	p := Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setSellerID(sellerID),
		p.setName(name),
		p.setUnitPrice(unitPrice),
	); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (p Product) ID() kernel.UUID {
	return p.id
}

func (p Product) SellerID() kernel.UUID {
	return p.sellerID
}

func (p Product) Name() string {
	return p.name
}

func (p Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	p.id = id
	return nil
}

func (p *Product) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerId", err)
	}
	p.sellerID = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", price))
	}
	p.unitPrice = price
	return nil
}
