package order

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrBuyerInfoIsNotConstructed = errors.New("buyer info must be created via NewBuyerInfo constructor")

// BuyerInfo is the contact snapshot captured at checkout.
// Address may be empty; delivery orders reject an empty address.
type BuyerInfo struct {
	name    string
	address string
	phone   string
	guard   guard.ConstructorGuard
}

func NewBuyerInfo(name, address, phone string) (BuyerInfo, error) {
	info := BuyerInfo{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(info.setName(name), info.setPhone(phone)); err != nil {
		return BuyerInfo{}, err
	}
	return info, nil
}

func (b BuyerInfo) Name() string {
	return b.name
}

func (b BuyerInfo) Address() string {
	return b.address
}

func (b BuyerInfo) Phone() string {
	return b.phone
}

func (b BuyerInfo) HasAddress() bool {
	return b.address != ""
}

func (b BuyerInfo) Validate() error {
	return b.guard.Validate(ErrBuyerInfoIsNotConstructed)
}

func (b *BuyerInfo) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("buyerName")
	}
	b.name = name
	return nil
}

func (b *BuyerInfo) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("buyerPhone")
	}
	b.phone = phone
	return nil
}
