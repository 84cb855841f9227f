package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrInvalidQuantity is returned by SetQuantity for negative quantities.
var ErrInvalidQuantity = errors.New("invalid quantity")

// Line is one product in the cart together with its quantity.
type Line struct {
	Product  Product
	Quantity int
}

// Subtotal is the unit price multiplied by the quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates product selections of a single buyer session before checkout.
// Lines keep insertion order; each product appears at most once.
//
// Cart is owned by one session and is not safe for concurrent use.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of the product by one, appending a new line
// for products not yet in the cart.
func (c *Cart) Add(product Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	if i := c.indexOf(product.ID()); i >= 0 {
		c.lines[i].Quantity++
		return nil
	}

	c.lines = append(c.lines, Line{Product: product, Quantity: 1})
	return nil
}

// SetQuantity replaces the quantity of a product already in the cart.
// Zero removes the line; negative quantities fail with ErrInvalidQuantity.
func (c *Cart) SetQuantity(productID kernel.UUID, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	i := c.indexOf(productID)
	if i < 0 {
		return errs.NewObjectNotFoundError("productId", productID)
	}

	if quantity == 0 {
		c.removeAt(i)
		return nil
	}

	c.lines[i].Quantity = quantity
	return nil
}

// Remove deletes the product line; it is a no-op when the product is absent.
func (c *Cart) Remove(productID kernel.UUID) {
	if i := c.indexOf(productID); i >= 0 {
		c.removeAt(i)
	}
}

// Total sums the line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) indexOf(productID kernel.UUID) int {
	for i, line := range c.lines {
		if line.Product.ID().IsEqual(productID) {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
