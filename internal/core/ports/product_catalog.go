package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// ProductCatalog resolves current product listings at checkout time.
type ProductCatalog interface {
	// GetProducts returns the products in the order of ids. Any unknown id
	// fails the whole call with errs.ErrObjectNotFound.
	GetProducts(ctx context.Context, ids []kernel.UUID) ([]cart.Product, error)
}
