package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/partner"
)

// DeliveryPartnerRepository persists delivery partners. The active delivery
// count of loaded partners is derived from the orders they hold.
type DeliveryPartnerRepository interface {
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	Update(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get loads a partner for modification. Missing partners yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)

	GetAllAvailable(ctx context.Context) ([]*partner.DeliveryPartner, error)
}
