package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

type GetDeliveryPartnersQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryPartnersQueryHandler(db *gorm.DB) GetDeliveryPartnersQueryHandler {
	return GetDeliveryPartnersQueryHandler{db: db}
}

// Handle returns partners sorted by name.
func (h GetDeliveryPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPartnersQuery,
) ([]GetDeliveryPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.phone,
			p.is_available,
			(
				SELECT COUNT(*) FROM orders o
				WHERE o.partner_id = p.id AND o.status IN (?, ?)
			) AS active_deliveries,
			p.latitude,
			p.longitude,
			p.last_assigned_at
		FROM delivery_partners p
		WHERE p.is_available OR NOT ?
		ORDER BY p.name, p.id
	`, int(order.ReadyForShip), int(order.OutForDelivery), query.OnlyAvailable()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]GetDeliveryPartnersQueryResponse, 0)
	for rows.Next() {
		var (
			p              GetDeliveryPartnersQueryResponse
			id             uuid.UUID
			lat, lng       *float64
			lastAssignedAt *time.Time
		)
		err = rows.Scan(&id, &p.Name, &p.Phone, &p.IsAvailable, &p.ActiveDeliveries, &lat, &lng, &lastAssignedAt)
		if err != nil {
			return nil, err
		}

		if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if lat != nil && lng != nil {
			loc, locErr := kernel.NewLocation(*lat, *lng)
			if locErr != nil {
				return nil, locErr
			}
			p.Location = &loc
		}
		p.LastAssignedAt = lastAssignedAt
		partners = append(partners, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return partners, nil
}
