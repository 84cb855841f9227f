package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

type GetAwaitingDispatchOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAwaitingDispatchOrdersQueryHandler(db *gorm.DB) GetAwaitingDispatchOrdersQueryHandler {
	return GetAwaitingDispatchOrdersQueryHandler{db: db}
}

// Handle returns the queue oldest first, which is also the order the sweep assigns in.
func (h GetAwaitingDispatchOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAwaitingDispatchOrdersQuery,
) ([]GetAwaitingDispatchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.buyer_name,
			o.buyer_address,
			o.total,
			o.status_changed_at,
			array_agg(DISTINCT oi.seller_id::text) AS seller_ids
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.fulfillment = ? AND o.status = ? AND o.partner_id IS NULL
		GROUP BY o.id
		ORDER BY o.status_changed_at, o.id
		LIMIT ?
	`, order.FulfillmentDelivery.String(), int(order.ReadyForShip), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAwaitingDispatchOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			o         GetAwaitingDispatchOrdersQueryResponse
			id        uuid.UUID
			sellerIDs pq.StringArray
		)
		if err = rows.Scan(&id, &o.BuyerName, &o.BuyerAddress, &o.Total, &o.ReadySince, &sellerIDs); err != nil {
			return nil, err
		}

		if o.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		o.SellerIDs = make([]kernel.UUID, 0, len(sellerIDs))
		for _, raw := range sellerIDs {
			sellerID, parseErr := kernel.UUIDFromString(raw)
			if parseErr != nil {
				return nil, parseErr
			}
			o.SellerIDs = append(o.SellerIDs, sellerID)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
