package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

type GetOrderListQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderListQueryHandler(db *gorm.DB) GetOrderListQueryHandler {
	return GetOrderListQueryHandler{db: db}
}

func (h GetOrderListQueryHandler) Handle(
	ctx context.Context,
	query GetOrderListQuery,
) ([]GetOrderListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders AS o").
		Select(`
			o.id, o.buyer_id, o.buyer_name, o.fulfillment, o.payment, o.status, o.total,
			o.placed_at, o.status_changed_at, o.partner_id,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count
		`)

	subjectID := query.SubjectID().Bytes()
	switch query.Scope() {
	case ScopeBuyerOrders:
		tx = tx.Where("o.buyer_id = ?", subjectID)
	case ScopeSellerOrders:
		tx = tx.Where("EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.seller_id = ?)", subjectID)
	case ScopePartnerOrders:
		tx = tx.Where("o.partner_id = ?", subjectID)
	case ScopeAllOrders:
	}
	if status := query.Status(); status != nil {
		tx = tx.Where("o.status = ?", int(*status))
	}

	rows, err := tx.Order("o.placed_at DESC, o.id").Limit(query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderListQueryResponse, 0)
	for rows.Next() {
		var (
			o         GetOrderListQueryResponse
			id        uuid.UUID
			buyerID   uuid.UUID
			partnerID uuid.NullUUID
			status    int
		)
		err = rows.Scan(
			&id, &buyerID, &o.BuyerName, &o.Fulfillment, &o.Payment, &status, &o.Total,
			&o.PlacedAt, &o.StatusChangedAt, &partnerID, &o.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		if o.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if o.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if partnerID.Valid {
			pID, pErr := kernel.UUIDFromBytes(partnerID.UUID[:])
			if pErr != nil {
				return nil, pErr
			}
			o.PartnerID = &pID
		}
		o.Status = order.Status(status).String()
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
